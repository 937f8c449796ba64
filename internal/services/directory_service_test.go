package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catcare/internal/repositories"
)

func TestDirectoryRosters(t *testing.T) {
	calls := repositories.NewCallRepository(repositories.NewMemoryStore(), zap.NewNop())
	directory := NewDirectoryService(calls)

	doctors := directory.Doctors()
	require.Len(t, doctors, 9)
	require.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)

	// The escalation pool is the head of the directory roster.
	require.Equal(t, availableDoctors, doctors[:len(availableDoctors)])

	clinics := directory.Clinics()
	require.Len(t, clinics, 5)
	require.Equal(t, "City Pet Emergency Center", clinics[0].Name)
}

func TestRecentCallsReflectSeededHistory(t *testing.T) {
	ctx := context.Background()
	calls := repositories.NewCallRepository(repositories.NewMemoryStore(), zap.NewNop())
	directory := NewDirectoryService(calls)

	require.Empty(t, directory.RecentCalls(ctx))

	require.NoError(t, calls.SeedMockCalls(ctx))
	require.Len(t, directory.RecentCalls(ctx), 2)
}
