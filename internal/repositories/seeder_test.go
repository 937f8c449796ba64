package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catcare/internal/models/db_models"
	"catcare/pkg/utils"
)

func TestSeedDemoAccountsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	log := zap.NewNop()
	users := NewUserRepository(store, log)
	pets := NewPetRepository(store, log)
	seeder := NewDemoSeeder(users, pets, log)

	require.NoError(t, seeder.SeedDemoAccounts(ctx))
	require.NoError(t, seeder.SeedDemoAccounts(ctx))

	require.Len(t, users.List(ctx), 2)
}

func TestSeededAccountsMatchDemoContract(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	log := zap.NewNop()
	users := NewUserRepository(store, log)
	pets := NewPetRepository(store, log)
	seeder := NewDemoSeeder(users, pets, log)

	require.NoError(t, seeder.SeedDemoAccounts(ctx))

	doctor := users.FindByUsername(ctx, DemoDoctorUsername)
	require.NotNil(t, doctor)
	require.Equal(t, db_models.UserTypeDoctor, doctor.Type)
	require.NoError(t, utils.ComparePasswords(doctor.PasswordHash, DemoPassword))
	require.NotEqual(t, DemoPassword, doctor.PasswordHash)

	owner := users.FindByUsername(ctx, DemoPetOwnerUsername)
	require.NotNil(t, owner)
	require.Equal(t, db_models.UserTypePetOwner, owner.Type)

	pet := pets.FindByOwnerID(ctx, owner.ID)
	require.NotNil(t, pet)
	require.Equal(t, "Whiskers", pet.Name)
	require.Equal(t, "Persian", pet.Breed)
	require.Equal(t, 3, pet.Age)
}
