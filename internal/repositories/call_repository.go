package repositories

import (
	"context"

	"go.uber.org/zap"

	"catcare/internal/models/db_models"
)

type CallRepository interface {
	List(ctx context.Context) []db_models.DoctorCall
	// SeedMockCalls writes the fixed demo history only when the collection is
	// empty. Safe to call on every doctor login.
	SeedMockCalls(ctx context.Context) error
}

type callRepository struct {
	store KeyValueStore
	log   *zap.Logger
}

func NewCallRepository(store KeyValueStore, log *zap.Logger) CallRepository {
	return &callRepository{store: store, log: log}
}

func (r *callRepository) List(ctx context.Context) []db_models.DoctorCall {
	return loadCollection[db_models.DoctorCall](ctx, r.store, KeyDoctorCalls, r.log)
}

func (r *callRepository) SeedMockCalls(ctx context.Context) error {
	if len(r.List(ctx)) > 0 {
		return nil
	}

	mockCalls := []db_models.DoctorCall{
		{
			ID:          "call-1",
			PatientName: "Sarah Johnson",
			PetName:     "Whiskers",
			PetBreed:    "Persian",
			CallDate:    "2025-08-12",
			CallTime:    "14:30",
			Status:      db_models.CallCompleted,
			Duration:    "25 min",
		},
		{
			ID:          "call-2",
			PatientName: "Mike Chen",
			PetName:     "Luna",
			PetBreed:    "British Shorthair",
			CallDate:    "2025-08-13",
			CallTime:    "09:15",
			Status:      db_models.CallCompleted,
			Duration:    "18 min",
		},
	}
	return storeCollection(ctx, r.store, KeyDoctorCalls, mockCalls)
}
