package repositories

import (
	"context"

	"go.uber.org/zap"

	"catcare/internal/models/db_models"
)

type PetRepository interface {
	// Save enforces the one-pet-per-owner invariant at write time: any
	// existing pet for the same owner is replaced.
	Save(ctx context.Context, pet *db_models.Pet) error
	List(ctx context.Context) []db_models.Pet
	FindByOwnerID(ctx context.Context, ownerID string) *db_models.Pet
}

type petRepository struct {
	store KeyValueStore
	log   *zap.Logger
}

func NewPetRepository(store KeyValueStore, log *zap.Logger) PetRepository {
	return &petRepository{store: store, log: log}
}

func (r *petRepository) Save(ctx context.Context, pet *db_models.Pet) error {
	pets := r.List(ctx)
	kept := make([]db_models.Pet, 0, len(pets)+1)
	for _, p := range pets {
		if p.OwnerID != pet.OwnerID {
			kept = append(kept, p)
		}
	}
	kept = append(kept, *pet)
	return storeCollection(ctx, r.store, KeyPets, kept)
}

func (r *petRepository) List(ctx context.Context) []db_models.Pet {
	return loadCollection[db_models.Pet](ctx, r.store, KeyPets, r.log)
}

func (r *petRepository) FindByOwnerID(ctx context.Context, ownerID string) *db_models.Pet {
	for _, pet := range r.List(ctx) {
		if pet.OwnerID == ownerID {
			return &pet
		}
	}
	return nil
}
