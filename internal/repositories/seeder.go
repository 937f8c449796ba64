package repositories

import (
	"context"
	"time"

	"go.uber.org/zap"

	"catcare/internal/models/db_models"
	"catcare/pkg/utils"
)

// Demo credentials, kept stable for test reproducibility.
const (
	DemoDoctorUsername   = "doctor"
	DemoPetOwnerUsername = "petowner"
	DemoPassword         = "password"
)

// DemoSeeder creates the two demo accounts (one doctor, one pet owner with
// a pet) the first time the app runs against an empty store.
type DemoSeeder struct {
	users UserRepository
	pets  PetRepository
	log   *zap.Logger
}

func NewDemoSeeder(users UserRepository, pets PetRepository, log *zap.Logger) *DemoSeeder {
	return &DemoSeeder{users: users, pets: pets, log: log}
}

// SeedDemoAccounts is idempotent: it does nothing unless the users
// collection is empty. Demo passwords are hashed at seed time so the login
// path never sees plaintext storage.
func (s *DemoSeeder) SeedDemoAccounts(ctx context.Context) error {
	if len(s.users.List(ctx)) > 0 {
		return nil
	}

	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return err
	}
	now := time.Now()

	doctor := &db_models.User{
		ID:           utils.NewID(),
		Username:     DemoDoctorUsername,
		PasswordHash: hash,
		Name:         "Dr. Sarah Johnson",
		Type:         db_models.UserTypeDoctor,
		CreatedAt:    now,
	}
	if err := s.users.Insert(ctx, doctor); err != nil {
		return err
	}

	owner := &db_models.User{
		ID:           utils.NewID(),
		Username:     DemoPetOwnerUsername,
		PasswordHash: hash,
		Name:         "Alex Smith",
		Type:         db_models.UserTypePetOwner,
		CreatedAt:    now,
	}
	if err := s.users.Insert(ctx, owner); err != nil {
		return err
	}

	pet := &db_models.Pet{
		ID:      utils.NewID(),
		Name:    "Whiskers",
		Breed:   "Persian",
		Age:     3,
		OwnerID: owner.ID,
	}
	if err := s.pets.Save(ctx, pet); err != nil {
		return err
	}

	s.log.Info("demo accounts seeded",
		zap.String("doctor", DemoDoctorUsername),
		zap.String("pet_owner", DemoPetOwnerUsername))
	return nil
}
