package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"catcare/internal/models/db_models"
	"catcare/internal/models/request_models"
	"catcare/internal/repositories"
	"catcare/pkg/utils"
)

type SessionState int

const (
	StateLoggedOut SessionState = iota
	StateLoading
	StateLoggedIn
)

type SessionServiceInterface interface {
	// Initialize restores a persisted session at process start. It seeds the
	// demo accounts first, so a fresh install always has the doctor and
	// pet-owner logins available.
	Initialize(ctx context.Context) error
	Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error)
	SavePet(ctx context.Context, request request_models.SavePetRequest) (*db_models.Pet, error)
	// RefreshUserData re-reads the current user and pet from storage after
	// mutations made by other managers, so derived state never goes stale.
	RefreshUserData(ctx context.Context) error
	CurrentUser() *db_models.User
	CurrentPet() *db_models.Pet
	State() SessionState
}

type SessionService struct {
	users    repositories.UserRepository
	pets     repositories.PetRepository
	calls    repositories.CallRepository
	sessions repositories.SessionRepository
	seeder   *repositories.DemoSeeder
	log      *zap.Logger

	mu    sync.RWMutex
	state SessionState
	user  *db_models.User
	pet   *db_models.Pet
}

func NewSessionService(
	users repositories.UserRepository,
	pets repositories.PetRepository,
	calls repositories.CallRepository,
	sessions repositories.SessionRepository,
	seeder *repositories.DemoSeeder,
	log *zap.Logger,
) SessionServiceInterface {
	return &SessionService{
		users:    users,
		pets:     pets,
		calls:    calls,
		sessions: sessions,
		seeder:   seeder,
		log:      log,
		state:    StateLoggedOut,
	}
}

func (s *SessionService) Initialize(ctx context.Context) error {
	s.setState(StateLoading)

	if err := s.seeder.SeedDemoAccounts(ctx); err != nil {
		s.setState(StateLoggedOut)
		return err
	}

	user := s.sessions.CurrentUser(ctx)
	if user == nil {
		s.setState(StateLoggedOut)
		return nil
	}
	return s.activate(ctx, user)
}

func (s *SessionService) Login(ctx context.Context, request request_models.LoginRequest) (*db_models.User, error) {
	user := s.users.FindByUsername(ctx, request.Username)
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := s.sessions.SetCurrentUser(ctx, user); err != nil {
		return nil, err
	}
	if err := s.activate(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user logged in",
		zap.String("username", user.Username), zap.String("type", string(user.Type)))
	return user, nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = StateLoggedOut
	s.user = nil
	s.pet = nil
	s.mu.Unlock()
	return nil
}

func (s *SessionService) Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error) {
	username := strings.TrimSpace(request.Username)
	if username == "" || request.Password == "" || request.Name == "" {
		return nil, utils.ErrInvalidRequest
	}
	if request.Type != db_models.UserTypePetOwner && request.Type != db_models.UserTypeDoctor {
		return nil, utils.ErrInvalidRequest
	}
	if existing := s.users.FindByUsername(ctx, username); existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &db_models.User{
		ID:           utils.NewID(),
		Username:     username,
		PasswordHash: hash,
		Name:         request.Name,
		Type:         request.Type,
		CreatedAt:    now,
		Subscription: &db_models.Subscription{Type: db_models.SubscriptionFree, IsActive: true},
		Usage:        &db_models.Usage{LastFreeRequestReset: now},
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	if err := s.sessions.SetCurrentUser(ctx, user); err != nil {
		return nil, err
	}
	if err := s.activate(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user registered",
		zap.String("username", user.Username), zap.String("type", string(user.Type)))
	return user, nil
}

func (s *SessionService) SavePet(ctx context.Context, request request_models.SavePetRequest) (*db_models.Pet, error) {
	user := s.CurrentUser()
	if user == nil {
		return nil, utils.ErrNoActiveSession
	}
	if strings.TrimSpace(request.Name) == "" ||
		request.Age < db_models.MinPetAge || request.Age > db_models.MaxPetAge {
		return nil, utils.ErrInvalidRequest
	}

	pet := &db_models.Pet{
		ID:      utils.NewID(),
		Name:    request.Name,
		Breed:   request.Breed,
		Age:     request.Age,
		OwnerID: user.ID,
	}
	if err := s.pets.Save(ctx, pet); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.pet = pet
	s.mu.Unlock()
	return pet, nil
}

func (s *SessionService) RefreshUserData(ctx context.Context) error {
	if s.State() != StateLoggedIn {
		return utils.ErrNoActiveSession
	}

	user := s.sessions.CurrentUser(ctx)
	if user == nil {
		// The pointer vanished underneath us; drop back to logged out.
		s.mu.Lock()
		s.state = StateLoggedOut
		s.user = nil
		s.pet = nil
		s.mu.Unlock()
		return utils.ErrNoActiveSession
	}

	var pet *db_models.Pet
	if user.Type == db_models.UserTypePetOwner {
		pet = s.pets.FindByOwnerID(ctx, user.ID)
	}

	s.mu.Lock()
	s.user = user
	s.pet = pet
	s.mu.Unlock()
	return nil
}

func (s *SessionService) CurrentUser() *db_models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateLoggedIn {
		return nil
	}
	return s.user
}

func (s *SessionService) CurrentPet() *db_models.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pet
}

func (s *SessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// activate loads the per-type companion state and flips to LoggedIn: pet
// owners get their pet, doctors get the seeded call history.
func (s *SessionService) activate(ctx context.Context, user *db_models.User) error {
	var pet *db_models.Pet
	switch user.Type {
	case db_models.UserTypePetOwner:
		pet = s.pets.FindByOwnerID(ctx, user.ID)
	case db_models.UserTypeDoctor:
		if err := s.calls.SeedMockCalls(ctx); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.state = StateLoggedIn
	s.user = user
	s.pet = pet
	s.mu.Unlock()
	return nil
}

func (s *SessionService) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
