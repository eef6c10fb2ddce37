package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/MikeRez0/bakery/internal/core/utils"
	"go.uber.org/zap"
)

const (
	userLocked       = "User has been locked and cannot be modified or deleted"
	userDeletingSelf = "You cannot delete your own account"
	userEmailTaken   = "There is already a user with that email address. Please select a unique email."
)

type UserService struct {
	repo         port.UserRepository
	tokenService port.TokenService
	logger       *zap.Logger
}

func NewUserService(repo port.UserRepository, tokenService port.TokenService, logger *zap.Logger) (*UserService, error) {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		logger:       logger,
	}, nil
}

func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		s.logger.Error("Get user", zap.Error(err))
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.Load(ctx, id)
}

func (s *UserService) Load(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.ReadUser(ctx, id)
	if err != nil {
		return nil, repoError(s.logger, "Read user", err)
	}
	return u, nil
}

func (s *UserService) Save(ctx context.Context, actor *domain.User, user *domain.User) (*domain.User, error) {
	if err := s.throwIfLocked(ctx, user); err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.User
	var err error
	if user.IsNew() {
		saved, err = s.repo.CreateUser(ctx, user)
	} else {
		saved, err = s.repo.UpdateUser(ctx, user)
	}
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.NewUserFriendlyError(userEmailTaken)
		}
		return nil, repoError(s.logger, "Save user", err)
	}
	return saved, nil
}

func (s *UserService) Delete(ctx context.Context, actor *domain.User, user *domain.User) error {
	if actor != nil && actor.ID == user.ID {
		return domain.NewUserFriendlyError(userDeletingSelf)
	}
	if err := s.throwIfLocked(ctx, user); err != nil {
		return err
	}
	if err := s.repo.DeleteUser(ctx, user.ID); err != nil {
		return repoError(s.logger, "Delete user", err)
	}
	return nil
}

// throwIfLocked checks the stored row, not the Locked flag of the incoming user.
func (s *UserService) throwIfLocked(ctx context.Context, user *domain.User) error {
	if user.IsNew() {
		return nil
	}
	stored, err := s.repo.ReadUser(ctx, user.ID)
	if err != nil {
		return repoError(s.logger, "Read user", err)
	}
	if stored.Locked {
		return domain.NewUserFriendlyError(userLocked)
	}
	return nil
}

func (s *UserService) CreateNew(ctx context.Context, actor *domain.User) *domain.User {
	return &domain.User{Role: domain.RoleBarista}
}

func (s *UserService) FindAnyMatching(ctx context.Context, filter string,
	page domain.PageRequest) ([]*domain.User, error) {
	list, err := s.repo.ListUsers(ctx, filter, page)
	if err != nil {
		return nil, repoError(s.logger, "List users", err)
	}
	return list, nil
}

func (s *UserService) CountAnyMatching(ctx context.Context, filter string) (int64, error) {
	n, err := s.repo.CountUsers(ctx, filter)
	if err != nil {
		return 0, repoError(s.logger, "Count users", err)
	}
	return n, nil
}

// EnsureAdmin creates an administrator with the given credentials unless the email is already registered.
func (s *UserService) EnsureAdmin(ctx context.Context, email string, password string) error {
	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrDataNotFound) {
		return repoError(s.logger, "Get user", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &domain.User{
		Email:     email,
		FirstName: "Admin",
		LastName:  "Admin",
		Password:  hashed,
		Role:      domain.RoleAdmin,
		Locked:    true,
	}
	_, err = s.repo.CreateUser(ctx, admin)
	if err != nil {
		return repoError(s.logger, "Create admin", err)
	}
	s.logger.Info("Created admin user", zap.String("email", email))
	return nil
}
