package service

import (
	"context"
	"time"

	"github.com/ansoncht/Cat-Food-Helper/internal/auth/domain"
	"github.com/ansoncht/Cat-Food-Helper/internal/auth/dto"
	autherror "github.com/ansoncht/Cat-Food-Helper/internal/errors"
	"github.com/ansoncht/Cat-Food-Helper/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService owns the mutation path to the user store. Inputs reach it
// already validated by the handler layer.
type UserService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// RegisterUser creates a new account. Username is checked before email, so
// when both conflict the username error wins. The store's unique indexes
// remain the source of truth for the race between check and insert.
func (s *UserService) RegisterUser(ctx context.Context, input dto.SignUpInput) (*dto.UserOutput, error) {
	taken, err := s.repo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, autherror.ErrUsernameAlreadyInUse
	}

	taken, err = s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hashedPassword),
		Roles:        []string{constant.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserOutput(user), nil
}

// AuthenticateUser verifies credentials against a single username-or-email
// lookup. Unknown user and wrong password both yield ErrInvalidCredentials.
func (s *UserService) AuthenticateUser(ctx context.Context, input dto.SignInInput) (*dto.UserOutput, error) {
	user, err := s.repo.FindByUsernameOrEmail(ctx, input.UsernameOrEmail, input.UsernameOrEmail)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	return toUserOutput(user), nil
}

// LoadByUsername resolves the full user record for an authenticated subject.
// It is consumed by the auth middleware, not by the public API.
func (s *UserService) LoadByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.repo.FindByUsernameOrEmail(ctx, username, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return user, nil
}

func toUserOutput(user *domain.User) *dto.UserOutput {
	return &dto.UserOutput{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
