package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/ansoncht/Cat-Food-Helper/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	// FindByUsernameOrEmail returns the user whose username or email matches,
	// or (nil, nil) when no row exists.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *User) error
}
