package user

import (
	"context"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, id kernel.UserID, user *User) error

	// ExistsByEmail checks whether an account already uses the email
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)
}
