// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"petspa/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, including profile and roles.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity together with its profile.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile modifies the profile attached to an existing user.
	UpdateProfile(ctx context.Context, profile *entity.Profile) error

	// AddLoyaltyPoints atomically increments the loyalty point balance of a profile.
	AddLoyaltyPoints(ctx context.Context, userID uuid.UUID, points int) error

	// AssignRole grants a role to a user. Granting an already held role is a no-op.
	AssignRole(ctx context.Context, userID uuid.UUID, role entity.Role) error

	// FindRoles retrieves all roles held by a user.
	FindRoles(ctx context.Context, userID uuid.UUID) (entity.Roles, error)

	// CountByRole returns the number of users holding the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}
