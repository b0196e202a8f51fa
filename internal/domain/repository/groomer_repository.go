// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"petspa/internal/domain/entity"
	"petspa/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for groomer persistence.
var (
	// ErrGroomerNotFound is returned when a groomer is not found.
	ErrGroomerNotFound = errors.New("groomer not found")
)

// GroomerRepository defines the interface for groomer database operations.
type GroomerRepository interface {
	// CreateGroomer persists a new groomer.
	CreateGroomer(ctx context.Context, groomer *entity.Groomer) error

	// FindGroomerByID retrieves a groomer by their unique ID.
	FindGroomerByID(ctx context.Context, id uuid.UUID) (*entity.Groomer, error)

	// FindAvailableGroomers retrieves all groomers currently accepting appointments, ordered by name.
	FindAvailableGroomers(ctx context.Context) ([]*entity.Groomer, error)

	// FindAllGroomers retrieves every groomer regardless of availability, ordered by name.
	FindAllGroomers(ctx context.Context) ([]*entity.Groomer, error)

	// UpdateGroomer modifies an existing groomer.
	UpdateGroomer(ctx context.Context, groomer *entity.Groomer) error

	// DeleteGroomer removes a groomer by their ID.
	DeleteGroomer(ctx context.Context, id uuid.UUID) error
}
