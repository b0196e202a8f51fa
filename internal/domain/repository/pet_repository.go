// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"petspa/internal/domain/entity"
	"petspa/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for pet persistence.
var (
	// ErrPetNotFound is returned when a pet is not found.
	ErrPetNotFound = errors.New("pet not found")
)

// PetRepository defines the interface for pet-related database operations.
type PetRepository interface {
	// CreatePet persists a new pet entity.
	CreatePet(ctx context.Context, pet *entity.Pet) error

	// FindPetByID retrieves a pet by its unique ID.
	FindPetByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)

	// FindPetsByOwner retrieves all pets registered to a specific owner,
	// ordered by creation time descending.
	FindPetsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error)

	// UpdatePet modifies an existing pet entity.
	UpdatePet(ctx context.Context, pet *entity.Pet) error

	// DeletePet removes a pet by its ID.
	DeletePet(ctx context.Context, id uuid.UUID) error

	// CountPetsByOwner returns the number of pets registered to an owner.
	CountPetsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
