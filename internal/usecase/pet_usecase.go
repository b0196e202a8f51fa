// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"petspa/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreatePetInput defines the data required to register a pet.
type CreatePetInput struct {
	Name    string
	Species entity.Species
	Breed   string
	Age     *int
	Weight  *float64
	Notes   string
}

// UpdatePetInput defines the editable fields of a pet. Nil fields are left unchanged.
type UpdatePetInput struct {
	Name    *string
	Species *entity.Species
	Breed   *string
	Age     *int
	Weight  *float64
	Notes   *string
}

// PetUsecase defines the interface for pet management operations.
// Every operation is scoped to the session user; pets belonging to
// other customers are never visible through this interface.
type PetUsecase interface {
	// CreatePet registers a new pet under the session user.
	CreatePet(ctx context.Context, session *entity.Session, input *CreatePetInput) (*entity.Pet, error)

	// GetPet retrieves one of the session user's pets by ID.
	GetPet(ctx context.Context, session *entity.Session, petID uuid.UUID) (*entity.Pet, error)

	// ListPets retrieves all pets of the session user, newest first.
	ListPets(ctx context.Context, session *entity.Session) ([]*entity.Pet, error)

	// UpdatePet modifies one of the session user's pets.
	UpdatePet(ctx context.Context, session *entity.Session, petID uuid.UUID, input *UpdatePetInput) (*entity.Pet, error)

	// DeletePet removes one of the session user's pets.
	DeletePet(ctx context.Context, session *entity.Session, petID uuid.UUID) error
}
