// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"petspa/internal/domain/entity"
	domainerrors "petspa/internal/domain/errors"
	"petspa/internal/domain/repository"
	"petspa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// petService implements the PetUsecase interface.
type petService struct {
	txManager   repository.TransactionManager
	repoFactory repository.RepositoryFactory
	logger      *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(
	txManager repository.TransactionManager,
	repoFactory repository.RepositoryFactory,
	logger *slog.Logger,
) usecase.PetUsecase {
	return &petService{
		txManager:   txManager,
		repoFactory: repoFactory,
		logger:      logger,
	}
}

// CreatePet registers a new pet under the session user.
func (srv *petService) CreatePet(ctx context.Context, session *entity.Session, input *usecase.CreatePetInput) (*entity.Pet, error) {
	if err := requireCapability(session, entity.CapabilityManageOwnPets); err != nil {
		return nil, err
	}
	srv.logger.Info("Registering pet", "ownerID", session.UserID, "name", input.Name)

	if !input.Species.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown species: " + input.Species.String())
	}

	pet := &entity.Pet{
		OwnerID: session.UserID,
		Name:    input.Name,
		Species: input.Species,
		Breed:   input.Breed,
		Age:     input.Age,
		Weight:  input.Weight,
		Notes:   input.Notes,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PetRepo().CreatePet(ctx, pet); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to register pet", "error", err, "ownerID", session.UserID)

		return nil, errors.Wrap(err, "failed to register pet")
	}

	return pet, nil
}

// GetPet retrieves one of the session user's pets.
func (srv *petService) GetPet(ctx context.Context, session *entity.Session, petID uuid.UUID) (*entity.Pet, error) {
	if err := requireCapability(session, entity.CapabilityManageOwnPets); err != nil {
		return nil, err
	}

	pet, err := srv.findOwnedPet(ctx, srv.repoFactory, session, petID)
	if err != nil {
		return nil, err
	}

	return pet, nil
}

// ListPets retrieves all pets of the session user.
func (srv *petService) ListPets(ctx context.Context, session *entity.Session) ([]*entity.Pet, error) {
	if err := requireCapability(session, entity.CapabilityManageOwnPets); err != nil {
		return nil, err
	}

	pets, err := srv.repoFactory.PetRepo().FindPetsByOwner(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	return pets, nil
}

// UpdatePet modifies one of the session user's pets.
func (srv *petService) UpdatePet(ctx context.Context, session *entity.Session, petID uuid.UUID, input *usecase.UpdatePetInput) (*entity.Pet, error) {
	if err := requireCapability(session, entity.CapabilityManageOwnPets); err != nil {
		return nil, err
	}
	srv.logger.Info("Updating pet", "petID", petID, "ownerID", session.UserID)

	var updated *entity.Pet

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pet, err := srv.findOwnedPet(ctx, repoFactory, session, petID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			pet.Name = *input.Name
		}
		if input.Species != nil {
			if !input.Species.IsValid() {
				return domainerrors.ErrValidationFailed.WithDetails("unknown species: " + input.Species.String())
			}
			pet.Species = *input.Species
		}
		if input.Breed != nil {
			pet.Breed = *input.Breed
		}
		if input.Age != nil {
			pet.Age = input.Age
		}
		if input.Weight != nil {
			pet.Weight = input.Weight
		}
		if input.Notes != nil {
			pet.Notes = *input.Notes
		}

		if err := repoFactory.PetRepo().UpdatePet(ctx, pet); err != nil {
			return errors.Wrap(err, "failed to update pet")
		}
		updated = pet

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update pet")
	}

	return updated, nil
}

// DeletePet removes one of the session user's pets.
func (srv *petService) DeletePet(ctx context.Context, session *entity.Session, petID uuid.UUID) error {
	if err := requireCapability(session, entity.CapabilityManageOwnPets); err != nil {
		return err
	}
	srv.logger.Info("Deleting pet", "petID", petID, "ownerID", session.UserID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := srv.findOwnedPet(ctx, repoFactory, session, petID); err != nil {
			return err
		}

		if err := repoFactory.PetRepo().DeletePet(ctx, petID); err != nil {
			return errors.Wrap(err, "failed to delete pet")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete pet")
	}

	return nil
}

// findOwnedPet loads a pet and verifies it belongs to the session user.
// Pets of other owners are reported as not found to avoid leaking their existence.
func (srv *petService) findOwnedPet(ctx context.Context, repoFactory repository.RepositoryFactory, session *entity.Session, petID uuid.UUID) (*entity.Pet, error) {
	pet, err := repoFactory.PetRepo().FindPetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound.WrapMessage("pet lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}
	if pet.OwnerID != session.UserID && !session.IsAdmin() {
		return nil, domainerrors.ErrPetNotFound.WrapMessage("pet lookup failed")
	}

	return pet, nil
}
