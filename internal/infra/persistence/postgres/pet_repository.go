package postgres

import (
	"context"

	"petspa/internal/domain/entity"
	domainerrors "petspa/internal/domain/errors"
	"petspa/internal/domain/repository"
	"petspa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// petRepository implements the domain.PetRepository interface using GORM.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{db: db}
}

// CreatePet persists a new pet entity.
func (repo *petRepository) CreatePet(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required pet information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}
	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

// FindPetByID retrieves a pet by its unique ID.
func (repo *petRepository) FindPetByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&petM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet by id")
	}

	return toPetDomain(&petM), nil
}

// FindPetsByOwner retrieves all pets registered to a specific owner.
func (repo *petRepository) FindPetsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error) {
	var petModels []model.PetModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&petModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pets by owner")
	}

	pets := make([]*entity.Pet, 0, len(petModels))
	for i := range petModels {
		pets = append(pets, toPetDomain(&petModels[i]))
	}

	return pets, nil
}

// UpdatePet modifies an existing pet entity.
func (repo *petRepository) UpdatePet(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Save(petM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required pet information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to update pet")
	}
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

// DeletePet removes a pet by its ID.
func (repo *petRepository) DeletePet(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// CountPetsByOwner returns the number of pets registered to an owner.
func (repo *petRepository) CountPetsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count pets by owner")
	}

	return count, nil
}

// --- Mapper Functions ---

// toPetDomain converts a GORM PetModel to a domain Pet entity.
func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	return &entity.Pet{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Species:   entity.Species(data.Species),
		Breed:     data.Breed,
		Age:       data.Age,
		Weight:    data.Weight,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPetDomain converts a domain Pet entity to a GORM PetModel.
func fromPetDomain(data *entity.Pet) *model.PetModel {
	if data == nil {
		return nil
	}

	return &model.PetModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Species:   data.Species.String(),
		Breed:     data.Breed,
		Age:       data.Age,
		Weight:    data.Weight,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
	}
}
