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

// groomerRepository implements the domain.GroomerRepository interface using GORM.
type groomerRepository struct {
	db *gorm.DB
}

// NewGroomerRepository is the constructor for groomerRepository.
func NewGroomerRepository(db *gorm.DB) repository.GroomerRepository {
	return &groomerRepository{db: db}
}

// CreateGroomer persists a new groomer.
func (repo *groomerRepository) CreateGroomer(ctx context.Context, groomer *entity.Groomer) error {
	groomerM := fromGroomerDomain(groomer)

	if err := repo.db.WithContext(ctx).Create(groomerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required groomer information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create groomer")
	}
	groomer.ID = groomerM.ID
	groomer.CreatedAt = groomerM.CreatedAt

	return nil
}

// FindGroomerByID retrieves a groomer by their unique ID.
func (repo *groomerRepository) FindGroomerByID(ctx context.Context, id uuid.UUID) (*entity.Groomer, error) {
	var groomerM model.GroomerModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&groomerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find groomer by id")
	}

	return toGroomerDomain(&groomerM), nil
}

// FindAvailableGroomers retrieves all groomers currently accepting appointments, ordered by name.
func (repo *groomerRepository) FindAvailableGroomers(ctx context.Context) ([]*entity.Groomer, error) {
	var groomerModels []model.GroomerModel
	err := repo.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("name ASC").
		Find(&groomerModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find available groomers")
	}

	return toGroomerDomainSlice(groomerModels), nil
}

// FindAllGroomers retrieves every groomer regardless of availability, ordered by name.
func (repo *groomerRepository) FindAllGroomers(ctx context.Context) ([]*entity.Groomer, error) {
	var groomerModels []model.GroomerModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&groomerModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find groomers")
	}

	return toGroomerDomainSlice(groomerModels), nil
}

// UpdateGroomer modifies an existing groomer.
func (repo *groomerRepository) UpdateGroomer(ctx context.Context, groomer *entity.Groomer) error {
	groomerM := fromGroomerDomain(groomer)

	if err := repo.db.WithContext(ctx).Save(groomerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required groomer information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to update groomer")
	}

	return nil
}

// DeleteGroomer removes a groomer by their ID.
func (repo *groomerRepository) DeleteGroomer(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GroomerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete groomer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toGroomerDomain converts a GORM GroomerModel to a domain Groomer entity.
func toGroomerDomain(data *model.GroomerModel) *entity.Groomer {
	if data == nil {
		return nil
	}

	return &entity.Groomer{
		ID:          data.ID,
		Name:        data.Name,
		Specialty:   data.Specialty,
		PhotoURL:    data.PhotoURL,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
	}
}

// toGroomerDomainSlice converts a slice of GORM models to domain entities.
func toGroomerDomainSlice(models []model.GroomerModel) []*entity.Groomer {
	groomers := make([]*entity.Groomer, 0, len(models))
	for i := range models {
		groomers = append(groomers, toGroomerDomain(&models[i]))
	}

	return groomers
}

// fromGroomerDomain converts a domain Groomer entity to a GORM GroomerModel.
func fromGroomerDomain(data *entity.Groomer) *model.GroomerModel {
	if data == nil {
		return nil
	}

	return &model.GroomerModel{
		ID:          data.ID,
		Name:        data.Name,
		Specialty:   data.Specialty,
		PhotoURL:    data.PhotoURL,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
	}
}
