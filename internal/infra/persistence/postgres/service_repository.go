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

// serviceRepository implements the domain.ServiceRepository interface using GORM.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// CreateService persists a new catalog service.
func (repo *serviceRepository) CreateService(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required service information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}
	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// FindServiceByID retrieves a catalog service by its unique ID.
func (repo *serviceRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serviceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return toServiceDomain(&serviceM), nil
}

// FindActiveServices retrieves all active services, ordered by name.
func (repo *serviceRepository) FindActiveServices(ctx context.Context) ([]*entity.Service, error) {
	var serviceModels []model.ServiceModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&serviceModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active services")
	}

	return toServiceDomainSlice(serviceModels), nil
}

// FindAllServices retrieves every service regardless of active state, ordered by name.
func (repo *serviceRepository) FindAllServices(ctx context.Context) ([]*entity.Service, error) {
	var serviceModels []model.ServiceModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&serviceModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find services")
	}

	return toServiceDomainSlice(serviceModels), nil
}

// UpdateService modifies an existing catalog service.
func (repo *serviceRepository) UpdateService(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Save(serviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required service information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to update service")
	}
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// DeleteService removes a catalog service row permanently.
func (repo *serviceRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// CountActiveServices returns the number of active services.
func (repo *serviceRepository) CountActiveServices(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active services")
	}

	return count, nil
}

// --- Mapper Functions ---

// toServiceDomain converts a GORM ServiceModel to a domain Service entity.
func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Category:        entity.ServiceCategory(data.Category),
		PriceMin:        data.PriceMin,
		PriceMax:        data.PriceMax,
		DurationMinutes: data.DurationMinutes,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toServiceDomainSlice converts a slice of GORM models to domain entities.
func toServiceDomainSlice(models []model.ServiceModel) []*entity.Service {
	services := make([]*entity.Service, 0, len(models))
	for i := range models {
		services = append(services, toServiceDomain(&models[i]))
	}

	return services
}

// fromServiceDomain converts a domain Service entity to a GORM ServiceModel.
func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Category:        data.Category.String(),
		PriceMin:        data.PriceMin,
		PriceMax:        data.PriceMax,
		DurationMinutes: data.DurationMinutes,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
	}
}
