// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"petspa/internal/domain/entity"
	domainerrors "petspa/internal/domain/errors"
	"petspa/internal/domain/repository"
	"petspa/internal/domain/service"
	"petspa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// activeServicesCacheKey stores the serialized active service listing.
const activeServicesCacheKey = "catalog:services:active"

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	repoFactory repository.RepositoryFactory
	cache       service.CacheProvider
	cacheTTL    time.Duration
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
// cache may be nil, in which case every read goes to the database.
func NewCatalogService(
	txManager repository.TransactionManager,
	repoFactory repository.RepositoryFactory,
	cache service.CacheProvider,
	cacheTTL time.Duration,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   txManager,
		repoFactory: repoFactory,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// ListActiveServices retrieves the services currently offered to customers.
// The listing is the hottest read in the system, so it is served from cache
// when possible and refilled on a miss.
func (srv *catalogService) ListActiveServices(ctx context.Context) ([]*entity.Service, error) {
	if srv.cache != nil {
		raw, err := srv.cache.Get(ctx, activeServicesCacheKey)
		if err == nil {
			var services []*entity.Service
			if err := json.Unmarshal(raw, &services); err == nil {
				return services, nil
			}
			srv.logger.Warn("Discarding undecodable catalog cache entry", "error", err)
		} else if !errors.Is(err, service.ErrCacheMiss) {
			// A cache outage must not take the catalog down.
			srv.logger.Warn("Catalog cache read failed", "error", err)
		}
	}

	services, err := srv.repoFactory.ServiceRepo().FindActiveServices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active services")
	}

	if srv.cache != nil {
		if raw, err := json.Marshal(services); err == nil {
			if err := srv.cache.Set(ctx, activeServicesCacheKey, raw, srv.cacheTTL); err != nil {
				srv.logger.Warn("Catalog cache write failed", "error", err)
			}
		}
	}

	return services, nil
}

// ListAllServices retrieves every service including inactive ones.
func (srv *catalogService) ListAllServices(ctx context.Context, session *entity.Session) ([]*entity.Service, error) {
	if err := requireCapability(session, entity.CapabilityManageCatalog); err != nil {
		return nil, err
	}

	services, err := srv.repoFactory.ServiceRepo().FindAllServices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

// GetService retrieves one catalog service by ID.
func (srv *catalogService) GetService(ctx context.Context, serviceID uuid.UUID) (*entity.Service, error) {
	svc, err := srv.repoFactory.ServiceRepo().FindServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound.WrapMessage("service lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return svc, nil
}

// CreateService adds a new catalog service.
func (srv *catalogService) CreateService(ctx context.Context, session *entity.Session, input *usecase.CreateServiceInput) (*entity.Service, error) {
	if err := requireCapability(session, entity.CapabilityManageCatalog); err != nil {
		return nil, err
	}
	srv.logger.Info("Creating catalog service", "name", input.Name, "adminID", session.UserID)

	if err := validatePriceRange(input.PriceMin, input.PriceMax); err != nil {
		return nil, err
	}
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + input.Category.String())
	}
	if input.DurationMinutes <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("duration must be positive")
	}

	svc := &entity.Service{
		Name:            input.Name,
		Description:     input.Description,
		Category:        input.Category,
		PriceMin:        input.PriceMin,
		PriceMax:        input.PriceMax,
		DurationMinutes: input.DurationMinutes,
		IsActive:        true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ServiceRepo().CreateService(ctx, svc); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.invalidateActiveServices(ctx)

	return svc, nil
}

// UpdateService modifies an existing catalog service.
func (srv *catalogService) UpdateService(ctx context.Context, session *entity.Session, serviceID uuid.UUID, input *usecase.UpdateServiceInput) (*entity.Service, error) {
	if err := requireCapability(session, entity.CapabilityManageCatalog); err != nil {
		return nil, err
	}
	srv.logger.Info("Updating catalog service", "serviceID", serviceID, "adminID", session.UserID)

	var updated *entity.Service

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		svc, err := serviceRepo.FindServiceByID(ctx, serviceID)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return domainerrors.ErrServiceNotFound.WrapMessage("service update failed")
			}

			return errors.Wrap(err, "failed to find service")
		}

		if input.Name != nil {
			svc.Name = *input.Name
		}
		if input.Description != nil {
			svc.Description = *input.Description
		}
		if input.Category != nil {
			if !input.Category.IsValid() {
				return domainerrors.ErrValidationFailed.WithDetails("unknown category: " + input.Category.String())
			}
			svc.Category = *input.Category
		}
		if input.PriceMin != nil {
			svc.PriceMin = *input.PriceMin
		}
		if input.PriceMax != nil {
			svc.PriceMax = *input.PriceMax
		}
		if input.DurationMinutes != nil {
			if *input.DurationMinutes <= 0 {
				return domainerrors.ErrValidationFailed.WithDetails("duration must be positive")
			}
			svc.DurationMinutes = *input.DurationMinutes
		}
		if input.IsActive != nil {
			svc.IsActive = *input.IsActive
		}

		// The pair is validated after both sides settle so a partial
		// update cannot leave an inverted range behind.
		if err := validatePriceRange(svc.PriceMin, svc.PriceMax); err != nil {
			return err
		}

		if err := serviceRepo.UpdateService(ctx, svc); err != nil {
			return errors.Wrap(err, "failed to update service")
		}
		updated = svc

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update service")
	}

	srv.invalidateActiveServices(ctx)

	return updated, nil
}

// DeleteService removes a service from the catalog permanently. Appointments
// that referenced it keep their snapshot price and nullable service link.
func (srv *catalogService) DeleteService(ctx context.Context, session *entity.Session, serviceID uuid.UUID) error {
	if err := requireCapability(session, entity.CapabilityManageCatalog); err != nil {
		return err
	}
	srv.logger.Info("Deleting catalog service", "serviceID", serviceID, "adminID", session.UserID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ServiceRepo().DeleteService(ctx, serviceID); err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return domainerrors.ErrServiceNotFound.WrapMessage("service deletion failed")
			}

			return errors.Wrap(err, "failed to delete service")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete service")
	}

	srv.invalidateActiveServices(ctx)

	return nil
}

// ListAvailableGroomers retrieves the groomers currently accepting appointments.
func (srv *catalogService) ListAvailableGroomers(ctx context.Context) ([]*entity.Groomer, error) {
	groomers, err := srv.repoFactory.GroomerRepo().FindAvailableGroomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available groomers")
	}

	return groomers, nil
}

// ListAllGroomers retrieves every groomer including unavailable ones.
func (srv *catalogService) ListAllGroomers(ctx context.Context, session *entity.Session) ([]*entity.Groomer, error) {
	if err := requireCapability(session, entity.CapabilityManageCatalog); err != nil {
		return nil, err
	}

	groomers, err := srv.repoFactory.GroomerRepo().FindAllGroomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list groomers")
	}

	return groomers, nil
}

// CreateGroomer adds a new groomer to the roster.
func (srv *catalogService) CreateGroomer(ctx context.Context, session *entity.Session, input *usecase.CreateGroomerInput) (*entity.Groomer, error) {
	if err := requireCapability(session, entity.CapabilityManageCatalog); err != nil {
		return nil, err
	}
	srv.logger.Info("Creating groomer", "name", input.Name, "adminID", session.UserID)

	groomer := &entity.Groomer{
		Name:        input.Name,
		Specialty:   input.Specialty,
		PhotoURL:    input.PhotoURL,
		IsAvailable: true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.GroomerRepo().CreateGroomer(ctx, groomer); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create groomer")
	}

	return groomer, nil
}

// UpdateGroomer modifies an existing groomer.
func (srv *catalogService) UpdateGroomer(ctx context.Context, session *entity.Session, groomerID uuid.UUID, input *usecase.UpdateGroomerInput) (*entity.Groomer, error) {
	if err := requireCapability(session, entity.CapabilityManageCatalog); err != nil {
		return nil, err
	}
	srv.logger.Info("Updating groomer", "groomerID", groomerID, "adminID", session.UserID)

	var updated *entity.Groomer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		groomerRepo := repoFactory.GroomerRepo()

		groomer, err := groomerRepo.FindGroomerByID(ctx, groomerID)
		if err != nil {
			if errors.Is(err, repository.ErrGroomerNotFound) {
				return domainerrors.ErrGroomerNotFound.WrapMessage("groomer update failed")
			}

			return errors.Wrap(err, "failed to find groomer")
		}

		if input.Name != nil {
			groomer.Name = *input.Name
		}
		if input.Specialty != nil {
			groomer.Specialty = *input.Specialty
		}
		if input.PhotoURL != nil {
			groomer.PhotoURL = *input.PhotoURL
		}
		if input.IsAvailable != nil {
			groomer.IsAvailable = *input.IsAvailable
		}

		if err := groomerRepo.UpdateGroomer(ctx, groomer); err != nil {
			return errors.Wrap(err, "failed to update groomer")
		}
		updated = groomer

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update groomer")
	}

	return updated, nil
}

// DeleteGroomer removes a groomer from the roster.
func (srv *catalogService) DeleteGroomer(ctx context.Context, session *entity.Session, groomerID uuid.UUID) error {
	if err := requireCapability(session, entity.CapabilityManageCatalog); err != nil {
		return err
	}
	srv.logger.Info("Deleting groomer", "groomerID", groomerID, "adminID", session.UserID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		groomerRepo := repoFactory.GroomerRepo()

		if _, err := groomerRepo.FindGroomerByID(ctx, groomerID); err != nil {
			if errors.Is(err, repository.ErrGroomerNotFound) {
				return domainerrors.ErrGroomerNotFound.WrapMessage("groomer deletion failed")
			}

			return errors.Wrap(err, "failed to find groomer")
		}

		if err := groomerRepo.DeleteGroomer(ctx, groomerID); err != nil {
			return errors.Wrap(err, "failed to delete groomer")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete groomer")
	}

	return nil
}

// invalidateActiveServices drops the cached listing after a catalog write.
func (srv *catalogService) invalidateActiveServices(ctx context.Context) {
	if srv.cache == nil {
		return
	}
	if err := srv.cache.Delete(ctx, activeServicesCacheKey); err != nil {
		srv.logger.Warn("Catalog cache invalidation failed", "error", err)
	}
}

// validatePriceRange rejects catalogs entries whose minimum exceeds their maximum.
func validatePriceRange(priceMin, priceMax float64) error {
	if priceMin < 0 || priceMax < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("prices must not be negative")
	}
	if priceMin > priceMax {
		return domainerrors.ErrInvalidPriceRange.WithDetails("minimum price exceeds maximum price")
	}

	return nil
}
