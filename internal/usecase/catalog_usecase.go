// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"petspa/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateServiceInput defines the data required to add a catalog service.
type CreateServiceInput struct {
	Name            string
	Description     string
	Category        entity.ServiceCategory
	PriceMin        float64
	PriceMax        float64
	DurationMinutes int
}

// UpdateServiceInput defines the editable fields of a catalog service.
// Nil fields are left unchanged.
type UpdateServiceInput struct {
	Name            *string
	Description     *string
	Category        *entity.ServiceCategory
	PriceMin        *float64
	PriceMax        *float64
	DurationMinutes *int
	IsActive        *bool
}

// CreateGroomerInput defines the data required to add a groomer.
type CreateGroomerInput struct {
	Name      string
	Specialty string
	PhotoURL  string
}

// UpdateGroomerInput defines the editable fields of a groomer. Nil fields are left unchanged.
type UpdateGroomerInput struct {
	Name        *string
	Specialty   *string
	PhotoURL    *string
	IsAvailable *bool
}

// CatalogUsecase defines the interface for the service catalog and groomer roster.
// Read operations are public; write operations require catalog management capability.
type CatalogUsecase interface {
	// ListActiveServices retrieves the services currently offered to customers.
	// Results are served from cache when available.
	ListActiveServices(ctx context.Context) ([]*entity.Service, error)

	// ListAllServices retrieves every service including inactive ones. Back office only.
	ListAllServices(ctx context.Context, session *entity.Session) ([]*entity.Service, error)

	// GetService retrieves one catalog service by ID.
	GetService(ctx context.Context, serviceID uuid.UUID) (*entity.Service, error)

	// CreateService adds a new catalog service.
	CreateService(ctx context.Context, session *entity.Session, input *CreateServiceInput) (*entity.Service, error)

	// UpdateService modifies an existing catalog service. Retiring a service
	// from customer listings is an update setting IsActive to false.
	UpdateService(ctx context.Context, session *entity.Session, serviceID uuid.UUID, input *UpdateServiceInput) (*entity.Service, error)

	// DeleteService removes a service from the catalog permanently.
	// Existing appointments keep their snapshot price.
	DeleteService(ctx context.Context, session *entity.Session, serviceID uuid.UUID) error

	// ListAvailableGroomers retrieves the groomers currently accepting appointments.
	ListAvailableGroomers(ctx context.Context) ([]*entity.Groomer, error)

	// ListAllGroomers retrieves every groomer including unavailable ones. Back office only.
	ListAllGroomers(ctx context.Context, session *entity.Session) ([]*entity.Groomer, error)

	// CreateGroomer adds a new groomer to the roster.
	CreateGroomer(ctx context.Context, session *entity.Session, input *CreateGroomerInput) (*entity.Groomer, error)

	// UpdateGroomer modifies an existing groomer.
	UpdateGroomer(ctx context.Context, session *entity.Session, groomerID uuid.UUID, input *UpdateGroomerInput) (*entity.Groomer, error)

	// DeleteGroomer removes a groomer from the roster.
	DeleteGroomer(ctx context.Context, session *entity.Session, groomerID uuid.UUID) error
}
