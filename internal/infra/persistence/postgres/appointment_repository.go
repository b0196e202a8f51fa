package postgres

import (
	"context"
	"time"

	"petspa/internal/domain/entity"
	domainerrors "petspa/internal/domain/errors"
	"petspa/internal/domain/repository"
	"petspa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appointmentRepository implements the domain.AppointmentRepository interface using GORM.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

// withRelations preloads the rows backing the denormalized display names.
func (repo *appointmentRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Pet").
		Preload("Service").
		Preload("Groomer")
}

// CreateAppointment persists a new appointment.
func (repo *appointmentRepository) CreateAppointment(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Create(appointmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("appointment references unknown pet, service or groomer")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create appointment")
	}
	appointment.ID = appointmentM.ID
	appointment.CreatedAt = appointmentM.CreatedAt
	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

// FindAppointmentByID retrieves an appointment by its unique ID,
// including the related pet, service and groomer names.
func (repo *appointmentRepository) FindAppointmentByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel
	err := repo.withRelations(ctx).
		Where("id = ?", id).
		First(&appointmentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by id")
	}

	return toAppointmentDomain(&appointmentM), nil
}

// FindAppointmentsByCustomer retrieves all appointments booked by a customer,
// newest visit first.
func (repo *appointmentRepository) FindAppointmentsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Appointment, error) {
	var appointmentModels []model.AppointmentModel
	err := repo.withRelations(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC, start_time DESC").
		Find(&appointmentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find appointments by customer")
	}

	return toAppointmentDomainSlice(appointmentModels), nil
}

// FindUpcomingByCustomer retrieves a customer's next visits on or after the
// given date, skipping cancelled bookings.
func (repo *appointmentRepository) FindUpcomingByCustomer(ctx context.Context, customerID uuid.UUID, from time.Time, limit int) ([]*entity.Appointment, error) {
	var appointmentModels []model.AppointmentModel
	err := repo.withRelations(ctx).
		Where("customer_id = ?", customerID).
		Where("date >= ?", from).
		Where("status <> ?", entity.StatusCancelled.String()).
		Order("date ASC, start_time ASC").
		Limit(limit).
		Find(&appointmentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming appointments")
	}

	return toAppointmentDomainSlice(appointmentModels), nil
}

// FindAppointments retrieves appointments matching the filter, newest first.
func (repo *appointmentRepository) FindAppointments(ctx context.Context, filter repository.AppointmentFilter) ([]*entity.Appointment, error) {
	query := repo.withRelations(ctx)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}

	var appointmentModels []model.AppointmentModel
	err := query.
		Order("date DESC, start_time DESC").
		Find(&appointmentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find appointments")
	}

	return toAppointmentDomainSlice(appointmentModels), nil
}

// FindAppointmentsOnDate retrieves appointments scheduled on a calendar day
// in any of the given statuses, ordered by start time.
func (repo *appointmentRepository) FindAppointmentsOnDate(ctx context.Context, date time.Time, statuses []entity.AppointmentStatus) ([]*entity.Appointment, error) {
	statusValues := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusValues = append(statusValues, status.String())
	}

	var appointmentModels []model.AppointmentModel
	err := repo.withRelations(ctx).
		Where("date = ?", date.Format(time.DateOnly)).
		Where("status IN ?", statusValues).
		Order("start_time ASC").
		Find(&appointmentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find appointments on date")
	}

	return toAppointmentDomainSlice(appointmentModels), nil
}

// UpdateAppointment modifies an existing appointment.
func (repo *appointmentRepository) UpdateAppointment(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Save(appointmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("appointment references unknown pet, service or groomer")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to update appointment")
	}
	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

// CountAppointments returns the total number of appointments.
func (repo *appointmentRepository) CountAppointments(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count appointments")
	}

	return count, nil
}

// CountAppointmentsByStatus returns the number of appointments in the given status.
func (repo *appointmentRepository) CountAppointmentsByStatus(ctx context.Context, status entity.AppointmentStatus) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count appointments by status")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAppointmentDomain converts a GORM AppointmentModel to a domain Appointment entity.
// Preloaded relations fill the display names when present.
func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	appointment := &entity.Appointment{
		ID:                   data.ID,
		CustomerID:           data.CustomerID,
		PetID:                data.PetID,
		ServiceID:            data.ServiceID,
		GroomerID:            data.GroomerID,
		ServiceType:          entity.ServiceType(data.ServiceType),
		Date:                 data.Date,
		StartTime:            data.StartTime,
		EndTime:              data.EndTime,
		Status:               entity.AppointmentStatus(data.Status),
		Notes:                data.Notes,
		TotalPrice:           data.TotalPrice,
		DiscountApplied:      data.DiscountApplied,
		EstimatedWaitMinutes: data.EstimatedWaitMinutes,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}

	if data.Pet != nil {
		appointment.PetName = data.Pet.Name
	}
	if data.Service != nil {
		appointment.ServiceName = data.Service.Name
	}
	if data.Groomer != nil {
		appointment.GroomerName = data.Groomer.Name
	}

	return appointment
}

// toAppointmentDomainSlice converts a slice of GORM models to domain entities.
func toAppointmentDomainSlice(models []model.AppointmentModel) []*entity.Appointment {
	appointments := make([]*entity.Appointment, 0, len(models))
	for i := range models {
		appointments = append(appointments, toAppointmentDomain(&models[i]))
	}

	return appointments
}

// fromAppointmentDomain converts a domain Appointment entity to a GORM AppointmentModel.
// Display names are read-side only and never written back.
func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:                   data.ID,
		CustomerID:           data.CustomerID,
		PetID:                data.PetID,
		ServiceID:            data.ServiceID,
		GroomerID:            data.GroomerID,
		ServiceType:          data.ServiceType.String(),
		Date:                 data.Date,
		StartTime:            data.StartTime,
		EndTime:              data.EndTime,
		Status:               data.Status.String(),
		Notes:                data.Notes,
		TotalPrice:           data.TotalPrice,
		DiscountApplied:      data.DiscountApplied,
		EstimatedWaitMinutes: data.EstimatedWaitMinutes,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
