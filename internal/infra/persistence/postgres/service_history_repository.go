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

// serviceHistoryRepository implements the domain.ServiceHistoryRepository interface using GORM.
type serviceHistoryRepository struct {
	db *gorm.DB
}

// NewServiceHistoryRepository is the constructor for serviceHistoryRepository.
func NewServiceHistoryRepository(db *gorm.DB) repository.ServiceHistoryRepository {
	return &serviceHistoryRepository{db: db}
}

// CreateServiceHistory persists a completed-visit record.
func (repo *serviceHistoryRepository) CreateServiceHistory(ctx context.Context, history *entity.ServiceHistory) error {
	historyM := fromServiceHistoryDomain(history)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("history references unknown customer or pet")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service history")
	}
	history.ID = historyM.ID
	history.CreatedAt = historyM.CreatedAt

	return nil
}

// FindServiceHistoryByCustomer retrieves the visit history of a customer,
// most recent visit first.
func (repo *serviceHistoryRepository) FindServiceHistoryByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.ServiceHistory, error) {
	var historyModels []model.ServiceHistoryModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("service_date DESC").
		Find(&historyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service history by customer")
	}

	histories := make([]*entity.ServiceHistory, 0, len(historyModels))
	for i := range historyModels {
		histories = append(histories, toServiceHistoryDomain(&historyModels[i]))
	}

	return histories, nil
}

// SumAmountPaidByCustomer returns the lifetime spend of a customer.
func (repo *serviceHistoryRepository) SumAmountPaidByCustomer(ctx context.Context, customerID uuid.UUID) (float64, error) {
	var total float64
	err := repo.db.WithContext(ctx).
		Model(&model.ServiceHistoryModel{}).
		Where("customer_id = ?", customerID).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum amount paid by customer")
	}

	return total, nil
}

// --- Mapper Functions ---

// toServiceHistoryDomain converts a GORM ServiceHistoryModel to a domain ServiceHistory entity.
func toServiceHistoryDomain(data *model.ServiceHistoryModel) *entity.ServiceHistory {
	if data == nil {
		return nil
	}

	return &entity.ServiceHistory{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		PetID:               data.PetID,
		AppointmentID:       data.AppointmentID,
		ServiceName:         data.ServiceName,
		ServiceDate:         data.ServiceDate,
		AmountPaid:          data.AmountPaid,
		LoyaltyPointsEarned: data.LoyaltyPointsEarned,
		CreatedAt:           data.CreatedAt,
	}
}

// fromServiceHistoryDomain converts a domain ServiceHistory entity to a GORM ServiceHistoryModel.
func fromServiceHistoryDomain(data *entity.ServiceHistory) *model.ServiceHistoryModel {
	if data == nil {
		return nil
	}

	return &model.ServiceHistoryModel{
		ID:                  data.ID,
		CustomerID:          data.CustomerID,
		PetID:               data.PetID,
		AppointmentID:       data.AppointmentID,
		ServiceName:         data.ServiceName,
		ServiceDate:         data.ServiceDate,
		AmountPaid:          data.AmountPaid,
		LoyaltyPointsEarned: data.LoyaltyPointsEarned,
		CreatedAt:           data.CreatedAt,
	}
}
