package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"petspa/internal/domain/entity"
	domainerrors "petspa/internal/domain/errors"
	"petspa/internal/domain/repository"
	mockRepo "petspa/internal/mocks/repository"
	"petspa/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(txManager, repoFactory, logger)

	return adminServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
	}
}

func TestAdminService_ListAppointments_NonAdmin(t *testing.T) {
	fx := createTestAdminService(t)

	appointments, err := fx.service.ListAppointments(context.Background(), customerSession(), &usecase.ListAppointmentsInput{})

	require.Error(t, err)
	assert.Nil(t, appointments)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminService_UpdateAppointment_CompletionSettlesVisit(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	session := adminSession()
	appointmentID := uuid.New()
	customerID := uuid.New()
	petID := uuid.New()

	completed := entity.StatusCompleted
	price := 50.0
	discount := 5.0
	input := &usecase.UpdateAppointmentInput{
		Status:          &completed,
		TotalPrice:      &price,
		DiscountApplied: &discount,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
			mockHistoryRepo := mockRepo.NewMockServiceHistoryRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
			mockFactory.EXPECT().ServiceHistoryRepo().Return(mockHistoryRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockAppointmentRepo.EXPECT().
				FindAppointmentByID(ctx, appointmentID).
				Return(&entity.Appointment{
					ID:          appointmentID,
					CustomerID:  customerID,
					PetID:       petID,
					ServiceName: "Full Grooming",
					Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
					Status:      entity.StatusInProgress,
				}, nil)

			mockAppointmentRepo.EXPECT().
				UpdateAppointment(ctx, mock.AnythingOfType("*entity.Appointment")).
				Return(nil)

			mockHistoryRepo.EXPECT().
				CreateServiceHistory(ctx, mock.AnythingOfType("*entity.ServiceHistory")).
				Run(func(ctx context.Context, history *entity.ServiceHistory) {
					assert.Equal(t, customerID, history.CustomerID)
					assert.Equal(t, "Full Grooming", history.ServiceName)
					// 50 minus the 5 discount, one point per whole ten dollars.
					assert.InDelta(t, 45, history.AmountPaid, 0.001)
					assert.Equal(t, 4, history.LoyaltyPointsEarned)
				}).
				Return(nil)

			mockUserRepo.EXPECT().AddLoyaltyPoints(ctx, customerID, 4).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateAppointment(ctx, session, appointmentID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.StatusCompleted, updated.Status)
}

func TestAdminService_UpdateAppointment_CompletionBelowPointThreshold(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	session := adminSession()
	appointmentID := uuid.New()
	customerID := uuid.New()

	completed := entity.StatusCompleted
	price := 8.0
	input := &usecase.UpdateAppointmentInput{
		Status:     &completed,
		TotalPrice: &price,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
			mockHistoryRepo := mockRepo.NewMockServiceHistoryRepository(t)

			mockFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
			mockFactory.EXPECT().ServiceHistoryRepo().Return(mockHistoryRepo)

			mockAppointmentRepo.EXPECT().
				FindAppointmentByID(ctx, appointmentID).
				Return(&entity.Appointment{
					ID:         appointmentID,
					CustomerID: customerID,
					PetID:      uuid.New(),
					Status:     entity.StatusInProgress,
				}, nil)

			mockAppointmentRepo.EXPECT().
				UpdateAppointment(ctx, mock.AnythingOfType("*entity.Appointment")).
				Return(nil)

			// Visits under ten dollars record history but earn no points,
			// so no loyalty credit is issued.
			mockHistoryRepo.EXPECT().
				CreateServiceHistory(ctx, mock.AnythingOfType("*entity.ServiceHistory")).
				Run(func(ctx context.Context, history *entity.ServiceHistory) {
					assert.Equal(t, 0, history.LoyaltyPointsEarned)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateAppointment(ctx, session, appointmentID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
}

func TestAdminService_UpdateAppointment_UnknownStatus(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	session := adminSession()
	appointmentID := uuid.New()

	// Statuses outside the lifecycle are rejected even for staff.
	bogus := entity.AppointmentStatus("archived")
	input := &usecase.UpdateAppointmentInput{Status: &bogus}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)

			mockAppointmentRepo.EXPECT().
				FindAppointmentByID(ctx, appointmentID).
				Return(&entity.Appointment{
					ID:     appointmentID,
					Status: entity.StatusCompleted,
				}, nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateAppointment(ctx, session, appointmentID, input)

	require.Error(t, err)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestAdminService_UpdateAppointment_UnknownGroomer(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	session := adminSession()
	appointmentID := uuid.New()
	groomerID := uuid.New()

	input := &usecase.UpdateAppointmentInput{GroomerID: &groomerID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
			mockGroomerRepo := mockRepo.NewMockGroomerRepository(t)

			mockFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
			mockFactory.EXPECT().GroomerRepo().Return(mockGroomerRepo)

			mockAppointmentRepo.EXPECT().
				FindAppointmentByID(ctx, appointmentID).
				Return(&entity.Appointment{ID: appointmentID, Status: entity.StatusPending}, nil)

			mockGroomerRepo.EXPECT().
				FindGroomerByID(ctx, groomerID).
				Return(nil, repository.ErrGroomerNotFound)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateAppointment(ctx, session, appointmentID, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrGroomerNotFound)
}

func TestAdminService_GetStats_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	session := adminSession()

	mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockServiceRepo := mockRepo.NewMockServiceRepository(t)

	fx.repoFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
	fx.repoFactory.EXPECT().UserRepo().Return(mockUserRepo)
	fx.repoFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)

	mockAppointmentRepo.EXPECT().CountAppointments(mock.Anything).Return(int64(120), nil)
	mockAppointmentRepo.EXPECT().CountAppointmentsByStatus(mock.Anything, entity.StatusPending).Return(int64(7), nil)
	mockUserRepo.EXPECT().CountByRole(mock.Anything, entity.RoleCustomer).Return(int64(42), nil)
	mockServiceRepo.EXPECT().CountActiveServices(mock.Anything).Return(int64(9), nil)

	stats, err := fx.service.GetStats(ctx, session)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(120), stats.TotalAppointments)
	assert.Equal(t, int64(7), stats.PendingAppointments)
	assert.Equal(t, int64(42), stats.TotalCustomers)
	assert.Equal(t, int64(9), stats.ActiveServices)
}
