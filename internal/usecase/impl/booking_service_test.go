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

type bookingServiceFixtures struct {
	service     usecase.BookingUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewBookingService(txManager, repoFactory, logger)

	return bookingServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
	}
}

func validBookingInput(petID, serviceID uuid.UUID) *usecase.BookAppointmentInput {
	return &usecase.BookAppointmentInput{
		PetID:       petID,
		ServiceID:   serviceID,
		ServiceType: entity.ServiceTypeWalkIn,
		Date:        time.Now().AddDate(0, 0, 7),
		StartTime:   "10:00",
		Notes:       "first visit",
	}
}

func TestBookingService_BookAppointment_Success(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	session := customerSession()
	petID := uuid.New()
	serviceID := uuid.New()
	input := validBookingInput(petID, serviceID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPetRepo := mockRepo.NewMockPetRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().PetRepo().Return(mockPetRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)

			mockPetRepo.EXPECT().
				FindPetByID(ctx, petID).
				Return(&entity.Pet{ID: petID, OwnerID: session.UserID}, nil)

			mockServiceRepo.EXPECT().
				FindServiceByID(ctx, serviceID).
				Return(&entity.Service{
					ID:       serviceID,
					Name:     "Full Grooming",
					PriceMin: 45,
					PriceMax: 80,
					IsActive: true,
				}, nil)

			mockAppointmentRepo.EXPECT().
				CreateAppointment(ctx, mock.AnythingOfType("*entity.Appointment")).
				Run(func(ctx context.Context, appointment *entity.Appointment) {
					appointment.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	booked, err := fx.service.BookAppointment(ctx, session, input)

	require.NoError(t, err)
	require.NotNil(t, booked)
	assert.Equal(t, entity.StatusPending, booked.Status)
	assert.Equal(t, session.UserID, booked.CustomerID)
	// The quote is the low end of the service's price range.
	require.NotNil(t, booked.TotalPrice)
	assert.InDelta(t, 45, *booked.TotalPrice, 0.001)
}

func TestBookingService_BookAppointment_InvalidSlot(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	session := customerSession()
	input := validBookingInput(uuid.New(), uuid.New())
	input.StartTime = "12:00"

	booked, err := fx.service.BookAppointment(ctx, session, input)

	require.Error(t, err)
	assert.Nil(t, booked)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TIME_SLOT", appErr.ErrorCode())
}

func TestBookingService_BookAppointment_InactiveService(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	session := customerSession()
	petID := uuid.New()
	serviceID := uuid.New()
	input := validBookingInput(petID, serviceID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPetRepo := mockRepo.NewMockPetRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().PetRepo().Return(mockPetRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)

			mockPetRepo.EXPECT().
				FindPetByID(ctx, petID).
				Return(&entity.Pet{ID: petID, OwnerID: session.UserID}, nil)

			mockServiceRepo.EXPECT().
				FindServiceByID(ctx, serviceID).
				Return(&entity.Service{ID: serviceID, IsActive: false}, nil)

			return fn(mockFactory)
		})

	booked, err := fx.service.BookAppointment(ctx, session, input)

	require.Error(t, err)
	assert.Nil(t, booked)
	assert.ErrorIs(t, err, domainerrors.ErrServiceInactive)
}

func TestBookingService_BookAppointment_OtherOwnersPet(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	session := customerSession()
	petID := uuid.New()
	input := validBookingInput(petID, uuid.New())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPetRepo := mockRepo.NewMockPetRepository(t)

			mockFactory.EXPECT().PetRepo().Return(mockPetRepo)

			mockPetRepo.EXPECT().
				FindPetByID(ctx, petID).
				Return(&entity.Pet{ID: petID, OwnerID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	booked, err := fx.service.BookAppointment(ctx, session, input)

	require.Error(t, err)
	assert.Nil(t, booked)
	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}

func TestBookingService_BookAppointment_UnavailableGroomer(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	session := customerSession()
	petID := uuid.New()
	serviceID := uuid.New()
	groomerID := uuid.New()
	input := validBookingInput(petID, serviceID)
	input.GroomerID = &groomerID

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPetRepo := mockRepo.NewMockPetRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockGroomerRepo := mockRepo.NewMockGroomerRepository(t)

			mockFactory.EXPECT().PetRepo().Return(mockPetRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().GroomerRepo().Return(mockGroomerRepo)

			mockPetRepo.EXPECT().
				FindPetByID(ctx, petID).
				Return(&entity.Pet{ID: petID, OwnerID: session.UserID}, nil)

			mockServiceRepo.EXPECT().
				FindServiceByID(ctx, serviceID).
				Return(&entity.Service{ID: serviceID, PriceMin: 30, IsActive: true}, nil)

			mockGroomerRepo.EXPECT().
				FindGroomerByID(ctx, groomerID).
				Return(&entity.Groomer{ID: groomerID, IsAvailable: false}, nil)

			return fn(mockFactory)
		})

	booked, err := fx.service.BookAppointment(ctx, session, input)

	require.Error(t, err)
	assert.Nil(t, booked)
	assert.ErrorIs(t, err, domainerrors.ErrGroomerNotFound)
}

func TestBookingService_CancelAppointment_Pending(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	session := customerSession()
	appointmentID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)

			mockAppointmentRepo.EXPECT().
				FindAppointmentByID(ctx, appointmentID).
				Return(&entity.Appointment{
					ID:         appointmentID,
					CustomerID: session.UserID,
					Status:     entity.StatusPending,
				}, nil)

			mockAppointmentRepo.EXPECT().
				UpdateAppointment(ctx, mock.AnythingOfType("*entity.Appointment")).
				Run(func(ctx context.Context, appointment *entity.Appointment) {
					assert.Equal(t, entity.StatusCancelled, appointment.Status)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	cancelled, err := fx.service.CancelAppointment(ctx, session, appointmentID)

	require.NoError(t, err)
	require.NotNil(t, cancelled)
	assert.Equal(t, entity.StatusCancelled, cancelled.Status)
}

func TestBookingService_CancelAppointment_AlreadyConfirmed(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	session := customerSession()
	appointmentID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)

			mockAppointmentRepo.EXPECT().
				FindAppointmentByID(ctx, appointmentID).
				Return(&entity.Appointment{
					ID:         appointmentID,
					CustomerID: session.UserID,
					Status:     entity.StatusConfirmed,
				}, nil)

			return fn(mockFactory)
		})

	cancelled, err := fx.service.CancelAppointment(ctx, session, appointmentID)

	require.Error(t, err)
	assert.Nil(t, cancelled)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestBookingService_ListMyAppointments_Partition(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	session := customerSession()

	futurePending := &entity.Appointment{
		ID:         uuid.New(),
		CustomerID: session.UserID,
		Date:       time.Now().AddDate(0, 0, 5),
		Status:     entity.StatusPending,
	}
	futureCancelled := &entity.Appointment{
		ID:         uuid.New(),
		CustomerID: session.UserID,
		Date:       time.Now().AddDate(0, 0, 10),
		Status:     entity.StatusCancelled,
	}
	pastCompleted := &entity.Appointment{
		ID:         uuid.New(),
		CustomerID: session.UserID,
		Date:       time.Now().AddDate(0, 0, -30),
		Status:     entity.StatusCompleted,
	}
	// A stale pending booking is still the customer's to act on, so the
	// partition must ignore its date.
	stalePending := &entity.Appointment{
		ID:         uuid.New(),
		CustomerID: session.UserID,
		Date:       time.Now().AddDate(0, 0, -9),
		Status:     entity.StatusPending,
	}
	staleConfirmed := &entity.Appointment{
		ID:         uuid.New(),
		CustomerID: session.UserID,
		Date:       time.Now().AddDate(0, 0, -2),
		Status:     entity.StatusConfirmed,
	}

	mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	fx.repoFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
	mockAppointmentRepo.EXPECT().
		FindAppointmentsByCustomer(ctx, session.UserID).
		Return([]*entity.Appointment{futurePending, futureCancelled, pastCompleted, stalePending, staleConfirmed}, nil)

	out, err := fx.service.ListMyAppointments(ctx, session)

	require.NoError(t, err)

	// Non-terminal statuses are upcoming regardless of date.
	require.Len(t, out.Upcoming, 3)
	upcomingIDs := []uuid.UUID{out.Upcoming[0].ID, out.Upcoming[1].ID, out.Upcoming[2].ID}
	assert.Contains(t, upcomingIDs, futurePending.ID)
	assert.Contains(t, upcomingIDs, stalePending.ID)
	assert.Contains(t, upcomingIDs, staleConfirmed.ID)

	// Terminal appointments count as history even when dated in the future.
	require.Len(t, out.Past, 2)
	pastIDs := []uuid.UUID{out.Past[0].ID, out.Past[1].ID}
	assert.Contains(t, pastIDs, futureCancelled.ID)
	assert.Contains(t, pastIDs, pastCompleted.ID)
}

func TestBookingService_GetAppointment_OtherCustomer(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	session := customerSession()
	appointmentID := uuid.New()

	mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	fx.repoFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
	mockAppointmentRepo.EXPECT().
		FindAppointmentByID(ctx, appointmentID).
		Return(&entity.Appointment{ID: appointmentID, CustomerID: uuid.New()}, nil)

	appointment, err := fx.service.GetAppointment(ctx, session, appointmentID)

	require.Error(t, err)
	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrAppointmentNotFound)
}

func TestBookingService_ListTimeSlots_FutureDate(t *testing.T) {
	fx := createTestBookingService(t)

	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	date := now.AddDate(0, 0, 3)

	slots, err := fx.service.ListTimeSlots(context.Background(), date, now)

	require.NoError(t, err)
	assert.Equal(t, entity.TimeSlots, slots)
	assert.Equal(t, "09:00", slots[0])
}

func TestBookingService_ListTimeSlots_TodayHidesElapsedSlots(t *testing.T) {
	fx := createTestBookingService(t)

	// Mid-afternoon: the morning block and the lunch-adjacent slots up to
	// 14:00 have already passed.
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	slots, err := fx.service.ListTimeSlots(context.Background(), now, now)

	require.NoError(t, err)
	assert.Equal(t, []string{"14:30", "15:00", "15:30", "16:00", "16:30"}, slots)
}

func TestBookingService_ListTimeSlots_TodayAfterClosing(t *testing.T) {
	fx := createTestBookingService(t)

	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

	slots, err := fx.service.ListTimeSlots(context.Background(), now, now)

	require.NoError(t, err)
	assert.Empty(t, slots)
}
