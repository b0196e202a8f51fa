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
	mockSvc "petspa/internal/mocks/service"
	"petspa/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	qrService   *mockSvc.MockQRCodeService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(txManager, repoFactory, qrService, logger)

	return profileServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
		qrService:   qrService,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	session := customerSession()

	user := &entity.User{
		ID:    session.UserID,
		Email: "jamie@example.com",
		Profile: &entity.Profile{
			FullName:          "Jamie Owner",
			LoyaltyCardNumber: "PAW-0123456789",
		},
	}

	mockUserRepo := mockRepo.NewMockUserRepository(t)
	fx.repoFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(ctx, session.UserID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, session)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "jamie@example.com", got.Email)
	assert.Equal(t, "Jamie Owner", got.Profile.FullName)
}

func TestProfileService_UpdateProfile_PartialFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	session := customerSession()
	newPhone := "555-0199"
	input := &usecase.UpdateProfileInput{Phone: &newPhone}

	user := &entity.User{
		ID: session.UserID,
		Profile: &entity.Profile{
			FullName: "Jamie Owner",
			Phone:    "555-0100",
			Address:  "12 Elm Street",
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, session.UserID).Return(user, nil)
			mockUserRepo.EXPECT().
				UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					assert.Equal(t, "555-0199", profile.Phone)
					// Untouched fields keep their stored values.
					assert.Equal(t, "Jamie Owner", profile.FullName)
					assert.Equal(t, "12 Elm Street", profile.Address)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateProfile(ctx, session, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "555-0199", updated.Phone)
}

func TestProfileService_GetLoyaltyCard_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	session := customerSession()
	qrPNG := []byte{0x89, 0x50, 0x4e, 0x47}

	user := &entity.User{
		ID: session.UserID,
		Profile: &entity.Profile{
			LoyaltyCardNumber: "PAW-0123456789",
			LoyaltyPoints:     37,
		},
	}

	mockUserRepo := mockRepo.NewMockUserRepository(t)
	fx.repoFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(ctx, session.UserID).Return(user, nil)

	fx.qrService.EXPECT().GenerateLoyaltyCardQR("PAW-0123456789").Return(qrPNG, nil)

	card, err := fx.service.GetLoyaltyCard(ctx, session)

	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, "PAW-0123456789", card.CardNumber)
	assert.Equal(t, 37, card.Points)
	assert.Equal(t, qrPNG, card.QRCodePNG)
}

func TestProfileService_GetLoyaltyCard_NoCardIssued(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	session := customerSession()

	user := &entity.User{
		ID:      session.UserID,
		Profile: &entity.Profile{},
	}

	mockUserRepo := mockRepo.NewMockUserRepository(t)
	fx.repoFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(ctx, session.UserID).Return(user, nil)

	card, err := fx.service.GetLoyaltyCard(ctx, session)

	require.Error(t, err)
	assert.Nil(t, card)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_GetCustomerStats_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	session := customerSession()

	upcoming := []*entity.Appointment{
		{ID: uuid.New(), CustomerID: session.UserID, Date: time.Now().AddDate(0, 0, 2)},
	}
	user := &entity.User{
		ID:      session.UserID,
		Profile: &entity.Profile{LoyaltyPoints: 12},
	}

	mockPetRepo := mockRepo.NewMockPetRepository(t)
	mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHistoryRepo := mockRepo.NewMockServiceHistoryRepository(t)

	fx.repoFactory.EXPECT().PetRepo().Return(mockPetRepo)
	fx.repoFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
	fx.repoFactory.EXPECT().UserRepo().Return(mockUserRepo)
	fx.repoFactory.EXPECT().ServiceHistoryRepo().Return(mockHistoryRepo)

	mockPetRepo.EXPECT().CountPetsByOwner(mock.Anything, session.UserID).Return(int64(2), nil)
	mockAppointmentRepo.EXPECT().
		FindUpcomingByCustomer(mock.Anything, session.UserID, mock.AnythingOfType("time.Time"), 5).
		Return(upcoming, nil)
	mockUserRepo.EXPECT().FindByID(mock.Anything, session.UserID).Return(user, nil)
	mockHistoryRepo.EXPECT().SumAmountPaidByCustomer(mock.Anything, session.UserID).Return(230.5, nil)

	stats, err := fx.service.GetCustomerStats(ctx, session)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(2), stats.PetCount)
	assert.Len(t, stats.UpcomingAppointments, 1)
	assert.Equal(t, 12, stats.LoyaltyPoints)
	assert.InDelta(t, 230.5, stats.TotalSpent, 0.001)
}

func TestProfileService_GetProfile_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	session := customerSession()

	mockUserRepo := mockRepo.NewMockUserRepository(t)
	fx.repoFactory.EXPECT().UserRepo().Return(mockUserRepo)
	mockUserRepo.EXPECT().FindByID(ctx, session.UserID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, session)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
