package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"petspa/internal/domain/entity"
	domainerrors "petspa/internal/domain/errors"
	"petspa/internal/domain/repository"
	"petspa/internal/domain/service"
	mockRepo "petspa/internal/mocks/repository"
	mockSvc "petspa/internal/mocks/service"
	"petspa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	cache       *mockSvc.MockCacheProvider
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	cache := mockSvc.NewMockCacheProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalogSvc := NewCatalogService(txManager, repoFactory, cache, 5*time.Minute, logger)

	return catalogServiceFixtures{
		service:     catalogSvc,
		txManager:   txManager,
		repoFactory: repoFactory,
		cache:       cache,
	}
}

func adminSession() *entity.Session {
	return &entity.Session{
		UserID: uuid.New(),
		Roles:  entity.Roles{entity.RoleAdmin},
	}
}

func TestCatalogService_ListActiveServices_CacheHit(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	cached := []*entity.Service{
		{ID: uuid.New(), Name: "Bath & Brush", IsActive: true},
	}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	// A cache hit must never touch the database.
	fx.cache.EXPECT().Get(ctx, "catalog:services:active").Return(raw, nil)

	services, err := fx.service.ListActiveServices(ctx)

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Bath & Brush", services[0].Name)
}

func TestCatalogService_ListActiveServices_CacheMiss(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fromDB := []*entity.Service{
		{ID: uuid.New(), Name: "Full Grooming", IsActive: true},
		{ID: uuid.New(), Name: "Nail Trim", IsActive: true},
	}

	fx.cache.EXPECT().Get(ctx, "catalog:services:active").Return(nil, service.ErrCacheMiss)

	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	fx.repoFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
	mockServiceRepo.EXPECT().FindActiveServices(ctx).Return(fromDB, nil)

	fx.cache.EXPECT().
		Set(ctx, "catalog:services:active", mock.AnythingOfType("[]uint8"), 5*time.Minute).
		Return(nil)

	services, err := fx.service.ListActiveServices(ctx)

	require.NoError(t, err)
	assert.Len(t, services, 2)
}

func TestCatalogService_ListActiveServices_CacheOutage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fromDB := []*entity.Service{
		{ID: uuid.New(), Name: "Full Grooming", IsActive: true},
	}

	// An unreachable cache degrades to plain database reads.
	fx.cache.EXPECT().
		Get(ctx, "catalog:services:active").
		Return(nil, errors.New("connection refused"))

	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	fx.repoFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
	mockServiceRepo.EXPECT().FindActiveServices(ctx).Return(fromDB, nil)

	fx.cache.EXPECT().
		Set(ctx, "catalog:services:active", mock.AnythingOfType("[]uint8"), 5*time.Minute).
		Return(errors.New("connection refused"))

	services, err := fx.service.ListActiveServices(ctx)

	require.NoError(t, err)
	assert.Len(t, services, 1)
}

func TestCatalogService_CreateService_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	session := adminSession()
	input := &usecase.CreateServiceInput{
		Name:            "Full Grooming",
		Description:     "Bath, cut and style",
		Category:        entity.CategoryGrooming,
		PriceMin:        45,
		PriceMax:        80,
		DurationMinutes: 90,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)

			mockServiceRepo.EXPECT().
				CreateService(ctx, mock.AnythingOfType("*entity.Service")).
				Run(func(ctx context.Context, svc *entity.Service) {
					svc.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.cache.EXPECT().Delete(ctx, "catalog:services:active").Return(nil)

	svc, err := fx.service.CreateService(ctx, session, input)

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.True(t, svc.IsActive)
	assert.Equal(t, entity.CategoryGrooming, svc.Category)
}

func TestCatalogService_CreateService_InvertedPriceRange(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	session := adminSession()
	input := &usecase.CreateServiceInput{
		Name:            "Full Grooming",
		Category:        entity.CategoryGrooming,
		PriceMin:        90,
		PriceMax:        45,
		DurationMinutes: 60,
	}

	svc, err := fx.service.CreateService(ctx, session, input)

	require.Error(t, err)
	assert.Nil(t, svc)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_PRICE_RANGE", appErr.ErrorCode())
}

func TestCatalogService_CreateService_NonAdmin(t *testing.T) {
	fx := createTestCatalogService(t)

	svc, err := fx.service.CreateService(context.Background(), customerSession(), &usecase.CreateServiceInput{
		Name:            "Full Grooming",
		Category:        entity.CategoryGrooming,
		PriceMin:        45,
		PriceMax:        80,
		DurationMinutes: 60,
	})

	require.Error(t, err)
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_UpdateService_InvertedRangeAfterPatch(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	session := adminSession()
	serviceID := uuid.New()
	newMin := 100.0
	input := &usecase.UpdateServiceInput{PriceMin: &newMin}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)

			mockServiceRepo.EXPECT().
				FindServiceByID(ctx, serviceID).
				Return(&entity.Service{
					ID:       serviceID,
					PriceMin: 45,
					PriceMax: 80,
					IsActive: true,
				}, nil)

			return fn(mockFactory)
		})

	svc, err := fx.service.UpdateService(ctx, session, serviceID, input)

	require.Error(t, err)
	assert.Nil(t, svc)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_PRICE_RANGE", appErr.ErrorCode())
}

func TestCatalogService_DeleteService_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	session := adminSession()
	serviceID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockServiceRepo.EXPECT().DeleteService(ctx, serviceID).Return(nil)

			return fn(mockFactory)
		})

	fx.cache.EXPECT().Delete(ctx, "catalog:services:active").Return(nil)

	err := fx.service.DeleteService(ctx, session, serviceID)

	require.NoError(t, err)
}

func TestCatalogService_DeleteService_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	session := adminSession()
	serviceID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockServiceRepo.EXPECT().
				DeleteService(ctx, serviceID).
				Return(repository.ErrServiceNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteService(ctx, session, serviceID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestCatalogService_DeleteService_NonAdmin(t *testing.T) {
	fx := createTestCatalogService(t)

	err := fx.service.DeleteService(context.Background(), customerSession(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_UpdateService_RetiresFromListings(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	session := adminSession()
	serviceID := uuid.New()
	inactive := false
	input := &usecase.UpdateServiceInput{IsActive: &inactive}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)

			mockServiceRepo.EXPECT().
				FindServiceByID(ctx, serviceID).
				Return(&entity.Service{
					ID:       serviceID,
					Name:     "Full Grooming",
					PriceMin: 45,
					PriceMax: 80,
					IsActive: true,
				}, nil)

			mockServiceRepo.EXPECT().
				UpdateService(ctx, mock.AnythingOfType("*entity.Service")).
				Run(func(ctx context.Context, svc *entity.Service) {
					assert.False(t, svc.IsActive)
					assert.Equal(t, "Full Grooming", svc.Name)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.cache.EXPECT().Delete(ctx, "catalog:services:active").Return(nil)

	svc, err := fx.service.UpdateService(ctx, session, serviceID, input)

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.False(t, svc.IsActive)
}

func TestCatalogService_GetService_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	mockServiceRepo := mockRepo.NewMockServiceRepository(t)
	fx.repoFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
	mockServiceRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(nil, repository.ErrServiceNotFound)

	svc, err := fx.service.GetService(ctx, serviceID)

	require.Error(t, err)
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestCatalogService_CreateGroomer_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	session := adminSession()
	input := &usecase.CreateGroomerInput{
		Name:      "Dana Kim",
		Specialty: "Long-haired cats",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroomerRepo := mockRepo.NewMockGroomerRepository(t)

			mockFactory.EXPECT().GroomerRepo().Return(mockGroomerRepo)

			mockGroomerRepo.EXPECT().
				CreateGroomer(ctx, mock.AnythingOfType("*entity.Groomer")).
				Run(func(ctx context.Context, groomer *entity.Groomer) {
					groomer.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	groomer, err := fx.service.CreateGroomer(ctx, session, input)

	require.NoError(t, err)
	require.NotNil(t, groomer)
	// New groomers start out taking appointments.
	assert.True(t, groomer.IsAvailable)
}

func TestCatalogService_DeleteGroomer_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	session := adminSession()
	groomerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGroomerRepo := mockRepo.NewMockGroomerRepository(t)

			mockFactory.EXPECT().GroomerRepo().Return(mockGroomerRepo)

			mockGroomerRepo.EXPECT().
				FindGroomerByID(ctx, groomerID).
				Return(nil, repository.ErrGroomerNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteGroomer(ctx, session, groomerID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGroomerNotFound)
}
