package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

type petServiceFixtures struct {
	service     usecase.PetUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
}

func createTestPetService(t *testing.T) petServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPetService(txManager, repoFactory, logger)

	return petServiceFixtures{
		service:     service,
		txManager:   txManager,
		repoFactory: repoFactory,
	}
}

func customerSession() *entity.Session {
	return &entity.Session{
		UserID: uuid.New(),
		Roles:  entity.Roles{entity.RoleCustomer},
	}
}

func TestPetService_CreatePet_Success(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	session := customerSession()
	age := 3
	input := &usecase.CreatePetInput{
		Name:    "Mochi",
		Species: entity.SpeciesCat,
		Breed:   "British Shorthair",
		Age:     &age,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPetRepo := mockRepo.NewMockPetRepository(t)

			mockFactory.EXPECT().PetRepo().Return(mockPetRepo)

			mockPetRepo.EXPECT().
				CreatePet(ctx, mock.AnythingOfType("*entity.Pet")).
				Run(func(ctx context.Context, pet *entity.Pet) {
					pet.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	pet, err := fx.service.CreatePet(ctx, session, input)

	require.NoError(t, err)
	require.NotNil(t, pet)
	assert.Equal(t, session.UserID, pet.OwnerID)
	assert.Equal(t, "Mochi", pet.Name)
	assert.Equal(t, entity.SpeciesCat, pet.Species)
	assert.NotEqual(t, uuid.Nil, pet.ID)
}

func TestPetService_CreatePet_UnknownSpecies(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	session := customerSession()
	input := &usecase.CreatePetInput{
		Name:    "Rex",
		Species: entity.Species("dinosaur"),
	}

	pet, err := fx.service.CreatePet(ctx, session, input)

	require.Error(t, err)
	assert.Nil(t, pet)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestPetService_CreatePet_NoSession(t *testing.T) {
	fx := createTestPetService(t)

	pet, err := fx.service.CreatePet(context.Background(), nil, &usecase.CreatePetInput{
		Name:    "Mochi",
		Species: entity.SpeciesCat,
	})

	require.Error(t, err)
	assert.Nil(t, pet)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPetService_GetPet_OtherOwner(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	session := customerSession()
	petID := uuid.New()

	mockPetRepo := mockRepo.NewMockPetRepository(t)
	fx.repoFactory.EXPECT().PetRepo().Return(mockPetRepo)

	mockPetRepo.EXPECT().
		FindPetByID(ctx, petID).
		Return(&entity.Pet{ID: petID, OwnerID: uuid.New(), Name: "Buddy"}, nil)

	pet, err := fx.service.GetPet(ctx, session, petID)

	require.Error(t, err)
	assert.Nil(t, pet)
	// Another customer's pet is indistinguishable from a missing one.
	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}

func TestPetService_ListPets_Success(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	session := customerSession()
	pets := []*entity.Pet{
		{ID: uuid.New(), OwnerID: session.UserID, Name: "Mochi"},
		{ID: uuid.New(), OwnerID: session.UserID, Name: "Buddy"},
	}

	mockPetRepo := mockRepo.NewMockPetRepository(t)
	fx.repoFactory.EXPECT().PetRepo().Return(mockPetRepo)
	mockPetRepo.EXPECT().FindPetsByOwner(ctx, session.UserID).Return(pets, nil)

	result, err := fx.service.ListPets(ctx, session)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestPetService_UpdatePet_PartialFields(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	session := customerSession()
	petID := uuid.New()
	age := 5
	newName := "Mochi Jr."
	input := &usecase.UpdatePetInput{
		Name: &newName,
		Age:  &age,
	}

	existing := &entity.Pet{
		ID:      petID,
		OwnerID: session.UserID,
		Name:    "Mochi",
		Species: entity.SpeciesCat,
		Breed:   "British Shorthair",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPetRepo := mockRepo.NewMockPetRepository(t)

			mockFactory.EXPECT().PetRepo().Return(mockPetRepo)

			mockPetRepo.EXPECT().FindPetByID(ctx, petID).Return(existing, nil)
			mockPetRepo.EXPECT().
				UpdatePet(ctx, mock.AnythingOfType("*entity.Pet")).
				Run(func(ctx context.Context, pet *entity.Pet) {
					assert.Equal(t, "Mochi Jr.", pet.Name)
					require.NotNil(t, pet.Age)
					assert.Equal(t, 5, *pet.Age)
					// Untouched fields keep their stored values.
					assert.Equal(t, entity.SpeciesCat, pet.Species)
					assert.Equal(t, "British Shorthair", pet.Breed)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdatePet(ctx, session, petID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Mochi Jr.", updated.Name)
}

func TestPetService_DeletePet_Success(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	session := customerSession()
	petID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPetRepo := mockRepo.NewMockPetRepository(t)

			mockFactory.EXPECT().PetRepo().Return(mockPetRepo)

			mockPetRepo.EXPECT().
				FindPetByID(ctx, petID).
				Return(&entity.Pet{ID: petID, OwnerID: session.UserID}, nil)
			mockPetRepo.EXPECT().DeletePet(ctx, petID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeletePet(ctx, session, petID)

	require.NoError(t, err)
}

func TestPetService_DeletePet_NotFound(t *testing.T) {
	fx := createTestPetService(t)

	ctx := context.Background()
	session := customerSession()
	petID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPetRepo := mockRepo.NewMockPetRepository(t)

			mockFactory.EXPECT().PetRepo().Return(mockPetRepo)

			mockPetRepo.EXPECT().
				FindPetByID(ctx, petID).
				Return(nil, repository.ErrPetNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeletePet(ctx, session, petID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}
