// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"petspa/internal/domain/entity"
	domainerrors "petspa/internal/domain/errors"
	"petspa/internal/domain/repository"
	"petspa/internal/domain/service"
	"petspa/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	repoFactory repository.RepositoryFactory
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
// repoFactory is bound to the base connection and used for read-only
// operations that can safely run outside a transaction.
func NewProfileService(
	txManager repository.TransactionManager,
	repoFactory repository.RepositoryFactory,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:   txManager,
		repoFactory: repoFactory,
		qrService:   qrService,
		logger:      logger,
	}
}

// GetProfile retrieves the complete account of the session user.
func (srv *profileService) GetProfile(ctx context.Context, session *entity.Session) (*entity.User, error) {
	if err := requireCapability(session, entity.CapabilityViewOwnData); err != nil {
		return nil, err
	}
	srv.logger.Debug("Getting user profile", "userID", session.UserID)

	user, err := srv.repoFactory.UserRepo().FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile updates the contact details of the session user.
func (srv *profileService) UpdateProfile(ctx context.Context, session *entity.Session, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if err := requireCapability(session, entity.CapabilityViewOwnData); err != nil {
		return nil, err
	}
	srv.logger.Info("Updating user profile", "userID", session.UserID)

	var updated *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user.
		user, err := userRepo.FindByID(ctx, session.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("profile update failed")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if user.Profile == nil {
			return domainerrors.ErrValidationFailed.WrapMessage("account has no profile")
		}

		// 2. Apply the requested field changes.
		if input.FullName != nil {
			user.Profile.FullName = *input.FullName
		}
		if input.Phone != nil {
			user.Profile.Phone = *input.Phone
		}
		if input.Address != nil {
			user.Profile.Address = *input.Address
		}

		// 3. Save the updated profile.
		if err := userRepo.UpdateProfile(ctx, user.Profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		updated = user.Profile

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return updated, nil
}

// GetLoyaltyCard returns the session user's loyalty card and a QR image of its number.
func (srv *profileService) GetLoyaltyCard(ctx context.Context, session *entity.Session) (*usecase.LoyaltyCardOutput, error) {
	if err := requireCapability(session, entity.CapabilityViewOwnData); err != nil {
		return nil, err
	}

	user, err := srv.repoFactory.UserRepo().FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("loyalty card lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Profile == nil || user.Profile.LoyaltyCardNumber == "" {
		return nil, domainerrors.ErrNotFound.WrapMessage("no loyalty card issued")
	}

	qrPNG, err := srv.qrService.GenerateLoyaltyCardQR(user.Profile.LoyaltyCardNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate loyalty card QR code")
	}

	return &usecase.LoyaltyCardOutput{
		CardNumber: user.Profile.LoyaltyCardNumber,
		Points:     user.Profile.LoyaltyPoints,
		QRCodePNG:  qrPNG,
	}, nil
}

// GetCustomerStats gathers the customer dashboard figures.
// The four reads are independent, so they run in parallel on the base connection.
func (srv *profileService) GetCustomerStats(ctx context.Context, session *entity.Session) (*usecase.CustomerStatsOutput, error) {
	if err := requireCapability(session, entity.CapabilityViewOwnData); err != nil {
		return nil, err
	}
	srv.logger.Debug("Gathering customer stats", "userID", session.UserID)

	stats := &usecase.CustomerStatsOutput{}
	today := time.Now().Truncate(24 * time.Hour)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := srv.repoFactory.PetRepo().CountPetsByOwner(gctx, session.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to count pets")
		}
		stats.PetCount = count

		return nil
	})

	g.Go(func() error {
		upcoming, err := srv.repoFactory.AppointmentRepo().FindUpcomingByCustomer(gctx, session.UserID, today, 5)
		if err != nil {
			return errors.Wrap(err, "failed to list upcoming appointments")
		}
		stats.UpcomingAppointments = upcoming

		return nil
	})

	g.Go(func() error {
		user, err := srv.repoFactory.UserRepo().FindByID(gctx, session.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if user.Profile != nil {
			stats.LoyaltyPoints = user.Profile.LoyaltyPoints
		}

		return nil
	})

	g.Go(func() error {
		total, err := srv.repoFactory.ServiceHistoryRepo().SumAmountPaidByCustomer(gctx, session.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to sum visit history")
		}
		stats.TotalSpent = total

		return nil
	})

	if err := g.Wait(); err != nil {
		srv.logger.Error("Failed to gather customer stats", "error", err, "userID", session.UserID)

		return nil, errors.Wrap(err, "failed to gather customer stats")
	}

	return stats, nil
}
