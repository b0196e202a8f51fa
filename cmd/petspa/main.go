package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"petspa/config"
	"petspa/internal/delivery"
	"petspa/internal/delivery/http"
	"petspa/internal/delivery/http/middleware"
	"petspa/internal/delivery/http/router/handler"
	"petspa/internal/delivery/worker"
	"petspa/internal/domain/repository"
	"petspa/internal/domain/service"
	"petspa/internal/infra/auth"
	"petspa/internal/infra/cache"
	logs "petspa/internal/infra/log"
	"petspa/internal/infra/persistence/postgres"
	"petspa/internal/infra/qrcode"
	"petspa/internal/usecase"
	"petspa/internal/usecase/impl"

	"go.uber.org/fx"
)

// defaultCatalogCacheTTL applies when the cache is enabled without a TTL.
const defaultCatalogCacheTTL = 5 * time.Minute

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewRepositoryFactory,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newBcryptHasher,
			auth.NewJWTService,
			newCacheProvider,
			newQRCodeService,
		),
	)
}

// newBcryptHasher applies the configured cost, falling back to the library default.
func newBcryptHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher(0)
	}

	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

// newCacheProvider builds the catalog cache. Redis is optional; a nil
// provider disables caching and every read goes to the database.
func newCacheProvider(cfg *config.Config, logger *slog.Logger) (service.CacheProvider, error) {
	if cfg.Redis == nil {
		logger.Info("Catalog cache disabled, serving from database")

		return nil, nil
	}

	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	return cache.NewRedisCache(client), nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newCatalogService applies the configured cache TTL to the catalog use case.
func newCatalogService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	repoFactory repository.RepositoryFactory,
	cacheProvider service.CacheProvider,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	cacheTTL := defaultCatalogCacheTTL
	if cfg.Redis != nil && cfg.Redis.CacheTTL > 0 {
		cacheTTL = cfg.Redis.CacheTTL
	}

	return impl.NewCatalogService(txManager, repoFactory, cacheProvider, cacheTTL, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewPetService,
			newCatalogService,
			impl.NewBookingService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewPetHandler,
			handler.NewBookingHandler,
			handler.NewCatalogHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewReminderWorker,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
