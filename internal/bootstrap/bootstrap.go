package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/placement/internal/app/auth"
	appControllers "github.com/yigit/placement/internal/app/controllers"
	appMigrations "github.com/yigit/placement/internal/app/migrations"
	appRepos "github.com/yigit/placement/internal/app/repositories"
	appRoutes "github.com/yigit/placement/internal/app/routes"
	appServices "github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/config"
	"github.com/yigit/placement/internal/db"
	appMiddleware "github.com/yigit/placement/internal/middleware"
	pkgAuth "github.com/yigit/placement/internal/pkg/auth"
	"github.com/yigit/placement/internal/pkg/helpers"
	"github.com/yigit/placement/internal/pkg/logger"
	"github.com/yigit/placement/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                 *appRepos.Repositories
	SessionService        *pkgAuth.SessionService
	SessionRevoker        pkgAuth.SessionRevoker
	PasswordHasher        pkgAuth.PasswordHasher
	AuthzService          *appAuth.AuthorizationService
	AuthService           *appServices.AuthService
	DriveService          *appServices.DriveService
	ApplicationService    *appServices.ApplicationService
	DashboardService      *appServices.DashboardService
	AuthController        *appControllers.AuthController
	DashboardController   *appControllers.DashboardController
	DriveController       *appControllers.DriveController
	ApplicationController *appControllers.ApplicationController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	LoginLimiter          *appMiddleware.RateLimiter
	Pool                  db.Pool
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))

	lgr := *logger.Get()
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, applies migrations and seeds the admin account.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, logger.WithComponent("migrations"))
	if cfg.Database.MigrationsDir != "" {
		err = migrator.MigrateFromDirectory(ctx, cfg.Database.MigrationsDir)
	} else {
		err = migrator.Migrate(ctx, appMigrations.Embedded())
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	users := appRepos.NewUserRepository(database.Pool)
	if err := seed.CreateAdmin(ctx, users, pkgAuth.NewBcryptHasher(), cfg.Admin.Email, cfg.Admin.Password, lgr); err != nil {
		// startup continues without an admin
		lgr.Error().Err(err).Msg("Failed to create admin account, proceeding anyway...")
	}

	return database, nil
}

// SetupSessionRevoker returns a Redis-backed revoker when Redis is configured,
// otherwise an in-process one. The returned client is nil for the latter.
func SetupSessionRevoker(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (pkgAuth.SessionRevoker, *redis.Client, error) {
	if cfg.Redis.Addr == "" {
		lgr.Warn().Msg("Redis not configured, logged-out sessions are tracked in memory")
		return pkgAuth.NewMemorySessionRevoker(), nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Session revocation backed by Redis")
	return pkgAuth.NewRedisSessionRevoker(client, cfg.Redis.KeyPrefix), client, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, pool db.Pool, revoker pkgAuth.SessionRevoker, lgr zerolog.Logger) (*Dependencies, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid server timezone: %w", err)
	}

	deps := &Dependencies{
		Pool:           pool,
		Logger:         lgr,
		SessionRevoker: revoker,
		PasswordHasher: pkgAuth.NewBcryptHasher(),
	}

	deps.Repos = appRepos.NewRepositories(pool)

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:   cfg.Session.Secret,
		TTL:         helpers.ParseDuration(cfg.Session.TTL, 12*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.UserRepository, deps.Repos.DriveRepository)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.SessionService,
		deps.SessionRevoker,
		deps.PasswordHasher,
		logger.WithComponent("auth"),
	)
	deps.DriveService = appServices.NewDriveService(
		deps.AuthzService,
		deps.Repos.DriveRepository,
		location,
		logger.WithComponent("drives"),
	)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.AuthzService,
		deps.Repos.DriveRepository,
		deps.Repos.ApplicationRepository,
		logger.WithComponent("applications"),
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.AuthzService,
		deps.Repos.UserRepository,
		deps.Repos.DriveRepository,
		deps.Repos.ApplicationRepository,
		logger.WithComponent("dashboard"),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService, deps.SessionRevoker, cfg.Session.CookieName, lgr)
	deps.LoginLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst, lgr)

	deps.AuthController = appControllers.NewAuthController(
		deps.AuthService,
		deps.AuthMiddleware,
		appControllers.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Session.Secure},
		lgr,
	)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, lgr)
	deps.DriveController = appControllers.NewDriveController(deps.DriveService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(logger.WithComponent("http")),
		appMiddleware.Metrics(),
	)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DashboardController,
		deps.DriveController,
		deps.ApplicationController,
		deps.AuthMiddleware,
		deps.LoginLimiter,
		deps.Pool.Ping,
	)

	return router, nil
}
