package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mesconnect/backend/docs" // Import generated swagger docs
	appControllers "github.com/mesconnect/backend/internal/app/controllers"
	appMigrations "github.com/mesconnect/backend/internal/app/migrations"
	appRepos "github.com/mesconnect/backend/internal/app/repositories"
	appRoutes "github.com/mesconnect/backend/internal/app/routes"
	appServices "github.com/mesconnect/backend/internal/app/services"
	"github.com/mesconnect/backend/internal/config"
	"github.com/mesconnect/backend/internal/db"
	appMiddleware "github.com/mesconnect/backend/internal/middleware"
	pkgAuth "github.com/mesconnect/backend/internal/pkg/auth"
	"github.com/mesconnect/backend/internal/pkg/helpers"
	"github.com/mesconnect/backend/internal/pkg/logger"
	"github.com/mesconnect/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService
	Logger     zerolog.Logger

	AuthService         *appServices.AuthService
	UserService         *appServices.UserService
	FriendService       *appServices.FriendService
	MessageService      *appServices.MessageService
	GroupService        *appServices.GroupService
	ConfessionService   *appServices.ConfessionService
	EventService        *appServices.EventService
	AnnouncementService *appServices.AnnouncementService
	ContributionService *appServices.ContributionService
	JobService          *appServices.JobService
	NotificationService *appServices.NotificationService

	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	FriendController       *appControllers.FriendController
	MessageController      *appControllers.MessageController
	GroupController        *appControllers.GroupController
	ConfessionController   *appControllers.ConfessionController
	EventController        *appControllers.EventController
	AnnouncementController *appControllers.AnnouncementController
	ContributionController *appControllers.ContributionController
	JobController          *appControllers.JobController
	NotificationController *appControllers.NotificationController

	AuthMiddleware *appMiddleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), cfg, dbPool, lgr); err != nil {
		// Startup proceeds even if seeding fails; the admin can be created later.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)
	deps.FriendService = appServices.NewFriendService(deps.Repos.FriendRepository, lgr)
	deps.MessageService = appServices.NewMessageService(deps.Repos.MessageRepository, deps.Repos.FriendRepository, lgr)
	deps.GroupService = appServices.NewGroupService(deps.Repos.GroupRepository, lgr)
	deps.ConfessionService = appServices.NewConfessionService(deps.Repos.ConfessionRepository, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, lgr)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository, lgr)
	deps.ContributionService = appServices.NewContributionService(deps.Repos.ContributionRepository, deps.Repos.UserRepository, lgr)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository, deps.Repos.UserRepository, lgr)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.FriendController = appControllers.NewFriendController(deps.FriendService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService)
	deps.GroupController = appControllers.NewGroupController(deps.GroupService)
	deps.ConfessionController = appControllers.NewConfessionController(deps.ConfessionService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.ContributionController = appControllers.NewContributionController(deps.ContributionService)
	deps.JobController = appControllers.NewJobController(deps.JobService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.FriendController,
		deps.MessageController,
		deps.GroupController,
		deps.ConfessionController,
		deps.EventController,
		deps.AnnouncementController,
		deps.ContributionController,
		deps.JobController,
		deps.NotificationController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
