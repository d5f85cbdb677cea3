package bootstrap

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/admission/internal/app/controllers"
	appRepos "github.com/yigit/admission/internal/app/repositories"
	appRoutes "github.com/yigit/admission/internal/app/routes"
	appServices "github.com/yigit/admission/internal/app/services"
	"github.com/yigit/admission/internal/config"
	"github.com/yigit/admission/internal/db"
	appMiddleware "github.com/yigit/admission/internal/middleware"
	"github.com/yigit/admission/internal/pkg/logger"
	"github.com/yigit/admission/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		File: logger.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		},
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured database and creates default reference data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.Provider, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	provider, err := db.Open(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if len(cfg.Seed.ApplicationStatuses) > 0 {
		repos := appRepos.NewRepositories(provider)
		if err := seed.CreateDefaultData(ctx, repos.StatusRepository, cfg.Seed.ApplicationStatuses, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return provider, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(provider *db.Provider, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(provider)
	deps.Services = appServices.NewServices(deps.Repos)
	deps.Controllers = appControllers.NewControllers(deps.Services)

	return deps
}

// SetupRouter sets the gin mode from configuration and builds the engine.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode configured")

	return NewRouter(deps)
}

// NewRouter builds the engine with middleware and all routes.
func NewRouter(deps *Dependencies) *gin.Engine {
	appMiddleware.RegisterValidators()

	router := gin.New()
	// Deadline and cancellation of handlers follow the request context
	router.ContextWithFallback = true
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.AccessLog(),
		appMiddleware.Metrics(),
	)

	appRoutes.SetupRouter(router, deps.Controllers)

	router.GET("/metrics", appMiddleware.MetricsHandler())

	// Liveness endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
