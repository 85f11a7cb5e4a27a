package app

import (
	"fmt"

	"servibook_backend/database"
	"servibook_backend/internal/auth"
	"servibook_backend/internal/config"
	"servibook_backend/internal/email"
	"servibook_backend/internal/handlers"
	"servibook_backend/internal/logger"
	"servibook_backend/internal/middleware"
	"servibook_backend/internal/repositories"
	"servibook_backend/internal/routes"
	"servibook_backend/internal/services"
	"servibook_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	// TranslateError turns Postgres unique violations into
	// gorm.ErrDuplicatedKey, which the services map to a 409.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a Gin engine.
// Split out from Run so tests can build a router against any database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	mailer := newMailer(cfg)
	hasher := auth.NewBcryptHasher()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	workerRepo := repositories.NewWorkerRepository(gormDB)
	customerRepo := repositories.NewCustomerRepository(gormDB)
	serviceRepo := repositories.NewServiceRepository(gormDB)

	workerService := services.NewWorkerService(workerRepo, hasher, mailer)
	customerService := services.NewCustomerService(customerRepo, mailer)
	authService := services.NewAuthService(workerRepo, hasher, tokens, cfg.JWT.TTL)
	catalog := services.NewServiceCatalog(serviceRepo, workerRepo)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(base, authService),
		WorkerHandler:   handlers.NewWorkerHandler(base, workerService),
		CustomerHandler: handlers.NewCustomerHandler(base, customerService),
		ServiceHandler:  handlers.NewServiceHandler(base, catalog),
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	routes.RegisterRoutes(router, appHandlers, middleware.AuthMiddleware(tokens))
	return router
}

func newMailer(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Info("Email disabled, using noop provider")
		return email.NoopProvider{}
	}

	provider, err := email.NewSMTPProvider(email.Config{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("Invalid email config, falling back to noop provider", "error", err)
		return email.NoopProvider{}
	}
	return provider
}
