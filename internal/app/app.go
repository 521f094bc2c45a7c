package app

import (
	"errors"
	"fmt"

	"matchmaker_backend/internal/config"
	"matchmaker_backend/internal/email"
	"matchmaker_backend/internal/handlers"
	"matchmaker_backend/internal/logger"
	"matchmaker_backend/internal/middleware"
	"matchmaker_backend/internal/models"
	"matchmaker_backend/internal/repositories"
	"matchmaker_backend/internal/routes"
	"matchmaker_backend/internal/services"
	"matchmaker_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, relying on environment")
	}

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// AutoMigrate creates or updates every table, including the sequence
// table backing biodata id assignment.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Biodata{},
		&models.BiodataSequence{},
		&models.PremiumRequest{},
		&models.Review{},
	)
}

// SetupRouter wires repositories, services and handlers onto a gin
// engine. Tests call it with an sqlite-backed *gorm.DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	routeMw := &handlers.RouteMiddleware{
		Auth:  middleware.AuthMiddleware(),
		Admin: middleware.AdminMiddleware(repositories.NewUserRepository(gormDB)),
	}
	routes.RegisterRoutes(ginRouter, appHandlers, routeMw)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("SMTP is not configured. Approval emails are disabled.")
		emailService = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	biodataRepo := repositories.NewBiodataRepository(gormDB)
	premiumRequestRepo := repositories.NewPremiumRequestRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)

	authService := services.NewAuthService()
	userService := services.NewUserService(userRepo)
	biodataService := services.NewBiodataService(biodataRepo)
	premiumService := services.NewPremiumService(premiumRequestRepo, biodataRepo, emailService)
	reviewService := services.NewReviewService(reviewRepo)

	return &services.ServiceContainer{
		AuthService:    authService,
		UserService:    userService,
		BiodataService: biodataService,
		PremiumService: premiumService,
		ReviewService:  reviewService,
		EmailService:   emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:    handlers.NewUserHandler(baseHandler, services.UserService),
		BiodataHandler: handlers.NewBiodataHandler(baseHandler, services.BiodataService),
		PremiumHandler: handlers.NewPremiumHandler(baseHandler, services.PremiumService),
		ReviewHandler:  handlers.NewReviewHandler(baseHandler, services.ReviewService),
		SystemHandler:  handlers.NewSystemHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin promotes (or creates) the bootstrap admin so the
// role-granting endpoints are reachable from a fresh database.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	if adminEmail == "" {
		logger.Warn("FIRST_ADMIN_EMAIL is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		if adminUser.Role == models.UserRoleAdmin {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if err := db.Model(&adminUser).Update("role", models.UserRoleAdmin).Error; err != nil {
			return fmt.Errorf("failed to promote first admin: %w", err)
		}
		logger.Info("Promoted existing user to admin", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	newAdmin := &models.User{
		Email: adminEmail,
		Role:  models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
