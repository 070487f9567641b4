package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/edustore/dashboard/docs"
	"github.com/edustore/dashboard/internal/apiclient"
	authMiddleware "github.com/edustore/dashboard/internal/auth/middleware"
	"github.com/edustore/dashboard/internal/auth/service"
	"github.com/edustore/dashboard/internal/config"
	"github.com/edustore/dashboard/internal/handlers"
	"github.com/edustore/dashboard/internal/logger"
	"github.com/edustore/dashboard/internal/middleware"
	"github.com/edustore/dashboard/internal/models"
	"github.com/edustore/dashboard/internal/repositories"
	"github.com/edustore/dashboard/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title EduStore Dashboard API
// @version 1.0
// @description Page view models of the EduStore admin, manager, content creator, salesman and customer screens

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. The access_token cookie is accepted as well.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting EduStore Dashboard")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Platform API client
	platform := apiclient.NewClient(cfg.Platform.BaseURL, cfg.Platform.Timeout, logger.Logger)

	// Initialize repositories
	promotionRepo := repositories.NewPromotionRepository(db, logger.Logger)

	// Initialize services
	coursePageService := services.NewCoursePageService(platform, logger.Logger)
	lessonService := services.NewLessonService(platform, cfg.Upload.MaxVideoBytes, logger.Logger)
	orderPageService := services.NewOrderPageService(platform, logger.Logger)
	blogService := services.NewBlogService(platform, logger.Logger)
	promotionService := services.NewPromotionService(promotionRepo, logger.Logger)
	authService := services.NewAuthService(platform, logger.Logger)

	// Initialize handlers
	courseHandler := handlers.NewCourseHandler(coursePageService, logger.Logger)
	lessonHandler := handlers.NewLessonHandler(lessonService, cfg.Upload.MaxVideoBytes, logger.Logger)
	orderHandler := handlers.NewOrderHandler(orderPageService, logger.Logger)
	blogHandler := handlers.NewBlogHandler(blogService, logger.Logger)
	promotionHandler := handlers.NewPromotionHandler(promotionService, logger.Logger)
	authHandler := handlers.NewAuthHandler(authService, cfg.Server.SecureCookie, logger.Logger)

	// Initialize auth middleware
	tokenValidator := service.NewTokenValidator(cfg.JWT.Secret)
	authenticated := authMiddleware.AuthMiddleware(tokenValidator)
	adminOnly := authMiddleware.RoleMiddleware(tokenValidator, models.RoleAdmin)
	managerOrAdmin := authMiddleware.RoleMiddleware(tokenValidator, models.RoleManager, models.RoleAdmin)
	contentCreatorOnly := authMiddleware.RoleMiddleware(tokenValidator, models.RoleContentCreator)
	salesmanOnly := authMiddleware.RoleMiddleware(tokenValidator, models.RoleSalesman)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger.Logger))
	r.Use(middleware.Recovery(logger.Logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimit(cfg.Upload.MaxRequestBytes))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r)
		blogHandler.RegisterRoutes(r, authenticated)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			orderHandler.RegisterRoutes(r)
		})
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			courseHandler.RegisterAdminRoutes(r)
		})
		r.Group(func(r chi.Router) {
			r.Use(managerOrAdmin)
			courseHandler.RegisterManagerRoutes(r)
		})
		r.Group(func(r chi.Router) {
			r.Use(contentCreatorOnly)
			lessonHandler.RegisterRoutes(r)
		})
		r.Group(func(r chi.Router) {
			r.Use(salesmanOnly)
			promotionHandler.RegisterRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "dashboard_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		if _, err := os.Stat("../../migrations"); err == nil {
			migrationPath = "file://../../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
