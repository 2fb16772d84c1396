package main

import (
	"log"

	"github.com/cortylix/site-go/internal/api/middleware"
	"github.com/cortylix/site-go/internal/api/routes"
	"github.com/cortylix/site-go/internal/application"
	"github.com/cortylix/site-go/internal/config"
	"github.com/cortylix/site-go/internal/config/db"
	"github.com/cortylix/site-go/internal/cron"
	"github.com/cortylix/site-go/internal/domain/audit"
	"github.com/cortylix/site-go/internal/domain/contact"
	"github.com/cortylix/site-go/internal/domain/portfolio"
	"github.com/cortylix/site-go/internal/domain/ticket"
	"github.com/cortylix/site-go/internal/domain/user"
	"github.com/cortylix/site-go/internal/repository"
	"github.com/cortylix/site-go/internal/storage"
	"github.com/gin-gonic/gin"
)

// @title Cortylix Site API
// @version 1.0
// @description Marketing site and support ticket backend for Cortylix.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&ticket.Ticket{},
		&portfolio.Project{},
		&contact.Message{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize object storage for portfolio images
	storage.InitMinio()

	// Background audit log retention
	services := application.New(repository.NewRepositories(db.DB))
	cron.StartAuditCleanupTask(services.Audit, config.AuditRetentionDays)

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
