package testutils

import (
	"log"

	"github.com/cortylix/site-go/internal/api/routes"
	"github.com/cortylix/site-go/internal/domain/audit"
	"github.com/cortylix/site-go/internal/domain/contact"
	"github.com/cortylix/site-go/internal/domain/portfolio"
	"github.com/cortylix/site-go/internal/domain/ticket"
	"github.com/cortylix/site-go/internal/domain/user"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an in-memory sqlite database with the full schema
// migrated, for tests that exercise real query behavior.
func SetupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(
		&user.User{},
		&ticket.Ticket{},
		&portfolio.Project{},
		&contact.Message{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

// SetupRouter builds a full gin engine wired against an in-memory database.
func SetupRouter() (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := SetupTestDB()
	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r, db
}
