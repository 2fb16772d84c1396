package testutils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cortylix/site-go/internal/domain/audit"
	"github.com/cortylix/site-go/internal/domain/contact"
	"github.com/cortylix/site-go/internal/domain/portfolio"
	"github.com/cortylix/site-go/internal/domain/ticket"
	"github.com/cortylix/site-go/internal/domain/user"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgresForIntegration returns a migrated postgres connection for
// integration tests, either from TEST_DB_DSN or a throwaway container.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	// Check if an external DB DSN is provided
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Fatal(err)
		}
		migrate(db)
		return db, func() {
			sqlDB, _ := db.DB()
			_ = sqlDB.Close()
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "cortylix",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/cortylix?sslmode=disable", host, port.Port())

	// retry db connect
	var db *gorm.DB
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}
	migrate(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
		_ = pg.Terminate(ctx)
	}

	return db, cleanup
}

func migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&user.User{},
		&ticket.Ticket{},
		&portfolio.Project{},
		&contact.Message{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatal(err)
	}
}
