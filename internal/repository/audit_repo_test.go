package repository_test

import (
	"testing"
	"time"

	"github.com/cortylix/site-go/internal/domain/audit"
	"github.com/cortylix/site-go/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuditRepo(t *testing.T) (repository.AuditRepo, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&audit.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return repository.NewAuditRepo(db), db
}

func TestDeleteOldAuditLogs(t *testing.T) {
	repo, db := setupAuditRepo(t)

	old := audit.AuditLog{Action: "update_status", ResourceType: "ticket", CreatedAt: time.Now().AddDate(0, 0, -40)}
	recent := audit.AuditLog{Action: "update_status", ResourceType: "ticket", CreatedAt: time.Now().AddDate(0, 0, -5)}
	if err := db.Create(&old).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&recent).Error; err != nil {
		t.Fatal(err)
	}

	if err := repo.DeleteOldAuditLogs(30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logs, err := repo.GetAuditLogs(repository.AuditQueryParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected only the recent log to survive, got %d", len(logs))
	}
	if logs[0].ID != recent.ID {
		t.Errorf("wrong log survived retention: %d", logs[0].ID)
	}
}

func TestGetAuditLogs_Filters(t *testing.T) {
	repo, db := setupAuditRepo(t)

	entries := []audit.AuditLog{
		{UserID: 1, Action: "update_status", ResourceType: "ticket", ResourceID: "1"},
		{UserID: 1, Action: "create", ResourceType: "portfolio_project", ResourceID: "2"},
		{UserID: 2, Action: "update_status", ResourceType: "ticket", ResourceID: "3"},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	action := "update_status"
	logs, err := repo.GetAuditLogs(repository.AuditQueryParams{Action: &action})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs for action filter, got %d", len(logs))
	}

	uid := uint(1)
	rt := "ticket"
	logs, err = repo.GetAuditLogs(repository.AuditQueryParams{UserID: &uid, ResourceType: &rt})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log for combined filter, got %d", len(logs))
	}
}
