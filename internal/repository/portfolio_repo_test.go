package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/cortylix/site-go/internal/domain/portfolio"
	"github.com/cortylix/site-go/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPortfolioRepo(t *testing.T) (repository.PortfolioRepo, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&portfolio.Project{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return repository.NewPortfolioRepo(db), db
}

func TestPortfolioFindAll_NewestFirst(t *testing.T) {
	repo, db := setupPortfolioRepo(t)

	base := time.Now().Add(-time.Hour)
	titles := []string{"oldest", "middle", "newest"}
	for i, title := range titles {
		p := portfolio.Project{
			Title:       title,
			Category:    "Infrastructure",
			Description: "d",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("failed to create project: %v", err)
		}
	}

	got, err := repo.FindAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(got))
	}
	if got[0].Title != "newest" || got[2].Title != "oldest" {
		t.Errorf("expected newest-first ordering, got %q .. %q", got[0].Title, got[2].Title)
	}
}

func TestPortfolioDelete(t *testing.T) {
	repo, _ := setupPortfolioRepo(t)

	p := portfolio.Project{Title: "gone soon", Category: "Cloud", Description: "d"}
	if err := repo.CreateProject(&p); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	if err := repo.DeleteProject(p.ID); err != nil {
		t.Fatalf("failed to delete project: %v", err)
	}
	_, err := repo.FindByID(p.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found after delete, got %v", err)
	}
}
