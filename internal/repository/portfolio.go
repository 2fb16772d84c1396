package repository

import (
	"github.com/cortylix/site-go/internal/domain/portfolio"
	"gorm.io/gorm"
)

type PortfolioRepo interface {
	CreateProject(p *portfolio.Project) error
	FindByID(id uint) (portfolio.Project, error)
	FindAll() ([]portfolio.Project, error)
	SaveProject(p *portfolio.Project) error
	DeleteProject(id uint) error
	WithTx(tx *gorm.DB) PortfolioRepo
}

type DBPortfolioRepo struct {
	db *gorm.DB
}

func NewPortfolioRepo(db *gorm.DB) *DBPortfolioRepo {
	return &DBPortfolioRepo{
		db: db,
	}
}

func (r *DBPortfolioRepo) CreateProject(p *portfolio.Project) error {
	return r.db.Create(p).Error
}

func (r *DBPortfolioRepo) FindByID(id uint) (portfolio.Project, error) {
	var p portfolio.Project
	err := r.db.First(&p, id).Error
	return p, err
}

// FindAll returns projects newest-first, matching the ordering the public
// portfolio page renders.
func (r *DBPortfolioRepo) FindAll() ([]portfolio.Project, error) {
	var projects []portfolio.Project
	err := r.db.Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (r *DBPortfolioRepo) SaveProject(p *portfolio.Project) error {
	return r.db.Save(p).Error
}

func (r *DBPortfolioRepo) DeleteProject(id uint) error {
	return r.db.Delete(&portfolio.Project{}, id).Error
}

func (r *DBPortfolioRepo) WithTx(tx *gorm.DB) PortfolioRepo {
	if tx == nil {
		return r
	}
	return &DBPortfolioRepo{
		db: tx,
	}
}
