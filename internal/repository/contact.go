package repository

import (
	"github.com/cortylix/site-go/internal/domain/contact"
	"gorm.io/gorm"
)

type ContactRepo interface {
	CreateMessage(m *contact.Message) error
	FindAll(limit, offset int) ([]contact.Message, error)
	WithTx(tx *gorm.DB) ContactRepo
}

type DBContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *DBContactRepo {
	return &DBContactRepo{
		db: db,
	}
}

func (r *DBContactRepo) CreateMessage(m *contact.Message) error {
	return r.db.Create(m).Error
}

func (r *DBContactRepo) FindAll(limit, offset int) ([]contact.Message, error) {
	var messages []contact.Message
	query := r.db.Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&messages).Error
	return messages, err
}

func (r *DBContactRepo) WithTx(tx *gorm.DB) ContactRepo {
	if tx == nil {
		return r
	}
	return &DBContactRepo{
		db: tx,
	}
}
