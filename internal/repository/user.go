package repository

import (
	"errors"

	"github.com/cortylix/site-go/internal/domain/user"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned when an insert violates the unique index
// on profiles.email, so callers can distinguish "already registered"
// from a generic failure.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepo interface {
	GetUserByEmail(email string) (user.User, error)
	GetUserByID(id uint) (user.User, error)
	GetUsersByIDs(ids []uint) ([]user.User, error)
	SaveUser(u *user.User) error
	IsAdmin(id uint) (bool, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUsersByIDs(ids []uint) ([]user.User, error) {
	var users []user.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("u_id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	if err := r.db.Save(u).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrDuplicateEmail
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *DBUserRepo) IsAdmin(id uint) (bool, error) {
	var u user.User
	if err := r.db.Select("role").First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.IsAdmin(), nil
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
