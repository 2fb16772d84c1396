package repository

import (
	"github.com/cortylix/site-go/internal/domain/ticket"
	"gorm.io/gorm"
)

type TicketRepo interface {
	CreateTicket(t *ticket.Ticket) error
	FindByID(id uint) (ticket.Ticket, error)
	FindByTicketNumber(number string) (ticket.Ticket, error)
	FindByUserID(userID uint) ([]ticket.Ticket, error)
	FindAll(status *ticket.Status) ([]ticket.Ticket, error)
	SaveTicket(t *ticket.Ticket) error
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	return r.db.Create(t).Error
}

func (r *DBTicketRepo) FindByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Preload("User").First(&t, id).Error
	return t, err
}

func (r *DBTicketRepo) FindByTicketNumber(number string) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Preload("User").Where("ticket_number = ?", number).First(&t).Error
	return t, err
}

// FindByUserID returns only the caller's own tickets. Owner scoping lives
// here, not in the handler, so no route wiring mistake can leak another
// user's rows.
func (r *DBTicketRepo) FindByUserID(userID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) FindAll(status *ticket.Status) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	query := r.db.Preload("User").Order("created_at desc")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}
	err := query.Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) SaveTicket(t *ticket.Ticket) error {
	return r.db.Save(t).Error
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}
