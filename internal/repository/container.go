package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User      UserRepo
	Ticket    TicketRepo
	Portfolio PortfolioRepo
	Contact   ContactRepo
	Audit     AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:      NewUserRepo(db),
		Ticket:    NewTicketRepo(db),
		Portfolio: NewPortfolioRepo(db),
		Contact:   NewContactRepo(db),
		Audit:     NewAuditRepo(db),
		db:        db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:      r.User.WithTx(tx),
		Ticket:    r.Ticket.WithTx(tx),
		Portfolio: r.Portfolio.WithTx(tx),
		Contact:   r.Contact.WithTx(tx),
		Audit:     r.Audit.WithTx(tx),
		db:        tx,
	}
}
