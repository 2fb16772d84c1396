package application

import (
	"github.com/cortylix/site-go/internal/repository"
)

type Services struct {
	User      *UserService
	Ticket    *TicketService
	Portfolio *PortfolioService
	Contact   *ContactService
	Audit     *AuditService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		User:      NewUserService(repos),
		Ticket:    NewTicketService(repos),
		Portfolio: NewPortfolioService(repos),
		Contact:   NewContactService(repos),
		Audit:     NewAuditService(repos),
	}
}
