package handlers

import (
	"github.com/cortylix/site-go/internal/application"
)

type Handlers struct {
	Auth      *AuthHandler
	Ticket    *TicketHandler
	Portfolio *PortfolioHandler
	Contact   *ContactHandler
	Content   *ContentHandler
	Audit     *AuditHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(svc.User),
		Ticket:    NewTicketHandler(svc.Ticket),
		Portfolio: NewPortfolioHandler(svc.Portfolio),
		Contact:   NewContactHandler(svc.Contact),
		Content:   NewContentHandler(),
		Audit:     NewAuditHandler(svc.Audit),
	}
}
