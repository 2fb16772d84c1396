package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cortylix/site-go/internal/domain/ticket"
	"github.com/cortylix/site-go/internal/repository"
	"github.com/cortylix/site-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

var (
	ErrAdminOnly       = errors.New("administrator role required")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrTicketFinalized = errors.New("ticket has already been approved or rejected")
	ErrBadTicketStatus = errors.New("status must be approved or rejected")
)

const ticketNumberPrefix = "CTX-"

// GenerateTicketNumber builds the human-readable identifier shown to the
// submitter. xid encodes a timestamp in its prefix, so numbers sort
// roughly by creation time while staying globally unique.
var GenerateTicketNumber = func() string {
	return ticketNumberPrefix + strings.ToUpper(xid.New().String())
}

type TicketService struct {
	Repos *repository.Repos
}

func NewTicketService(repos *repository.Repos) *TicketService {
	return &TicketService{
		Repos: repos,
	}
}

// CreateTicket inserts a ticket owned by userID. Status is always pending
// and the ticket number is always generated here; nothing the client sends
// can override either.
func (s *TicketService) CreateTicket(userID uint, input ticket.CreateTicketInput) (ticket.Ticket, error) {
	t := ticket.Ticket{
		TicketNumber: GenerateTicketNumber(),
		UserID:       userID,
		Title:        input.Title,
		Description:  input.Description,
		Priority:     input.Priority,
		Status:       string(ticket.StatusPending),
	}

	if err := s.Repos.Ticket.CreateTicket(&t); err != nil {
		return ticket.Ticket{}, err
	}
	return t, nil
}

func (s *TicketService) GetUserTickets(userID uint) ([]ticket.Ticket, error) {
	return s.Repos.Ticket.FindByUserID(userID)
}

// GetAllTickets is the admin listing. The role is checked here as well as
// in the route middleware: the service is the authority, the middleware is
// a convenience.
func (s *TicketService) GetAllTickets(callerID uint, status *ticket.Status) ([]ticket.Ticket, error) {
	isAdmin, err := s.Repos.User.IsAdmin(callerID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, ErrAdminOnly
	}
	return s.Repos.Ticket.FindAll(status)
}

// UpdateTicketStatus performs the pending->approved / pending->rejected
// transition. Terminal tickets reject any further transition.
//
// Two admins deciding the same pending ticket concurrently is not
// coordinated; the second write wins at the database. The disposition is
// terminal either way, so the race is documented rather than locked out.
func (s *TicketService) UpdateTicketStatus(c *gin.Context, callerID uint, id uint, input ticket.UpdateStatusInput) (ticket.Ticket, error) {
	isAdmin, err := s.Repos.User.IsAdmin(callerID)
	if err != nil {
		return ticket.Ticket{}, err
	}
	if !isAdmin {
		return ticket.Ticket{}, ErrAdminOnly
	}

	next := ticket.Status(input.Status)
	if next != ticket.StatusApproved && next != ticket.StatusRejected {
		return ticket.Ticket{}, ErrBadTicketStatus
	}

	t, err := s.Repos.Ticket.FindByID(id)
	if err != nil {
		return ticket.Ticket{}, ErrTicketNotFound
	}

	if ticket.Status(t.Status).IsTerminal() {
		return ticket.Ticket{}, ErrTicketFinalized
	}

	before := t
	t.Status = string(next)
	if input.AdminNotes != nil {
		t.AdminNotes = input.AdminNotes
	}

	if err := s.Repos.Ticket.SaveTicket(&t); err != nil {
		return ticket.Ticket{}, err
	}

	utils.LogAuditWithConsole(c, "update_status", "ticket", fmt.Sprint(t.ID), before, t,
		fmt.Sprintf("ticket %s %s", t.TicketNumber, t.Status), s.Repos.Audit)

	return t, nil
}

// UpdateTicketNotes edits the admin note text. Unlike status, notes stay
// editable after a ticket is finalized.
func (s *TicketService) UpdateTicketNotes(c *gin.Context, callerID uint, id uint, notes string) (ticket.Ticket, error) {
	isAdmin, err := s.Repos.User.IsAdmin(callerID)
	if err != nil {
		return ticket.Ticket{}, err
	}
	if !isAdmin {
		return ticket.Ticket{}, ErrAdminOnly
	}

	t, err := s.Repos.Ticket.FindByID(id)
	if err != nil {
		return ticket.Ticket{}, ErrTicketNotFound
	}

	before := t
	t.AdminNotes = &notes

	if err := s.Repos.Ticket.SaveTicket(&t); err != nil {
		return ticket.Ticket{}, err
	}

	utils.LogAuditWithConsole(c, "update_notes", "ticket", fmt.Sprint(t.ID), before, t,
		fmt.Sprintf("ticket %s notes updated", t.TicketNumber), s.Repos.Audit)

	return t, nil
}
