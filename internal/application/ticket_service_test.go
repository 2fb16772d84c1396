package application_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/cortylix/site-go/internal/application"
	"github.com/cortylix/site-go/internal/domain/ticket"
	"github.com/cortylix/site-go/internal/repository"
	"github.com/cortylix/site-go/internal/repository/mock"
	"github.com/cortylix/site-go/pkg/types"
	"github.com/cortylix/site-go/pkg/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var ticketNumberPattern = regexp.MustCompile(`^CTX-[0-9A-V]{20}$`)

func setupTicketMocks(t *testing.T) (*application.TicketService, *mock.MockTicketRepo, *mock.MockUserRepo, *gin.Context) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockTicket := mock.NewMockTicketRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	dbConn, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	repos := repository.NewRepositories(dbConn)
	repos.Ticket = mockTicket
	repos.User = mockUser

	// audit writes go through their own tests
	origAudit := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = origAudit })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("POST", "/", nil)
	c.Request = req
	c.Set("claims", &types.Claims{UserID: 1, Email: "admin@example.com", IsAdmin: true})

	return application.NewTicketService(repos), mockTicket, mockUser, c
}

func TestCreateTicket_ForcesPendingAndServerNumber(t *testing.T) {
	svc, mockTicket, _, _ := setupTicketMocks(t)

	var saved ticket.Ticket
	mockTicket.EXPECT().CreateTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
		tk.ID = 42
		saved = *tk
		return nil
	})

	created, err := svc.CreateTicket(9, ticket.CreateTicketInput{
		Title:       "VPN down",
		Description: "Nobody in the office can reach the VPN gateway.",
		Priority:    "high",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != string(ticket.StatusPending) {
		t.Errorf("expected pending status, got %q", created.Status)
	}
	if !ticketNumberPattern.MatchString(created.TicketNumber) {
		t.Errorf("ticket number %q does not match expected format", created.TicketNumber)
	}
	if saved.UserID != 9 {
		t.Errorf("expected owner 9, got %d", saved.UserID)
	}
}

func TestGenerateTicketNumber_Distinct(t *testing.T) {
	a := application.GenerateTicketNumber()
	b := application.GenerateTicketNumber()
	if a == b {
		t.Fatalf("two generated numbers collided: %q", a)
	}
	if !ticketNumberPattern.MatchString(a) {
		t.Errorf("number %q does not match expected format", a)
	}
}

func TestGetAllTickets_NonAdmin(t *testing.T) {
	svc, _, mockUser, _ := setupTicketMocks(t)

	mockUser.EXPECT().IsAdmin(uint(9)).Return(false, nil)

	_, err := svc.GetAllTickets(9, nil)
	if !errors.Is(err, application.ErrAdminOnly) {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
}

func TestGetAllTickets_StatusFilter(t *testing.T) {
	svc, mockTicket, mockUser, _ := setupTicketMocks(t)

	status := ticket.StatusPending
	mockUser.EXPECT().IsAdmin(uint(1)).Return(true, nil)
	mockTicket.EXPECT().FindAll(&status).Return([]ticket.Ticket{{ID: 1, Status: string(status)}}, nil)

	got, err := svc.GetAllTickets(1, &status)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 ticket, got %d", len(got))
	}
}

func TestUpdateTicketStatus_Approve(t *testing.T) {
	svc, mockTicket, mockUser, c := setupTicketMocks(t)

	mockUser.EXPECT().IsAdmin(uint(1)).Return(true, nil)
	mockTicket.EXPECT().FindByID(uint(42)).Return(ticket.Ticket{
		ID:           42,
		TicketNumber: "CTX-TEST",
		Status:       string(ticket.StatusPending),
	}, nil)
	mockTicket.EXPECT().SaveTicket(gomock.Any()).Return(nil)

	notes := "Scheduled for Tuesday."
	updated, err := svc.UpdateTicketStatus(c, 1, 42, ticket.UpdateStatusInput{
		Status:     string(ticket.StatusApproved),
		AdminNotes: &notes,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != string(ticket.StatusApproved) {
		t.Errorf("expected approved, got %q", updated.Status)
	}
	if updated.AdminNotes == nil || *updated.AdminNotes != notes {
		t.Errorf("expected admin notes to be set")
	}
}

func TestUpdateTicketStatus_AlreadyFinalized(t *testing.T) {
	svc, mockTicket, mockUser, c := setupTicketMocks(t)

	mockUser.EXPECT().IsAdmin(uint(1)).Return(true, nil)
	mockTicket.EXPECT().FindByID(uint(42)).Return(ticket.Ticket{
		ID:     42,
		Status: string(ticket.StatusApproved),
	}, nil)

	_, err := svc.UpdateTicketStatus(c, 1, 42, ticket.UpdateStatusInput{
		Status: string(ticket.StatusRejected),
	})
	if !errors.Is(err, application.ErrTicketFinalized) {
		t.Fatalf("expected ErrTicketFinalized, got %v", err)
	}
}

func TestUpdateTicketStatus_NotFound(t *testing.T) {
	svc, mockTicket, mockUser, c := setupTicketMocks(t)

	mockUser.EXPECT().IsAdmin(uint(1)).Return(true, nil)
	mockTicket.EXPECT().FindByID(uint(99)).Return(ticket.Ticket{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateTicketStatus(c, 1, 99, ticket.UpdateStatusInput{
		Status: string(ticket.StatusApproved),
	})
	if !errors.Is(err, application.ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}

func TestUpdateTicketStatus_RejectsPending(t *testing.T) {
	svc, _, mockUser, c := setupTicketMocks(t)

	mockUser.EXPECT().IsAdmin(uint(1)).Return(true, nil)

	// "pending" is not a disposition; tickets can only move forward
	_, err := svc.UpdateTicketStatus(c, 1, 42, ticket.UpdateStatusInput{
		Status: string(ticket.StatusPending),
	})
	if !errors.Is(err, application.ErrBadTicketStatus) {
		t.Fatalf("expected ErrBadTicketStatus, got %v", err)
	}
}

func TestUpdateTicketStatus_NonAdmin(t *testing.T) {
	svc, _, mockUser, c := setupTicketMocks(t)

	mockUser.EXPECT().IsAdmin(uint(9)).Return(false, nil)

	_, err := svc.UpdateTicketStatus(c, 9, 42, ticket.UpdateStatusInput{
		Status: string(ticket.StatusApproved),
	})
	if !errors.Is(err, application.ErrAdminOnly) {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
}

func TestUpdateTicketNotes_OnFinalizedTicket(t *testing.T) {
	svc, mockTicket, mockUser, c := setupTicketMocks(t)

	mockUser.EXPECT().IsAdmin(uint(1)).Return(true, nil)
	mockTicket.EXPECT().FindByID(uint(42)).Return(ticket.Ticket{
		ID:     42,
		Status: string(ticket.StatusRejected),
	}, nil)
	mockTicket.EXPECT().SaveTicket(gomock.Any()).Return(nil)

	// notes stay editable after the disposition
	updated, err := svc.UpdateTicketNotes(c, 1, 42, "Followed up by phone.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.AdminNotes == nil || *updated.AdminNotes != "Followed up by phone." {
		t.Errorf("expected notes to be updated")
	}
	if updated.Status != string(ticket.StatusRejected) {
		t.Errorf("notes edit must not change status, got %q", updated.Status)
	}
}
