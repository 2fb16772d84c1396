package application_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cortylix/site-go/internal/application"
	"github.com/cortylix/site-go/internal/domain/audit"
	"github.com/cortylix/site-go/internal/domain/user"
	"github.com/cortylix/site-go/internal/repository"
	"github.com/cortylix/site-go/internal/repository/mock"
)

func setupAuditMocks(t *testing.T) (*application.AuditService, *mock.MockAuditRepo, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAudit := mock.NewMockAuditRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	dbConn, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	repos := repository.NewRepositories(dbConn)
	repos.Audit = mockAudit
	repos.User = mockUser

	return application.NewAuditService(repos), mockAudit, mockUser
}

func TestQueryAuditLogs_ResolvesUserEmails(t *testing.T) {
	svc, mockAudit, mockUser := setupAuditMocks(t)

	mockAudit.EXPECT().GetAuditLogs(gomock.Any()).Return([]audit.AuditLog{
		{ID: 1, UserID: 7, Action: "update_status", ResourceType: "ticket"},
		{ID: 2, UserID: 7, Action: "update_notes", ResourceType: "ticket"},
		{ID: 3, UserID: 8, Action: "delete", ResourceType: "portfolio_project"},
	}, nil)
	mockUser.EXPECT().GetUsersByIDs([]uint{7, 8}).Return([]user.User{
		{UID: 7, Email: "admin@cortylix.com"},
		{UID: 8, Email: "ops@cortylix.com"},
	}, nil)

	entries, err := svc.QueryAuditLogs(repository.AuditQueryParams{Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].UserEmail != "admin@cortylix.com" || entries[1].UserEmail != "admin@cortylix.com" {
		t.Errorf("expected admin@cortylix.com on entries 0 and 1, got %q and %q", entries[0].UserEmail, entries[1].UserEmail)
	}
	if entries[2].UserEmail != "ops@cortylix.com" {
		t.Errorf("expected ops@cortylix.com on entry 2, got %q", entries[2].UserEmail)
	}
}

func TestQueryAuditLogs_DeletedUserLeavesEmailEmpty(t *testing.T) {
	svc, mockAudit, mockUser := setupAuditMocks(t)

	mockAudit.EXPECT().GetAuditLogs(gomock.Any()).Return([]audit.AuditLog{
		{ID: 1, UserID: 42, Action: "create", ResourceType: "portfolio_project"},
	}, nil)
	mockUser.EXPECT().GetUsersByIDs([]uint{42}).Return([]user.User{}, nil)

	entries, err := svc.QueryAuditLogs(repository.AuditQueryParams{Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].UserEmail != "" {
		t.Errorf("expected one entry with empty email, got %+v", entries)
	}
}

func TestQueryAuditLogs_NoLogsSkipsUserLookup(t *testing.T) {
	svc, mockAudit, _ := setupAuditMocks(t)

	mockAudit.EXPECT().GetAuditLogs(gomock.Any()).Return([]audit.AuditLog{}, nil)

	entries, err := svc.QueryAuditLogs(repository.AuditQueryParams{Limit: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
