package application

import (
	"github.com/cortylix/site-go/internal/domain/audit"
	"github.com/cortylix/site-go/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

// QueryAuditLogs resolves each log's acting user to an email in a single
// batched lookup.
func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.LogEntry, error) {
	logs, err := s.Repos.Audit.GetAuditLogs(params)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	ids := make([]uint, 0, len(logs))
	for _, l := range logs {
		if l.UserID != 0 && !seen[l.UserID] {
			seen[l.UserID] = true
			ids = append(ids, l.UserID)
		}
	}

	emails := make(map[uint]string, len(ids))
	if len(ids) > 0 {
		users, err := s.Repos.User.GetUsersByIDs(ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			emails[u.UID] = u.Email
		}
	}

	entries := make([]audit.LogEntry, len(logs))
	for i, l := range logs {
		entries[i] = audit.LogEntry{AuditLog: l, UserEmail: emails[l.UserID]}
	}
	return entries, nil
}

func (s *AuditService) CleanupOldLogs(days int) error {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}
