package application

import (
	"github.com/cortylix/site-go/internal/domain/contact"
	"github.com/cortylix/site-go/internal/repository"
)

type ContactService struct {
	Repos *repository.Repos
}

func NewContactService(repos *repository.Repos) *ContactService {
	return &ContactService{
		Repos: repos,
	}
}

func (s *ContactService) SubmitMessage(input contact.CreateMessageInput) (contact.Message, error) {
	m := contact.Message{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Body,
	}
	return m, s.Repos.Contact.CreateMessage(&m)
}

func (s *ContactService) ListMessages(callerID uint, limit, offset int) ([]contact.Message, error) {
	isAdmin, err := s.Repos.User.IsAdmin(callerID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, ErrAdminOnly
	}
	return s.Repos.Contact.FindAll(limit, offset)
}
