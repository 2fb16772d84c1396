package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/cortylix/site-go/internal/domain/portfolio"
	"github.com/cortylix/site-go/internal/repository"
	"github.com/cortylix/site-go/internal/storage"
	"github.com/cortylix/site-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

var ErrProjectNotFound = errors.New("portfolio project not found")

type PortfolioService struct {
	Repos *repository.Repos
}

func NewPortfolioService(repos *repository.Repos) *PortfolioService {
	return &PortfolioService{
		Repos: repos,
	}
}

func (s *PortfolioService) ListProjects() ([]portfolio.Project, error) {
	return s.Repos.Portfolio.FindAll()
}

func (s *PortfolioService) CreateProject(c *gin.Context, callerID uint, input portfolio.CreateProjectInput) (portfolio.Project, error) {
	if err := s.requireAdmin(callerID); err != nil {
		return portfolio.Project{}, err
	}

	p := portfolio.Project{
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		ProjectURL:  input.ProjectURL,
	}

	if err := s.Repos.Portfolio.CreateProject(&p); err != nil {
		return portfolio.Project{}, err
	}

	utils.LogAuditWithConsole(c, "create", "portfolio_project", fmt.Sprint(p.ID), nil, p,
		fmt.Sprintf("portfolio project %q created", p.Title), s.Repos.Audit)

	return p, nil
}

func (s *PortfolioService) UpdateProject(c *gin.Context, callerID uint, id uint, input portfolio.UpdateProjectInput) (portfolio.Project, error) {
	if err := s.requireAdmin(callerID); err != nil {
		return portfolio.Project{}, err
	}

	p, err := s.Repos.Portfolio.FindByID(id)
	if err != nil {
		return portfolio.Project{}, ErrProjectNotFound
	}

	before := p
	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.ImageURL != nil {
		replacedImage := before.ImageURL
		p.ImageURL = input.ImageURL
		if replacedImage != nil && *replacedImage != *input.ImageURL {
			removeStoredImage(c, replacedImage)
		}
	}
	if input.ProjectURL != nil {
		p.ProjectURL = input.ProjectURL
	}

	if err := s.Repos.Portfolio.SaveProject(&p); err != nil {
		return portfolio.Project{}, err
	}

	utils.LogAuditWithConsole(c, "update", "portfolio_project", fmt.Sprint(p.ID), before, p,
		fmt.Sprintf("portfolio project %q updated", p.Title), s.Repos.Audit)

	return p, nil
}

func (s *PortfolioService) DeleteProject(c *gin.Context, callerID uint, id uint) error {
	if err := s.requireAdmin(callerID); err != nil {
		return err
	}

	p, err := s.Repos.Portfolio.FindByID(id)
	if err != nil {
		return ErrProjectNotFound
	}

	if err := s.Repos.Portfolio.DeleteProject(id); err != nil {
		return err
	}

	removeStoredImage(c, p.ImageURL)

	utils.LogAuditWithConsole(c, "delete", "portfolio_project", fmt.Sprint(id), p, nil,
		fmt.Sprintf("portfolio project %q deleted", p.Title), s.Repos.Audit)

	return nil
}

// removeStoredImage drops the object backing imageURL from the bucket. The
// database change has already committed, so failures are logged rather than
// returned.
func removeStoredImage(c *gin.Context, imageURL *string) {
	if imageURL == nil {
		return
	}
	objectName, ok := storage.ObjectNameFromURL(*imageURL)
	if !ok {
		return
	}
	if err := storage.DeleteObject(c, objectName); err != nil {
		log.Printf("Failed to remove stored image %s: %v", objectName, err)
	}
}

// UploadImage validates and stores a portfolio image. Type and size are
// checked in storage.ValidateImage before the object store is contacted.
func (s *PortfolioService) UploadImage(ctx context.Context, callerID uint, filename, contentType string, size int64, reader io.Reader) (string, error) {
	if err := s.requireAdmin(callerID); err != nil {
		return "", err
	}
	return storage.UploadImage(ctx, filename, contentType, size, reader)
}

func (s *PortfolioService) requireAdmin(callerID uint) error {
	isAdmin, err := s.Repos.User.IsAdmin(callerID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrAdminOnly
	}
	return nil
}
