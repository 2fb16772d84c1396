package handlers

import (
	"errors"
	"net/http"

	"github.com/cortylix/site-go/internal/application"
	"github.com/cortylix/site-go/internal/domain/portfolio"
	"github.com/cortylix/site-go/internal/storage"
	"github.com/cortylix/site-go/pkg/response"
	"github.com/cortylix/site-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	svc *application.PortfolioService
}

func NewPortfolioHandler(svc *application.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

// ListProjects godoc
// @Summary List portfolio projects, newest first
// @Tags portfolio
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /portfolio [get]
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to load projects, please try again"})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: projects})
}

// CreateProject godoc
// @Summary Create a portfolio project (admin)
// @Tags portfolio
// @Accept json
// @Produce json
// @Param input body portfolio.CreateProjectInput true "Project fields"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /portfolio [post]
func (h *PortfolioHandler) CreateProject(c *gin.Context) {
	var input portfolio.CreateProjectInput
	if err := c.ShouldBind(&input); err != nil {
		labels := map[string]string{
			"Title":       "title",
			"Category":    "category",
			"Description": "description",
			"ImageURL":    "image URL",
			"ProjectURL":  "project URL",
		}
		if msg, ok := bindingErrorMessage(err, labels); ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	p, err := h.svc.CreateProject(c, userID, input)
	if err != nil {
		if errors.Is(err, application.ErrAdminOnly) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to save project, please try again"})
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: p})
}

// UpdateProject godoc
// @Summary Update a portfolio project (admin)
// @Tags portfolio
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param input body portfolio.UpdateProjectInput true "Fields to change"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /portfolio/{id} [put]
func (h *PortfolioHandler) UpdateProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input portfolio.UpdateProjectInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	p, err := h.svc.UpdateProject(c, userID, id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAdminOnly):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to save project, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: p})
}

// DeleteProject godoc
// @Summary Delete a portfolio project (admin)
// @Tags portfolio
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /portfolio/{id} [delete]
func (h *PortfolioHandler) DeleteProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.svc.DeleteProject(c, userID, id); err != nil {
		switch {
		case errors.Is(err, application.ErrAdminOnly):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to delete project, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Project deleted"})
}

// UploadImage godoc
// @Summary Upload a portfolio image (admin)
// @Tags portfolio
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file, 5 MiB max"
// @Success 201 {object} response.UploadResponse "Public URL of the stored image"
// @Failure 400 {object} response.ErrorResponse "Not an image or too large"
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /portfolio/images [post]
func (h *PortfolioHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "image file is required"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "could not read uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.svc.UploadImage(c.Request.Context(), userID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAdminOnly):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, storage.ErrNotAnImage), errors.Is(err, storage.ErrImageTooLarge):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to upload image, please try again"})
		}
		return
	}

	c.JSON(http.StatusCreated, response.UploadResponse{URL: url})
}
