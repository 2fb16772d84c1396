package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cortylix/site-go/internal/application"
	"github.com/cortylix/site-go/internal/domain/contact"
	"github.com/cortylix/site-go/pkg/response"
	"github.com/cortylix/site-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	svc *application.ContactService
}

func NewContactHandler(svc *application.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// SubmitMessage godoc
// @Summary Submit a contact-form message
// @Tags contact
// @Accept json
// @Produce json
// @Param input body contact.CreateMessageInput true "Message fields"
// @Success 201 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /contact [post]
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var input contact.CreateMessageInput
	if err := c.ShouldBind(&input); err != nil {
		labels := map[string]string{
			"Name":    "name",
			"Email":   "email",
			"Subject": "subject",
			"Body":    "message",
		}
		if msg, ok := bindingErrorMessage(err, labels); ok {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msg})
			return
		}
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if _, err := h.svc.SubmitMessage(input); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to send message, please try again"})
		return
	}

	c.JSON(http.StatusCreated, response.MessageResponse{Message: "Message received, we'll get back to you shortly"})
}

// ListMessages godoc
// @Summary List contact messages (admin)
// @Tags contact
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /contact [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.svc.ListMessages(userID, limit, offset)
	if err != nil {
		if errors.Is(err, application.ErrAdminOnly) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to load messages, please try again"})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: messages})
}
