package handlers

import (
	"errors"
	"net/http"

	"github.com/cortylix/site-go/internal/application"
	"github.com/cortylix/site-go/internal/domain/ticket"
	"github.com/cortylix/site-go/pkg/response"
	"github.com/cortylix/site-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// CreateTicket godoc
// @Summary Submit a support ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param input body ticket.CreateTicketInput true "Ticket fields"
// @Success 201 {object} response.TicketCreatedResponse "Server-assigned ticket number"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Failed to create ticket"
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var input ticket.CreateTicketInput
	if err := c.ShouldBind(&input); err != nil {
		labels := map[string]string{
			"Title":       "title",
			"Description": "description",
			"Priority":    "priority",
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

	t, err := h.svc.CreateTicket(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create ticket, please try again"})
		return
	}

	// The number in the response is the one the backend persisted; clients
	// must display this value rather than anything they computed locally.
	c.JSON(http.StatusCreated, response.TicketCreatedResponse{
		TicketNumber: t.TicketNumber,
		Status:       t.Status,
	})
}

// GetMyTickets godoc
// @Summary List the caller's tickets
// @Tags tickets
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /tickets/my [get]
func (h *TicketHandler) GetMyTickets(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	tickets, err := h.svc.GetUserTickets(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to load tickets, please try again"})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: tickets})
}

// GetAllTickets godoc
// @Summary List all tickets (admin)
// @Tags tickets
// @Produce json
// @Param status query string false "Filter by status: pending, approved, rejected"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Router /tickets [get]
func (h *TicketHandler) GetAllTickets(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var status *ticket.Status
	if raw := c.Query("status"); raw != "" {
		st := ticket.Status(raw)
		if st != ticket.StatusPending && st != ticket.StatusApproved && st != ticket.StatusRejected {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid status filter"})
			return
		}
		status = &st
	}

	tickets, err := h.svc.GetAllTickets(userID, status)
	if err != nil {
		if errors.Is(err, application.ErrAdminOnly) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to load tickets, please try again"})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: tickets})
}

// UpdateTicketStatus godoc
// @Summary Approve or reject a ticket (admin)
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.UpdateStatusInput true "Disposition"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Failure 409 {object} response.ErrorResponse "Ticket already finalized"
// @Router /tickets/{id}/status [put]
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input ticket.UpdateStatusInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "status must be approved or rejected"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	t, err := h.svc.UpdateTicketStatus(c, userID, id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAdminOnly):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrTicketFinalized):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrBadTicketStatus):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to update ticket, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: t})
}

// UpdateTicketNotes godoc
// @Summary Edit the admin notes on a ticket (admin)
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.UpdateNotesInput true "Notes"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id}/notes [put]
func (h *TicketHandler) UpdateTicketNotes(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input ticket.UpdateNotesInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "admin_notes is required"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	t, err := h.svc.UpdateTicketNotes(c, userID, id, input.AdminNotes)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAdminOnly):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to update ticket, please try again"})
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: t})
}
