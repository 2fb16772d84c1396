package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cortylix/site-go/internal/application"
	"github.com/cortylix/site-go/internal/repository"
	"github.com/cortylix/site-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary Query audit logs (admin)
// @Tags audit
// @Produce json
// @Param user_id query uint false "Filter by acting admin"
// @Param resource_type query string false "Filter by resource type" example("ticket")
// @Param action query string false "Filter by action" example("update_status")
// @Param start_time query string false "RFC3339 lower bound"
// @Param end_time query string false "RFC3339 upper bound"
// @Param limit query int false "Max records (default 100, max 1000)"
// @Param offset query int false "Pagination offset"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Invalid query parameters"
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if uidStr := c.Query("user_id"); uidStr != "" {
		uid64, err := strconv.ParseUint(uidStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user_id"})
			return
		}
		uid := uint(uid64)
		params.UserID = &uid
	}

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	if start := c.Query("start_time"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid start_time"})
			return
		}
		params.StartTime = &t
	}

	if end := c.Query("end_time"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid end_time"})
			return
		}
		params.EndTime = &t
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit > 1000 {
		limit = 1000
	}
	params.Limit = limit
	params.Offset = offset

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to load audit logs"})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: logs})
}
