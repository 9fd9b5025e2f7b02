package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/response"
	"github.com/meinwort/meinwort-go/services"
	"github.com/meinwort/meinwort-go/utils"
)

type AdminHandler struct {
	svc *services.AdminService
}

func NewAdminHandler(svc *services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Stats godoc
// @Summary Platform statistics
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} services.PlatformStats
// @Failure 500 {object} response.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// OpenReports godoc
// @Summary List open content reports
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Report
// @Router /admin/reports [get]
func (h *AdminHandler) OpenReports(c *gin.Context) {
	reports, err := h.svc.ListOpenReports()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// AuditLogs godoc
// @Summary Query audit logs
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param user_id query uint false "Filter by acting user"
// @Param resource_type query string false "Filter by resource type"
// @Param action query string false "Filter by action"
// @Param start_time query string false "RFC3339 lower bound"
// @Param end_time query string false "RFC3339 upper bound"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.AuditLog
// @Failure 400 {object} response.ErrorResponse
// @Router /admin/audit/logs [get]
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	var params repositories.AuditQueryParams

	if uid, err := utils.ParseQueryUintParam(c, "user_id"); err == nil {
		params.UserID = &uid
	}
	if v := c.Query("resource_type"); v != "" {
		params.ResourceType = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	if v := c.Query("start_time"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid start_time"})
			return
		}
		params.StartTime = &t
	}
	if v := c.Query("end_time"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid end_time"})
			return
		}
		params.EndTime = &t
	}
	if limit, err := utils.ParseQueryUintParam(c, "limit"); err == nil {
		params.Limit = int(limit)
	}
	if offset, err := utils.ParseQueryUintParam(c, "offset"); err == nil {
		params.Offset = int(offset)
	}

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
