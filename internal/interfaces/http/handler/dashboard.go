package handler

import (
	"github.com/gin-gonic/gin"
	dashboardapp "github.com/ledgerflow/backend/internal/application/dashboard"
	"github.com/ledgerflow/backend/internal/interfaces/http/dto"
)

// DashboardHandler serves the aggregated business overview
type DashboardHandler struct {
	BaseHandler
	dashboardService *dashboardapp.Service
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *dashboardapp.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get godoc
// @Summary   Revenue, expenses, outstanding invoices and recent activity
// @Tags      dashboard
// @Produce   json
// @Success   200 {object} dto.DashboardResponse
// @Security  BearerAuth
// @Router    /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	report, err := h.dashboardService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewDashboardResponse(report))
}
