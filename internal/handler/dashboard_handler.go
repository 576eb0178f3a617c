package handler

import (
	"ckd-followup-backend/internal/service"
	"ckd-followup-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Dashboard returns aggregate counts plus the recent and upcoming follow-up
// lists. A ?warning= parameter set by an authorization redirect is passed
// through for display.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboardService.Summary()
	if err != nil {
		respondError(c, err)
		return
	}

	data := gin.H{"summary": summary}
	if warning := c.Query("warning"); warning != "" {
		data["warning"] = warning
	}
	utils.SuccessResponse(c, data)
}
