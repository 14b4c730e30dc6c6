package handler

import (
	"net/http"

	"stockroom/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Snapshot godoc
// @Summary Inventory dashboard summary
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	resp, err := h.svc.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
