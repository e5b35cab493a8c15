package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

// DashboardHandler serves the aggregate statistics endpoints.
type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) DetailedStats(c echo.Context) error {
	stats, err := h.dashboardService.DetailedStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
