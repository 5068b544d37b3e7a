package handler

import (
	"studydeck/internal/middleware"
	"studydeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the dashboard aggregation endpoints.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Get the combined dashboard payload
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	resp, err := h.dashboardService.GetDashboard(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetStats godoc
// @Summary Get dashboard statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// GetActivity godoc
// @Summary Get recent activity
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum items" default(10)
// @Success 200 {array} dto.ActivityItem
// @Router /dashboard/activity [get]
func (h *DashboardHandler) GetActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	activity, err := h.dashboardService.GetRecentActivity(c.Context(), middleware.UserID(c), limit)
	if err != nil {
		return err
	}
	return c.JSON(activity)
}

// GetPerformance godoc
// @Summary Get monthly performance
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.PerformancePoint
// @Router /dashboard/performance [get]
func (h *DashboardHandler) GetPerformance(c *fiber.Ctx) error {
	performance, err := h.dashboardService.GetPerformance(c.Context(), middleware.UserID(c), 5)
	if err != nil {
		return err
	}
	return c.JSON(performance)
}
