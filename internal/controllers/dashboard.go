package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	alertService     *services.AlertService
	logger           *zap.Logger
}

func NewDashboardController(
	dashboardService *services.DashboardService,
	alertService *services.AlertService,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		alertService:     alertService,
		logger:           logger,
	}
}

func (c *DashboardController) GetDashboard(ctx echo.Context) error {
	res, err := c.dashboardService.GetDashboard(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "dashboard", http.StatusOK)
}

func (c *DashboardController) GetAlerts(ctx echo.Context) error {
	res, err := c.alertService.GetAlerts(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "alerts", http.StatusOK)
}
