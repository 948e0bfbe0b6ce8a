package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runDashboardRouter(g *echo.Group, ctrl *controllers.DashboardController) {
	g.GET("/dashboard", ctrl.GetDashboard)
	g.GET("/alerts", ctrl.GetAlerts)
}
