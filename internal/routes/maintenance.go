package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runMaintenanceRouter(g *echo.Group, ctrl *controllers.MaintenanceController) {
	g.GET("/maintenances", ctrl.GetMaintenances)
	g.GET("/maintenances/:id", ctrl.FindMaintenance)
	g.POST("/maintenances", ctrl.CreateMaintenance)
	g.DELETE("/maintenances/:id", ctrl.DeleteMaintenance)
	g.GET("/maintenances/:id/acta", ctrl.GetActa)
}
