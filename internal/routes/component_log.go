package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runComponentLogRouter(g *echo.Group, ctrl *controllers.ComponentLogController) {
	g.POST("/component-logs", ctrl.CreateComponentLog)
	g.GET("/equipments/:id/component-logs", ctrl.ListByEquipment)
}
