package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runScheduleRouter(g *echo.Group, ctrl *controllers.ScheduleController) {
	g.POST("/schedules/toggle", ctrl.Toggle)
	g.GET("/schedules/grid", ctrl.GetGrid)
}
