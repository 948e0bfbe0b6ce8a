package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runAreaRouter(g *echo.Group, ctrl *controllers.AreaController) {
	g.GET("/areas", ctrl.GetAreas)
	g.GET("/areas/:id", ctrl.FindArea)
	g.POST("/areas", ctrl.CreateArea)
	g.PUT("/areas/:id", ctrl.UpdateArea)
	g.DELETE("/areas/:id", ctrl.DeleteArea)
}
