package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runCostCenterRouter(g *echo.Group, ctrl *controllers.CostCenterController) {
	g.GET("/cost-centers", ctrl.GetCostCenters)
	g.GET("/cost-centers/:id", ctrl.FindCostCenter)
	g.POST("/cost-centers", ctrl.CreateCostCenter)
	g.PUT("/cost-centers/:id", ctrl.UpdateCostCenter)
	g.DELETE("/cost-centers/:id", ctrl.DeleteCostCenter)
}
