package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runEquipmentRoundRouter(g *echo.Group, ctrl *controllers.EquipmentRoundController) {
	g.POST("/rounds", ctrl.CreateEquipmentRound)
	g.GET("/equipments/:id/rounds", ctrl.ListByEquipment)
}
