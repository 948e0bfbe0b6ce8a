package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runPeripheralRouter(g *echo.Group, ctrl *controllers.PeripheralController) {
	g.GET("/peripherals", ctrl.GetPeripherals)
	g.GET("/peripherals/:id", ctrl.FindPeripheral)
	g.POST("/peripherals", ctrl.CreatePeripheral)
	g.PUT("/peripherals/:id", ctrl.UpdatePeripheral)
	g.DELETE("/peripherals/:id", ctrl.DeletePeripheral)

	// Stock ledger: strict refuses short stock, floor clamps at zero.
	g.POST("/peripherals/:id/stock/consume", ctrl.ConsumeStock)
	g.POST("/peripherals/:id/stock/drain", ctrl.DrainStock)

	g.GET("/peripheral-types", ctrl.GetPeripheralTypes)
	g.POST("/peripheral-types", ctrl.CreatePeripheralType)
	g.DELETE("/peripheral-types/:id", ctrl.DeletePeripheralType)
}
