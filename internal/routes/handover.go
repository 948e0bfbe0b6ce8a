package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runHandoverRouter(g *echo.Group, ctrl *controllers.HandoverController) {
	g.GET("/handovers", ctrl.GetHandovers)
	g.GET("/handovers/:id", ctrl.FindHandover)
	g.POST("/handovers", ctrl.CreateHandover)
	g.DELETE("/handovers/:id", ctrl.DeleteHandover)
	g.GET("/handovers/:id/acta", ctrl.GetActa)
}
