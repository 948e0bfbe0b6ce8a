package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runTechnicianRouter(g *echo.Group, ctrl *controllers.TechnicianController) {
	g.GET("/technicians", ctrl.GetTechnicians)
	g.GET("/technicians/:id", ctrl.FindTechnician)
	g.POST("/technicians", ctrl.CreateTechnician)
	g.PUT("/technicians/:id", ctrl.UpdateTechnician)
	g.DELETE("/technicians/:id", ctrl.DeleteTechnician)
}
