package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runClientRouter(g *echo.Group, ctrl *controllers.ClientController) {
	g.GET("/clients", ctrl.GetClients)
	g.GET("/clients/:id", ctrl.FindClient)
	g.POST("/clients", ctrl.CreateClient)
	g.PUT("/clients/:id", ctrl.UpdateClient)
	g.DELETE("/clients/:id", ctrl.DeleteClient)
}
