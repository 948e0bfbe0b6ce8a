package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runExportRouter(g *echo.Group, ctrl *controllers.ExportController) {
	g.GET("/exports", ctrl.ListModels)
	g.GET("/exports/:model", ctrl.Export)
}
