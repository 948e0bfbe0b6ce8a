package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
)

func runEquipmentRouter(g *echo.Group, ctrl *controllers.EquipmentController) {
	g.GET("/equipments", ctrl.GetEquipments)
	g.GET("/equipments/:id", ctrl.FindEquipment)
	g.POST("/equipments", ctrl.CreateEquipment)
	g.PUT("/equipments/:id", ctrl.UpdateEquipment)
	g.DELETE("/equipments/:id", ctrl.DeleteEquipment)

	g.POST("/equipments/:id/retire", ctrl.RetireEquipment)
	g.GET("/equipments/:id/history", ctrl.GetHistory)
	g.GET("/equipments/:id/history/pdf", ctrl.GetHistoryPDF)
	g.POST("/equipments/import", ctrl.ImportEquipment)
}
