package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type ExportController struct {
	exportService *services.ExportService
	logger        *zap.Logger
}

func NewExportController(exportService *services.ExportService, logger *zap.Logger) *ExportController {
	return &ExportController{exportService: exportService, logger: logger}
}

// Export streams the requested model as an XLSX download. The model name
// must be in the service's registry; anything else is a 404.
func (c *ExportController) Export(ctx echo.Context) error {
	model := ctx.Param("model")

	workbook, fileName, err := c.exportService.Export(ctx.Request().Context(), model)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return workbook.Write(ctx.Response().Writer)
}

// ListModels names the datasets available for export.
func (c *ExportController) ListModels(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.exportService.Models(), "export models", http.StatusOK)
}
