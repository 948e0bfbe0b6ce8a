package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type MaintenanceController struct {
	maintenanceService *services.MaintenanceService
	logger             *zap.Logger
}

func NewMaintenanceController(maintenanceService *services.MaintenanceService, logger *zap.Logger) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService, logger: logger}
}

func (c *MaintenanceController) GetMaintenances(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	maintenances, total, err := c.maintenanceService.GetMaintenances(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, maintenances, "maintenances listed", http.StatusOK, total)
}

func (c *MaintenanceController) FindMaintenance(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.maintenanceService.FindMaintenance(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "maintenance found", http.StatusOK)
}

func (c *MaintenanceController) CreateMaintenance(ctx echo.Context) error {
	var payload dto.CreateMaintenanceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.CreateMaintenance(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "maintenance recorded", http.StatusCreated)
}

// GetActa returns the acta artifact path, generating the PDF on first
// request if the maintenance predates acta generation.
func (c *MaintenanceController) GetActa(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	path, err := c.maintenanceService.EnsureActa(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]string{"acta_path": path}, "acta ready", http.StatusOK)
}

func (c *MaintenanceController) DeleteMaintenance(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.maintenanceService.DeleteMaintenance(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
