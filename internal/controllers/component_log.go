package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type ComponentLogController struct {
	componentLogService *services.ComponentLogService
	logger              *zap.Logger
}

func NewComponentLogController(componentLogService *services.ComponentLogService, logger *zap.Logger) *ComponentLogController {
	return &ComponentLogController{componentLogService: componentLogService, logger: logger}
}

func (c *ComponentLogController) CreateComponentLog(ctx echo.Context) error {
	var payload dto.CreateComponentLogDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.componentLogService.CreateComponentLog(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "component swap recorded", http.StatusCreated)
}

func (c *ComponentLogController) ListByEquipment(ctx echo.Context) error {
	equipmentID, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	logs, err := c.componentLogService.ListByEquipment(ctx.Request().Context(), equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, logs, "component logs listed", http.StatusOK)
}
