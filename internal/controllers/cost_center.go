package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type CostCenterController struct {
	costCenterService *services.CostCenterService
	logger            *zap.Logger
}

func NewCostCenterController(costCenterService *services.CostCenterService, logger *zap.Logger) *CostCenterController {
	return &CostCenterController{costCenterService: costCenterService, logger: logger}
}

func (c *CostCenterController) GetCostCenters(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	costCenters, total, err := c.costCenterService.GetCostCenters(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, costCenters, "cost centers listed", http.StatusOK, total)
}

func (c *CostCenterController) FindCostCenter(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.costCenterService.FindCostCenter(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "cost center found", http.StatusOK)
}

func (c *CostCenterController) CreateCostCenter(ctx echo.Context) error {
	var payload dto.CreateCostCenterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.costCenterService.CreateCostCenter(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "cost center created", http.StatusCreated)
}

func (c *CostCenterController) UpdateCostCenter(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateCostCenterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.costCenterService.UpdateCostCenter(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "cost center updated", http.StatusOK)
}

func (c *CostCenterController) DeleteCostCenter(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.costCenterService.DeleteCostCenter(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
