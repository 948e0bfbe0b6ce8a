package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type AreaController struct {
	areaService *services.AreaService
	logger      *zap.Logger
}

func NewAreaController(areaService *services.AreaService, logger *zap.Logger) *AreaController {
	return &AreaController{areaService: areaService, logger: logger}
}

func (c *AreaController) GetAreas(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	areas, total, err := c.areaService.GetAreas(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, areas, "areas listed", http.StatusOK, total)
}

func (c *AreaController) FindArea(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.areaService.FindArea(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "area found", http.StatusOK)
}

func (c *AreaController) CreateArea(ctx echo.Context) error {
	var payload dto.CreateAreaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.areaService.CreateArea(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "area created", http.StatusCreated)
}

func (c *AreaController) UpdateArea(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateAreaDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.areaService.UpdateArea(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "area updated", http.StatusOK)
}

func (c *AreaController) DeleteArea(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.areaService.DeleteArea(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
