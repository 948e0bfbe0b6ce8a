package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type HandoverController struct {
	handoverService *services.HandoverService
	logger          *zap.Logger
}

func NewHandoverController(handoverService *services.HandoverService, logger *zap.Logger) *HandoverController {
	return &HandoverController{handoverService: handoverService, logger: logger}
}

func (c *HandoverController) GetHandovers(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	handovers, total, err := c.handoverService.GetHandovers(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, handovers, "handovers listed", http.StatusOK, total)
}

func (c *HandoverController) FindHandover(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.handoverService.FindHandover(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "handover found", http.StatusOK)
}

func (c *HandoverController) CreateHandover(ctx echo.Context) error {
	var payload dto.CreateHandoverDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.handoverService.CreateHandover(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "handover recorded", http.StatusCreated)
}

// GetActa returns the handover acta path, generating it on first request.
func (c *HandoverController) GetActa(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	path, err := c.handoverService.EnsureActa(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]string{"acta_path": path}, "acta ready", http.StatusOK)
}

func (c *HandoverController) DeleteHandover(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.handoverService.DeleteHandover(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
