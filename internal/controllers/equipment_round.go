package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type EquipmentRoundController struct {
	roundService *services.EquipmentRoundService
	logger       *zap.Logger
}

func NewEquipmentRoundController(roundService *services.EquipmentRoundService, logger *zap.Logger) *EquipmentRoundController {
	return &EquipmentRoundController{roundService: roundService, logger: logger}
}

func (c *EquipmentRoundController) CreateEquipmentRound(ctx echo.Context) error {
	var payload dto.CreateEquipmentRoundDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.roundService.CreateEquipmentRound(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "round recorded", http.StatusCreated)
}

func (c *EquipmentRoundController) ListByEquipment(ctx echo.Context) error {
	equipmentID, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	rounds, err := c.roundService.ListByEquipment(ctx.Request().Context(), equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, rounds, "rounds listed", http.StatusOK)
}
