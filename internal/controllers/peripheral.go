package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

type PeripheralController struct {
	peripheralService *services.PeripheralService
	stockService      *services.StockService
	logger            *zap.Logger
}

func NewPeripheralController(
	peripheralService *services.PeripheralService,
	stockService *services.StockService,
	logger *zap.Logger,
) *PeripheralController {
	return &PeripheralController{
		peripheralService: peripheralService,
		stockService:      stockService,
		logger:            logger,
	}
}

func (c *PeripheralController) GetPeripherals(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	peripherals, total, err := c.peripheralService.GetPeripherals(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, peripherals, "peripherals listed", http.StatusOK, total)
}

func (c *PeripheralController) FindPeripheral(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.peripheralService.FindPeripheral(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "peripheral found", http.StatusOK)
}

func (c *PeripheralController) CreatePeripheral(ctx echo.Context) error {
	var payload dto.CreatePeripheralDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.peripheralService.CreatePeripheral(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "peripheral created", http.StatusCreated)
}

func (c *PeripheralController) UpdatePeripheral(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdatePeripheralDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.peripheralService.UpdatePeripheral(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "peripheral updated", http.StatusOK)
}

func (c *PeripheralController) DeletePeripheral(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.peripheralService.DeletePeripheral(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ConsumeStock is the strict decrement endpoint: short stock rejects the
// whole amount and reports the unchanged on-hand count.
func (c *PeripheralController) ConsumeStock(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.StockAdjustDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.stockService.StrictDecrement(ctx.Request().Context(), id, payload.Quantity)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	if !res.Applied {
		details := map[string]interface{}{"applied": false, "remaining": res.Remaining}
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusConflict, "insufficient stock, nothing consumed", nil, details),
			c.logger)
	}
	return utils.SuccessResponse(ctx, res, "stock consumed", http.StatusOK)
}

// DrainStock is the floor decrement endpoint: takes what is available and
// clamps at zero.
func (c *PeripheralController) DrainStock(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.StockAdjustDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.stockService.FloorDecrement(ctx.Request().Context(), id, payload.Quantity)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "stock consumed", http.StatusOK)
}

func (c *PeripheralController) GetPeripheralTypes(ctx echo.Context) error {
	res, err := c.peripheralService.GetPeripheralTypes(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "peripheral types listed", http.StatusOK)
}

func (c *PeripheralController) CreatePeripheralType(ctx echo.Context) error {
	var payload dto.CreatePeripheralTypeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.peripheralService.CreatePeripheralType(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "peripheral type created", http.StatusCreated)
}

func (c *PeripheralController) DeletePeripheralType(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.peripheralService.DeletePeripheralType(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
