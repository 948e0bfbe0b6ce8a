package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type ScheduleController struct {
	scheduleSync *services.ScheduleSyncService
	logger       *zap.Logger
}

func NewScheduleController(scheduleSync *services.ScheduleSyncService, logger *zap.Logger) *ScheduleController {
	return &ScheduleController{scheduleSync: scheduleSync, logger: logger}
}

// Toggle plans a maintenance day or removes an existing pending mark.
func (c *ScheduleController) Toggle(ctx echo.Context) error {
	var payload dto.ScheduleToggleDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.scheduleSync.Toggle(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "schedule "+res.Status, http.StatusOK)
}

// GetGrid renders the equipment-by-month calendar for the requested year,
// defaulting to the current one.
func (c *ScheduleController) GetGrid(ctx echo.Context) error {
	year := time.Now().Year()
	if yearStr := ctx.QueryParam("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 2000 || parsed > 2100 {
			return utils.ErrorResponse(ctx, badRequest("invalid year parameter"), c.logger)
		}
		year = parsed
	}

	var areaID *uint64
	if areaStr := ctx.QueryParam("area_id"); areaStr != "" {
		parsed, err := strconv.ParseUint(areaStr, 10, 64)
		if err != nil || parsed == 0 {
			return utils.ErrorResponse(ctx, badRequest("invalid area_id parameter"), c.logger)
		}
		areaID = &parsed
	}

	grid, err := c.scheduleSync.YearGrid(ctx.Request().Context(), year, areaID)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, grid, "schedule grid", http.StatusOK)
}
