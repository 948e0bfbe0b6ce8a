package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type ClientController struct {
	clientService *services.ClientService
	logger        *zap.Logger
}

func NewClientController(clientService *services.ClientService, logger *zap.Logger) *ClientController {
	return &ClientController{clientService: clientService, logger: logger}
}

func (c *ClientController) GetClients(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	clients, total, err := c.clientService.GetClients(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, clients, "clients listed", http.StatusOK, total)
}

func (c *ClientController) FindClient(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.clientService.FindClient(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "client found", http.StatusOK)
}

func (c *ClientController) CreateClient(ctx echo.Context) error {
	var payload dto.CreateClientDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.clientService.CreateClient(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "client created", http.StatusCreated)
}

func (c *ClientController) UpdateClient(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateClientDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badRequest("malformed request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.clientService.UpdateClient(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return utils.SuccessResponse(ctx, res, "client updated", http.StatusOK)
}

func (c *ClientController) DeleteClient(ctx echo.Context) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.clientService.DeleteClient(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, mapError(err), c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
