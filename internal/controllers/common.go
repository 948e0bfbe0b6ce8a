package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "inventory-system/pkg/errors"
)

// parseID reads a numeric path parameter. Non-numeric values surface as a
// 400 before any service is touched.
func parseID(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "invalid "+name+" parameter", err, nil)
	}
	return id, nil
}

// mapError translates service-level sentinel errors into HTTP errors.
// Anything unrecognised passes through and renders as a 500.
func mapError(err error) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return err
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return apperrors.NewHttpError(http.StatusBadRequest, invalidInput.Message, nil, nil)
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewHttpError(http.StatusNotFound, "record not found", err, nil)
	case errors.Is(err, apperrors.ErrBadRequest):
		return apperrors.NewHttpError(http.StatusBadRequest, "invalid request", err, nil)
	case errors.Is(err, apperrors.ErrInsufficientStock):
		return apperrors.NewHttpError(http.StatusConflict, "insufficient peripheral stock", err, nil)
	case errors.Is(err, apperrors.ErrDuplicateSchedule):
		return apperrors.NewHttpError(http.StatusConflict, "a schedule already exists for this equipment and date", err, nil)
	case errors.Is(err, apperrors.ErrUnknownExportModel):
		return apperrors.NewHttpError(http.StatusNotFound, "model is not allowed for export", err, nil)
	}
	return err
}

func badRequest(message string) error {
	return apperrors.NewHttpError(http.StatusBadRequest, message, nil, nil)
}
