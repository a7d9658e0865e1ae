package handlers

import (
	"court_docket_app_go/services"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// serviceError maps engine error kinds to HTTP errors. Anything unknown is
// logged and reported as a 500 with the fallback message.
func serviceError(err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidSchedule):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrStorageDisabled):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Storage is not configured")
	}
	log.Printf("[ERROR] %s: %v", fallback, err)
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}
