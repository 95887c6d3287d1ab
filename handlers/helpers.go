package handlers

import (
	"errors"
	"log"
	"net/http"

	"expedientes_app_go/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// bindAndValidate decodes the request body into the DTO and shape-checks it.
// Business invariants stay in the services; this covers presence and format.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// httpError maps a service error to its HTTP status. Unclassified errors are
// logged and surfaced as an opaque 500: storage details never reach the
// caller.
func httpError(err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrValidation):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("[ERROR] unclassified service error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
