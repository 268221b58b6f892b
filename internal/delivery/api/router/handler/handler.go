// Package handler contains the echo handlers of the gateway API.
package handler

import (
	"net/http"

	"backoffice/internal/delivery/api/response"
	"backoffice/internal/delivery/api/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// messageResponse is the payload of endpoints that only acknowledge.
type messageResponse struct {
	Message string `json:"message"`
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

// bindAndValidate binds the request into req and runs the struct rules. On failure the
// 400 response has already been written and the returned error must be returned as is.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Request validation failed", validator.Details(err))
	}

	return true, nil
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
