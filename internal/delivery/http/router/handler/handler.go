// Package handler contains the echo handlers of the public API.
package handler

import (
	"net/http"

	deliverycontext "handoff/internal/delivery/context"
	"handoff/internal/delivery/http/response"
	"handoff/internal/delivery/http/validator"
	domainerrors "handoff/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

func getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}

// validationError reports the failing fields by JSON name.
func validationError(err error) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithFields(validator.Fields(err)))
}

func parseUUIDParam(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(field))
	}

	return id, nil
}
