// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/authz"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// requireActor returns the authenticated actor or an unauthorized error when
// the authentication middleware did not run.
func requireActor(c echo.Context) (authz.Actor, error) {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return authz.Actor{}, domainerrors.ErrUnauthorized
	}

	return actor, nil
}

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " path parameter")
	}

	return id, nil
}
