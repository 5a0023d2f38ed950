package handler

import (
	"net/http"

	"handoff/internal/delivery/http/response"
	"handoff/internal/domain/entity"
	domainerrors "handoff/internal/domain/errors"
	"handoff/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC usecase.PlaceUsecase
}

// PlaceHandler serves place search for the address form.
type PlaceHandler struct {
	placeUC usecase.PlaceUsecase
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{placeUC: params.PlaceUC}
}

// ResolvedPlaceResponse is a resolved place with its decomposed address fields.
type ResolvedPlaceResponse struct {
	Place *entity.Place  `json:"place"`
	Draft entity.Address `json:"draft"`
}

// Autocomplete handles GET /places/autocomplete?q=
func (h *PlaceHandler) Autocomplete(c echo.Context) error {
	suggestions, err := h.placeUC.Autocomplete(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, suggestions, "")
}

// ResolvePlace handles GET /places/:placeID
func (h *PlaceHandler) ResolvePlace(c echo.Context) error {
	placeID := c.Param("placeID")
	if placeID == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("placeID"))
	}

	place, err := h.placeUC.ResolvePlace(c.Request().Context(), placeID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &ResolvedPlaceResponse{
		Place: place,
		Draft: place.AddressDraft(),
	}, "")
}
