package handler

import (
	"net/http"

	"handoff/internal/delivery/http/response"
	"handoff/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
}

// DeliveryHandler records how an exchange is handed over.
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{deliveryUC: params.DeliveryUC}
}

// DecideDelivery handles PUT /exchanges/:exchangeID/delivery
func (h *DeliveryHandler) DecideDelivery(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	exchangeID, err := parseUUIDParam(c.Param("exchangeID"), "exchangeID")
	if err != nil {
		return err
	}

	var req usecase.DecideDeliveryInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid delivery input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	delivery, err := h.deliveryUC.DecideDelivery(c.Request().Context(), userID, exchangeID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery decided")
}

// GetDelivery handles GET /exchanges/:exchangeID/delivery
func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	exchangeID, err := parseUUIDParam(c.Param("exchangeID"), "exchangeID")
	if err != nil {
		return err
	}

	delivery, err := h.deliveryUC.GetDelivery(c.Request().Context(), exchangeID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, delivery, "")
}
