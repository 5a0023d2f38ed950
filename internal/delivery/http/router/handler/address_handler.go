package handler

import (
	"log/slog"
	"net/http"

	"handoff/internal/delivery/http/response"
	"handoff/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the caller's address book.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// ListAddresses handles retrieving the caller's saved addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// CreateAddress handles saving a new address
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req usecase.CreateAddressInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}
