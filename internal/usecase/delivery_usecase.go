package usecase

import (
	"context"

	"handoff/internal/domain/entity"

	"github.com/google/uuid"
)

// DecideDeliveryInput is the selection a party confirmed for an exchange.
// A pickup without an address leaves the location to the counterparty.
type DecideDeliveryInput struct {
	Method  string              `json:"method" validate:"required,oneof=pickup meetup"`
	Address *CreateAddressInput `json:"address,omitempty"`
}

// DeliveryUsecase records and reads how an exchange is handed over.
type DeliveryUsecase interface {
	DecideDelivery(ctx context.Context, userID, exchangeID uuid.UUID, input *DecideDeliveryInput) (*entity.Delivery, error)
	GetDelivery(ctx context.Context, exchangeID uuid.UUID) (*entity.Delivery, error)
}
