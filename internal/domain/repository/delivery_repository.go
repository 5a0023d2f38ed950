package repository

import (
	"context"
	"errors"

	"handoff/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeliveryNotFound is returned when no decision was recorded for an exchange.
var ErrDeliveryNotFound = errors.New("delivery not found")

// DeliveryRepository stores one delivery decision per exchange.
type DeliveryRepository interface {
	// SaveDelivery inserts or replaces the decision of an exchange.
	SaveDelivery(ctx context.Context, delivery *entity.Delivery) error

	// FindDeliveryByExchange retrieves the decision of an exchange.
	FindDeliveryByExchange(ctx context.Context, exchangeID uuid.UUID) (*entity.Delivery, error)
}
