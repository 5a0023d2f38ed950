package service

import (
	"context"
)

// DeliveryDecidedEvent announces that one party chose how an exchange is handed over
type DeliveryDecidedEvent struct {
	RequestID  string   `json:"request_id,omitempty"` // For distributed tracing
	ExchangeID string   `json:"exchange_id"`
	DecidedBy  string   `json:"decided_by"`
	Method     string   `json:"method"`
	Name       string   `json:"name,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	DecidedAt  string   `json:"decided_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeliveryDecided publishes a delivery decision for downstream consumers
	PublishDeliveryDecided(ctx context.Context, event *DeliveryDecidedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
