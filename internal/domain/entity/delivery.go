package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryMethod is how an exchanged item changes hands.
type DeliveryMethod string

const (
	// DeliveryMethodPickup is an in-person pickup at an address, possibly not chosen yet.
	DeliveryMethodPickup DeliveryMethod = "pickup"
	// DeliveryMethodMeetup is a meeting at a chosen point.
	DeliveryMethodMeetup DeliveryMethod = "meetup"
)

// String returns the string representation of the DeliveryMethod.
func (m DeliveryMethod) String() string {
	return string(m)
}

// IsValid checks if the DeliveryMethod is a known value.
func (m DeliveryMethod) IsValid() bool {
	switch m {
	case DeliveryMethodPickup, DeliveryMethodMeetup:
		return true
	default:
		return false
	}
}

// Delivery is the decision recorded for one exchange.
type Delivery struct {
	ExchangeID uuid.UUID      `json:"exchange_id"`
	DecidedBy  uuid.UUID      `json:"decided_by"`
	Method     DeliveryMethod `json:"method"`
	Address    Address        `json:"address"`
	DecidedAt  time.Time      `json:"decided_at"`
}

// Undecided reports whether the location was left to the counterparty.
func (d *Delivery) Undecided() bool {
	return d.Method == DeliveryMethodPickup && d.Address.Location == nil
}
