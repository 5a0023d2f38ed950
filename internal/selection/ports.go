package selection

import (
	"context"

	"handoff/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressBook is the caller's saved address list on the backend.
type AddressBook interface {
	ListAddresses(ctx context.Context) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, address *entity.Address) error
}

// Pair identifies the two parties of an exchange.
type Pair struct {
	From uuid.UUID
	To   uuid.UUID
}

// IsZero reports whether no counterparty has been set.
func (p Pair) IsZero() bool {
	return p.To == uuid.Nil
}

// MeetupPointService recommends where a pair could meet.
type MeetupPointService interface {
	GetMeetupPoint(ctx context.Context, pair Pair) (*entity.MeetupPoint, error)
}
