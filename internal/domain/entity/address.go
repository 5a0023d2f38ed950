package entity

import (
	"time"

	"github.com/google/uuid"
)

// MeetupAddressName is the name carried by every meetup selection.
const MeetupAddressName = "Meetup"

// Address is a saved postal address in a user's address book.
// Location is nil until a position has been chosen; (0, 0) is never used as "unset".
type Address struct {
	ID            uuid.UUID    `json:"id"`
	UserID        uuid.UUID    `json:"user_id"`
	Name          string       `json:"name"` // User-chosen label, unique per user, e.g. "Home".
	StreetAddress string       `json:"street_address"`
	Apartment     string       `json:"apartment,omitempty"`
	City          string       `json:"city"`
	Region        string       `json:"region,omitempty"`
	Country       string       `json:"country"`
	PostalCode    string       `json:"postal_code"`
	Location      *Coordinates `json:"location,omitempty"`
	Message       string       `json:"message,omitempty"` // Free-text notes for the counterparty.
	IsPrimary     bool         `json:"is_primary"`
	CreatedAt     time.Time    `json:"created_at"`
}

// HasStreetAddress distinguishes a postal address from a bare position.
func (a *Address) HasStreetAddress() bool {
	return a != nil && a.StreetAddress != ""
}

// NewMeetupAddress builds the synthetic record emitted for a meetup pin.
func NewMeetupAddress(userID uuid.UUID, pin Coordinates) *Address {
	return &Address{
		UserID:   userID,
		Name:     MeetupAddressName,
		Location: &pin,
	}
}

// NewUndecidedAddress builds the placeholder emitted when the counterparty decides.
func NewUndecidedAddress(userID uuid.UUID) *Address {
	return &Address{UserID: userID}
}
