package selection

import (
	"handoff/internal/domain/entity"

	"github.com/google/uuid"
)

// Kind names a workflow mode.
type Kind int

const (
	KindUnselected Kind = iota
	KindDelegate
	KindOwnAddress
	KindCreateAddress
	KindMeetup
)

func (k Kind) String() string {
	switch k {
	case KindDelegate:
		return "delegate"
	case KindOwnAddress:
		return "own-address"
	case KindCreateAddress:
		return "create-address"
	case KindMeetup:
		return "meetup"
	default:
		return "unselected"
	}
}

// Mode is the active step of the workflow. Each variant carries only its own data.
type Mode interface {
	Kind() Kind
	clone() Mode
}

// Unselected shows the three top-level options.
type Unselected struct{}

// DelegateToCounterparty leaves the location to the other party.
type DelegateToCounterparty struct{}

// OwnAddress lists the caller's saved addresses.
type OwnAddress struct {
	Addresses []*entity.Address
	Loading   bool
	Err       error
	Selected  uuid.UUID
}

// CreateAddress hosts the address entry form.
type CreateAddress struct {
	Form *Form
}

// Meetup lets the caller drop a pin near the recommended point.
type Meetup struct {
	Pin *entity.Coordinates
}

func (Unselected) Kind() Kind             { return KindUnselected }
func (DelegateToCounterparty) Kind() Kind { return KindDelegate }
func (*OwnAddress) Kind() Kind            { return KindOwnAddress }
func (*CreateAddress) Kind() Kind         { return KindCreateAddress }
func (*Meetup) Kind() Kind                { return KindMeetup }

func (m Unselected) clone() Mode             { return m }
func (m DelegateToCounterparty) clone() Mode { return m }

func (m *OwnAddress) clone() Mode {
	c := *m
	c.Addresses = append([]*entity.Address(nil), m.Addresses...)

	return &c
}

func (m *CreateAddress) clone() Mode {
	return &CreateAddress{Form: m.Form.clone()}
}

func (m *Meetup) clone() Mode {
	c := *m
	if m.Pin != nil {
		pin := *m.Pin
		c.Pin = &pin
	}

	return &c
}
