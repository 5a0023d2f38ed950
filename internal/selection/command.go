package selection

import (
	"handoff/internal/domain/entity"
)

// Command is a side effect requested by the workflow. A Runner executes it and
// answers with exactly one Event.
type Command interface {
	command()
}

// LoadAddresses fetches the caller's saved addresses.
type LoadAddresses struct{}

// SubmitAddress persists a new address.
type SubmitAddress struct {
	Address *entity.Address
}

// SearchPlaces asks for autocomplete suggestions.
type SearchPlaces struct {
	Query string
}

// ResolvePlace fetches the components of a suggestion.
type ResolvePlace struct {
	PlaceID string
}

// FetchMeetupPoint asks for the recommended point of a pair.
type FetchMeetupPoint struct {
	Pair Pair
}

func (LoadAddresses) command()    {}
func (SubmitAddress) command()    {}
func (SearchPlaces) command()     {}
func (ResolvePlace) command()     {}
func (FetchMeetupPoint) command() {}

// Event is the outcome of a Command, folded back in with Workflow.Apply.
type Event interface {
	event()
}

type AddressesLoaded struct {
	Addresses []*entity.Address
	Err       error
}

type AddressSubmitted struct {
	Address *entity.Address
	Err     error
}

type PlacesFound struct {
	Query       string
	Suggestions []entity.PlaceSuggestion
	Err         error
}

type PlaceResolved struct {
	PlaceID string
	Place   *entity.Place
	Err     error
}

type MeetupPointFetched struct {
	Pair  Pair
	Point *entity.MeetupPoint
	Err   error
}

func (AddressesLoaded) event()    {}
func (AddressSubmitted) event()   {}
func (PlacesFound) event()        {}
func (PlaceResolved) event()      {}
func (MeetupPointFetched) event() {}

// failed builds the event answering cmd with err.
func failed(cmd Command, err error) Event {
	switch c := cmd.(type) {
	case LoadAddresses:
		return AddressesLoaded{Err: err}
	case SubmitAddress:
		return AddressSubmitted{Address: c.Address, Err: err}
	case SearchPlaces:
		return PlacesFound{Query: c.Query, Err: err}
	case ResolvePlace:
		return PlaceResolved{PlaceID: c.PlaceID, Err: err}
	case FetchMeetupPoint:
		return MeetupPointFetched{Pair: c.Pair, Err: err}
	default:
		return nil
	}
}
