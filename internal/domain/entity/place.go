package entity

import "slices"

// PlaceSuggestion is one autocomplete candidate.
type PlaceSuggestion struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

// AddressComponent is one typed part of a resolved place, e.g. a route or a locality.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// Place is a resolved place with its structured components.
type Place struct {
	PlaceID          string             `json:"place_id"`
	FormattedAddress string             `json:"formatted_address"`
	Components       []AddressComponent `json:"components"`
	Location         *Coordinates       `json:"location,omitempty"`
}

const (
	componentStreetNumber = "street_number"
	componentRoute        = "route"
	componentSubpremise   = "subpremise"
	componentLocality     = "locality"
	componentRegion       = "administrative_area_level_1"
	componentCountry      = "country"
	componentPostalCode   = "postal_code"
)

// AddressDraft decomposes the place into address fields. Name and Message are left
// for the user; only fields the place actually carries are filled.
func (p *Place) AddressDraft() Address {
	var draft Address
	if p == nil {
		return draft
	}

	var number, route string
	for _, c := range p.Components {
		switch {
		case c.has(componentStreetNumber):
			number = c.LongName
		case c.has(componentRoute):
			route = c.LongName
		case c.has(componentSubpremise):
			draft.Apartment = c.LongName
		case c.has(componentLocality):
			draft.City = c.LongName
		case c.has(componentRegion):
			draft.Region = c.LongName
		case c.has(componentCountry):
			draft.Country = c.LongName
		case c.has(componentPostalCode):
			draft.PostalCode = c.LongName
		}
	}

	switch {
	case number != "" && route != "":
		draft.StreetAddress = number + " " + route
	default:
		draft.StreetAddress = number + route
	}

	if p.Location != nil {
		loc := *p.Location
		draft.Location = &loc
	}

	return draft
}

func (c AddressComponent) has(kind string) bool {
	return slices.Contains(c.Types, kind)
}

// MeetupPoint is the recommended neighborhood for two parties to meet in.
type MeetupPoint struct {
	Center       Coordinates `json:"center"`
	RadiusMeters float64     `json:"radius_meters"`
}
