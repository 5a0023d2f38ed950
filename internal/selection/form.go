package selection

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"handoff/internal/domain/entity"
	"handoff/internal/domain/validation"
	"handoff/internal/selection/indicator"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Form is the address entry form of CreateAddress.
type Form struct {
	Address entity.Address

	Query       string
	Suggestions []entity.PlaceSuggestion
	Searching   bool
	SearchErr   error

	ResolvingPlaceID string
	Resolving        bool
	ResolveErr       error

	Saving  bool
	SaveErr error

	// Invalid is set by a rejected save and cleared once the record passes again.
	Invalid    bool
	Violations []validation.Field
	Indicator  indicator.Indicator

	touched map[validation.Field]bool
}

func newForm(userID uuid.UUID, ind indicator.Indicator) *Form {
	return &Form{
		Address:   entity.Address{UserID: userID},
		Indicator: ind,
		touched:   make(map[validation.Field]bool),
	}
}

// edit sets one field from its text input.
func (f *Form) edit(field validation.Field, value string) error {
	switch field {
	case validation.FieldName:
		f.Address.Name = value
	case validation.FieldStreetAddress:
		f.Address.StreetAddress = value
	case validation.FieldApartment:
		f.Address.Apartment = value
	case validation.FieldCity:
		f.Address.City = value
	case validation.FieldRegion:
		f.Address.Region = value
	case validation.FieldCountry:
		f.Address.Country = value
	case validation.FieldPostalCode:
		f.Address.PostalCode = value
	case validation.FieldMessage:
		f.Address.Message = value
	case validation.FieldLat, validation.FieldLong:
		return f.editCoordinate(field, value)
	default:
		return errors.Wrapf(ErrUnknownField, "field %q", field)
	}

	f.touched[field] = true

	return nil
}

func (f *Form) editCoordinate(field validation.Field, value string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return errors.Wrapf(ErrInvalidCoordinate, "%s %q", field, value)
	}

	loc := entity.Coordinates{}
	if f.Address.Location != nil {
		loc = *f.Address.Location
	}
	if field == validation.FieldLat {
		loc.Lat = v
	} else {
		loc.Long = v
	}
	f.Address.Location = &loc
	f.touched[field] = true

	return nil
}

// applyPlace fills the form from a resolved place, keeping the name and notes.
func (f *Form) applyPlace(place *entity.Place) {
	draft := place.AddressDraft()
	draft.UserID = f.Address.UserID
	draft.Name = f.Address.Name
	draft.Message = f.Address.Message
	f.Address = draft

	for _, field := range []validation.Field{
		validation.FieldStreetAddress,
		validation.FieldApartment,
		validation.FieldCity,
		validation.FieldRegion,
		validation.FieldCountry,
		validation.FieldPostalCode,
		validation.FieldLat,
		validation.FieldLong,
	} {
		f.touched[field] = true
	}
}

// refreshValidity recomputes the indicator after an edit. Before the first rejected
// save only touched fields count.
func (f *Form) refreshValidity(v *validation.AddressValidator) {
	if f.Invalid {
		f.Violations = v.Violations(&f.Address)
		f.Invalid = len(f.Violations) > 0
		f.Indicator.Set(stateOf(!f.Invalid))

		return
	}

	f.Indicator.Set(stateOf(v.ValidatePartial(f.partial())))
}

func (f *Form) markInvalid(violations []validation.Field) {
	f.Invalid = true
	f.Violations = violations
	f.Indicator.Set(indicator.Invalid)
}

func (f *Form) partial() validation.PartialAddress {
	var p validation.PartialAddress
	a := &f.Address
	pick := func(field validation.Field, s *string) *string {
		if f.touched[field] {
			return s
		}

		return nil
	}

	p.Name = pick(validation.FieldName, &a.Name)
	p.StreetAddress = pick(validation.FieldStreetAddress, &a.StreetAddress)
	p.Apartment = pick(validation.FieldApartment, &a.Apartment)
	p.City = pick(validation.FieldCity, &a.City)
	p.Region = pick(validation.FieldRegion, &a.Region)
	p.Country = pick(validation.FieldCountry, &a.Country)
	p.PostalCode = pick(validation.FieldPostalCode, &a.PostalCode)
	p.Message = pick(validation.FieldMessage, &a.Message)

	if a.Location != nil {
		if f.touched[validation.FieldLat] {
			p.Lat = &a.Location.Lat
		}
		if f.touched[validation.FieldLong] {
			p.Long = &a.Location.Long
		}
	}

	return p
}

func (f *Form) clone() *Form {
	if f == nil {
		return nil
	}

	c := *f
	if f.Address.Location != nil {
		loc := *f.Address.Location
		c.Address.Location = &loc
	}
	c.Suggestions = slices.Clone(f.Suggestions)
	c.Violations = slices.Clone(f.Violations)
	c.touched = maps.Clone(f.touched)

	return &c
}

func stateOf(valid bool) indicator.State {
	if valid {
		return indicator.Valid
	}

	return indicator.Invalid
}
