// Package validation holds the field rules an address must satisfy before it is
// persisted or used for a delivery decision.
package validation

import (
	"handoff/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Field names an address field as the entry form and the API refer to it.
type Field string

const (
	FieldUserID        Field = "userID"
	FieldName          Field = "name"
	FieldStreetAddress Field = "streetAddress"
	FieldApartment     Field = "apartment"
	FieldCity          Field = "city"
	FieldRegion        Field = "region"
	FieldCountry       Field = "country"
	FieldPostalCode    Field = "postalCode"
	FieldLat           Field = "lat"
	FieldLong          Field = "long"
	FieldMessage       Field = "message"
)

// AllFields lists every field of an address in form order.
var AllFields = []Field{
	FieldUserID,
	FieldName,
	FieldStreetAddress,
	FieldApartment,
	FieldCity,
	FieldRegion,
	FieldCountry,
	FieldPostalCode,
	FieldLat,
	FieldLong,
	FieldMessage,
}

// Fields without a rule always pass. Coordinates use "required" so zero is rejected:
// zero is what an unset position looks like on the wire.
var fieldRules = map[Field]string{
	FieldUserID:        "required",
	FieldName:          "required,max=50",
	FieldStreetAddress: "required,max=100",
	FieldCity:          "required,max=100",
	FieldCountry:       "required,max=100",
	FieldPostalCode:    "required,max=100",
	FieldLat:           "required",
	FieldLong:          "required",
}

// PartialAddress carries only the fields a user has touched so far. Nil means absent.
type PartialAddress struct {
	UserID        *uuid.UUID
	Name          *string
	StreetAddress *string
	Apartment     *string
	City          *string
	Region        *string
	Country       *string
	PostalCode    *string
	Lat           *float64
	Long          *float64
	Message       *string
}

// AddressValidator is a pure predicate over address fields.
type AddressValidator struct {
	validate *validator.Validate
}

// NewAddressValidator creates an AddressValidator.
func NewAddressValidator() *AddressValidator {
	return &AddressValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// ValidateField reports whether value satisfies the rule for field.
// Unknown fields are always valid; nil pointers count as missing.
func (v *AddressValidator) ValidateField(field Field, value any) bool {
	rule, ok := fieldRules[field]
	if !ok {
		return true
	}

	normalized, present := normalize(value)
	if !present {
		return false
	}

	return v.validate.Var(normalized, rule) == nil
}

// Validate reports whether every field of the address passes.
func (v *AddressValidator) Validate(address *entity.Address) bool {
	return address != nil && len(v.Violations(address)) == 0
}

// Violations lists the fields of the address that fail, in form order.
func (v *AddressValidator) Violations(address *entity.Address) []Field {
	if address == nil {
		return requiredFields()
	}

	var failed []Field
	for _, field := range AllFields {
		if !v.ValidateField(field, fieldValue(address, field)) {
			failed = append(failed, field)
		}
	}

	return failed
}

// ValidatePartial checks only the fields present in the partial address.
func (v *AddressValidator) ValidatePartial(partial PartialAddress) bool {
	for field, value := range partial.present() {
		if !v.ValidateField(field, value) {
			return false
		}
	}

	return true
}

func requiredFields() []Field {
	var fields []Field
	for _, field := range AllFields {
		if _, ok := fieldRules[field]; ok {
			fields = append(fields, field)
		}
	}

	return fields
}

func (p PartialAddress) present() map[Field]any {
	fields := make(map[Field]any)
	add := func(field Field, isSet bool, value any) {
		if isSet {
			fields[field] = value
		}
	}

	add(FieldUserID, p.UserID != nil, p.UserID)
	add(FieldName, p.Name != nil, p.Name)
	add(FieldStreetAddress, p.StreetAddress != nil, p.StreetAddress)
	add(FieldApartment, p.Apartment != nil, p.Apartment)
	add(FieldCity, p.City != nil, p.City)
	add(FieldRegion, p.Region != nil, p.Region)
	add(FieldCountry, p.Country != nil, p.Country)
	add(FieldPostalCode, p.PostalCode != nil, p.PostalCode)
	add(FieldLat, p.Lat != nil, p.Lat)
	add(FieldLong, p.Long != nil, p.Long)
	add(FieldMessage, p.Message != nil, p.Message)

	return fields
}

func fieldValue(address *entity.Address, field Field) any {
	switch field {
	case FieldUserID:
		return address.UserID
	case FieldName:
		return address.Name
	case FieldStreetAddress:
		return address.StreetAddress
	case FieldApartment:
		return address.Apartment
	case FieldCity:
		return address.City
	case FieldRegion:
		return address.Region
	case FieldCountry:
		return address.Country
	case FieldPostalCode:
		return address.PostalCode
	case FieldLat:
		if address.Location == nil {
			return nil
		}

		return address.Location.Lat
	case FieldLong:
		if address.Location == nil {
			return nil
		}

		return address.Location.Long
	case FieldMessage:
		return address.Message
	default:
		return nil
	}
}

func normalize(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case *string:
		if v == nil {
			return nil, false
		}

		return *v, true
	case *float64:
		if v == nil {
			return nil, false
		}

		return *v, true
	case uuid.UUID:
		if v == uuid.Nil {
			return "", true
		}

		return v.String(), true
	case *uuid.UUID:
		if v == nil {
			return nil, false
		}

		return normalize(*v)
	default:
		return v, true
	}
}
