package validation

import (
	"strings"
	"testing"

	"handoff/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func validAddress() *entity.Address {
	return &entity.Address{
		UserID:        uuid.New(),
		Name:          "Home",
		StreetAddress: "1 Main St",
		City:          "X",
		Country:       "Y",
		PostalCode:    "12345",
		Location:      &entity.Coordinates{Lat: 1, Long: 1},
	}
}

func TestAddressValidator_ValidateField(t *testing.T) {
	v := NewAddressValidator()

	tests := []struct {
		name  string
		field Field
		value any
		want  bool
	}{
		{"name ok", FieldName, "Home", true},
		{"name empty", FieldName, "", false},
		{"name at limit", FieldName, strings.Repeat("a", 50), true},
		{"name over limit", FieldName, strings.Repeat("a", 51), false},
		{"name counts runes", FieldName, strings.Repeat("家", 50), true},
		{"street ok", FieldStreetAddress, "1 Main St", true},
		{"street empty", FieldStreetAddress, "", false},
		{"street over limit", FieldStreetAddress, strings.Repeat("a", 101), false},
		{"city at limit", FieldCity, strings.Repeat("a", 100), true},
		{"country empty", FieldCountry, "", false},
		{"postal code ok", FieldPostalCode, "12345", true},
		{"lat non-zero", FieldLat, 25.03, true},
		{"lat negative", FieldLat, -33.9, true},
		{"lat zero", FieldLat, 0.0, false},
		{"lat missing", FieldLat, nil, false},
		{"long nil pointer", FieldLong, (*float64)(nil), false},
		{"long pointer", FieldLong, ptr(121.5), true},
		{"user id", FieldUserID, uuid.New(), true},
		{"user id nil uuid", FieldUserID, uuid.Nil, false},
		{"user id string", FieldUserID, "u1", true},
		{"user id empty string", FieldUserID, "", false},
		{"apartment unconstrained", FieldApartment, "", true},
		{"region unconstrained", FieldRegion, strings.Repeat("a", 500), true},
		{"message unconstrained", FieldMessage, "", true},
		{"unknown field", Field("favoriteColor"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ValidateField(tt.field, tt.value))
		})
	}
}

func TestAddressValidator_Validate(t *testing.T) {
	v := NewAddressValidator()

	t.Run("complete record", func(t *testing.T) {
		assert.True(t, v.Validate(validAddress()))
	})

	t.Run("empty name", func(t *testing.T) {
		a := validAddress()
		a.Name = ""
		assert.False(t, v.Validate(a))
		assert.Equal(t, []Field{FieldName}, v.Violations(a))
	})

	t.Run("zero latitude", func(t *testing.T) {
		a := validAddress()
		a.Location = &entity.Coordinates{Lat: 0, Long: 1}
		assert.False(t, v.Validate(a))
		assert.Equal(t, []Field{FieldLat}, v.Violations(a))
	})

	t.Run("no location", func(t *testing.T) {
		a := validAddress()
		a.Location = nil
		assert.False(t, v.Validate(a))
		assert.Equal(t, []Field{FieldLat, FieldLong}, v.Violations(a))
	})

	t.Run("missing owner", func(t *testing.T) {
		a := validAddress()
		a.UserID = uuid.Nil
		assert.False(t, v.Validate(a))
	})

	t.Run("optional fields empty", func(t *testing.T) {
		a := validAddress()
		a.Apartment, a.Region, a.Message = "", "", ""
		assert.True(t, v.Validate(a))
	})

	t.Run("nil record", func(t *testing.T) {
		assert.False(t, v.Validate(nil))
		assert.NotContains(t, v.Violations(nil), FieldApartment)
	})
}

// Validate must agree with checking every field rule one by one.
func TestAddressValidator_ValidateMatchesFieldRules(t *testing.T) {
	v := NewAddressValidator()

	mutations := []func(*entity.Address){
		func(*entity.Address) {},
		func(a *entity.Address) { a.Name = strings.Repeat("n", 51) },
		func(a *entity.Address) { a.StreetAddress = "" },
		func(a *entity.Address) { a.City = strings.Repeat("c", 101) },
		func(a *entity.Address) { a.Country = "" },
		func(a *entity.Address) { a.PostalCode = "" },
		func(a *entity.Address) { a.Location.Long = 0 },
		func(a *entity.Address) { a.UserID = uuid.Nil },
		func(a *entity.Address) { a.Message = strings.Repeat("m", 1000) },
	}

	for i, mutate := range mutations {
		a := validAddress()
		mutate(a)

		allPass := true
		for _, field := range AllFields {
			if !v.ValidateField(field, fieldValue(a, field)) {
				allPass = false
			}
		}

		assert.Equal(t, allPass, v.Validate(a), "mutation %d", i)
	}
}

func TestAddressValidator_ValidatePartial(t *testing.T) {
	v := NewAddressValidator()

	assert.True(t, v.ValidatePartial(PartialAddress{Name: ptr("Home")}))
	assert.True(t, v.ValidatePartial(PartialAddress{}))
	assert.True(t, v.ValidatePartial(PartialAddress{City: ptr("Taipei"), Lat: ptr(25.0)}))
	assert.False(t, v.ValidatePartial(PartialAddress{Name: ptr("")}))
	assert.False(t, v.ValidatePartial(PartialAddress{Name: ptr("Home"), Lat: ptr(0.0)}))
	assert.False(t, v.ValidatePartial(PartialAddress{UserID: ptr(uuid.Nil)}))
	assert.True(t, v.ValidatePartial(PartialAddress{Apartment: ptr("")}))
}
