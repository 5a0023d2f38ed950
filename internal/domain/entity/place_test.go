package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace_AddressDraft(t *testing.T) {
	place := &Place{
		PlaceID: "abc",
		Components: []AddressComponent{
			{LongName: "1600", Types: []string{"street_number"}},
			{LongName: "Amphitheatre Parkway", Types: []string{"route"}},
			{LongName: "Unit 4", Types: []string{"subpremise"}},
			{LongName: "Mountain View", Types: []string{"locality", "political"}},
			{LongName: "Santa Clara County", Types: []string{"administrative_area_level_2", "political"}},
			{LongName: "California", ShortName: "CA", Types: []string{"administrative_area_level_1", "political"}},
			{LongName: "United States", ShortName: "US", Types: []string{"country", "political"}},
			{LongName: "94043", Types: []string{"postal_code"}},
		},
		Location: &Coordinates{Lat: 37.422, Long: -122.084},
	}

	draft := place.AddressDraft()

	assert.Equal(t, "1600 Amphitheatre Parkway", draft.StreetAddress)
	assert.Equal(t, "Unit 4", draft.Apartment)
	assert.Equal(t, "Mountain View", draft.City)
	assert.Equal(t, "California", draft.Region)
	assert.Equal(t, "United States", draft.Country)
	assert.Equal(t, "94043", draft.PostalCode)
	if assert.NotNil(t, draft.Location) {
		assert.Equal(t, 37.422, draft.Location.Lat)
		assert.Equal(t, -122.084, draft.Location.Long)
	}
	assert.Empty(t, draft.Name)

	// The draft owns its location.
	place.Location.Lat = 0
	assert.Equal(t, 37.422, draft.Location.Lat)
}

func TestPlace_AddressDraft_RouteOnly(t *testing.T) {
	place := &Place{
		Components: []AddressComponent{
			{LongName: "Main Street", Types: []string{"route"}},
		},
	}

	draft := place.AddressDraft()
	assert.Equal(t, "Main Street", draft.StreetAddress)
	assert.Nil(t, draft.Location)
}

func TestPlace_AddressDraft_Nil(t *testing.T) {
	var place *Place
	assert.Equal(t, Address{}, place.AddressDraft())
}

func TestCoordinates_InBounds(t *testing.T) {
	assert.True(t, Coordinates{Lat: 0, Long: 0}.InBounds())
	assert.True(t, Coordinates{Lat: -90, Long: 180}.InBounds())
	assert.False(t, Coordinates{Lat: 91, Long: 0}.InBounds())
	assert.False(t, Coordinates{Lat: 0, Long: -181}.InBounds())
}

func TestCoordinates_PointRoundTrip(t *testing.T) {
	c := Coordinates{Lat: 25.03, Long: 121.56}
	p := c.Point()
	assert.Equal(t, 121.56, p.Lon())
	assert.Equal(t, c, CoordinatesFromPoint(p))
}

func TestDelivery_Undecided(t *testing.T) {
	d := &Delivery{Method: DeliveryMethodPickup}
	assert.True(t, d.Undecided())

	d.Address.Location = &Coordinates{Lat: 1, Long: 1}
	assert.False(t, d.Undecided())

	d = &Delivery{Method: DeliveryMethodMeetup}
	assert.False(t, d.Undecided())
}
