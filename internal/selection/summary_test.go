package selection_test

import (
	"testing"

	"handoff/internal/domain/entity"
	"handoff/internal/selection"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name         string
		selection    *selection.Selection
		counterparty string
		want         string
	}{
		{
			name: "nothing selected",
			want: "No location selected",
		},
		{
			name:         "delegated",
			selection:    &selection.Selection{Address: entity.NewUndecidedAddress(me), Method: entity.DeliveryMethodPickup},
			counterparty: "Bob",
			want:         "To be decided by Bob",
		},
		{
			name:      "delegated without a counterparty name",
			selection: &selection.Selection{Address: entity.NewUndecidedAddress(me), Method: entity.DeliveryMethodPickup},
			want:      "To be decided by the other party",
		},
		{
			name: "meetup shows only the position",
			selection: &selection.Selection{
				Address: entity.NewMeetupAddress(me, entity.Coordinates{Lat: 25.033, Long: 121.5654}),
				Method:  entity.DeliveryMethodMeetup,
			},
			want: "25.033000, 121.565400",
		},
		{
			name: "full address breakdown",
			selection: &selection.Selection{
				Address: &entity.Address{
					Name:          "Home",
					StreetAddress: "1 Main St",
					Apartment:     "Apt 2",
					City:          "Springfield",
					Region:        "IL",
					PostalCode:    "62701",
					Country:       "US",
					Message:       "Leave at the door",
					Location:      &entity.Coordinates{Lat: 1, Long: 1},
				},
				Method: entity.DeliveryMethodPickup,
			},
			want: "Home\n1 Main St\nApt 2\nSpringfield, IL 62701\nUS\nNote: Leave at the door",
		},
		{
			name: "address without optional parts",
			selection: &selection.Selection{
				Address: &entity.Address{
					Name:          "Office",
					StreetAddress: "9 Side St",
					City:          "Taipei",
					PostalCode:    "110",
					Country:       "TW",
				},
				Method: entity.DeliveryMethodPickup,
			},
			want: "Office\n9 Side St\nTaipei 110\nTW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selection.Summary(tt.selection, tt.counterparty))
		})
	}
}
