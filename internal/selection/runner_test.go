package selection_test

import (
	"context"
	"testing"

	"handoff/internal/domain/entity"
	"handoff/internal/selection"
	mockSelection "handoff/internal/mocks/selection"
	mockService "handoff/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()
	address := home()
	place := &entity.Place{PlaceID: "p1"}
	pair := selection.Pair{From: me, To: alice}
	point := &entity.MeetupPoint{RadiusMeters: 250}
	createErr := errors.New("conflict")

	addresses := mockSelection.NewMockAddressBook(t)
	places := mockService.NewMockGeocodingProvider(t)
	meetup := mockSelection.NewMockMeetupPointService(t)
	runner := selection.NewRunner(addresses, places, meetup, newDiscardLogger())

	addresses.EXPECT().ListAddresses(ctx).Return([]*entity.Address{address}, nil).Once()
	addresses.EXPECT().CreateAddress(ctx, address).Return(createErr).Once()
	places.EXPECT().Autocomplete(ctx, "main").Return([]entity.PlaceSuggestion{{PlaceID: "p1"}}, nil).Once()
	places.EXPECT().Resolve(ctx, "p1").Return(place, nil).Once()
	meetup.EXPECT().GetMeetupPoint(ctx, pair).Return(point, nil).Once()

	assert.Equal(t,
		selection.AddressesLoaded{Addresses: []*entity.Address{address}},
		runner.Run(ctx, selection.LoadAddresses{}))
	assert.Equal(t,
		selection.AddressSubmitted{Address: address, Err: createErr},
		runner.Run(ctx, selection.SubmitAddress{Address: address}))
	assert.Equal(t,
		selection.PlacesFound{Query: "main", Suggestions: []entity.PlaceSuggestion{{PlaceID: "p1"}}},
		runner.Run(ctx, selection.SearchPlaces{Query: "main"}))
	assert.Equal(t,
		selection.PlaceResolved{PlaceID: "p1", Place: place},
		runner.Run(ctx, selection.ResolvePlace{PlaceID: "p1"}))
	assert.Equal(t,
		selection.MeetupPointFetched{Pair: pair, Point: point},
		runner.Run(ctx, selection.FetchMeetupPoint{Pair: pair}))
}

func TestRunner_RecoversPanics(t *testing.T) {
	addresses := mockSelection.NewMockAddressBook(t)
	runner := selection.NewRunner(addresses, nil, nil, newDiscardLogger())

	addresses.EXPECT().ListAddresses(context.Background()).
		RunAndReturn(func(context.Context) ([]*entity.Address, error) {
			panic("boom")
		}).Once()

	ev := runner.Run(context.Background(), selection.LoadAddresses{})

	loaded, ok := ev.(selection.AddressesLoaded)
	if assert.True(t, ok) {
		assert.ErrorContains(t, loaded.Err, "boom")
	}
}
