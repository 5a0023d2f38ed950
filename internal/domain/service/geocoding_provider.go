package service

import (
	"context"
	"errors"

	"handoff/internal/domain/entity"
)

// ErrPlaceNotFound is returned when the provider knows no place with the given ID.
var ErrPlaceNotFound = errors.New("place not found")

// GeocodingProvider defines place autocomplete and resolution.
type GeocodingProvider interface {
	// Autocomplete returns place suggestions for free text typed by the user.
	Autocomplete(ctx context.Context, query string) ([]entity.PlaceSuggestion, error)

	// Resolve returns the structured components and position of a suggested place.
	Resolve(ctx context.Context, placeID string) (*entity.Place, error)
}

// PlaceCache stores resolved places by place ID.
type PlaceCache interface {
	// Get returns the cached place, or nil when absent.
	Get(ctx context.Context, placeID string) (*entity.Place, error)

	// Set stores a resolved place.
	Set(ctx context.Context, place *entity.Place) error
}
