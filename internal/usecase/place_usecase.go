package usecase

import (
	"context"

	"handoff/internal/domain/entity"
)

// PlaceUsecase defines place search for the address entry form.
type PlaceUsecase interface {
	Autocomplete(ctx context.Context, query string) ([]entity.PlaceSuggestion, error)
	ResolvePlace(ctx context.Context, placeID string) (*entity.Place, error)
}
