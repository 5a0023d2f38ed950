package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"handoff/config"
	deliverycontext "handoff/internal/delivery/context"
	"handoff/internal/domain/entity"
	domainerrors "handoff/internal/domain/errors"
	"handoff/internal/domain/service"
	"handoff/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const minQueryLength = 2

type placeService struct {
	provider service.GeocodingProvider
	cache    service.PlaceCache
	group    singleflight.Group
	timeout  time.Duration
	logger   *slog.Logger
}

// PlaceServiceParams holds dependencies for PlaceService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	Provider service.GeocodingProvider
	Cache    service.PlaceCache
	Config   *config.Config
	Logger   *slog.Logger
}

// NewPlaceService creates a new place service instance
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	return &placeService{
		provider: params.Provider,
		cache:    params.Cache,
		timeout:  params.Config.Geocoding.Timeout,
		logger:   params.Logger,
	}
}

func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Autocomplete returns no suggestions for queries too short to be useful.
func (srv *placeService) Autocomplete(ctx context.Context, query string) ([]entity.PlaceSuggestion, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLength {
		return []entity.PlaceSuggestion{}, nil
	}

	suggestions, err := srv.provider.Autocomplete(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Place autocomplete failed", slog.String("query", query), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGeocodingUnavailable, err.Error())
	}

	return suggestions, nil
}

// ResolvePlace serves from the cache when possible; concurrent misses for one place
// share a single upstream call, which outlives any one caller's cancellation.
func (srv *placeService) ResolvePlace(ctx context.Context, placeID string) (*entity.Place, error) {
	if placeID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "place id is required")
	}

	if cached, err := srv.cache.Get(ctx, placeID); err != nil {
		srv.log(ctx).Warn("Place cache read failed", slog.String("placeID", placeID), slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	flight := srv.group.DoChan(placeID, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.timeout)
		defer cancel()

		place, err := srv.provider.Resolve(flightCtx, placeID)
		if err != nil {
			return nil, err
		}

		if err := srv.cache.Set(flightCtx, place); err != nil {
			srv.log(ctx).Warn("Place cache write failed", slog.String("placeID", placeID), slog.Any("error", err))
		}

		return place, nil
	})

	var res singleflight.Result
	select {
	case res = <-flight:
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	}

	v, err, shared := res.Val, res.Err, res.Shared
	if err != nil {
		if errors.Is(err, service.ErrPlaceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaceNotFound, placeID)
		}
		srv.log(ctx).Warn("Place resolution failed", slog.String("placeID", placeID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGeocodingUnavailable, err.Error())
	}

	srv.log(ctx).Debug("Place resolved", slog.String("placeID", placeID), slog.Bool("shared", shared))

	return v.(*entity.Place), nil
}
