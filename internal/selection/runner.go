package selection

import (
	"context"
	"fmt"
	"log/slog"

	"handoff/internal/domain/service"

	"github.com/pkg/errors"
)

// Runner executes workflow commands against the backend ports.
type Runner struct {
	addresses AddressBook
	places    service.GeocodingProvider
	meetup    MeetupPointService
	logger    *slog.Logger
}

// NewRunner is the constructor for Runner.
func NewRunner(addresses AddressBook, places service.GeocodingProvider, meetup MeetupPointService, logger *slog.Logger) *Runner {
	return &Runner{
		addresses: addresses,
		places:    places,
		meetup:    meetup,
		logger:    logger,
	}
}

// Run executes cmd and returns its outcome. Failures, including panics in a port,
// come back as the event's error and are never returned to the caller.
func (r *Runner) Run(ctx context.Context, cmd Command) (ev Event) {
	defer func() {
		if rec := recover(); rec != nil {
			err := errors.Errorf("panic: %v", rec)
			r.logger.Error("Selection command panicked",
				slog.String("command", fmt.Sprintf("%T", cmd)),
				slog.Any("panic", rec),
			)
			ev = failed(cmd, err)
		}
	}()

	ev = r.run(ctx, cmd)
	if err := eventErr(ev); err != nil {
		r.logger.Warn("Selection command failed",
			slog.String("command", fmt.Sprintf("%T", cmd)),
			slog.Any("error", err),
		)
	}

	return ev
}

func (r *Runner) run(ctx context.Context, cmd Command) Event {
	switch c := cmd.(type) {
	case LoadAddresses:
		addresses, err := r.addresses.ListAddresses(ctx)

		return AddressesLoaded{Addresses: addresses, Err: err}
	case SubmitAddress:
		err := r.addresses.CreateAddress(ctx, c.Address)

		return AddressSubmitted{Address: c.Address, Err: err}
	case SearchPlaces:
		suggestions, err := r.places.Autocomplete(ctx, c.Query)

		return PlacesFound{Query: c.Query, Suggestions: suggestions, Err: err}
	case ResolvePlace:
		place, err := r.places.Resolve(ctx, c.PlaceID)

		return PlaceResolved{PlaceID: c.PlaceID, Place: place, Err: err}
	case FetchMeetupPoint:
		point, err := r.meetup.GetMeetupPoint(ctx, c.Pair)

		return MeetupPointFetched{Pair: c.Pair, Point: point, Err: err}
	default:
		panic(fmt.Sprintf("selection: unknown command %T", cmd))
	}
}

func eventErr(ev Event) error {
	switch e := ev.(type) {
	case AddressesLoaded:
		return e.Err
	case AddressSubmitted:
		return e.Err
	case PlacesFound:
		return e.Err
	case PlaceResolved:
		return e.Err
	case MeetupPointFetched:
		return e.Err
	default:
		return nil
	}
}
