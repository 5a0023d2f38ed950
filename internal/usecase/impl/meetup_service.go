package impl

import (
	"context"
	"log/slog"

	"handoff/config"
	deliverycontext "handoff/internal/delivery/context"
	"handoff/internal/domain/entity"
	domainerrors "handoff/internal/domain/errors"
	"handoff/internal/domain/repository"
	"handoff/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// radiusShare is the fraction of the parties' distance used as the meetup radius.
const radiusShare = 0.25

type meetupService struct {
	addressRepo repository.AddressRepository
	minRadius   float64
	maxRadius   float64
	logger      *slog.Logger
}

// MeetupServiceParams holds dependencies for MeetupService, injected by Fx.
type MeetupServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMeetupService creates a new meetup service instance
func NewMeetupService(params MeetupServiceParams) usecase.MeetupUsecase {
	srv := &meetupService{
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Meetup != nil {
		srv.minRadius = params.Config.Meetup.MinRadiusMeters
		srv.maxRadius = params.Config.Meetup.MaxRadiusMeters
	}

	return srv
}

func (srv *meetupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMeetupPoint centers the neighborhood on the great-circle midpoint of both
// primary addresses.
func (srv *meetupService) GetMeetupPoint(ctx context.Context, userID, counterpartyID uuid.UUID) (*entity.MeetupPoint, error) {
	if userID == counterpartyID {
		return nil, errors.WithStack(domainerrors.ErrSameParty)
	}

	from, err := srv.primaryLocation(ctx, userID)
	if err != nil {
		return nil, err
	}
	to, err := srv.primaryLocation(ctx, counterpartyID)
	if err != nil {
		return nil, err
	}

	point := MeetupPointBetween(*from, *to, srv.minRadius, srv.maxRadius)

	srv.log(ctx).Debug("Meetup point computed",
		slog.Any("userID", userID),
		slog.Any("counterpartyID", counterpartyID),
		slog.String("center", point.Center.String()),
		slog.Float64("radius", point.RadiusMeters),
	)

	return point, nil
}

func (srv *meetupService) primaryLocation(ctx context.Context, userID uuid.UUID) (*entity.Coordinates, error) {
	address, err := srv.addressRepo.FindPrimaryAddressByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrPrimaryAddressMissing, "user %s", userID)
		}

		return nil, errors.Wrap(err, "failed to find primary address")
	}
	if address.Location == nil {
		return nil, errors.Wrapf(domainerrors.ErrPrimaryAddressMissing, "primary address of %s has no location", userID)
	}

	return address.Location, nil
}

// MeetupPointBetween returns the midpoint of a and b with a radius of a quarter of
// their distance, clamped to [minRadius, maxRadius] when those are positive.
func MeetupPointBetween(a, b entity.Coordinates, minRadius, maxRadius float64) *entity.MeetupPoint {
	center := geo.Midpoint(a.Point(), b.Point())
	radius := geo.Distance(a.Point(), b.Point()) * radiusShare

	if minRadius > 0 && radius < minRadius {
		radius = minRadius
	}
	if maxRadius > 0 && radius > maxRadius {
		radius = maxRadius
	}

	return &entity.MeetupPoint{
		Center:       entity.CoordinatesFromPoint(center),
		RadiusMeters: radius,
	}
}
