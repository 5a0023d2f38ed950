package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "handoff/internal/delivery/context"
	"handoff/internal/domain/entity"
	domainerrors "handoff/internal/domain/errors"
	"handoff/internal/domain/repository"
	"handoff/internal/domain/service"
	"handoff/internal/domain/validation"
	"handoff/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	validator    *validation.AddressValidator
	publisher    service.EventPublisher
	now          func() time.Time
	logger       *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	DeliveryRepo repository.DeliveryRepository
	Validator    *validation.AddressValidator
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewDeliveryService creates a new delivery service instance
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		deliveryRepo: params.DeliveryRepo,
		validator:    params.Validator,
		publisher:    params.Publisher,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DecideDelivery records the caller's selection, replacing any earlier decision for
// the exchange, and announces it.
func (srv *deliveryService) DecideDelivery(ctx context.Context, userID, exchangeID uuid.UUID, input *usecase.DecideDeliveryInput) (*entity.Delivery, error) {
	delivery := &entity.Delivery{
		ExchangeID: exchangeID,
		DecidedBy:  userID,
		Method:     entity.DeliveryMethod(input.Method),
		DecidedAt:  srv.now().UTC(),
	}
	if input.Address != nil {
		delivery.Address = *input.Address.ToAddress(userID)
	} else {
		delivery.Address = *entity.NewUndecidedAddress(userID)
	}

	if err := srv.checkDelivery(delivery); err != nil {
		srv.log(ctx).Warn("Rejected delivery decision", slog.Any("exchangeID", exchangeID), slog.Any("error", err))

		return nil, err
	}

	if err := srv.deliveryRepo.SaveDelivery(ctx, delivery); err != nil {
		return nil, errors.Wrap(err, "failed to save delivery")
	}

	event := newDeliveryDecidedEvent(delivery, deliverycontext.GetRequestIDFromContext(ctx))
	if err := srv.publisher.PublishDeliveryDecided(ctx, event); err != nil {
		// The decision is stored; consumers can still read it back.
		srv.log(ctx).Error("Failed to publish delivery decision", slog.Any("exchangeID", exchangeID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Delivery decided",
		slog.Any("exchangeID", exchangeID),
		slog.String("method", delivery.Method.String()),
		slog.Bool("undecided", delivery.Undecided()),
	)

	return delivery, nil
}

// GetDelivery reads the decision of an exchange.
func (srv *deliveryService) GetDelivery(ctx context.Context, exchangeID uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.deliveryRepo.FindDeliveryByExchange(ctx, exchangeID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeliveryNotFound, exchangeID.String())
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	return delivery, nil
}

// checkDelivery enforces the pairing of method and location: a meetup carries the
// pin and the meetup name, a pickup carries either nothing or a full address.
func (srv *deliveryService) checkDelivery(delivery *entity.Delivery) error {
	address := &delivery.Address

	switch delivery.Method {
	case entity.DeliveryMethodMeetup:
		if address.Location == nil || !address.Location.InBounds() {
			return errors.Wrap(domainerrors.ErrInvalidDelivery, "meetup requires a pin")
		}
		if address.Name != entity.MeetupAddressName {
			return errors.Wrapf(domainerrors.ErrInvalidDelivery, "meetup must be named %q", entity.MeetupAddressName)
		}
	case entity.DeliveryMethodPickup:
		if *address == *entity.NewUndecidedAddress(delivery.DecidedBy) {
			return nil
		}
		if violations := srv.validator.Violations(address); len(violations) > 0 {
			return domainerrors.ErrInvalidAddress.WithFields(fieldNames(violations))
		}
	default:
		return errors.Wrapf(domainerrors.ErrInvalidDelivery, "unknown method %q", delivery.Method)
	}

	return nil
}

func newDeliveryDecidedEvent(delivery *entity.Delivery, requestID string) *service.DeliveryDecidedEvent {
	event := &service.DeliveryDecidedEvent{
		RequestID:  requestID,
		ExchangeID: delivery.ExchangeID.String(),
		DecidedBy:  delivery.DecidedBy.String(),
		Method:     delivery.Method.String(),
		Name:       delivery.Address.Name,
		DecidedAt:  delivery.DecidedAt.Format(time.RFC3339),
	}
	if loc := delivery.Address.Location; loc != nil {
		lat, long := loc.Lat, loc.Long
		event.Latitude = &lat
		event.Longitude = &long
	}

	return event
}
