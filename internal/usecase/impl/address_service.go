package impl

import (
	"context"
	"log/slog"
	"time"

	"handoff/config"
	deliverycontext "handoff/internal/delivery/context"
	"handoff/internal/domain/entity"
	domainerrors "handoff/internal/domain/errors"
	"handoff/internal/domain/repository"
	"handoff/internal/domain/validation"
	"handoff/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	validator   *validation.AddressValidator
	maxPerUser  int
	now         func() time.Time
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Validator   *validation.AddressValidator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	maxPerUser := 0
	if params.Config != nil && params.Config.Addresses != nil {
		maxPerUser = params.Config.Addresses.MaxPerUser
	}

	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		validator:   params.Validator,
		maxPerUser:  maxPerUser,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the caller's addresses, primary first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress validates the input, then checks the limit and the name and inserts
// in one transaction.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.CreateAddressInput) (*entity.Address, error) {
	address := input.ToAddress(userID)

	if violations := srv.validator.Violations(address); len(violations) > 0 {
		srv.log(ctx).Warn("Rejected invalid address", slog.Any("userID", userID), slog.Any("fields", violations))

		return nil, domainerrors.ErrInvalidAddress.WithFields(fieldNames(violations))
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		count, err := addressRepo.CountAddressesByOwner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}
		if srv.maxPerUser > 0 && count >= int64(srv.maxPerUser) {
			return errors.Wrapf(domainerrors.ErrAddressLimitReached, "user already has %d addresses", count)
		}

		if _, err := addressRepo.FindAddressByName(ctx, userID, address.Name); err == nil {
			return errors.WithStack(domainerrors.ErrAddressNameExists)
		} else if !errors.Is(err, repository.ErrAddressNotFound) {
			return errors.Wrap(err, "failed to check address name")
		}

		address.ID = uuid.New()
		address.IsPrimary = count == 0
		address.CreatedAt = srv.now()

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			if errors.Is(err, repository.ErrAddressNameConflict) {
				return errors.WithStack(domainerrors.ErrAddressNameExists)
			}

			return err
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create address", slog.Any("userID", userID), slog.String("name", address.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Address created", slog.Any("userID", userID), slog.Any("addressID", address.ID), slog.Bool("primary", address.IsPrimary))

	return address, nil
}

func fieldNames(fields []validation.Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}

	return names
}
