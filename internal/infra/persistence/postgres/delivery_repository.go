package postgres

import (
	"context"

	"handoff/internal/domain/entity"
	domainerrors "handoff/internal/domain/errors"
	"handoff/internal/domain/repository"
	"handoff/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deliveryRepository implements the domain.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// SaveDelivery inserts the decision or replaces the previous one for the exchange.
func (repo *deliveryRepository) SaveDelivery(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "exchange_id"}},
			UpdateAll: true,
		}).
		Create(deliveryM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save delivery")
	}

	return nil
}

// FindDeliveryByExchange retrieves the decision of an exchange.
func (repo *deliveryRepository) FindDeliveryByExchange(ctx context.Context, exchangeID uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel
	err := repo.db.WithContext(ctx).
		Where("exchange_id = ?", exchangeID).
		First(&deliveryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by exchange")
	}

	return toDeliveryDomain(&deliveryM), nil
}

func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	return &entity.Delivery{
		ExchangeID: data.ExchangeID,
		DecidedBy:  data.DecidedBy,
		Method:     entity.DeliveryMethod(data.Method),
		Address: entity.Address{
			UserID:        data.DecidedBy,
			Name:          data.Name,
			StreetAddress: data.StreetAddress,
			Apartment:     data.Apartment,
			City:          data.City,
			Region:        data.Region,
			Country:       data.Country,
			PostalCode:    data.PostalCode,
			Location:      toCoordinates(data.Latitude, data.Longitude),
			Message:       data.Message,
		},
		DecidedAt: data.DecidedAt,
	}
}

func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	lat, long := fromCoordinates(data.Address.Location)

	return &model.DeliveryModel{
		ExchangeID:    data.ExchangeID,
		DecidedBy:     data.DecidedBy,
		Method:        data.Method.String(),
		Name:          data.Address.Name,
		StreetAddress: data.Address.StreetAddress,
		Apartment:     data.Address.Apartment,
		City:          data.Address.City,
		Region:        data.Address.Region,
		Country:       data.Address.Country,
		PostalCode:    data.Address.PostalCode,
		Latitude:      lat,
		Longitude:     long,
		Message:       data.Address.Message,
		DecidedAt:     data.DecidedAt,
	}
}
