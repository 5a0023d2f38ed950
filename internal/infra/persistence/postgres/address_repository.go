// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address for its owner.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrAddressNameConflict)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAddressCreationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error
	if err != nil {
		return nil, notFoundOr(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByOwner retrieves all addresses of a user.
func (repo *addressRepository) FindAddressesByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_primary DESC").
		Order("created_at ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by owner")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// FindPrimaryAddressByOwner retrieves the primary address of a user.
func (repo *addressRepository) FindPrimaryAddressByOwner(ctx context.Context, userID uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_primary = ?", userID, true).
		First(&addressM).Error
	if err != nil {
		return nil, notFoundOr(err, "failed to find primary address by owner")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressByName retrieves the user's address with the given name.
func (repo *addressRepository) FindAddressByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&addressM).Error
	if err != nil {
		return nil, notFoundOr(err, "failed to find address by name")
	}

	return toAddressDomain(&addressM), nil
}

// CountAddressesByOwner returns the number of saved addresses of a user.
func (repo *addressRepository) CountAddressesByOwner(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count addresses by owner")
	}

	return count, nil
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrAddressNotFound
	}

	return errors.Wrap(err, message)
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          data.Name,
		StreetAddress: data.StreetAddress,
		Apartment:     data.Apartment,
		City:          data.City,
		Region:        data.Region,
		Country:       data.Country,
		PostalCode:    data.PostalCode,
		Location:      toCoordinates(data.Latitude, data.Longitude),
		Message:       data.Message,
		IsPrimary:     data.IsPrimary,
		CreatedAt:     data.CreatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	lat, long := fromCoordinates(data.Location)

	return &model.AddressModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Name:          data.Name,
		StreetAddress: data.StreetAddress,
		Apartment:     data.Apartment,
		City:          data.City,
		Region:        data.Region,
		Country:       data.Country,
		PostalCode:    data.PostalCode,
		Latitude:      lat,
		Longitude:     long,
		Message:       data.Message,
		IsPrimary:     data.IsPrimary,
		CreatedAt:     data.CreatedAt,
	}
}

// toCoordinates treats a half-set pair as no position.
func toCoordinates(lat, long *float64) *entity.Coordinates {
	if lat == nil || long == nil {
		return nil
	}

	return &entity.Coordinates{Lat: *lat, Long: *long}
}

func fromCoordinates(c *entity.Coordinates) (lat, long *float64) {
	if c == nil {
		return nil, nil
	}

	la, lo := c.Lat, c.Long

	return &la, &lo
}
