package usecase

import (
	"context"

	"handoff/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput represents the input for saving a new address.
// Latitude and Longitude are both set or both omitted.
type CreateAddressInput struct {
	Name          string   `json:"name" validate:"required"`
	StreetAddress string   `json:"street_address"`
	Apartment     string   `json:"apartment,omitempty"`
	City          string   `json:"city"`
	Region        string   `json:"region,omitempty"`
	Country       string   `json:"country"`
	PostalCode    string   `json:"postal_code"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"required_with=Latitude,omitempty,longitude"`
	Message       string   `json:"message,omitempty" validate:"max=500"`
}

// ToAddress builds the address entity owned by userID.
func (in *CreateAddressInput) ToAddress(userID uuid.UUID) *entity.Address {
	address := &entity.Address{
		UserID:        userID,
		Name:          in.Name,
		StreetAddress: in.StreetAddress,
		Apartment:     in.Apartment,
		City:          in.City,
		Region:        in.Region,
		Country:       in.Country,
		PostalCode:    in.PostalCode,
		Message:       in.Message,
	}
	if in.Latitude != nil && in.Longitude != nil {
		address.Location = &entity.Coordinates{Lat: *in.Latitude, Long: *in.Longitude}
	}

	return address
}

// AddressUsecase defines the interface for the address book.
type AddressUsecase interface {
	// ListAddresses returns the caller's addresses, primary first.
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	// CreateAddress validates and saves a new address. The first address becomes primary.
	CreateAddress(ctx context.Context, userID uuid.UUID, input *CreateAddressInput) (*entity.Address, error)
}
