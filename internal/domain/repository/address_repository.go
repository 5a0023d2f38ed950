// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"handoff/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrAddressNameConflict is returned when the owner already has an address with the same name.
	ErrAddressNameConflict = errors.New("owner already has an address with this name")
)

// AddressRepository defines the interface for address-related database operations.
// Addresses are immutable once created.
type AddressRepository interface {
	// CreateAddress persists a new address for its owner.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByOwner retrieves all addresses of a user, primary first, then oldest first.
	FindAddressesByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// FindPrimaryAddressByOwner retrieves the primary address of a user.
	// Returns ErrAddressNotFound if the user has no addresses.
	FindPrimaryAddressByOwner(ctx context.Context, userID uuid.UUID) (*entity.Address, error)

	// FindAddressByName retrieves the user's address with the given name.
	// Returns ErrAddressNotFound if no address uses that name.
	FindAddressByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Address, error)

	// CountAddressesByOwner returns the number of saved addresses of a user.
	CountAddressesByOwner(ctx context.Context, userID uuid.UUID) (int64, error)
}
