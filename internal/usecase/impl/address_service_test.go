package impl

import (
	"context"
	"testing"
	"time"

	"handoff/internal/domain/entity"
	domainerrors "handoff/internal/domain/errors"
	"handoff/internal/domain/repository"
	"handoff/internal/domain/validation"
	mockRepo "handoff/internal/mocks/repository"
	"handoff/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service     *addressService
	txManager   *mockRepo.MockTransactionManager
	addressRepo *mockRepo.MockAddressRepository
	txRepo      *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T, maxAddresses int) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	txRepo := mockRepo.NewMockAddressRepository(t)

	srv := NewAddressService(AddressServiceParams{
		TxManager:   txManager,
		AddressRepo: addressRepo,
		Validator:   validation.NewAddressValidator(),
		Config:      newTestConfig(maxAddresses),
		Logger:      newDiscardLogger(),
	}).(*addressService)
	srv.now = func() time.Time { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC) }

	return addressServiceFixtures{service: srv, txManager: txManager, addressRepo: addressRepo, txRepo: txRepo}
}

func validAddressInput() *usecase.CreateAddressInput {
	return &usecase.CreateAddressInput{
		Name:          "Home",
		StreetAddress: "7 Xinyi Rd",
		City:          "Taipei",
		Country:       "Taiwan",
		PostalCode:    "110",
		Latitude:      ptr(25.033),
		Longitude:     ptr(121.565),
	}
}

func TestAddressService_ListAddresses(t *testing.T) {
	fx := createTestAddressService(t, 10)
	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Address{{ID: uuid.New(), UserID: userID, Name: "Home"}}

	fx.addressRepo.EXPECT().FindAddressesByOwner(ctx, userID).Return(expected, nil)

	addresses, err := fx.service.ListAddresses(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, addresses)
}

func TestAddressService_CreateAddress_FirstIsPrimary(t *testing.T) {
	fx := createTestAddressService(t, 10)
	ctx := context.Background()
	userID := uuid.New()

	expectTransaction(t, fx.txManager, fx.txRepo)
	fx.txRepo.EXPECT().CountAddressesByOwner(ctx, userID).Return(int64(0), nil)
	fx.txRepo.EXPECT().FindAddressByName(ctx, userID, "Home").Return(nil, repository.ErrAddressNotFound)
	fx.txRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

	address, err := fx.service.CreateAddress(ctx, userID, validAddressInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, address.ID)
	assert.Equal(t, userID, address.UserID)
	assert.True(t, address.IsPrimary)
	assert.Equal(t, &entity.Coordinates{Lat: 25.033, Long: 121.565}, address.Location)
	assert.Equal(t, fx.service.now(), address.CreatedAt)
}

func TestAddressService_CreateAddress_LaterIsNotPrimary(t *testing.T) {
	fx := createTestAddressService(t, 10)
	ctx := context.Background()
	userID := uuid.New()

	expectTransaction(t, fx.txManager, fx.txRepo)
	fx.txRepo.EXPECT().CountAddressesByOwner(ctx, userID).Return(int64(3), nil)
	fx.txRepo.EXPECT().FindAddressByName(ctx, userID, "Home").Return(nil, repository.ErrAddressNotFound)
	fx.txRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

	address, err := fx.service.CreateAddress(ctx, userID, validAddressInput())
	require.NoError(t, err)
	assert.False(t, address.IsPrimary)
}

func TestAddressService_CreateAddress_InvalidNeverReachesRepository(t *testing.T) {
	fx := createTestAddressService(t, 10)
	input := validAddressInput()
	input.City = ""
	input.Latitude = nil
	input.Longitude = nil

	address, err := fx.service.CreateAddress(context.Background(), uuid.New(), input)
	assert.Nil(t, address)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAddress))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "city,lat,long", appErr.Details())
}

func TestAddressService_CreateAddress_DuplicateName(t *testing.T) {
	fx := createTestAddressService(t, 10)
	ctx := context.Background()
	userID := uuid.New()

	expectTransaction(t, fx.txManager, fx.txRepo)
	fx.txRepo.EXPECT().CountAddressesByOwner(ctx, userID).Return(int64(1), nil)
	fx.txRepo.EXPECT().FindAddressByName(ctx, userID, "Home").Return(&entity.Address{Name: "Home"}, nil)

	_, err := fx.service.CreateAddress(ctx, userID, validAddressInput())
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNameExists))
}

func TestAddressService_CreateAddress_NameConflictOnInsert(t *testing.T) {
	fx := createTestAddressService(t, 10)
	ctx := context.Background()
	userID := uuid.New()

	expectTransaction(t, fx.txManager, fx.txRepo)
	fx.txRepo.EXPECT().CountAddressesByOwner(ctx, userID).Return(int64(1), nil)
	fx.txRepo.EXPECT().FindAddressByName(ctx, userID, "Home").Return(nil, repository.ErrAddressNotFound)
	fx.txRepo.EXPECT().CreateAddress(ctx, mock.Anything).Return(errors.WithStack(repository.ErrAddressNameConflict))

	_, err := fx.service.CreateAddress(ctx, userID, validAddressInput())
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNameExists))
}

func TestAddressService_CreateAddress_LimitReached(t *testing.T) {
	fx := createTestAddressService(t, 2)
	ctx := context.Background()
	userID := uuid.New()

	expectTransaction(t, fx.txManager, fx.txRepo)
	fx.txRepo.EXPECT().CountAddressesByOwner(ctx, userID).Return(int64(2), nil)

	_, err := fx.service.CreateAddress(ctx, userID, validAddressInput())
	assert.True(t, errors.Is(err, domainerrors.ErrAddressLimitReached))
}

func TestAddressService_CreateAddress_RepositoryError(t *testing.T) {
	fx := createTestAddressService(t, 10)
	ctx := context.Background()
	userID := uuid.New()
	dbErr := errors.New("connection reset")

	expectTransaction(t, fx.txManager, fx.txRepo)
	fx.txRepo.EXPECT().CountAddressesByOwner(ctx, userID).Return(int64(0), dbErr)

	_, err := fx.service.CreateAddress(ctx, userID, validAddressInput())
	assert.ErrorIs(t, err, dbErr)
}
