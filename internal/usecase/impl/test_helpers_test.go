package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"handoff/config"
	"handoff/internal/domain/repository"
	mockRepo "handoff/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxAddresses int) *config.Config {
	cfg := &config.Config{
		Addresses: &config.AddressesConfig{MaxPerUser: maxAddresses},
	}
	cfg.ApplyDefaults()

	return cfg
}

func ptr[T any](v T) *T {
	return &v
}

// expectTransaction runs the transaction body against the given address repository.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, addressRepo repository.AddressRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAddressRepository().Return(addressRepo)

			return fn(factory)
		})
}
