package testutil

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"picko/internal/domain"
	"picko/internal/infrastructure/localstore"
)

// SetupTestStore returns a local store over a per-test temp directory.
func SetupTestStore(t *testing.T) *localstore.Store {
	t.Helper()

	store, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return store
}

// NewTestOrder builds a valid cash order with one margarita and a fresh
// created status. Customer data is faked.
func NewTestOrder(t *testing.T, now time.Time) domain.Order {
	t.Helper()

	pizza, ok := domain.CatalogPizza(domain.PizzaMargarita)
	if !ok {
		t.Fatal("margarita missing from catalog")
	}

	return domain.Order{
		ID:              uuid.New(),
		CustomerName:    gofakeit.Name(),
		DeliveryAddress: gofakeit.Address().Street,
		PaymentMethod:   domain.PaymentCash,
		Items: []domain.OrderItem{
			{
				ID:       uuid.New(),
				Pizza:    pizza,
				Quantity: 1,
			},
		},
		Statuses: []domain.Status{
			{Name: domain.StatusCreated, CreatedAt: now},
		},
		CreatedAt: now,
	}
}
