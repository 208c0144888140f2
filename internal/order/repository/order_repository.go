package repository

import (
	"encoding/json"
	"fmt"

	"picko/internal/domain"
	"picko/internal/infrastructure/localstore"
)

// ordersKey is the single persisted document holding every order.
const ordersKey = "orders"

type LocalStoreOrderRepository struct {
	store *localstore.Store
}

func NewLocalStoreOrderRepository(store *localstore.Store) *LocalStoreOrderRepository {
	return &LocalStoreOrderRepository{store: store}
}

// Load returns the persisted orders; the second return value is false when
// nothing has been persisted yet (first run).
func (r *LocalStoreOrderRepository) Load() ([]domain.Order, bool, error) {
	data, ok, err := r.store.Get(ordersKey)
	if err != nil {
		return nil, false, fmt.Errorf("loading orders: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, false, fmt.Errorf("decoding persisted orders: %w", err)
	}
	return orders, true, nil
}

// Save persists the whole collection; the store has replace-the-collection
// write semantics.
func (r *LocalStoreOrderRepository) Save(orders []domain.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encoding orders: %w", err)
	}
	if err := r.store.Set(ordersKey, data); err != nil {
		return fmt.Errorf("saving orders: %w", err)
	}
	return nil
}

func (r *LocalStoreOrderRepository) Clear() error {
	if err := r.store.Delete(ordersKey); err != nil {
		return fmt.Errorf("clearing orders: %w", err)
	}
	return nil
}
