package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"picko/internal/domain"
	apperrors "picko/internal/errors"
)

type OrderRepository interface {
	Load() ([]domain.Order, bool, error)
	Save(orders []domain.Order) error
	Clear() error
}

// OrderService owns the canonical order collection for the process lifetime.
// Every mutation replaces the in-memory collection and immediately persists
// it; persistence failures propagate to the caller unrecovered.
type OrderService struct {
	repo   OrderRepository
	seed   []domain.Order
	logger *zap.Logger

	mu     sync.Mutex
	orders []domain.Order
}

// NewOrderService loads previously persisted orders, or seeds the store with
// the given demo set on first run.
func NewOrderService(repo OrderRepository, seed []domain.Order, logger *zap.Logger) (*OrderService, error) {
	s := &OrderService{
		repo:   repo,
		seed:   seed,
		logger: logger,
	}

	orders, ok, err := repo.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		s.orders = orders
		logger.Info("orders loaded", zap.Int("count", len(orders)))
		return s, nil
	}

	s.orders = append([]domain.Order(nil), seed...)
	if err := repo.Save(s.orders); err != nil {
		return nil, fmt.Errorf("persisting seed orders: %w", err)
	}
	logger.Info("order store seeded", zap.Int("count", len(s.orders)))
	return s, nil
}

// AllOrders returns every order in insertion order.
func (s *OrderService) AllOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Order(nil), s.orders...)
}

// ActiveOrders returns orders whose last status is not delivered. Canceled
// orders stay in this partition.
func (s *OrderService) ActiveOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Filter(s.orders, func(o domain.Order, _ int) bool {
		return !o.IsFinished()
	})
}

// CompletedOrders returns orders whose last status is delivered.
func (s *OrderService) CompletedOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Filter(s.orders, func(o domain.Order, _ int) bool {
		return o.IsFinished()
	})
}

// AddOrder appends a finalized order (one that already carries its initial
// created status) and persists the collection.
func (s *OrderService) AddOrder(order domain.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if len(order.Statuses) == 0 {
		return apperrors.NewValidationError("order has no initial status")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.findLocked(order.ID); found {
		return apperrors.NewConflictError("order already exists")
	}

	s.orders = append(s.orders, order)
	if err := s.repo.Save(s.orders); err != nil {
		return err
	}

	s.logger.Info("order added",
		zap.String("orderId", order.ID.String()),
		zap.Int("itemCount", len(order.Items)),
	)
	return nil
}

// UpdateOrder replaces the order with the matching id and persists.
func (s *OrderService) UpdateOrder(order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, found := s.findLocked(order.ID)
	if !found {
		return apperrors.NewNotFoundError("order not found")
	}

	s.orders[idx] = order
	if err := s.repo.Save(s.orders); err != nil {
		return err
	}

	s.logger.Info("order updated", zap.String("orderId", order.ID.String()))
	return nil
}

// AppendStatus adds an arbitrary status entry to the order. No transition
// validation happens here; the lifecycle is permissive by design.
func (s *OrderService) AppendStatus(id uuid.UUID, name domain.StatusType, at time.Time) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, found := s.findLocked(id)
	if !found {
		return domain.Order{}, apperrors.NewNotFoundError("order not found")
	}

	updated := s.orders[idx].AppendStatus(name, at)
	s.orders[idx] = updated
	if err := s.repo.Save(s.orders); err != nil {
		return domain.Order{}, err
	}

	s.logger.Info("order status appended",
		zap.String("orderId", id.String()),
		zap.String("status", string(name)),
	)
	return updated, nil
}

// CancelOrder appends a canceled status, honoring the cancellation guard:
// delivered and already-canceled orders cannot be canceled.
func (s *OrderService) CancelOrder(id uuid.UUID, at time.Time) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, found := s.findLocked(id)
	if !found {
		return domain.Order{}, apperrors.NewNotFoundError("order not found")
	}

	if !s.orders[idx].IsCancelable() {
		return domain.Order{}, apperrors.NewConflictError("order can no longer be canceled")
	}

	updated := s.orders[idx].AppendStatus(domain.StatusCanceled, at)
	s.orders[idx] = updated
	if err := s.repo.Save(s.orders); err != nil {
		return domain.Order{}, err
	}

	s.logger.Info("order canceled", zap.String("orderId", id.String()))
	return updated, nil
}

// Reset replaces the collection with the seed set or with nothing, and
// rewrites or clears the persisted copy accordingly.
func (s *OrderService) Reset(toSeed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(); err != nil {
		return err
	}

	if toSeed {
		s.orders = append([]domain.Order(nil), s.seed...)
		if err := s.repo.Save(s.orders); err != nil {
			return err
		}
	} else {
		s.orders = nil
	}

	s.logger.Info("order store reset", zap.Bool("toSeed", toSeed), zap.Int("count", len(s.orders)))
	return nil
}

func (s *OrderService) findLocked(id uuid.UUID) (int, bool) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i, true
		}
	}
	return 0, false
}
