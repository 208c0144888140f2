package order

import (
	"time"

	"go.uber.org/zap"

	"picko/internal/infrastructure/localstore"
	"picko/internal/order/controller"
	"picko/internal/order/repository"
	"picko/internal/order/service"
)

func NewModule(store *localstore.Store, logger *zap.Logger) (*controller.OrderController, error) {
	repo := repository.NewLocalStoreOrderRepository(store)

	svc, err := service.NewOrderService(repo, repository.SeedOrders(time.Now()), logger)
	if err != nil {
		return nil, err
	}

	return controller.NewOrderController(svc, logger), nil
}
