//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderevents_test
package orderevents

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type OrderReader interface {
	GetOrder(ctx context.Context, id int64) (*entities.Order, error)
}

type OrderLedger interface {
	ChangeStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error)
	MarkDelivered(ctx context.Context, id int64, when time.Time) (*entities.Order, error)
}

type RouteDetacher interface {
	DetachOrder(ctx context.Context, orderID int64) error
}

type (
	ExecuteFn      func(ctx context.Context, event entities.OrderStatusEvent) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
