package order_handle

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/orderevents"
)

type StatusHandlerFactory struct {
	ledger orderevents.OrderLedger
	routes orderevents.RouteDetacher
	now    func() time.Time
}

func NewStatusHandlerFactory(ledger orderevents.OrderLedger, routes orderevents.RouteDetacher) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		ledger: ledger,
		routes: routes,
		now:    time.Now,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (orderevents.ExecuteFn, error) {
	switch status {
	case entities.OrderConfirmed,
		entities.OrderPreparing,
		entities.OrderOnTheWay,
		entities.OrderNotDelivered:
		return f.changeStatusHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", orderevents.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) changeStatusHandler(ctx context.Context, event entities.OrderStatusEvent) error {
	if _, err := f.ledger.ChangeStatus(ctx, event.OrderID, event.Status); err != nil {
		return fmt.Errorf("set order %d %s: %w", event.OrderID, event.Status, err)
	}
	return nil
}

// cancelledHandler сначала снимает заказ с планируемого маршрута, иначе остановка останется висеть.
func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, event entities.OrderStatusEvent) error {
	if err := f.routes.DetachOrder(ctx, event.OrderID); err != nil {
		return fmt.Errorf("detach cancelled order %d: %w", event.OrderID, err)
	}
	if _, err := f.ledger.ChangeStatus(ctx, event.OrderID, entities.OrderCancelled); err != nil {
		return fmt.Errorf("cancel order %d: %w", event.OrderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, event entities.OrderStatusEvent) error {
	when := event.ChangedAt
	if when.IsZero() {
		when = f.now()
	}
	if _, err := f.ledger.MarkDelivered(ctx, event.OrderID, when.UTC()); err != nil {
		return fmt.Errorf("mark order %d delivered: %w", event.OrderID, err)
	}
	return nil
}
