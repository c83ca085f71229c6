package orderevents

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

// Service применяет к журналу заказов статусы, пришедшие из системы заказов.
type Service struct {
	orders        OrderReader
	statusFactory HandlerFactory
}

func New(orders OrderReader, statusFactory HandlerFactory) *Service {
	return &Service{
		orders:        orders,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessOrderStatusChange(ctx context.Context, event entities.OrderStatusEvent) (*entities.Order, error) {
	if event.OrderID <= 0 || !event.Status.IsValid() {
		return nil, fmt.Errorf("%w: order %d status %q", ErrInvalidEvent, event.OrderID, event.Status)
	}

	order, err := s.orders.GetOrder(ctx, event.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", event.OrderID, err)
	}

	// повторная доставка события
	if order.Status == event.Status {
		return order, nil
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, event); err != nil {
		return nil, err
	}

	order, err = s.orders.GetOrder(ctx, event.OrderID)
	if err != nil {
		return nil, fmt.Errorf("reload order %d: %w", event.OrderID, err)
	}
	return order, nil
}
