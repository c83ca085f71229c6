package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Ledger - журнал заказов: статусы доставки и обещанное время.
type Ledger struct {
	log          handlerLogger
	repository   Repository
	cities       CityDirectory
	clock        Clock
	txManager    TxManager
	fallbackZone string
	now          func() time.Time
}

func New(
	log handlerLogger,
	repository Repository,
	cities CityDirectory,
	clock Clock,
	txManager TxManager,
	fallbackZone string,
) *Ledger {
	return &Ledger{
		log:          log.With(logger.NewField("component", "order_ledger")),
		repository:   repository,
		cities:       cities,
		clock:        clock,
		txManager:    txManager,
		fallbackZone: fallbackZone,
		now:          time.Now,
	}
}

func (l *Ledger) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := l.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	if order.DeletedAt != nil {
		return nil, fmt.Errorf("get order %d: %w", id, ErrOrderNotFound)
	}
	return order, nil
}

// Exists - заказ есть и не удален.
func (l *Ledger) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := l.GetOrder(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrInvalidOrderID):
		return false, nil
	default:
		return false, err
	}
}

func (l *Ledger) IsPending(ctx context.Context, id int64) (bool, error) {
	order, err := l.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return false, nil
		}
		return false, err
	}
	return order.IsPending(), nil
}

// MarkDelivered переводит заказ в entregado из любого нетерминального статуса
// и проставляет фактическое время доставки.
func (l *Ledger) MarkDelivered(ctx context.Context, id int64, when time.Time) (*entities.Order, error) {
	var delivered *entities.Order
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := l.GetOrder(ctx, id)
		if err != nil {
			return err
		}

		delivered, err = l.transition(ctx, order, entities.OrderDelivered, when)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("mark order %d delivered: %w", id, err)
	}
	return delivered, nil
}

// ChangeStatus - смена статуса по таблице переходов; entregado проставляет время доставки.
func (l *Ledger) ChangeStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var changed *entities.Order
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := l.GetOrder(ctx, id)
		if err != nil {
			return err
		}

		changed, err = l.transition(ctx, order, status, l.now().UTC())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("change order %d status: %w", id, err)
	}
	return changed, nil
}

// ApplyStopOutcome переносит исход остановки маршрута на заказ.
// Заказ в целевом или терминальном статусе (например, его уже закрыл автозавершатель)
// не трогается: остановка живет своими статусами и не должна на этом падать.
func (l *Ledger) ApplyStopOutcome(ctx context.Context, id int64, stopStatus entities.StopStatusType, when time.Time) error {
	target, ok := entities.OrderStatusForStop(stopStatus)
	if !ok {
		return nil
	}

	return l.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := l.GetOrder(ctx, id)
		if err != nil {
			return fmt.Errorf("apply stop outcome: %w", err)
		}
		if order.Status == target {
			return nil
		}
		if order.Status.IsTerminal() {
			l.log.Warn("stop outcome skipped, order already closed",
				logger.NewField("order_id", id),
				logger.NewField("order_status", order.Status.String()),
				logger.NewField("stop_status", stopStatus.String()),
			)
			return nil
		}

		if _, err := l.transition(ctx, order, target, when); err != nil {
			return fmt.Errorf("apply stop outcome %s to order %d: %w", stopStatus, id, err)
		}
		return nil
	})
}

// ListUnassigned - заказы города, обещанные на гражданский день date по часам города,
// еще не стоящие ни в одном активном маршруте.
func (l *Ledger) ListUnassigned(ctx context.Context, cityID int64, date time.Time) (*entities.UnassignedOrders, error) {
	if cityID <= 0 {
		return nil, ErrInvalidCityID
	}

	city, err := l.cities.GetCity(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("list unassigned orders: %w", err)
	}

	day := entities.Date(date)
	from, to, err := l.clock.LocalDayBounds(day, city.ZoneOr(l.fallbackZone))
	if err != nil {
		return nil, fmt.Errorf("list unassigned orders: %w", err)
	}

	orders, err := l.repository.ListUnassigned(ctx, cityID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list unassigned orders: %w", err)
	}

	return &entities.UnassignedOrders{
		CityID:       cityID,
		Date:         day,
		WorkingDay:   city.IsWorkingDay(day),
		SlotCapacity: city.SlotCapacity,
		Orders:       orders,
	}, nil
}

func (l *Ledger) ListCompletionCandidates(ctx context.Context) ([]entities.CompletionCandidate, error) {
	candidates, err := l.repository.ListCompletionCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completion candidates: %w", err)
	}
	return candidates, nil
}

func (l *Ledger) transition(
	ctx context.Context,
	order *entities.Order,
	status entities.OrderStatusType,
	when time.Time,
) (*entities.Order, error) {
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	orderModify := entities.OrderModify{
		ID:     &order.ID,
		Status: &status,
	}
	if status == entities.OrderDelivered {
		deliveredAt := when.UTC()
		orderModify.DeliveredAt = &deliveredAt
	}

	return l.repository.UpdateStatus(ctx, orderModify)
}
