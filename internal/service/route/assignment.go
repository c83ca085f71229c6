package route

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

// AssignOrders ставит пакет заказов в маршрут. Пакет не атомарный: каждая остановка пишется
// отдельно, отклоненные заказы возвращаются в result.Errors вместе с маршрутом-конфликтом.
// Номера остановок берутся от вызывающего как есть.
func (e *Engine) AssignOrders(
	ctx context.Context,
	routeID int64,
	items []entities.AssignmentItem,
) (*entities.AssignmentResult, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}

	route, err := e.routes.GetByID(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("assign orders to route %d: %w", routeID, err)
	}
	if route.Status.IsTerminal() {
		return nil, fmt.Errorf("assign orders to route %d: %w: route is %s", routeID, ErrRouteLocked, route.Status)
	}

	existing, err := e.stops.ListByRoute(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("assign orders to route %d: %w", routeID, err)
	}
	usedSequences := make(map[int]struct{}, len(existing)+len(items))
	for _, stop := range existing {
		usedSequences[stop.Sequence] = struct{}{}
	}

	result := &entities.AssignmentResult{RouteID: routeID}
	reject := func(item entities.AssignmentItem, conflictRouteID *int64, reason error) {
		result.Errors = append(result.Errors, entities.AssignmentError{
			OrderID:         item.OrderID,
			ConflictRouteID: conflictRouteID,
			Err:             reason,
		})
		AssignmentRejectsTotal.WithLabelValues(rejectReason(reason)).Inc()
	}

	// 1. существование заказов
	known := make([]entities.AssignmentItem, 0, len(items))
	for _, item := range items {
		if item.Sequence < 1 {
			reject(item, nil, ErrInvalidSequence)
			continue
		}

		exists, err := e.orders.Exists(ctx, item.OrderID)
		if err != nil {
			reject(item, nil, err)
			continue
		}
		if !exists {
			reject(item, nil, ErrOrderNotFound)
			continue
		}
		known = append(known, item)
	}

	// 2. конфликты с другими маршрутами
	activeRoutes := map[int64]int64{}
	if len(known) > 0 {
		activeRoutes, err = e.stops.ActiveRoutesByOrders(ctx, orderIDs(known))
		if err != nil {
			return nil, fmt.Errorf("assign orders to route %d: check conflicts: %w", routeID, err)
		}
	}

	// 3-4. остановки по одной, ошибка одной не прерывает остальные
	for _, item := range known {
		if conflictRouteID, ok := activeRoutes[item.OrderID]; ok {
			reject(item, &conflictRouteID, ErrOrderAlreadyAssigned)
			continue
		}
		if _, taken := usedSequences[item.Sequence]; taken {
			reject(item, nil, ErrSequenceTaken)
			continue
		}

		stop, err := e.stops.Create(ctx, entities.RouteStop{
			RouteID:   routeID,
			OrderID:   item.OrderID,
			Sequence:  item.Sequence,
			Status:    entities.StopPending,
			Latitude:  item.Latitude,
			Longitude: item.Longitude,
			MapLink:   item.MapLink,
			Notes:     item.Notes,
		})
		if err != nil {
			reject(item, e.lookupConflict(ctx, item.OrderID, err), err)
			continue
		}

		result.Created = append(result.Created, *stop)
		activeRoutes[item.OrderID] = routeID
		usedSequences[item.Sequence] = struct{}{}
		AssignedStopsTotal.Inc()
	}

	// 5. счетчики маршрута
	result.TotalOrders = route.TotalOrders + len(result.Created)
	result.TotalDelivered = route.TotalDelivered
	if len(result.Created) > 0 {
		err = e.routes.UpdateTotals(ctx, routeID, result.TotalOrders, result.TotalDelivered)
		if err != nil {
			return result, fmt.Errorf("assign orders to route %d: update totals: %w", routeID, err)
		}
	}

	return result, nil
}

// UnassignOrder снимает заказ с маршрута и заново упаковывает номера оставшихся остановок.
func (e *Engine) UnassignOrder(ctx context.Context, routeID, orderID int64) error {
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := e.routes.GetByID(ctx, routeID)
		if err != nil {
			return err
		}
		if route.IsLocked() {
			return fmt.Errorf("%w: route is %s", ErrRouteLocked, route.Status)
		}

		return e.removeStop(ctx, route, orderID)
	})
	if err != nil {
		return fmt.Errorf("unassign order %d from route %d: %w", orderID, routeID, err)
	}
	return nil
}

// UnassignCourier снимает курьера с маршрута и освобождает его.
func (e *Engine) UnassignCourier(ctx context.Context, routeID int64) error {
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := e.routes.GetByID(ctx, routeID)
		if err != nil {
			return err
		}
		if route.IsLocked() {
			return fmt.Errorf("%w: route is %s", ErrRouteLocked, route.Status)
		}
		if route.CourierID == nil {
			return nil
		}

		if err := e.routes.SetCourier(ctx, routeID, nil); err != nil {
			return err
		}
		return e.couriers.Release(ctx, *route.CourierID)
	})
	if err != nil {
		return fmt.Errorf("unassign courier from route %d: %w", routeID, err)
	}
	return nil
}

// DetachOrder снимает заказ с планируемого маршрута, если он там стоит.
// Начатые и закрытые маршруты не трогает: исход остановки там фиксирует курьер.
func (e *Engine) DetachOrder(ctx context.Context, orderID int64) error {
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		active, err := e.stops.ActiveRoutesByOrders(ctx, []int64{orderID})
		if err != nil {
			return err
		}
		routeID, ok := active[orderID]
		if !ok {
			return nil
		}

		route, err := e.routes.GetByID(ctx, routeID)
		if err != nil {
			return err
		}
		if route.Status != entities.RoutePlanned {
			return nil
		}

		return e.removeStop(ctx, route, orderID)
	})
	if err != nil {
		return fmt.Errorf("detach order %d: %w", orderID, err)
	}
	return nil
}

func (e *Engine) removeStop(ctx context.Context, route *entities.Route, orderID int64) error {
	stop, err := e.stops.GetByRouteAndOrder(ctx, route.ID, orderID)
	if err != nil {
		return err
	}
	if err := e.stops.SoftDelete(ctx, stop.ID); err != nil {
		return err
	}

	remaining, err := e.stops.ListByRoute(ctx, route.ID)
	if err != nil {
		return err
	}

	packed := entities.Resequence(remaining)
	changed := make([]entities.RouteStop, 0, len(packed))
	for i, stop := range packed {
		if remaining[i].ID != stop.ID || remaining[i].Sequence != stop.Sequence {
			changed = append(changed, stop)
		}
	}
	if len(changed) > 0 {
		if err := e.stops.UpdateSequences(ctx, changed); err != nil {
			return err
		}
	}

	total := max(route.TotalOrders-1, 0)
	delivered := min(entities.CountDelivered(packed), total)
	return e.routes.UpdateTotals(ctx, route.ID, total, delivered)
}

// lookupConflict дочитывает маршрут-конфликт, если уникальный индекс сработал на гонке
// между проверкой и вставкой.
func (e *Engine) lookupConflict(ctx context.Context, orderID int64, err error) *int64 {
	if !errors.Is(err, ErrOrderAlreadyAssigned) {
		return nil
	}

	active, lookupErr := e.stops.ActiveRoutesByOrders(ctx, []int64{orderID})
	if lookupErr != nil {
		return nil
	}
	if routeID, ok := active[orderID]; ok {
		return &routeID
	}
	return nil
}

func orderIDs(items []entities.AssignmentItem) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.OrderID)
	}
	return ids
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrOrderAlreadyAssigned):
		return "already_assigned"
	case errors.Is(err, ErrOrderNotFound):
		return "order_not_found"
	case errors.Is(err, ErrSequenceTaken), errors.Is(err, ErrInvalidSequence):
		return "sequence"
	default:
		return "error"
	}
}
