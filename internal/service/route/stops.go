package route

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

func (e *Engine) ListStops(ctx context.Context, routeID int64) ([]entities.RouteStop, error) {
	if _, err := e.routes.GetByID(ctx, routeID); err != nil {
		return nil, fmt.Errorf("list stops of route %d: %w", routeID, err)
	}

	stops, err := e.stops.ListByRoute(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("list stops of route %d: %w", routeID, err)
	}
	return stops, nil
}

// UpdateStopDeliveryState пишет исход остановки, переносит его на заказ
// и пересчитывает число доставленных на маршруте.
func (e *Engine) UpdateStopDeliveryState(
	ctx context.Context,
	routeID, orderID int64,
	update entities.StopDeliveryUpdate,
) (*entities.RouteStop, error) {
	if !update.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, update.Status)
	}

	var updated *entities.RouteStop
	err := e.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		route, err := e.routes.GetByID(ctx, routeID)
		if err != nil {
			return err
		}
		if route.Status.IsTerminal() {
			return fmt.Errorf("%w: route is %s", ErrRouteLocked, route.Status)
		}

		stop, err := e.stops.GetByRouteAndOrder(ctx, routeID, orderID)
		if err != nil {
			return err
		}
		if !stop.Status.CanTransitionTo(update.Status) {
			return fmt.Errorf("%w: stop %s -> %s", ErrInvalidTransition, stop.Status, update.Status)
		}

		now := e.now().UTC()
		var deliveredAt *time.Time
		if update.Status.IsTerminal() {
			deliveredAt = &now
		}

		updated, err = e.stops.UpdateStatus(ctx, stop.ID, update, deliveredAt)
		if err != nil {
			return err
		}

		if err := e.orders.ApplyStopOutcome(ctx, orderID, update.Status, now); err != nil {
			return err
		}

		stops, err := e.stops.ListByRoute(ctx, routeID)
		if err != nil {
			return err
		}
		delivered := min(entities.CountDelivered(stops), route.TotalOrders)
		if err := e.routes.UpdateTotals(ctx, routeID, route.TotalOrders, delivered); err != nil {
			return err
		}

		if update.Status == entities.StopDelivered && route.CourierID != nil {
			var distanceKm float64
			if update.DistanceKm != nil {
				distanceKm = *update.DistanceKm
			}
			return e.couriers.RecordDelivery(ctx, *route.CourierID, distanceKm, update.Rating)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update stop of order %d on route %d: %w", orderID, routeID, err)
	}

	StopStatusChangesTotal.WithLabelValues(update.Status.String()).Inc()
	return updated, nil
}
