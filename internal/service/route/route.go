package route

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

// Engine ведет маршруты: создание, назначение заказов, порядок остановок и их статусы.
type Engine struct {
	routes    RouteRepository
	stops     StopRepository
	couriers  CourierRegistry
	orders    OrderLedger
	cities    CityDirectory
	txManager TxManager
	now       func() time.Time
}

func New(
	routes RouteRepository,
	stops StopRepository,
	couriers CourierRegistry,
	orders OrderLedger,
	cities CityDirectory,
	txManager TxManager,
) *Engine {
	return &Engine{
		routes:    routes,
		stops:     stops,
		couriers:  couriers,
		orders:    orders,
		cities:    cities,
		txManager: txManager,
		now:       time.Now,
	}
}

// CreateRoute только проверяет курьера, его статус при создании не меняется.
func (e *Engine) CreateRoute(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error) {
	if routeModify.CityID == nil || routeModify.Date == nil || routeModify.CourierID == nil {
		return nil, ErrMissingRequiredFields
	}

	if _, err := e.cities.GetCity(ctx, *routeModify.CityID); err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}

	if err := e.ensureAssignable(ctx, *routeModify.CourierID); err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}

	route, err := e.routes.Create(ctx, entities.Route{
		CityID:    *routeModify.CityID,
		Date:      entities.Date(*routeModify.Date),
		CourierID: routeModify.CourierID,
		Status:    entities.RoutePlanned,
		Notes:     routeModify.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}
	return route, nil
}

func (e *Engine) GetRoute(ctx context.Context, id int64) (*entities.Route, error) {
	if id <= 0 {
		return nil, ErrInvalidRouteID
	}

	route, err := e.routes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route %d: %w", id, err)
	}
	return route, nil
}

func (e *Engine) GetRoutes(ctx context.Context, filter entities.RouteFilter) ([]entities.Route, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if filter.Date != nil {
		day := entities.Date(*filter.Date)
		filter.Date = &day
	}

	routes, err := e.routes.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get routes: %w", err)
	}
	return routes, nil
}

// UpdateRoute меняет дату, заметки или курьера. Смена курьера требует, чтобы новый был свободен,
// и возможна только пока маршрут не начат.
func (e *Engine) UpdateRoute(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error) {
	if routeModify.ID == nil || *routeModify.ID <= 0 {
		return nil, ErrInvalidRouteID
	}
	if routeModify.Date == nil && routeModify.Notes == nil && routeModify.CourierID == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	var updated *entities.Route
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := e.routes.GetByID(ctx, *routeModify.ID)
		if err != nil {
			return err
		}
		if route.Status.IsTerminal() {
			return fmt.Errorf("%w: route is %s", ErrRouteLocked, route.Status)
		}

		courierChanged := routeModify.CourierID != nil &&
			(route.CourierID == nil || *route.CourierID != *routeModify.CourierID)
		if courierChanged {
			if route.Status != entities.RoutePlanned {
				return fmt.Errorf("%w: courier change on %s route", ErrRouteLocked, route.Status)
			}
			if err := e.ensureAssignable(ctx, *routeModify.CourierID); err != nil {
				return err
			}
		}

		if routeModify.Date != nil {
			day := entities.Date(*routeModify.Date)
			routeModify.Date = &day
		}
		routeModify.CityID = nil

		updated, err = e.routes.Update(ctx, routeModify)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update route %d: %w", *routeModify.ID, err)
	}
	return updated, nil
}

// DeleteRoute мягко удаляет маршрут вместе с остановками, заказы снова можно назначать.
func (e *Engine) DeleteRoute(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidRouteID
	}

	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := e.routes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if route.Status == entities.RouteInProgress {
			return fmt.Errorf("%w: route is %s", ErrRouteLocked, route.Status)
		}

		if err := e.stops.SoftDeleteByRoute(ctx, id); err != nil {
			return err
		}
		return e.routes.SoftDelete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete route %d: %w", id, err)
	}
	return nil
}

// ChangeRouteState - переход по таблице состояний маршрута. en_progreso переводит курьера в en_ruta,
// completada и cancelada освобождают его.
func (e *Engine) ChangeRouteState(ctx context.Context, id int64, status entities.RouteStatusType) (*entities.Route, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var changed *entities.Route
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := e.routes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !route.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, route.Status, status)
		}

		switch status {
		case entities.RouteInProgress:
			if route.CourierID == nil {
				return ErrCourierNotAssigned
			}
			if err := e.couriers.MarkOnRoute(ctx, *route.CourierID); err != nil {
				return err
			}
		case entities.RouteCompleted, entities.RouteCancelled:
			if route.CourierID != nil {
				if err := e.couriers.Release(ctx, *route.CourierID); err != nil {
					return err
				}
			}
		}

		changed, err = e.routes.UpdateStatus(ctx, id, status)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("change route %d state: %w", id, err)
	}
	return changed, nil
}

func (e *Engine) ensureAssignable(ctx context.Context, courierID int64) error {
	ok, err := e.couriers.IsAssignable(ctx, courierID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: courier %d", ErrCourierUnavailable, courierID)
	}
	return nil
}
