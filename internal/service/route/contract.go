//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type RouteRepository interface {
	Create(ctx context.Context, routeEntity entities.Route) (*entities.Route, error)
	GetByID(ctx context.Context, id int64) (*entities.Route, error)
	GetAll(ctx context.Context, filter entities.RouteFilter) ([]entities.Route, error)
	Update(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error)
	UpdateStatus(ctx context.Context, id int64, status entities.RouteStatusType) (*entities.Route, error)
	UpdateTotals(ctx context.Context, id int64, totalOrders, totalDelivered int) error
	SetCourier(ctx context.Context, id int64, courierID *int64) error
	SoftDelete(ctx context.Context, id int64) error
}

type StopRepository interface {
	Create(ctx context.Context, stop entities.RouteStop) (*entities.RouteStop, error)
	GetByRouteAndOrder(ctx context.Context, routeID, orderID int64) (*entities.RouteStop, error)
	ListByRoute(ctx context.Context, routeID int64) ([]entities.RouteStop, error)
	// ActiveRoutesByOrders - order id -> id маршрута, где заказ стоит сейчас (неудаленные остановки).
	ActiveRoutesByOrders(ctx context.Context, orderIDs []int64) (map[int64]int64, error)
	SoftDelete(ctx context.Context, id int64) error
	SoftDeleteByRoute(ctx context.Context, routeID int64) error
	UpdateSequences(ctx context.Context, stops []entities.RouteStop) error
	UpdateStatus(
		ctx context.Context,
		id int64,
		update entities.StopDeliveryUpdate,
		deliveredAt *time.Time,
	) (*entities.RouteStop, error)
}

type CourierRegistry interface {
	IsAssignable(ctx context.Context, id int64) (bool, error)
	Release(ctx context.Context, id int64) error
	MarkOnRoute(ctx context.Context, id int64) error
	RecordDelivery(ctx context.Context, id int64, distanceKm float64, rating *float64) error
}

type OrderLedger interface {
	Exists(ctx context.Context, id int64) (bool, error)
	ApplyStopOutcome(ctx context.Context, id int64, stopStatus entities.StopStatusType, when time.Time) error
}

type CityDirectory interface {
	GetCity(ctx context.Context, id int64) (*entities.City, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
