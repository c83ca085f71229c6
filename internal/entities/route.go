package entities

import (
	"slices"
	"time"
)

type Route struct {
	ID             int64
	CityID         int64
	Date           time.Time
	CourierID      *int64
	Status         RouteStatusType
	TotalOrders    int
	TotalDelivered int
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// IsLocked - снимать заказы и курьера с маршрута в этом состоянии нельзя.
func (r Route) IsLocked() bool {
	return r.Status == RouteInProgress || r.Status == RouteCompleted
}

type RouteStatusType string

const (
	RoutePlanned    RouteStatusType = "planificada"
	RouteInProgress RouteStatusType = "en_progreso"
	RouteCompleted  RouteStatusType = "completada"
	RouteCancelled  RouteStatusType = "cancelada"
)

func (s RouteStatusType) String() string {
	return string(s)
}

func (s RouteStatusType) IsValid() bool {
	_, ok := routeTransitions[s]
	return ok
}

func (s RouteStatusType) IsTerminal() bool {
	return s == RouteCompleted || s == RouteCancelled
}

func (s RouteStatusType) CanTransitionTo(next RouteStatusType) bool {
	return slices.Contains(routeTransitions[s], next)
}

var routeTransitions = map[RouteStatusType][]RouteStatusType{
	RoutePlanned:    {RouteInProgress, RouteCancelled},
	RouteInProgress: {RouteCompleted, RouteCancelled},
	RouteCompleted:  nil,
	RouteCancelled:  nil,
}

type RouteModify struct {
	ID        *int64
	CityID    *int64
	Date      *time.Time
	CourierID *int64
	Notes     *string
}

type RouteFilter struct {
	CityID    *int64
	Date      *time.Time
	Status    *RouteStatusType
	CourierID *int64
}

type RouteStop struct {
	ID          int64
	RouteID     int64
	OrderID     int64
	Sequence    int
	Status      StopStatusType
	Latitude    *float64
	Longitude   *float64
	MapLink     *string
	Notes       *string
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type StopStatusType string

const (
	StopPending   StopStatusType = "pendiente"
	StopOnTheWay  StopStatusType = "en_camino"
	StopDelivered StopStatusType = "entregado"
	StopFailed    StopStatusType = "fallido"
)

func (s StopStatusType) String() string {
	return string(s)
}

func (s StopStatusType) IsValid() bool {
	_, ok := stopTransitions[s]
	return ok
}

// IsTerminal - на этих статусах проставляется время фактической доставки.
func (s StopStatusType) IsTerminal() bool {
	return s == StopDelivered || s == StopFailed
}

func (s StopStatusType) CanTransitionTo(next StopStatusType) bool {
	return slices.Contains(stopTransitions[s], next)
}

var stopTransitions = map[StopStatusType][]StopStatusType{
	StopPending:   {StopOnTheWay, StopDelivered, StopFailed},
	StopOnTheWay:  {StopDelivered, StopFailed},
	StopDelivered: nil,
	StopFailed:    nil,
}

// OrderStatusForStop переводит исход остановки в статус заказа.
// pendiente ничего не меняет в заказе, поэтому второй результат false.
func OrderStatusForStop(s StopStatusType) (OrderStatusType, bool) {
	switch s {
	case StopOnTheWay:
		return OrderOnTheWay, true
	case StopDelivered:
		return OrderDelivered, true
	case StopFailed:
		return OrderNotDelivered, true
	default:
		return "", false
	}
}

// StopDeliveryUpdate - новое состояние остановки от курьера/диспетчера.
type StopDeliveryUpdate struct {
	Status     StopStatusType
	Notes      *string
	DistanceKm *float64
	Rating     *float64
}

// Resequence упаковывает номера остановок в 1..N, сохраняя относительный порядок.
// Исходный слайс не меняется.
func Resequence(stops []RouteStop) []RouteStop {
	packed := slices.Clone(stops)
	slices.SortStableFunc(packed, func(a, b RouteStop) int {
		return a.Sequence - b.Sequence
	})
	for i := range packed {
		packed[i].Sequence = i + 1
	}
	return packed
}

// CountDelivered считает остановки в статусе entregado.
func CountDelivered(stops []RouteStop) int {
	delivered := 0
	for _, stop := range stops {
		if stop.Status == StopDelivered {
			delivered++
		}
	}
	return delivered
}
