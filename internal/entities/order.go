package entities

import "time"

type Order struct {
	ID          int64
	CityID      int64
	Address     string
	Status      OrderStatusType
	PromisedAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsPending - заказ в статусе pendiente и не удален.
func (o Order) IsPending() bool {
	return o.DeletedAt == nil && o.Status == OrderPending
}

type OrderStatusType string

const (
	OrderPending      OrderStatusType = "pendiente"
	OrderConfirmed    OrderStatusType = "confirmado"
	OrderPreparing    OrderStatusType = "en_preparacion"
	OrderOnTheWay     OrderStatusType = "en_camino"
	OrderDelivered    OrderStatusType = "entregado"
	OrderNotDelivered OrderStatusType = "no_entregado"
	OrderCancelled    OrderStatusType = "cancelado"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatusType) IsTerminal() bool {
	return s.IsValid() && len(orderTransitions[s]) == 0
}

// CanTransitionTo - переход разрешен таблицей; повтор текущего статуса переходом не считается.
func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// UnassignedStatuses - статусы, в которых заказ еще можно ставить в маршрут.
var UnassignedStatuses = []OrderStatusType{OrderPending, OrderConfirmed, OrderPreparing}

var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderPending: {
		OrderConfirmed, OrderPreparing, OrderOnTheWay, OrderDelivered, OrderNotDelivered, OrderCancelled,
	},
	OrderConfirmed: {
		OrderPreparing, OrderOnTheWay, OrderDelivered, OrderNotDelivered, OrderCancelled,
	},
	OrderPreparing:    {OrderOnTheWay, OrderDelivered, OrderNotDelivered, OrderCancelled},
	OrderOnTheWay:     {OrderDelivered, OrderNotDelivered, OrderCancelled},
	OrderDelivered:    nil,
	OrderNotDelivered: nil,
	OrderCancelled:    nil,
}

type OrderModify struct {
	ID          *int64
	Status      *OrderStatusType
	DeliveredAt *time.Time
}

// UnassignedOrders - заказы города на день без маршрута плюс календарь этого дня.
type UnassignedOrders struct {
	CityID       int64
	Date         time.Time
	WorkingDay   bool
	SlotCapacity int
	Orders       []Order
}

// OrderStatusEvent - смена статуса заказа во внешней системе заказов.
type OrderStatusEvent struct {
	OrderID   int64
	Status    OrderStatusType
	ChangedAt time.Time
}
