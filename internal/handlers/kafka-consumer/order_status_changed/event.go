package order_status_changed

import "time"

// statusChangedEvent - сообщение топика смены статусов заказов.
type statusChangedEvent struct {
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}
