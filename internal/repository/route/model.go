package route

import "time"

type RouteDB struct {
	ID             int64
	CityID         int64
	Date           time.Time
	CourierID      *int64
	Status         string
	TotalOrders    int
	TotalDelivered int
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

type RouteStopDB struct {
	ID          int64
	RouteID     int64
	OrderID     int64
	Sequence    int
	Status      string
	Latitude    *float64
	Longitude   *float64
	MapLink     *string
	Notes       *string
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
