// Package dto описывает JSON-контракт REST API диспетчерской.
package dto

import "time"

type PingResponse struct {
	Message    *string   `json:"message,omitempty"`
	ServerTime time.Time `json:"server_time"`
}

type CourierMetrics struct {
	TotalDeliveries int64   `json:"total_deliveries"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	AvgRating       float64 `json:"avg_rating"`
	RatingsCount    int64   `json:"ratings_count"`
}

type Courier struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	CityID        *int64         `json:"city_id,omitempty"`
	Status        string         `json:"status"`
	TransportType string         `json:"transport_type"`
	Metrics       CourierMetrics `json:"metrics"`
}

type CourierCreate struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	CityID        *int64 `json:"city_id,omitempty"`
	Status        string `json:"status"`
	TransportType string `json:"transport_type"`
}

type CourierCreateResponse struct {
	ID int64 `json:"id"`
}

type CourierUpdate struct {
	ID            int64   `json:"id"`
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	CityID        *int64  `json:"city_id,omitempty"`
	Status        *string `json:"status,omitempty"`
	TransportType *string `json:"transport_type,omitempty"`
}

type City struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Timezone     string `json:"timezone"`
	WorkingDays  []int  `json:"working_days"`
	SlotCapacity int    `json:"slot_capacity"`
}

type CityCreate struct {
	Name         string `json:"name"`
	Timezone     string `json:"timezone"`
	WorkingDays  []int  `json:"working_days"`
	SlotCapacity int    `json:"slot_capacity"`
}

type CityCreateResponse struct {
	ID int64 `json:"id"`
}

type Route struct {
	ID             int64   `json:"id"`
	CityID         int64   `json:"city_id"`
	Date           string  `json:"date"`
	CourierID      *int64  `json:"courier_id,omitempty"`
	Status         string  `json:"status"`
	TotalOrders    int     `json:"total_orders"`
	TotalDelivered int     `json:"total_delivered"`
	Notes          *string `json:"notes,omitempty"`
}

// RouteModify - тело POST /route и PUT /route/{id}. Дата в формате 2006-01-02.
type RouteModify struct {
	CityID    *int64  `json:"city_id,omitempty"`
	Date      *string `json:"date,omitempty"`
	CourierID *int64  `json:"courier_id,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

type RouteStop struct {
	ID          int64      `json:"id"`
	RouteID     int64      `json:"route_id"`
	OrderID     int64      `json:"order_id"`
	Sequence    int        `json:"sequence"`
	Status      string     `json:"status"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	MapLink     *string    `json:"map_link,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

type AssignmentItem struct {
	OrderID   int64    `json:"order_id"`
	Sequence  int      `json:"sequence"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	MapLink   *string  `json:"map_link,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

type AssignOrdersRequest struct {
	Orders []AssignmentItem `json:"orders"`
}

type AssignmentError struct {
	OrderID         int64  `json:"order_id"`
	ConflictRouteID *int64 `json:"conflict_route_id,omitempty"`
	Error           string `json:"error"`
}

type AssignOrdersResponse struct {
	RouteID        int64             `json:"route_id"`
	Created        []RouteStop       `json:"created"`
	Errors         []AssignmentError `json:"errors"`
	TotalOrders    int               `json:"total_orders"`
	TotalDelivered int               `json:"total_delivered"`
}

type RouteStateUpdate struct {
	Status string `json:"status"`
}

type StopStateUpdate struct {
	Status     string   `json:"status"`
	Notes      *string  `json:"notes,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
}

type Order struct {
	ID          int64      `json:"id"`
	CityID      int64      `json:"city_id"`
	Address     string     `json:"address"`
	Status      string     `json:"status"`
	PromisedAt  *time.Time `json:"promised_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

type UnassignedOrders struct {
	CityID       int64   `json:"city_id"`
	Date         string  `json:"date"`
	WorkingDay   bool    `json:"working_day"`
	SlotCapacity int     `json:"slot_capacity"`
	Orders       []Order `json:"orders"`
}

type CompletedOrder struct {
	OrderID int64  `json:"order_id"`
	CityID  int64  `json:"city_id"`
	Zone    string `json:"zone"`
}

type SweepResult struct {
	StartedAt    time.Time        `json:"started_at"`
	FinishedAt   time.Time        `json:"finished_at"`
	Candidates   int              `json:"candidates"`
	Failed       int              `json:"failed"`
	UpdatedCount int              `json:"updated_count"`
	Updated      []CompletedOrder `json:"updated"`
}
