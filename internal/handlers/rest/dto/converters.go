package dto

import (
	"time"

	"dispatch/internal/entities"
)

const DateLayout = time.DateOnly

func FromCourier(c entities.Courier) Courier {
	return Courier{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		CityID:        c.CityID,
		Status:        c.Status.String(),
		TransportType: c.TransportType.String(),
		Metrics: CourierMetrics{
			TotalDeliveries: c.Metrics.TotalDeliveries,
			TotalDistanceKm: c.Metrics.TotalDistanceKm,
			AvgRating:       c.Metrics.AvgRating,
			RatingsCount:    c.Metrics.RatingsCount,
		},
	}
}

func FromCity(c entities.City) City {
	days := make([]int, len(c.WorkingDays))
	for i, day := range c.WorkingDays {
		days[i] = int(day)
	}
	return City{
		ID:           c.ID,
		Name:         c.Name,
		Timezone:     c.Timezone,
		WorkingDays:  days,
		SlotCapacity: c.SlotCapacity,
	}
}

func FromRoute(r entities.Route) Route {
	return Route{
		ID:             r.ID,
		CityID:         r.CityID,
		Date:           r.Date.Format(DateLayout),
		CourierID:      r.CourierID,
		Status:         r.Status.String(),
		TotalOrders:    r.TotalOrders,
		TotalDelivered: r.TotalDelivered,
		Notes:          r.Notes,
	}
}

func FromRouteStop(s entities.RouteStop) RouteStop {
	return RouteStop{
		ID:          s.ID,
		RouteID:     s.RouteID,
		OrderID:     s.OrderID,
		Sequence:    s.Sequence,
		Status:      s.Status.String(),
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		MapLink:     s.MapLink,
		Notes:       s.Notes,
		DeliveredAt: s.DeliveredAt,
	}
}

func FromRouteStops(stops []entities.RouteStop) []RouteStop {
	res := make([]RouteStop, len(stops))
	for i, stop := range stops {
		res[i] = FromRouteStop(stop)
	}
	return res
}

func FromOrder(o entities.Order) Order {
	return Order{
		ID:          o.ID,
		CityID:      o.CityID,
		Address:     o.Address,
		Status:      o.Status.String(),
		PromisedAt:  o.PromisedAt,
		DeliveredAt: o.DeliveredAt,
	}
}

func FromAssignmentResult(r entities.AssignmentResult) AssignOrdersResponse {
	errs := make([]AssignmentError, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = AssignmentError{
			OrderID:         e.OrderID,
			ConflictRouteID: e.ConflictRouteID,
			Error:           e.Err.Error(),
		}
	}
	return AssignOrdersResponse{
		RouteID:        r.RouteID,
		Created:        FromRouteStops(r.Created),
		Errors:         errs,
		TotalOrders:    r.TotalOrders,
		TotalDelivered: r.TotalDelivered,
	}
}

func FromSweepResult(r entities.SweepResult) SweepResult {
	updated := make([]CompletedOrder, len(r.Updated))
	for i, o := range r.Updated {
		updated[i] = CompletedOrder{OrderID: o.OrderID, CityID: o.CityID, Zone: o.Zone}
	}
	return SweepResult{
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
		Candidates:   r.Candidates,
		Failed:       r.Failed,
		UpdatedCount: r.UpdatedCount(),
		Updated:      updated,
	}
}

// ParseDate разбирает дату маршрута в полночь UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}
