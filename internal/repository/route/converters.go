package route

import (
	"time"

	"dispatch/internal/entities"
)

func ToDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}

	return &entities.Route{
		ID:             r.ID,
		CityID:         r.CityID,
		Date:           entities.Date(r.Date),
		CourierID:      r.CourierID,
		Status:         entities.RouteStatusType(r.Status),
		TotalOrders:    r.TotalOrders,
		TotalDelivered: r.TotalDelivered,
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		DeletedAt:      r.DeletedAt,
	}
}

func StopToDomain(s *RouteStopDB) *entities.RouteStop {
	if s == nil {
		return nil
	}

	return &entities.RouteStop{
		ID:          s.ID,
		RouteID:     s.RouteID,
		OrderID:     s.OrderID,
		Sequence:    s.Sequence,
		Status:      entities.StopStatusType(s.Status),
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		MapLink:     s.MapLink,
		Notes:       s.Notes,
		DeliveredAt: s.DeliveredAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// dateOnly - дата маршрута для колонки DATE: полночь UTC того же календарного дня.
func dateOnly(t time.Time) time.Time {
	return entities.Date(t)
}
