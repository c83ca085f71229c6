package courier

import (
	"dispatch/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		CityID:        c.CityID,
		Status:        entities.CourierStatusType(c.Status),
		TransportType: entities.CourierTransportType(c.TransportType),
		Metrics: entities.CourierMetrics{
			TotalDeliveries: c.TotalDeliveries,
			TotalDistanceKm: c.TotalDistanceKm,
			AvgRating:       c.AvgRating,
			RatingsCount:    c.RatingsCount,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: c.DeletedAt,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{
		ID:     courierModify.ID,
		Name:   courierModify.Name,
		Phone:  courierModify.Phone,
		CityID: courierModify.CityID,
	}

	if courierModify.Status != nil {
		statusType := courierModify.Status.String()
		courierDB.Status = &statusType
	}
	if courierModify.TransportType != nil {
		transportType := courierModify.TransportType.String()
		courierDB.TransportType = &transportType
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
