package entities

import (
	"time"
)

type Courier struct {
	ID            int64
	Name          string
	Phone         string
	CityID        *int64
	Status        CourierStatusType
	TransportType CourierTransportType
	Metrics       CourierMetrics
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// IsAssignable - курьера можно поставить на маршрут.
func (c Courier) IsAssignable() bool {
	if c.DeletedAt != nil {
		return false
	}
	return c.Status == CourierActive || c.Status == CourierAvailable
}

type CourierTransportType string

const (
	OnFoot  CourierTransportType = "on_foot"
	Scooter CourierTransportType = "scooter"
	Car     CourierTransportType = "car"
)

const DefaultTransportType = OnFoot

func (t CourierTransportType) String() string {
	return string(t)
}

func (t CourierTransportType) IsValid() bool {
	switch t {
	case OnFoot, Scooter, Car:
		return true
	}
	return false
}

type CourierStatusType string

const (
	CourierActive    CourierStatusType = "activo"
	CourierInactive  CourierStatusType = "inactivo"
	CourierAvailable CourierStatusType = "disponible"
	CourierBusy      CourierStatusType = "ocupado"
	CourierOnRoute   CourierStatusType = "en_ruta"
)

const DefaultStatusType = CourierAvailable

func (t CourierStatusType) String() string {
	return string(t)
}

func (t CourierStatusType) IsValid() bool {
	switch t {
	case CourierActive, CourierInactive, CourierAvailable, CourierBusy, CourierOnRoute:
		return true
	}
	return false
}

// IsReleasable - состояния, из которых release возвращает курьера в disponible.
func (t CourierStatusType) IsReleasable() bool {
	return t == CourierBusy || t == CourierOnRoute
}

type CourierMetrics struct {
	TotalDeliveries int64
	TotalDistanceKm float64
	AvgRating       float64
	RatingsCount    int64
}

// WithDelivery учитывает одну доставку; рейтинг усредняется только по оцененным доставкам.
func (m CourierMetrics) WithDelivery(distanceKm float64, rating *float64) CourierMetrics {
	m.TotalDeliveries++
	if distanceKm > 0 {
		m.TotalDistanceKm += distanceKm
	}
	if rating != nil {
		total := m.AvgRating*float64(m.RatingsCount) + *rating
		m.RatingsCount++
		m.AvgRating = total / float64(m.RatingsCount)
	}
	return m
}

type CourierModify struct {
	ID            *int64
	Name          *string
	Phone         *string
	CityID        *int64
	Status        *CourierStatusType
	TransportType *CourierTransportType
}

type CourierFilter struct {
	CityID *int64
	Status *CourierStatusType
}
