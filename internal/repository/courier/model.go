package courier

import "time"

type CourierDB struct {
	ID              int64
	Name            string
	Phone           string
	CityID          *int64
	Status          string
	TransportType   string
	TotalDeliveries int64
	TotalDistanceKm float64
	AvgRating       float64
	RatingsCount    int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

type CourierModifyDB struct {
	ID            *int64
	Name          *string
	Phone         *string
	CityID        *int64
	Status        *string
	TransportType *string
}
