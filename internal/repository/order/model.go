package order

import "time"

type OrderDB struct {
	ID          int64
	CityID      int64
	Address     string
	Status      string
	PromisedAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type CompletionCandidateDB struct {
	OrderID    int64
	CityID     int64
	PromisedAt time.Time
	Timezone   string
}
