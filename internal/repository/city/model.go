package city

import "time"

type CityDB struct {
	ID           int64
	Name         string
	Timezone     string
	WorkingDays  []int16
	SlotCapacity int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
