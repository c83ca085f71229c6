package city

import (
	"time"

	"dispatch/internal/entities"
)

func ToDomain(c *CityDB) *entities.City {
	if c == nil {
		return nil
	}

	workingDays := make([]time.Weekday, len(c.WorkingDays))
	for i, day := range c.WorkingDays {
		workingDays[i] = time.Weekday(day)
	}

	return &entities.City{
		ID:           c.ID,
		Name:         c.Name,
		Timezone:     c.Timezone,
		WorkingDays:  workingDays,
		SlotCapacity: c.SlotCapacity,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromDomain(c entities.City) CityDB {
	workingDays := make([]int16, len(c.WorkingDays))
	for i, day := range c.WorkingDays {
		workingDays[i] = int16(day)
	}

	return CityDB{
		ID:           c.ID,
		Name:         c.Name,
		Timezone:     c.Timezone,
		WorkingDays:  workingDays,
		SlotCapacity: c.SlotCapacity,
	}
}
