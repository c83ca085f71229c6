package entities

import (
	"fmt"
	"slices"
	"time"
)

// City - календарь города: рабочие дни, емкость слота и часовой пояс.
type City struct {
	ID           int64
	Name         string
	Timezone     string
	WorkingDays  []time.Weekday
	SlotCapacity int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsWorkingDay смотрит только на календарную часть date.
func (c City) IsWorkingDay(date time.Time) bool {
	return slices.Contains(c.WorkingDays, date.Weekday())
}

// ZoneOr возвращает зону города, а если она не задана - fallback.
func (c City) ZoneOr(fallback string) string {
	if c.Timezone == "" {
		return fallback
	}
	return c.Timezone
}

func (c City) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidTimezone, c.Timezone, err)
	}
	return loc, nil
}

func (c City) Validate() error {
	if len(c.WorkingDays) == 0 {
		return ErrNoWorkingDays
	}
	for _, day := range c.WorkingDays {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("%w: %d", ErrInvalidWorkingDay, day)
		}
	}
	if c.SlotCapacity < 1 {
		return ErrInvalidSlotCapacity
	}
	if c.Timezone != "" {
		if _, err := c.Location(); err != nil {
			return err
		}
	}
	return nil
}

// Date обрезает время до календарной даты (полночь UTC), так хранится дата маршрута.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
