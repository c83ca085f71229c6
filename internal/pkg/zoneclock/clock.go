// Package zoneclock переводит хранимые UTC-моменты в гражданское время города и обратно.
// Кешируются только загруженные *time.Location, смещения считаются на каждый момент заново:
// они меняются на переходах летнего времени.
package zoneclock

import (
	"errors"
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // база зон внутри бинаря, контейнер может быть без /usr/share/zoneinfo
)

var ErrUnknownZone = errors.New("unknown time zone")

// Components - гражданские дата и время в зоне, без смещения.
type Components struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

type Clock struct {
	locations sync.Map // zone id -> *time.Location
}

func New() *Clock {
	return &Clock{}
}

func (c *Clock) Location(zone string) (*time.Location, error) {
	if zone == "" {
		return nil, fmt.Errorf("%w: empty zone id", ErrUnknownZone)
	}
	if loc, ok := c.locations.Load(zone); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownZone, zone, err)
	}

	actual, _ := c.locations.LoadOrStore(zone, loc)
	return actual.(*time.Location), nil
}

// CivilComponents - календарные поля момента в зоне zone.
func (c *Clock) CivilComponents(instant time.Time, zone string) (Components, error) {
	loc, err := c.Location(zone)
	if err != nil {
		return Components{}, err
	}

	local := instant.In(loc)
	return Components{
		Year:   local.Year(),
		Month:  local.Month(),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
		Second: local.Second(),
	}, nil
}

// ZoneOffsetMinutes - разница "UTC минус местное время" в минутах для конкретного момента.
// Для America/Bogota это 300.
func (c *Clock) ZoneOffsetMinutes(instant time.Time, zone string) (int, error) {
	loc, err := c.Location(zone)
	if err != nil {
		return 0, err
	}

	_, offsetSeconds := instant.In(loc).Zone()
	return -offsetSeconds / 60, nil
}

// LocalToUTC собирает момент из гражданских полей в зоне. Несуществующее время
// (весенний переход) нормализуется вперед, неоднозначное берет одно из двух смещений.
func (c *Clock) LocalToUTC(components Components, zone string) (time.Time, error) {
	loc, err := c.Location(zone)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(
		components.Year,
		components.Month,
		components.Day,
		components.Hour,
		components.Minute,
		components.Second,
		0,
		loc,
	).UTC(), nil
}

// HasElapsedLocally - наступило ли обещанное время по часам города zone на момент now.
// Оба момента сравниваются уже спроецированными в одну зону, момент сам с собой считается наступившим.
func (c *Clock) HasElapsedLocally(promised time.Time, zone string, now time.Time) (bool, error) {
	loc, err := c.Location(zone)
	if err != nil {
		return false, err
	}

	return !promised.In(loc).After(now.In(loc)), nil
}

// LocalDayBounds - полуинтервал [00:00, 24:00) гражданского дня date в зоне, в UTC.
// Берется только календарная часть date. В дни перехода длина дня 23 или 25 часов.
func (c *Clock) LocalDayBounds(date time.Time, zone string) (time.Time, time.Time, error) {
	loc, err := c.Location(zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	return start.UTC(), end.UTC(), nil
}
