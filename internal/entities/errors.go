package entities

import "errors"

var (
	ErrNoWorkingDays       = errors.New("city has no working days")
	ErrInvalidWorkingDay   = errors.New("working day out of range 0..6")
	ErrInvalidSlotCapacity = errors.New("slot capacity must be at least 1")
	ErrInvalidTimezone     = errors.New("invalid IANA time zone")

	// ErrPartialBatchFailure - часть элементов пакета не применилась, остальные сохранены.
	ErrPartialBatchFailure = errors.New("partial batch failure")
)
