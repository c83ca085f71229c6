package city

import "errors"

var (
	ErrInvalidName  = errors.New("invalid city name")
	ErrCityNotFound = errors.New("city not found")
	ErrConflict     = errors.New("city already exists")
)
