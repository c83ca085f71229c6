package order

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidCityID     = errors.New("city filter is required")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("order status transition not allowed")

	ErrOrderNotFound = errors.New("order not found")
)
