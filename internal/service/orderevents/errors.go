package orderevents

import "errors"

var (
	ErrInvalidEvent    = errors.New("order id and known status are required")
	ErrUndefinedStatus = errors.New("undefined order status")
)
