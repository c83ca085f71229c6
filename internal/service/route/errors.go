package route

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRouteID        = errors.New("invalid route id")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidSequence       = errors.New("stop sequence must be at least 1")
	ErrEmptyBatch            = errors.New("no orders to assign")

	ErrRouteNotFound = errors.New("route not found")
	ErrStopNotFound  = errors.New("route stop not found")
	ErrOrderNotFound = errors.New("order not found")

	ErrCourierUnavailable   = errors.New("courier is not available")
	ErrCourierNotAssigned   = errors.New("route has no courier")
	ErrOrderAlreadyAssigned = errors.New("order already assigned to route")
	ErrSequenceTaken        = errors.New("stop sequence already taken")
	ErrRouteLocked          = errors.New("route is locked")
	ErrInvalidTransition    = errors.New("status transition not allowed")
)
