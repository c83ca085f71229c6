package rate_limiter

import (
	"golang.org/x/time/rate"

	"dispatch/pkg/logger"
)

// Limiter - общий для всего сервера лимитер, *rate.Limiter подходит как есть.
type Limiter interface {
	Allow() bool
	Limit() rate.Limit
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
