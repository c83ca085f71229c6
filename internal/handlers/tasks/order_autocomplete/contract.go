//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_autocomplete_test
package order_autocomplete

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/locker"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Sweep(ctx context.Context, now time.Time) (*entities.SweepResult, error)
}

type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (locker.Lock, error)
}
