package locker

import (
	"context"
	"errors"
	"time"
)

// ErrNotAcquired - лок держит другой экземпляр, работу нужно пропустить.
var ErrNotAcquired = errors.New("lock not acquired")

type Locker interface {
	// TryLock не ждет: либо берет лок на ttl, либо возвращает ErrNotAcquired.
	TryLock(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}

type Lock interface {
	Release(ctx context.Context) error
}
