package order_autocomplete

import (
	"context"
	"errors"
	"time"

	"dispatch/pkg/locker"
	"dispatch/pkg/logger"
)

const lockKey = "order-autocomplete"

type OrderAutocomplete struct {
	log      handlerLogger
	service  Service
	locker   Locker
	interval time.Duration
	lockTTL  time.Duration
	now      func() time.Time
}

func NewOrderAutocomplete(
	log handlerLogger,
	service Service,
	locker Locker,
	interval time.Duration,
	lockTTL time.Duration,
) *OrderAutocomplete {
	return &OrderAutocomplete{
		log:      log.With(logger.NewField("task", lockKey)),
		service:  service,
		locker:   locker,
		interval: interval,
		lockTTL:  lockTTL,
		now:      time.Now,
	}
}

func (o *OrderAutocomplete) TTL() time.Duration {
	return o.interval
}

// Do - один sweep под распределенным локом. Если лок держит другой экземпляр, запуск пропускается.
func (o *OrderAutocomplete) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.lockTTL)
	defer cancel()

	lock, err := o.locker.TryLock(ctxWithTimeout, lockKey, o.lockTTL)
	if err != nil {
		if errors.Is(err, locker.ErrNotAcquired) {
			o.log.Info("order autocomplete skipped: lock held by another instance")
			return nil
		}
		return err
	}
	defer func() {
		// ctx задачи может быть уже отменен, лок все равно надо снять
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			o.log.With(logger.NewField("error", err)).Warn("order autocomplete: release lock")
		}
	}()

	result, err := o.service.Sweep(ctxWithTimeout, o.now().UTC())
	if err != nil {
		return err
	}

	if result.UpdatedCount() > 0 || result.Failed > 0 {
		o.log.With(
			logger.NewField("updated", result.UpdatedCount()),
			logger.NewField("failed", result.Failed),
		).Info("order autocomplete")
	}
	return nil
}

func (o *OrderAutocomplete) Info() string {
	return "order autocomplete"
}
