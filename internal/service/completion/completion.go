package completion

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Service - автозавершение заказов: pendiente-заказ с наступившим (по часам его города)
// обещанным временем переводится в entregado.
// Пересекающиеся запуски Sweep должен исключать вызывающий.
type Service struct {
	log          handlerLogger
	orders       OrderLedger
	clock        Clock
	fallbackZone string

	mu   sync.RWMutex
	last *entities.SweepResult
}

func New(log handlerLogger, orders OrderLedger, clock Clock, fallbackZone string) *Service {
	return &Service{
		log:          log.With(logger.NewField("component", "order_autocomplete")),
		orders:       orders,
		clock:        clock,
		fallbackZone: fallbackZone,
	}
}

// Sweep обходит кандидатов один раз. Ошибка по отдельному заказу только логируется,
// ошибкой sweep становится лишь невозможность получить кандидатов или отмена ctx.
func (s *Service) Sweep(ctx context.Context, now time.Time) (*entities.SweepResult, error) {
	result := &entities.SweepResult{StartedAt: now}
	started := time.Now()
	defer func() {
		SweepDuration.Observe(time.Since(started).Seconds())
	}()

	candidates, err := s.orders.ListCompletionCandidates(ctx)
	if err != nil {
		SweepRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("sweep: %w", err)
	}
	result.Candidates = len(candidates)

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			SweepRunsTotal.WithLabelValues("error").Inc()
			return result, fmt.Errorf("sweep interrupted: %w", err)
		}

		zone := candidate.Zone
		if zone == "" {
			zone = s.fallbackZone
		}
		orderLog := s.log.With(
			logger.NewField("order", candidate.OrderID),
			logger.NewField("city", candidate.CityID),
			logger.NewField("zone", zone),
		)

		elapsed, err := s.clock.HasElapsedLocally(candidate.PromisedAt, zone, now)
		if err != nil {
			result.Failed++
			FailedOrdersTotal.Inc()
			orderLog.With(logger.NewField("error", err)).Warn("order autocomplete: bad zone")
			continue
		}
		if !elapsed {
			continue
		}

		if _, err := s.orders.MarkDelivered(ctx, candidate.OrderID, now); err != nil {
			result.Failed++
			FailedOrdersTotal.Inc()
			orderLog.With(logger.NewField("error", err)).Error("order autocomplete: mark delivered failed")
			continue
		}

		result.Updated = append(result.Updated, entities.CompletedOrder{
			OrderID: candidate.OrderID,
			CityID:  candidate.CityID,
			Zone:    zone,
		})
		CompletedOrdersTotal.Inc()
		orderLog.Info("order autocomplete: delivered")
	}

	result.FinishedAt = now.Add(time.Since(started))
	SweepRunsTotal.WithLabelValues("ok").Inc()

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	s.log.With(
		logger.NewField("candidates", result.Candidates),
		logger.NewField("updated", result.UpdatedCount()),
		logger.NewField("failed", result.Failed),
	).Info("order autocomplete: sweep finished")

	return result, nil
}

// LastResult - итог последнего завершенного sweep этого процесса.
func (s *Service) LastResult() (*entities.SweepResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return nil, false
	}
	out := *s.last
	return &out, true
}
