//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=completion_test
package completion

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OrderLedger interface {
	ListCompletionCandidates(ctx context.Context) ([]entities.CompletionCandidate, error)
	MarkDelivered(ctx context.Context, id int64, when time.Time) (*entities.Order, error)
}

type Clock interface {
	HasElapsedLocally(promised time.Time, zone string, now time.Time) (bool, error)
}
