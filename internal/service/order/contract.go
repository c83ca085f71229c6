//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

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

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	UpdateStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	ListUnassigned(ctx context.Context, cityID int64, from, to time.Time) ([]entities.Order, error)
	ListCompletionCandidates(ctx context.Context) ([]entities.CompletionCandidate, error)
}

type CityDirectory interface {
	GetCity(ctx context.Context, id int64) (*entities.City, error)
}

type Clock interface {
	LocalDayBounds(date time.Time, zone string) (time.Time, time.Time, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
