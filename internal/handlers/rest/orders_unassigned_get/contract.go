//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_unassigned_get_test
package orders_unassigned_get

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

type Service interface {
	ListUnassigned(ctx context.Context, cityID int64, date time.Time) (*entities.UnassignedOrders, error)
}
