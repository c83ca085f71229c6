//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_order_delete_test
package route_order_delete

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UnassignOrder(ctx context.Context, routeID, orderID int64) error
}
