//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_orders_post_test
package route_orders_post

import (
	"context"

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
	AssignOrders(ctx context.Context, routeID int64, items []entities.AssignmentItem) (*entities.AssignmentResult, error)
}
