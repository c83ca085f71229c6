//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_courier_unassign_post_test
package route_courier_unassign_post

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
	UnassignCourier(ctx context.Context, routeID int64) error
}
