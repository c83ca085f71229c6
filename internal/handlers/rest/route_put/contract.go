//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_put_test
package route_put

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
	UpdateRoute(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error)
}
