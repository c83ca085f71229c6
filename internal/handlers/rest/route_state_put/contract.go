//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_state_put_test
package route_state_put

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
	ChangeRouteState(ctx context.Context, id int64, status entities.RouteStatusType) (*entities.Route, error)
}
