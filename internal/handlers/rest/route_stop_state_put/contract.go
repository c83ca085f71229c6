//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_stop_state_put_test
package route_stop_state_put

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
	UpdateStopDeliveryState(
		ctx context.Context,
		routeID, orderID int64,
		update entities.StopDeliveryUpdate,
	) (*entities.RouteStop, error)
}
