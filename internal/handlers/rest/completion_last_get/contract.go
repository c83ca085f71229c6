//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=completion_last_get_test
package completion_last_get

import (
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
	LastResult() (*entities.SweepResult, bool)
}
