//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=city_test
package city

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, city entities.City) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.City, error)
	GetAll(ctx context.Context) ([]entities.City, error)
}
