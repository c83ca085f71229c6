package city

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/entities"
)

// City - справочник городов с их календарем доставки.
type City struct {
	repository Repository
}

func New(repository Repository) *City {
	return &City{
		repository: repository,
	}
}

func (s *City) CreateCity(ctx context.Context, city entities.City) (int64, error) {
	if strings.TrimSpace(city.Name) == "" {
		return 0, ErrInvalidName
	}
	if err := city.Validate(); err != nil {
		return 0, fmt.Errorf("validate city: %w", err)
	}

	id, err := s.repository.Create(ctx, city)
	if err != nil {
		return 0, fmt.Errorf("create city: %w", err)
	}
	return id, nil
}

func (s *City) GetCity(ctx context.Context, id int64) (*entities.City, error) {
	city, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get city %d: %w", id, err)
	}
	return city, nil
}

func (s *City) GetCities(ctx context.Context) ([]entities.City, error) {
	cities, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cities: %w", err)
	}
	return cities, nil
}
