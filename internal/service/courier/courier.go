package courier

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

type Courier struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Courier {
	return &Courier{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Name == nil ||
		courierModify.Phone == nil ||
		courierModify.Status == nil ||
		courierModify.TransportType == nil {
		return 0, ErrMissingRequiredFields
	}

	if err := validateModify(courierModify); err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil || *courierModify.ID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if courierModify.Name == nil &&
		courierModify.Phone == nil &&
		courierModify.CityID == nil &&
		courierModify.Status == nil &&
		courierModify.TransportType == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateModify(courierModify); err != nil {
		return nil, err
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context, filter entities.CourierFilter) ([]entities.Courier, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	couriers, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

// IsAssignable: неизвестный курьер просто не назначаем, это не ошибка.
func (s *Courier) IsAssignable(ctx context.Context, id int64) (bool, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCourierNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check courier %d assignable: %w", id, err)
	}

	return courier.IsAssignable(), nil
}

// Release возвращает курьера в disponible, если он был ocupado или en_ruta.
// Повторный вызов ничего не меняет.
func (s *Courier) Release(ctx context.Context, id int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("release courier %d: %w", id, err)
		}

		if !courier.Status.IsReleasable() {
			return nil
		}

		return s.setStatus(ctx, id, entities.CourierAvailable)
	})
}

func (s *Courier) MarkOnRoute(ctx context.Context, id int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("mark courier %d on route: %w", id, err)
		}

		if courier.Status == entities.CourierOnRoute {
			return nil
		}

		return s.setStatus(ctx, id, entities.CourierOnRoute)
	})
}

// RecordDelivery добавляет доставку в накопительные метрики курьера.
func (s *Courier) RecordDelivery(ctx context.Context, id int64, distanceKm float64, rating *float64) error {
	if rating != nil && (*rating < 0 || *rating > 5) {
		return ErrInvalidRating
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("record delivery for courier %d: %w", id, err)
		}

		metrics := courier.Metrics.WithDelivery(distanceKm, rating)
		if err := s.repository.UpdateMetrics(ctx, id, metrics); err != nil {
			return fmt.Errorf("record delivery for courier %d: %w", id, err)
		}
		return nil
	})
}

func (s *Courier) setStatus(ctx context.Context, id int64, status entities.CourierStatusType) error {
	_, err := s.repository.Update(ctx, entities.CourierModify{
		ID:     &id,
		Status: &status,
	})
	if err != nil {
		return fmt.Errorf("set courier %d status %s: %w", id, status, err)
	}
	return nil
}

func validateModify(courierModify entities.CourierModify) error {
	if courierModify.Name != nil && !isValidName(*courierModify.Name) {
		return ErrInvalidName
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return ErrInvalidPhone
	}
	if courierModify.Status != nil && !courierModify.Status.IsValid() {
		return ErrInvalidStatus
	}
	if courierModify.TransportType != nil && !courierModify.TransportType.IsValid() {
		return ErrInvalidTransport
	}
	if !isValidCityID(courierModify.CityID) {
		return ErrInvalidCityID
	}
	return nil
}
