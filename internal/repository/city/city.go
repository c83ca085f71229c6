package city

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/city"

	"github.com/jackc/pgx/v5"
)

const columns = `id, name, timezone, working_days, slot_capacity, created_at, updated_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, cityEntity entities.City) (int64, error) {
	cityModel := FromDomain(cityEntity)
	query := `INSERT INTO cities (name, timezone, working_days, slot_capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		cityModel.Name,
		cityModel.Timezone,
		cityModel.WorkingDays,
		cityModel.SlotCapacity,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, city.ErrConflict
		}
		return 0, fmt.Errorf("unexpected city repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.City, error) {
	query := `SELECT ` + columns + ` FROM cities WHERE id = $1`

	cityModel, err := scanCity(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, city.ErrCityNotFound
		}
		return nil, fmt.Errorf("unexpected city repository getbyid error: %w", err)
	}

	return ToDomain(cityModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.City, error) {
	query := `SELECT ` + columns + ` FROM cities ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected city repository getall error: %w", err)
	}
	defer rows.Close()

	cities := make([]entities.City, 0, 8)
	for rows.Next() {
		cityModel, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected city repository getall error: %w", err)
		}
		cities = append(cities, *ToDomain(cityModel))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected city repository getall error: %w", err)
	}

	return cities, nil
}

func scanCity(row pgx.Row) (*CityDB, error) {
	var cityModel CityDB
	err := row.Scan(
		&cityModel.ID,
		&cityModel.Name,
		&cityModel.Timezone,
		&cityModel.WorkingDays,
		&cityModel.SlotCapacity,
		&cityModel.CreatedAt,
		&cityModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cityModel, nil
}
