package courier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "name", "phone", "city_id", "status", "transport_type",
	"total_deliveries", "total_distance_km", "avg_rating", "ratings_count",
	"created_at", "updated_at", "deleted_at",
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (name, phone, city_id, status, transport_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.Name,
		courierModifyModel.Phone,
		courierModifyModel.CityID,
		courierModifyModel.Status,
		courierModifyModel.TransportType,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courier.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, courier.ErrInvalidCityID
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опционные поля
	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.CityID != nil {
		builder = builder.Set("city_id", courierModifyModel.CityID)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.TransportType != nil {
		builder = builder.Set("transport_type", courierModifyModel.TransportType)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": courierModifyModel.ID, "deleted_at": nil}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	courierModel, err := scanCourier(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, courier.ErrInvalidCityID
		}
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(courierModel), nil
}

// UpdateMetrics перезаписывает накопленные метрики целиком, считает их сервис.
func (r *Repository) UpdateMetrics(ctx context.Context, id int64, metrics entities.CourierMetrics) error {
	query := `UPDATE couriers
		SET total_deliveries = $2, total_distance_km = $3, avg_rating = $4, ratings_count = $5, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.querier.Exec(
		ctx,
		query,
		id,
		metrics.TotalDeliveries,
		metrics.TotalDistanceKm,
		metrics.AvgRating,
		metrics.RatingsCount,
	)
	if err != nil {
		return fmt.Errorf("unexpected courier repository update metrics error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}
	return nil
}

// GetByID отдает и мягко удаленных: решение о них принимает сервис.
func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	builder := qb.Select(columns...).
		From("couriers").
		Where(sq.Eq{"id": id})

	courierModel, err := scanCourier(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.CourierFilter) ([]entities.Courier, error) {
	builder := qb.Select(columns...).
		From("couriers").
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("id")

	if filter.CityID != nil {
		builder = builder.Where(sq.Eq{"city_id": *filter.CityID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		courierModel, err := scanCourier(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, *courierModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

func scanCourier(row pgx.Row) (*CourierDB, error) {
	var courierModel CourierDB
	err := row.Scan(
		&courierModel.ID,
		&courierModel.Name,
		&courierModel.Phone,
		&courierModel.CityID,
		&courierModel.Status,
		&courierModel.TransportType,
		&courierModel.TotalDeliveries,
		&courierModel.TotalDistanceKm,
		&courierModel.AvgRating,
		&courierModel.RatingsCount,
		&courierModel.CreatedAt,
		&courierModel.UpdatedAt,
		&courierModel.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &courierModel, nil
}
