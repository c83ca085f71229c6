package route

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/city"
	"dispatch/internal/service/route"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returningRoute = "RETURNING id, city_id, route_date, courier_id, status, total_orders, total_delivered, " +
	"notes, created_at, updated_at, deleted_at"

const constraintRouteCourier = "routes_courier_id_fkey"

var routeColumns = []string{
	"id", "city_id", "route_date", "courier_id", "status", "total_orders", "total_delivered",
	"notes", "created_at", "updated_at", "deleted_at",
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, routeEntity entities.Route) (*entities.Route, error) {
	query := `INSERT INTO routes (city_id, route_date, courier_id, status, notes)
		VALUES ($1, $2, $3, $4, $5) ` + returningRoute

	routeModel, err := scanRoute(r.querier.QueryRow(
		ctx,
		query,
		routeEntity.CityID,
		dateOnly(routeEntity.Date),
		routeEntity.CourierID,
		routeEntity.Status.String(),
		routeEntity.Notes,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			if repository.ConstraintName(err) == constraintRouteCourier {
				return nil, route.ErrCourierUnavailable
			}
			return nil, city.ErrCityNotFound
		}
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	return ToDomain(routeModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Route, error) {
	builder := qb.Select(routeColumns...).
		From("routes").
		Where(sq.Eq{"id": id, "deleted_at": nil})

	routeModel, err := scanRoute(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository getbyid error: %w", err)
	}

	return ToDomain(routeModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.RouteFilter) ([]entities.Route, error) {
	builder := qb.Select(routeColumns...).
		From("routes").
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("route_date DESC", "id")

	if filter.CityID != nil {
		builder = builder.Where(sq.Eq{"city_id": *filter.CityID})
	}
	if filter.Date != nil {
		builder = builder.Where(sq.Eq{"route_date": dateOnly(*filter.Date)})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository getall error: %w", err)
	}
	defer rows.Close()

	routes := make([]entities.Route, 0, 8)
	for rows.Next() {
		routeModel, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository getall error: %w", err)
		}
		routes = append(routes, *ToDomain(routeModel))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected route repository getall error: %w", err)
	}

	return routes, nil
}

func (r *Repository) Update(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error) {
	builder := qb.Update("routes")

	// опционные поля
	if routeModify.Date != nil {
		builder = builder.Set("route_date", dateOnly(*routeModify.Date))
	}
	if routeModify.CourierID != nil {
		builder = builder.Set("courier_id", *routeModify.CourierID)
	}
	if routeModify.Notes != nil {
		builder = builder.Set("notes", *routeModify.Notes)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": routeModify.ID, "deleted_at": nil}).
		Suffix(returningRoute)

	return r.updateOne(ctx, builder)
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.RouteStatusType) (*entities.Route, error) {
	builder := qb.Update("routes").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Suffix(returningRoute)

	return r.updateOne(ctx, builder)
}

func (r *Repository) UpdateTotals(ctx context.Context, id int64, totalOrders, totalDelivered int) error {
	query := `UPDATE routes SET total_orders = $2, total_delivered = $3, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "update totals", query, id, totalOrders, totalDelivered)
}

func (r *Repository) SetCourier(ctx context.Context, id int64, courierID *int64) error {
	query := `UPDATE routes SET courier_id = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "set courier", query, id, courierID)
}

func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE routes SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "soft delete", query, id)
}

func (r *Repository) updateOne(ctx context.Context, builder sq.UpdateBuilder) (*entities.Route, error) {
	routeModel, err := scanRoute(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository update error: %w", err)
	}

	return ToDomain(routeModel), nil
}

func (r *Repository) execOne(ctx context.Context, op, query string, args ...interface{}) error {
	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected route repository %s error: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return route.ErrRouteNotFound
	}
	return nil
}

func scanRoute(row pgx.Row) (*RouteDB, error) {
	var routeModel RouteDB
	err := row.Scan(
		&routeModel.ID,
		&routeModel.CityID,
		&routeModel.Date,
		&routeModel.CourierID,
		&routeModel.Status,
		&routeModel.TotalOrders,
		&routeModel.TotalDelivered,
		&routeModel.Notes,
		&routeModel.CreatedAt,
		&routeModel.UpdatedAt,
		&routeModel.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &routeModel, nil
}
