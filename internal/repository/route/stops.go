package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/route"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	constraintActiveOrder    = "route_stops_active_order_uidx"
	constraintActiveSequence = "route_stops_active_sequence_uidx"
	constraintStopOrder      = "route_stops_order_id_fkey"

	// сдвиг, чтобы переставить номера, не задевая уникальный индекс (route_id, sequence)
	sequenceShift = 1_000_000
)

const returningStop = "RETURNING id, route_id, order_id, sequence, status, latitude, longitude, map_link, notes, " +
	"delivered_at, created_at, updated_at"

var stopColumns = []string{
	"id", "route_id", "order_id", "sequence", "status", "latitude", "longitude", "map_link", "notes",
	"delivered_at", "created_at", "updated_at",
}

type StopRepository struct {
	querier repository.Querier
}

func NewStopRepository(querier repository.Querier) *StopRepository {
	return &StopRepository{
		querier: querier,
	}
}

func (r *StopRepository) Create(ctx context.Context, stop entities.RouteStop) (*entities.RouteStop, error) {
	query := `INSERT INTO route_stops (route_id, order_id, sequence, status, latitude, longitude, map_link, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ` + returningStop

	stopModel, err := scanStop(r.querier.QueryRow(
		ctx,
		query,
		stop.RouteID,
		stop.OrderID,
		stop.Sequence,
		stop.Status.String(),
		stop.Latitude,
		stop.Longitude,
		stop.MapLink,
		stop.Notes,
	))
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			switch repository.ConstraintName(err) {
			case constraintActiveOrder:
				return nil, route.ErrOrderAlreadyAssigned
			case constraintActiveSequence:
				return nil, route.ErrSequenceTaken
			}
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			if repository.ConstraintName(err) == constraintStopOrder {
				return nil, route.ErrOrderNotFound
			}
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route stop repository create error: %w", err)
	}

	return StopToDomain(stopModel), nil
}

func (r *StopRepository) GetByRouteAndOrder(ctx context.Context, routeID, orderID int64) (*entities.RouteStop, error) {
	builder := qb.Select(stopColumns...).
		From("route_stops").
		Where(sq.Eq{"route_id": routeID, "order_id": orderID, "deleted_at": nil})

	stopModel, err := scanStop(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrStopNotFound
		}
		return nil, fmt.Errorf("unexpected route stop repository get error: %w", err)
	}

	return StopToDomain(stopModel), nil
}

func (r *StopRepository) ListByRoute(ctx context.Context, routeID int64) ([]entities.RouteStop, error) {
	builder := qb.Select(stopColumns...).
		From("route_stops").
		Where(sq.Eq{"route_id": routeID, "deleted_at": nil}).
		OrderBy("sequence", "id")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected route stop repository list error: %w", err)
	}
	defer rows.Close()

	stops := make([]entities.RouteStop, 0, 16)
	for rows.Next() {
		stopModel, err := scanStop(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected route stop repository list error: %w", err)
		}
		stops = append(stops, *StopToDomain(stopModel))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected route stop repository list error: %w", err)
	}

	return stops, nil
}

func (r *StopRepository) ActiveRoutesByOrders(ctx context.Context, orderIDs []int64) (map[int64]int64, error) {
	active := make(map[int64]int64, len(orderIDs))
	if len(orderIDs) == 0 {
		return active, nil
	}

	builder := qb.Select("order_id", "route_id").
		From("route_stops").
		Where(sq.Eq{"order_id": orderIDs, "deleted_at": nil})

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected route stop repository active routes error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, routeID int64
		if err := rows.Scan(&orderID, &routeID); err != nil {
			return nil, fmt.Errorf("unexpected route stop repository active routes error: %w", err)
		}
		active[orderID] = routeID
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected route stop repository active routes error: %w", err)
	}

	return active, nil
}

func (r *StopRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE route_stops SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected route stop repository soft delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return route.ErrStopNotFound
	}
	return nil
}

func (r *StopRepository) SoftDeleteByRoute(ctx context.Context, routeID int64) error {
	query := `UPDATE route_stops SET deleted_at = NOW(), updated_at = NOW()
		WHERE route_id = $1 AND deleted_at IS NULL`

	if _, err := r.querier.Exec(ctx, query, routeID); err != nil {
		return fmt.Errorf("unexpected route stop repository soft delete by route error: %w", err)
	}
	return nil
}

// UpdateSequences переставляет номера в два шага: сначала уводит их за sequenceShift,
// потом пишет новые. Вызывать внутри транзакции.
func (r *StopRepository) UpdateSequences(ctx context.Context, stops []entities.RouteStop) error {
	if len(stops) == 0 {
		return nil
	}

	ids := make([]int64, len(stops))
	for i, stop := range stops {
		ids[i] = stop.ID
	}

	shift := qb.Update("route_stops").
		Set("sequence", sq.Expr("sequence + ?", sequenceShift)).
		Where(sq.Eq{"id": ids, "deleted_at": nil})
	if _, err := r.querier.ExecBuilder(ctx, shift); err != nil {
		return fmt.Errorf("unexpected route stop repository shift sequences error: %w", err)
	}

	query := `UPDATE route_stops SET sequence = $2, updated_at = NOW() WHERE id = $1`
	for _, stop := range stops {
		if _, err := r.querier.Exec(ctx, query, stop.ID, stop.Sequence); err != nil {
			if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
				return fmt.Errorf("stop %d: %w", stop.ID, route.ErrSequenceTaken)
			}
			return fmt.Errorf("unexpected route stop repository update sequence error: %w", err)
		}
	}
	return nil
}

func (r *StopRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	update entities.StopDeliveryUpdate,
	deliveredAt *time.Time,
) (*entities.RouteStop, error) {
	builder := qb.Update("route_stops").
		Set("status", update.Status.String()).
		Set("delivered_at", deliveredAt).
		Set("updated_at", sq.Expr("NOW()"))

	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}

	builder = builder.
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Suffix(returningStop)

	stopModel, err := scanStop(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrStopNotFound
		}
		return nil, fmt.Errorf("unexpected route stop repository update status error: %w", err)
	}

	return StopToDomain(stopModel), nil
}

func scanStop(row pgx.Row) (*RouteStopDB, error) {
	var stopModel RouteStopDB
	err := row.Scan(
		&stopModel.ID,
		&stopModel.RouteID,
		&stopModel.OrderID,
		&stopModel.Sequence,
		&stopModel.Status,
		&stopModel.Latitude,
		&stopModel.Longitude,
		&stopModel.MapLink,
		&stopModel.Notes,
		&stopModel.DeliveredAt,
		&stopModel.CreatedAt,
		&stopModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &stopModel, nil
}
