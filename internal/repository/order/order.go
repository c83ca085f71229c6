package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"o.id", "o.city_id", "o.address", "o.status", "o.promised_at", "o.delivered_at",
	"o.created_at", "o.updated_at", "o.deleted_at",
}

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	builder := qb.Select(columns...).
		From("orders o").
		Where(sq.Eq{"o.id": id})

	orderModel, err := scanOrder(r.querier.QueryRowBuilder(ctx, builder))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// UpdateStatus пишет статус и delivered_at вместе: nil в DeliveredAt очищает колонку.
func (r *Repository) UpdateStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, order.ErrInvalidOrderID
	}

	query := `UPDATE orders o
		SET status = $2, delivered_at = $3, updated_at = NOW()
		WHERE o.id = $1 AND o.deleted_at IS NULL
		RETURNING o.id, o.city_id, o.address, o.status, o.promised_at, o.delivered_at,
			o.created_at, o.updated_at, o.deleted_at`

	orderModel, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		*orderModify.ID,
		orderModify.Status.String(),
		orderModify.DeliveredAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// ListUnassigned - заказы города с обещанным временем в [from, to), без активной остановки.
func (r *Repository) ListUnassigned(ctx context.Context, cityID int64, from, to time.Time) ([]entities.Order, error) {
	statuses := make([]string, len(entities.UnassignedStatuses))
	for i, status := range entities.UnassignedStatuses {
		statuses[i] = status.String()
	}

	builder := qb.Select(columns...).
		From("orders o").
		Where(sq.Eq{
			"o.city_id":    cityID,
			"o.deleted_at": nil,
			"o.status":     statuses,
		}).
		Where(sq.GtOrEq{"o.promised_at": from}).
		Where(sq.Lt{"o.promised_at": to}).
		Where(`NOT EXISTS (
			SELECT 1 FROM route_stops rs
			WHERE rs.order_id = o.id AND rs.deleted_at IS NULL
		)`).
		OrderBy("o.promised_at", "o.id")

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list unassigned error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, 16)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list unassigned error: %w", err)
		}
		orders = append(orders, *ToDomain(orderModel))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list unassigned error: %w", err)
	}

	return orders, nil
}

// ListCompletionCandidates - pendiente-заказы с обещанным временем вместе с зоной их города.
func (r *Repository) ListCompletionCandidates(ctx context.Context) ([]entities.CompletionCandidate, error) {
	query := `SELECT o.id, o.city_id, o.promised_at, c.timezone
		FROM orders o
		JOIN cities c ON c.id = o.city_id
		WHERE o.status = $1
			AND o.promised_at IS NOT NULL
			AND o.deleted_at IS NULL
		ORDER BY o.promised_at, o.id`

	rows, err := r.querier.Query(ctx, query, entities.OrderPending.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list candidates error: %w", err)
	}
	defer rows.Close()

	candidates := make([]entities.CompletionCandidate, 0, 16)
	for rows.Next() {
		var candidateModel CompletionCandidateDB
		err := rows.Scan(
			&candidateModel.OrderID,
			&candidateModel.CityID,
			&candidateModel.PromisedAt,
			&candidateModel.Timezone,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list candidates error: %w", err)
		}
		candidates = append(candidates, ToCandidate(candidateModel))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list candidates error: %w", err)
	}

	return candidates, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.CityID,
		&orderModel.Address,
		&orderModel.Status,
		&orderModel.PromisedAt,
		&orderModel.DeliveredAt,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
		&orderModel.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
