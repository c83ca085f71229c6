package entities

import (
	"fmt"
)

type AssignmentItem struct {
	OrderID   int64
	Sequence  int
	Latitude  *float64
	Longitude *float64
	MapLink   *string
	Notes     *string
}

// AssignmentError - ошибка одного заказа из пакета. ConflictRouteID заполнен,
// если заказ уже стоит в другом активном маршруте.
type AssignmentError struct {
	OrderID         int64
	ConflictRouteID *int64
	Err             error
}

func (e AssignmentError) Error() string {
	if e.ConflictRouteID != nil {
		return fmt.Sprintf("order %d: %v: %d", e.OrderID, e.Err, *e.ConflictRouteID)
	}
	return fmt.Sprintf("order %d: %v", e.OrderID, e.Err)
}

func (e AssignmentError) Unwrap() error {
	return e.Err
}

type AssignmentResult struct {
	RouteID        int64
	Created        []RouteStop
	Errors         []AssignmentError
	TotalOrders    int
	TotalDelivered int
}

// Err возвращает ErrPartialBatchFailure, если хоть один элемент не применился.
func (r AssignmentResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d orders rejected",
		ErrPartialBatchFailure, len(r.Errors), len(r.Errors)+len(r.Created))
}
