package entities

import "time"

// CompletionCandidate - pendiente-заказ с обещанным временем и зоной его города.
type CompletionCandidate struct {
	OrderID    int64
	CityID     int64
	PromisedAt time.Time
	Zone       string
}

type CompletedOrder struct {
	OrderID int64
	CityID  int64
	Zone    string
}

type SweepResult struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Candidates int
	Failed     int
	Updated    []CompletedOrder
}

func (r SweepResult) UpdatedCount() int {
	return len(r.Updated)
}
