package ports

import (
	"context"
	"time"
)

// DispatchResult summarizes one run of the daily dispatch job
type DispatchResult struct {
	RunID      string
	Total      int
	Sent       int
	Failed     int
	StartedAt  time.Time
	FinishedAt time.Time
}

// DispatchService defines the contract for pushing the daily forecast to subscribers
type DispatchService interface {
	RunDaily(ctx context.Context) (DispatchResult, error)
}

// DispatchScheduler defines the contract for firing the dispatch at a fixed local time
type DispatchScheduler interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
