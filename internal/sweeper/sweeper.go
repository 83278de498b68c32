package sweeper

import (
	"context"
)

// Sweeper owns the scheduler process's periodic work.
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper,Job=MockJob
type Sweeper interface {
	// Start blocks until ctx is canceled or Stop is called.
	Start(ctx context.Context) error
	// Stop waits for in-flight job cycles, bounded by ctx.
	Stop(ctx context.Context) error
	Name() string
}

// Job is one cycle of periodic work. A failed cycle is retried on the next tick.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}
