package adapter

import (
	"context"

	"go.temporal.io/sdk/activity"
)

// Activity exposes the running activity's execution facts used in logs
//
//go:generate mockgen -source=temporal.go -destination=../mocks/temporal.go -package=mocks -mock_names=Activity=MockActivity
type Activity interface {
	// Attempt is 1 on the first execution and grows with each retry
	Attempt(ctx context.Context) int32
	// WorkflowID is the id of the workflow that scheduled the activity
	WorkflowID(ctx context.Context) string
}

type temporalActivity struct{}

// NewActivity returns an Activity reading from the Temporal activity context
func NewActivity() Activity {
	return temporalActivity{}
}

func (temporalActivity) Attempt(ctx context.Context) int32 {
	return activity.GetInfo(ctx).Attempt
}

func (temporalActivity) WorkflowID(ctx context.Context) string {
	return activity.GetInfo(ctx).WorkflowExecution.ID
}
