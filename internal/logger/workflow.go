package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// FromWorkflow returns a logger tagged with the workflow execution.
// Entries are dropped during replay so history replays do not repeat them.
func FromWorkflow(ctx workflow.Context) *zap.Logger {
	if workflow.IsReplaying(ctx) {
		return zap.NewNop()
	}

	info := workflow.GetInfo(ctx)
	if info == nil {
		return log
	}
	return log.With(
		zap.String("workflowType", info.WorkflowType.Name),
		zap.String("workflowID", info.WorkflowExecution.ID),
		zap.String("runID", info.WorkflowExecution.RunID),
		zap.Int32("attempt", info.Attempt),
	)
}

func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	FromWorkflow(ctx).Info(msg, fields...)
}

func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	FromWorkflow(ctx).Error(errorMessage(err), fields...)
}
