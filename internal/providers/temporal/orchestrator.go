package temporal

import (
	"context"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
)

// CloseFundingRoundWorkflow is the registered name of the funding round close workflow
const CloseFundingRoundWorkflow = "CloseFundingRound"

// TemporalOrchestrator starts workflows on the Temporal cluster
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// CloseFundingRoundOptions returns the start options of a round's close. A running close
// rejects a second start; a failed close may be started again.
func CloseFundingRoundOptions(taskQueue string, workflowID string) client.StartWorkflowOptions {
	return client.StartWorkflowOptions{
		ID:                       workflowID,
		TaskQueue:                taskQueue,
		WorkflowExecutionTimeout: 2 * time.Hour,
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,

		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}
}
