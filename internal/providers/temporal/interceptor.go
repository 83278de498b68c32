package temporal

import (
	"context"

	"github.com/getsentry/sentry-go"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/interceptor"
)

// NewActivityHubInterceptor returns a worker interceptor that gives every activity
// execution its own sentry hub, tagged with the activity and its workflow
func NewActivityHubInterceptor() interceptor.WorkerInterceptor {
	return &activityHubInterceptor{}
}

type activityHubInterceptor struct {
	interceptor.WorkerInterceptorBase
}

func (a *activityHubInterceptor) InterceptActivity(ctx context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	i := &activityHubInbound{}
	i.Next = next
	return i
}

type activityHubInbound struct {
	interceptor.ActivityInboundInterceptorBase
}

func (a *activityHubInbound) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (interface{}, error) {
	hub := sentry.CurrentHub().Clone()

	info := activity.GetInfo(ctx)
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("activityType", info.ActivityType.Name)
		scope.SetTag("workflowID", info.WorkflowExecution.ID)
		scope.SetTag("workflowType", info.WorkflowType.Name)
	})

	// logger.*Ctx picks the hub up from the context
	return a.Next.ExecuteActivity(sentry.SetHubOnContext(ctx, hub), in)
}
