package temporal

import (
	"context"
	"strconv"

	"github.com/getsentry/sentry-go"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/interceptor"
)

// NewSentryActivityInterceptor creates a worker interceptor that gives every activity its own Sentry hub
func NewSentryActivityInterceptor() interceptor.WorkerInterceptor {
	return &SentryActivityInterceptor{}
}

// SentryActivityInterceptor injects a Sentry hub tagged with the activity into the activity context,
// so logger.ErrorCtx reports are grouped per activity and workflow
type SentryActivityInterceptor struct {
	interceptor.WorkerInterceptorBase
}

// InterceptActivity wraps activity execution
func (s *SentryActivityInterceptor) InterceptActivity(ctx context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	return &sentryActivityInboundInterceptor{
		ActivityInboundInterceptorBase: interceptor.ActivityInboundInterceptorBase{
			Next: next,
		},
	}
}

type sentryActivityInboundInterceptor struct {
	interceptor.ActivityInboundInterceptorBase
}

// ExecuteActivity runs the activity with a cloned hub carrying its identity
func (s *sentryActivityInboundInterceptor) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (interface{}, error) {
	hub := sentry.CurrentHub().Clone()

	info := activity.GetInfo(ctx)
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("activity_type", info.ActivityType.Name)
		scope.SetTag("workflow_type", info.WorkflowType.Name)
		scope.SetTag("workflow_id", info.WorkflowExecution.ID)
		scope.SetTag("attempt", strconv.Itoa(int(info.Attempt)))
	})

	return s.Next.ExecuteActivity(sentry.SetHubOnContext(ctx, hub), in)
}
