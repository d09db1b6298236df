package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// WorkflowInfo identifies a workflow execution in log entries and sentry events
type WorkflowInfo struct {
	WorkflowType string
	WorkflowID   string
	RunID        string
	Namespace    string
	TaskQueue    string
}

// Fields renders the workflow info as zap fields
func (w WorkflowInfo) Fields() []zap.Field {
	return []zap.Field{
		zap.String("workflow_type", w.WorkflowType),
		zap.String("workflow_id", w.WorkflowID),
		zap.String("run_id", w.RunID),
		zap.String("namespace", w.Namespace),
		zap.String("task_queue", w.TaskQueue),
	}
}

// GetWorkflowInfo extracts workflow information from workflow.Context.
// Returns nil if workflow info is not available.
func GetWorkflowInfo(ctx workflow.Context) *WorkflowInfo {
	info := workflow.GetInfo(ctx)
	if info == nil {
		return nil
	}

	name := info.WorkflowType.Name
	if name == "" {
		name = "unknown"
	}

	return &WorkflowInfo{
		WorkflowType: name,
		WorkflowID:   info.WorkflowExecution.ID,
		RunID:        info.WorkflowExecution.RunID,
		Namespace:    info.Namespace,
		TaskQueue:    info.TaskQueueName,
	}
}

// WithWorkflowInfo returns a logger annotated with the workflow execution
func WithWorkflowInfo(info WorkflowInfo) *zap.Logger {
	return log.With(info.Fields()...)
}

// fromWorkflow returns nil while the workflow is replaying so history replays don't duplicate entries
func fromWorkflow(ctx workflow.Context) *zap.Logger {
	if workflow.IsReplaying(ctx) {
		return nil
	}
	info := GetWorkflowInfo(ctx)
	if info == nil {
		return log
	}
	return WithWorkflowInfo(*info)
}

// InfoWf logs an info message with workflow context
func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if l := fromWorkflow(ctx); l != nil {
		l.Info(msg, fields...)
	}
}

// ErrorWf logs an error message with workflow context
func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	if l := fromWorkflow(ctx); l != nil {
		l.Error(errorMessage(err), fields...)
	}
}

// WarnWf logs a warning message with workflow context
func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if l := fromWorkflow(ctx); l != nil {
		l.Warn(msg, fields...)
	}
}

// DebugWf logs a debug message with workflow context
func DebugWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if l := fromWorkflow(ctx); l != nil {
		l.Debug(msg, fields...)
	}
}
