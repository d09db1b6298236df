package temporal

import (
	"context"

	"go.temporal.io/sdk/client"
)

// TemporalOrchestrator starts workflows on behalf of the API
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator,WorkflowRun=MockWorkflowRun
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

var _ TemporalOrchestrator = (client.Client)(nil)

// WorkflowRun mirrors client.WorkflowRun so tests can fake a run
type WorkflowRun interface {
	client.WorkflowRun
}
