package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
)

const (
	// ProvisioningProgressQuery returns the current domain.ProvisioningProgress of a run
	ProvisioningProgressQuery = "provisioning_progress"

	// ProvisioningFailedErrorType is the application error type of a run that stopped on a step.
	// Its details carry the domain.ProvisioningProgress at the time of failure.
	ProvisioningFailedErrorType = "ProvisioningFailed"
)

// WorkerCore defines the workflows run by the provisioning worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// ProvisionIdentity drives an identity from its recorded state to custody transfer
	ProvisionIdentity(ctx workflow.Context, progress domain.ProvisioningProgress) (*domain.IdentityToken, error)
}

// WorkerCoreConfig holds workflow settings
type WorkerCoreConfig struct {
	// StepTimeout bounds a single on-chain step, receipt wait included
	StepTimeout time.Duration
}

type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.StepTimeout <= 0 {
		config.StepTimeout = 5 * time.Minute
	}
	return &workerCore{
		executor: executor,
		config:   config,
	}
}

// ProvisionIdentityWorkflowID names the workflow of a provisioning run; resumed runs reuse it
func ProvisionIdentityWorkflowID(provisioningID string) string {
	return fmt.Sprintf("identity-provisioning-%s", provisioningID)
}
