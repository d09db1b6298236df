package executor

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/oklog/ulid/v2"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	sdktemporal "go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/api/shared/dto"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/identity"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/metrics"
	"github.com/yhl125/iampocket-relay-server/internal/payment"
	"github.com/yhl125/iampocket-relay-server/internal/providers/ethereum"
	"github.com/yhl125/iampocket-relay-server/internal/providers/lit"
	"github.com/yhl125/iampocket-relay-server/internal/providers/temporal"
	"github.com/yhl125/iampocket-relay-server/internal/store"
	"github.com/yhl125/iampocket-relay-server/internal/telegram"
	"github.com/yhl125/iampocket-relay-server/internal/workflows"
)

// Executor holds the business logic behind the relay's HTTP routes
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ValidateTelegram checks that the init-data user is a permitted auth method of the token
	// and that the init data is authentic, in that order
	ValidateTelegram(ctx context.Context, initDataRaw string, pkpTokenID string) (bool, error)

	// CreateIdentity provisions a new identity token for the init-data user
	CreateIdentity(ctx context.Context, initDataRaw string) (*domain.IdentityToken, error)

	// ResumeIdentity continues a provisioning run of the init-data user from its recorded state
	ResumeIdentity(ctx context.Context, initDataRaw string, provisioningID string) (*domain.IdentityToken, error)

	// GetIdentities lists the identity tokens registered for the init-data user
	GetIdentities(ctx context.Context, initDataRaw string) ([]domain.IdentityToken, error)

	// RegisterPayer creates, funds and credits a new payer wallet
	RegisterPayer(ctx context.Context, network domain.Network, initDataRaw string) (*dto.RegisterPayerResponse, error)

	// AddPayee delegates the payer's capacity credit to a payee
	AddPayee(ctx context.Context, network domain.Network, payerPrivateKey string, payee string, initDataRaw string) (bool, error)

	// GetPayerAuthSig signs a capacity delegation from the payer to a payee
	GetPayerAuthSig(ctx context.Context, payerPrivateKey string, initDataRaw string, payee string) (*lit.AuthSig, error)
}

// Config holds executor settings
type Config struct {
	// Network is where identities are provisioned and looked up
	Network domain.Network
	// ChainID signs payer transactions
	ChainID *big.Int
	// TaskQueue is the Temporal task queue of the provisioning worker
	TaskQueue string
	// WorkflowTimeout bounds a whole provisioning run
	WorkflowTimeout time.Duration
	// RequirePayerAuth makes payer routes verify init data
	RequirePayerAuth bool
}

type executor struct {
	config       Config
	validator    telegram.Validator
	resolver     identity.Resolver
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	payers       payment.PayerProvisioner
	delegations  payment.DelegationManager
	nodeClient   lit.NodeClient
}

// NewExecutor creates the API executor
func NewExecutor(
	config Config,
	validator telegram.Validator,
	resolver identity.Resolver,
	store store.Store,
	orchestrator temporal.TemporalOrchestrator,
	payers payment.PayerProvisioner,
	delegations payment.DelegationManager,
	nodeClient lit.NodeClient,
) Executor {
	if config.WorkflowTimeout <= 0 {
		config.WorkflowTimeout = 30 * time.Minute
	}
	return &executor{
		config:       config,
		validator:    validator,
		resolver:     resolver,
		store:        store,
		orchestrator: orchestrator,
		payers:       payers,
		delegations:  delegations,
		nodeClient:   nodeClient,
	}
}

func (e *executor) ValidateTelegram(ctx context.Context, initDataRaw string, pkpTokenID string) (bool, error) {
	tokenID, err := domain.ParseTokenID(pkpTokenID)
	if err != nil {
		return false, err
	}

	// the user id is read before the signature is checked
	initData, err := e.validator.Parse(initDataRaw)
	if err != nil {
		return false, err
	}

	permitted, err := e.resolver.IsUserPermitted(ctx, tokenID, initData.UserID())
	if err != nil {
		return false, fmt.Errorf("failed to read permitted auth methods: %w", err)
	}
	if !permitted {
		return false, fmt.Errorf("%w: user is not permitted to use identity %s", domain.ErrPermissionDenied, pkpTokenID)
	}

	if _, err := e.validator.Validate(initDataRaw); err != nil {
		return false, err
	}

	return true, nil
}

func (e *executor) CreateIdentity(ctx context.Context, initDataRaw string) (*domain.IdentityToken, error) {
	initData, err := e.validator.Validate(initDataRaw)
	if err != nil {
		return nil, err
	}

	progress := domain.ProvisioningProgress{
		ProvisioningID: ulid.Make().String(),
		TelegramUserID: initData.UserID(),
		Network:        e.config.Network,
		State:          domain.ProvisioningStatePending,
	}

	err = e.store.CreateProvisioning(ctx, store.CreateProvisioningInput{
		Progress:   progress,
		WorkflowID: workflows.ProvisionIdentityWorkflowID(progress.ProvisioningID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create provisioning: %w", err)
	}

	logger.InfoCtx(ctx, "Identity provisioning requested",
		zap.String("provisioningID", progress.ProvisioningID),
		zap.String("network", string(progress.Network)))

	return e.runProvisioning(ctx, progress)
}

func (e *executor) ResumeIdentity(ctx context.Context, initDataRaw string, provisioningID string) (*domain.IdentityToken, error) {
	initData, err := e.validator.Validate(initDataRaw)
	if err != nil {
		return nil, err
	}

	progress, err := e.store.GetProvisioning(ctx, provisioningID)
	if err != nil {
		return nil, fmt.Errorf("failed to get provisioning: %w", err)
	}
	// another user's run is reported as missing
	if progress == nil || progress.TelegramUserID != initData.UserID() {
		return nil, fmt.Errorf("%w: %s", domain.ErrProvisioningNotFound, provisioningID)
	}
	if progress.Completed() {
		return nil, fmt.Errorf("%w: %s", domain.ErrProvisioningComplete, provisioningID)
	}

	logger.InfoCtx(ctx, "Identity provisioning resumed",
		zap.String("provisioningID", progress.ProvisioningID),
		zap.String("state", string(progress.State)),
		zap.String("failedStep", string(progress.FailedStep)))

	return e.runProvisioning(ctx, *progress)
}

// runProvisioning runs the provisioning workflow to its end and stores the outcome
func (e *executor) runProvisioning(ctx context.Context, progress domain.ProvisioningProgress) (*domain.IdentityToken, error) {
	options := client.StartWorkflowOptions{
		ID:                       workflows.ProvisionIdentityWorkflowID(progress.ProvisioningID),
		TaskQueue:                e.config.TaskQueue,
		WorkflowExecutionTimeout: e.config.WorkflowTimeout,
		WorkflowIDReusePolicy:    enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	run, err := e.orchestrator.ExecuteWorkflow(ctx, options, w.ProvisionIdentity, progress)
	if err != nil {
		return nil, fmt.Errorf("failed to start provisioning workflow: %w", err)
	}

	// the outcome is stored even when the caller went away
	storeCtx := context.WithoutCancel(ctx)

	var token domain.IdentityToken
	if err := run.Get(ctx, &token); err != nil {
		return nil, e.provisioningFailed(storeCtx, progress, err)
	}

	e.recordCompleted(storeCtx, progress.ProvisioningID, &token)
	metrics.IdentityProvisionings.WithLabelValues("completed", string(domain.ProvisioningStateTransferred)).Inc()

	logger.InfoCtx(ctx, "Identity provisioned",
		zap.String("provisioningID", progress.ProvisioningID),
		zap.String("tokenID", token.TokenID.String()))

	return &token, nil
}

// recordCompleted marks a run as transferred unless the workflow already did
func (e *executor) recordCompleted(ctx context.Context, provisioningID string, token *domain.IdentityToken) {
	stored, err := e.store.GetProvisioning(ctx, provisioningID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to get provisioning: %w", err), zap.String("provisioningID", provisioningID))
		return
	}
	if stored == nil || stored.Completed() {
		return
	}

	stored.State = domain.ProvisioningStateTransferred
	stored.FailedStep = ""
	stored.Error = ""
	stored.RecordToken(token)
	if err := e.store.SaveProvisioningProgress(ctx, *stored); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record completed provisioning: %w", err), zap.String("provisioningID", provisioningID))
	}
}

// provisioningFailed stores the progress carried by a failed run and builds the caller's error
func (e *executor) provisioningFailed(ctx context.Context, progress domain.ProvisioningProgress, err error) error {
	var appErr *sdktemporal.ApplicationError
	if errors.As(err, &appErr) && appErr.Type() == workflows.ProvisioningFailedErrorType {
		var failed domain.ProvisioningProgress
		if derr := appErr.Details(&failed); derr == nil && failed.ProvisioningID != "" {
			if serr := e.store.SaveProvisioningProgress(ctx, failed); serr != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("failed to record provisioning failure: %w", serr),
					zap.String("provisioningID", failed.ProvisioningID))
			}
			metrics.IdentityProvisionings.WithLabelValues("failed", string(failed.FailedStep)).Inc()
			return fmt.Errorf("%w: provisioning %s stopped at %s after %s: %s",
				domain.ErrProvisioningFailed, failed.ProvisioningID, failed.FailedStep, failed.State, failed.Error)
		}
	}

	metrics.IdentityProvisionings.WithLabelValues("failed", "unknown").Inc()
	logger.ErrorCtx(ctx, fmt.Errorf("provisioning workflow failed: %w", err), zap.String("provisioningID", progress.ProvisioningID))
	return fmt.Errorf("%w: provisioning %s: %s", domain.ErrProvisioningFailed, progress.ProvisioningID, err.Error())
}

func (e *executor) GetIdentities(ctx context.Context, initDataRaw string) ([]domain.IdentityToken, error) {
	initData, err := e.validator.Validate(initDataRaw)
	if err != nil {
		return nil, err
	}

	tokens, err := e.resolver.ListTokensForUser(ctx, initData.UserID())
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}
	if tokens == nil {
		tokens = []domain.IdentityToken{}
	}

	return tokens, nil
}

func (e *executor) RegisterPayer(ctx context.Context, network domain.Network, initDataRaw string) (*dto.RegisterPayerResponse, error) {
	if err := e.authenticatePayer(initDataRaw); err != nil {
		return nil, err
	}

	wallet, err := e.payers.Provision(ctx, network)
	if err != nil {
		return nil, err
	}

	return dto.MapFundingWalletToDTO(wallet), nil
}

func (e *executor) AddPayee(ctx context.Context, network domain.Network, payerPrivateKey string, payee string, initDataRaw string) (bool, error) {
	if err := e.authenticatePayer(initDataRaw); err != nil {
		return false, err
	}

	payer, err := ethereum.ParseSigner(payerPrivateKey, e.config.ChainID)
	if err != nil {
		return false, err
	}

	if _, err := e.delegations.Delegate(ctx, payer, []string{payee}, network); err != nil {
		return false, fmt.Errorf("failed to add payee: %w", err)
	}

	return true, nil
}

func (e *executor) GetPayerAuthSig(ctx context.Context, payerPrivateKey string, initDataRaw string, payee string) (*lit.AuthSig, error) {
	if err := e.authenticatePayer(initDataRaw); err != nil {
		return nil, err
	}

	payer, err := ethereum.ParseSigner(payerPrivateKey, e.config.ChainID)
	if err != nil {
		return nil, err
	}

	delegatees, err := payment.ParsePayees([]string{payee})
	if err != nil {
		return nil, err
	}

	session, err := e.nodeClient.Connect(ctx)
	if err != nil {
		return nil, err
	}

	return e.nodeClient.CreateCapacityDelegationAuthSig(ctx, session, lit.DelegationRequest{
		Owner:      payer,
		Delegatees: delegatees,
	})
}

func (e *executor) authenticatePayer(initDataRaw string) error {
	if !e.config.RequirePayerAuth {
		return nil
	}
	_, err := e.validator.Validate(initDataRaw)
	return err
}
