package workflows

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/identity"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/providers/lit"
	"github.com/yhl125/iampocket-relay-server/internal/store"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// ConnectNodeNetwork checks the node network is reachable before anything is spent
	ConnectNodeNetwork(ctx context.Context) error

	// MintIdentityToken mints an identity token held by the treasury
	MintIdentityToken(ctx context.Context) (*identity.MintedIdentity, error)

	// ReadIdentityPublicKey reads the public key of a minted token
	ReadIdentityPublicKey(ctx context.Context, tokenID string) ([]byte, error)

	// PermitAuthMethod registers the Telegram user as an auth method of the token
	PermitAuthMethod(ctx context.Context, tokenID string, telegramUserID string) (common.Hash, error)

	// PermitProgram permits the configured program to sign with the token
	PermitProgram(ctx context.Context, tokenID string) (common.Hash, error)

	// TransferIdentityToSelf hands the token to its own address
	TransferIdentityToSelf(ctx context.Context, token domain.IdentityToken) (common.Hash, error)

	// RecordProvisioningProgress persists the progress of a run
	RecordProvisioningProgress(ctx context.Context, progress domain.ProvisioningProgress) error
}

// ExecutorConfig holds activity settings
type ExecutorConfig struct {
	// LitActionCID is the program permitted on every identity
	LitActionCID string
}

type executor struct {
	config      ExecutorConfig
	nodeClient  lit.NodeClient
	provisioner identity.Provisioner
	store       store.Store
}

// NewExecutor creates a new executor instance
func NewExecutor(config ExecutorConfig, nodeClient lit.NodeClient, provisioner identity.Provisioner, store store.Store) Executor {
	if config.LitActionCID == "" {
		config.LitActionCID = domain.DefaultLitActionCID
	}
	return &executor{
		config:      config,
		nodeClient:  nodeClient,
		provisioner: provisioner,
		store:       store,
	}
}

// ConnectNodeNetwork checks the node network is reachable before anything is spent
func (e *executor) ConnectNodeNetwork(ctx context.Context) error {
	session, err := e.nodeClient.Connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to node network: %w", err)
	}

	logger.DebugCtx(ctx, "Node network reachable", zap.Time("connected_at", session.ConnectedAt))
	return nil
}

// MintIdentityToken mints an identity token held by the treasury
func (e *executor) MintIdentityToken(ctx context.Context) (*identity.MintedIdentity, error) {
	return e.provisioner.MintIdentity(ctx)
}

// ReadIdentityPublicKey reads the public key of a minted token
func (e *executor) ReadIdentityPublicKey(ctx context.Context, tokenID string) ([]byte, error) {
	id, err := domain.ParseTokenID(tokenID)
	if err != nil {
		return nil, err
	}
	return e.provisioner.ReadPublicKey(ctx, id)
}

// PermitAuthMethod registers the Telegram user as an auth method of the token
func (e *executor) PermitAuthMethod(ctx context.Context, tokenID string, telegramUserID string) (common.Hash, error) {
	id, err := domain.ParseTokenID(tokenID)
	if err != nil {
		return common.Hash{}, err
	}
	return e.provisioner.PermitAuthMethod(ctx, id, domain.TelegramAuthMethod(telegramUserID))
}

// PermitProgram permits the configured program to sign with the token
func (e *executor) PermitProgram(ctx context.Context, tokenID string) (common.Hash, error) {
	id, err := domain.ParseTokenID(tokenID)
	if err != nil {
		return common.Hash{}, err
	}
	return e.provisioner.PermitProgram(ctx, id, domain.PermittedProgram{
		IPFSCID: e.config.LitActionCID,
		Scopes:  []*big.Int{big.NewInt(domain.AuthMethodScopeSignAnything)},
	})
}

// TransferIdentityToSelf hands the token to its own address
func (e *executor) TransferIdentityToSelf(ctx context.Context, token domain.IdentityToken) (common.Hash, error) {
	return e.provisioner.TransferToSelf(ctx, token)
}

// RecordProvisioningProgress persists the progress of a run
func (e *executor) RecordProvisioningProgress(ctx context.Context, progress domain.ProvisioningProgress) error {
	return e.store.SaveProvisioningProgress(ctx, progress)
}
