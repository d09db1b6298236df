package store

import (
	"context"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/store/schema"
)

// CreateProvisioningInput represents the data needed to open a provisioning run
type CreateProvisioningInput struct {
	Progress   domain.ProvisioningProgress
	WorkflowID string
}

// CreatePayerWalletInput represents the data needed to record a payer wallet.
// It intentionally carries no private key.
type CreatePayerWalletInput struct {
	Address         string
	Network         domain.Network
	CapacityTokenID string
	FundingTxHash   string
	MintTxHash      string
}

// CreatePayeeDelegationsInput represents one delegatePaymentsBatch transaction
type CreatePayeeDelegationsInput struct {
	PayerAddress    string
	PayeeAddresses  []string
	Network         domain.Network
	CapacityTokenID string
	TxHash          string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateProvisioning records a new provisioning run
	CreateProvisioning(ctx context.Context, input CreateProvisioningInput) error
	// GetProvisioning retrieves a provisioning run, or nil when it does not exist
	GetProvisioning(ctx context.Context, provisioningID string) (*domain.ProvisioningProgress, error)
	// SaveProvisioningProgress overwrites the progress of an existing run
	SaveProvisioningProgress(ctx context.Context, progress domain.ProvisioningProgress) error
	// ListProvisioningsByUser returns the most recent runs of a Telegram user, newest first
	ListProvisioningsByUser(ctx context.Context, telegramUserID string, limit int) ([]domain.ProvisioningProgress, error)

	// CreatePayerWallet records a payer wallet
	CreatePayerWallet(ctx context.Context, input CreatePayerWalletInput) error
	// GetPayerWallet retrieves a payer wallet, or nil when it does not exist
	GetPayerWallet(ctx context.Context, address string) (*schema.PayerWallet, error)

	// CreatePayeeDelegations records the payees of one delegation transaction
	CreatePayeeDelegations(ctx context.Context, input CreatePayeeDelegationsInput) error
	// ListPayeeDelegations returns the delegations of a payer on a network, oldest first
	ListPayeeDelegations(ctx context.Context, payerAddress string, network domain.Network) ([]schema.PayeeDelegation, error)

	// WithLock runs fn while holding a database-wide advisory lock on key
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
