package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/credits"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/metrics"
	"github.com/yhl125/iampocket-relay-server/internal/providers/ethereum"
	"github.com/yhl125/iampocket-relay-server/internal/registry"
	"github.com/yhl125/iampocket-relay-server/internal/store"
)

// DelegationManager lets a payer pay for the requests of other accounts
//
//go:generate mockgen -source=delegation.go -destination=../mocks/payment_delegation.go -package=mocks -mock_names=DelegationManager=MockDelegationManager
type DelegationManager interface {
	// Delegate registers payees under the payer in a single transaction.
	// The payer holds a usable capacity credit afterwards.
	Delegate(ctx context.Context, payer *ethereum.Signer, payees []string, network domain.Network) (*domain.PaymentDelegation, error)
}

type delegationManager struct {
	registry registry.ContractRegistry
	chain    ethereum.ChainClient
	ledger   credits.Ledger
	store    store.Store
}

// NewDelegationManager creates a payment delegation manager
func NewDelegationManager(
	registry registry.ContractRegistry,
	chain ethereum.ChainClient,
	ledger credits.Ledger,
	store store.Store,
) DelegationManager {
	return &delegationManager{
		registry: registry,
		chain:    chain,
		ledger:   ledger,
		store:    store,
	}
}

// Delegate registers payees under the payer in a single transaction
func (m *delegationManager) Delegate(ctx context.Context, payer *ethereum.Signer, payees []string, network domain.Network) (*domain.PaymentDelegation, error) {
	if err := domain.CheckCapacityCreditNetwork(network); err != nil {
		return nil, err
	}

	addresses, err := ParsePayees(payees)
	if err != nil {
		return nil, err
	}

	credit, err := m.ledger.GetOrMintCredit(ctx, payer, network)
	if err != nil {
		return nil, err
	}

	paymentDelegation, err := m.registry.Resolve(network, domain.ContractPaymentDelegation, payer)
	if err != nil {
		return nil, err
	}

	tx, err := paymentDelegation.Transact(ctx, nil, "delegatePaymentsBatch", addresses)
	if err != nil {
		metrics.ChainTransactions.WithLabelValues(domain.ContractPaymentDelegation, "delegatePaymentsBatch", "failed").Inc()
		return nil, err
	}

	if _, err := m.chain.WaitMined(ctx, tx); err != nil {
		metrics.ChainTransactions.WithLabelValues(domain.ContractPaymentDelegation, "delegatePaymentsBatch", "failed").Inc()
		return nil, err
	}
	metrics.ChainTransactions.WithLabelValues(domain.ContractPaymentDelegation, "delegatePaymentsBatch", "confirmed").Inc()
	metrics.PayeesDelegated.WithLabelValues(string(network)).Add(float64(len(addresses)))

	delegation := &domain.PaymentDelegation{
		Payer:           payer.Address(),
		Payees:          addresses,
		Network:         network,
		CapacityTokenID: credit.TokenID,
		TxHash:          tx.Hash(),
	}

	logger.InfoCtx(ctx, "Delegated payments",
		zap.String("payer", payer.Address().Hex()),
		zap.String("network", string(network)),
		zap.Int("payees", len(addresses)),
		zap.String("capacity_token_id", credit.TokenID.String()),
		zap.String("tx_hash", tx.Hash().Hex()))

	// the delegation is already on chain, a bookkeeping failure must not fail the request
	if err := m.store.CreatePayeeDelegations(ctx, delegationRecord(delegation)); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record payee delegation: %w", err),
			zap.String("payer", payer.Address().Hex()),
			zap.String("tx_hash", tx.Hash().Hex()))
	}

	return delegation, nil
}

// ParsePayees validates every payee before anything touches the network
func ParsePayees(payees []string) ([]common.Address, error) {
	if len(payees) == 0 {
		return nil, fmt.Errorf("%w: no payees given", domain.ErrInvalidAddress)
	}

	addresses := make([]common.Address, 0, len(payees))
	for _, payee := range payees {
		payee = strings.TrimSpace(payee)
		if !common.IsHexAddress(payee) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, payee)
		}
		address := common.HexToAddress(payee)
		if !checksumMatches(payee, address) {
			return nil, fmt.Errorf("%w: bad checksum %q", domain.ErrInvalidAddress, payee)
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}

// checksumMatches holds mixed-case input to its EIP-55 form. Single-case input carries no checksum.
func checksumMatches(payee string, address common.Address) bool {
	body := strings.TrimPrefix(strings.TrimPrefix(payee, "0x"), "0X")
	if strings.ToLower(body) == body || strings.ToUpper(body) == body {
		return true
	}
	return address.Hex()[2:] == body
}

func delegationRecord(d *domain.PaymentDelegation) store.CreatePayeeDelegationsInput {
	payees := make([]string, 0, len(d.Payees))
	for _, p := range d.Payees {
		payees = append(payees, p.Hex())
	}
	return store.CreatePayeeDelegationsInput{
		PayerAddress:    d.Payer.Hex(),
		PayeeAddresses:  payees,
		Network:         d.Network,
		CapacityTokenID: d.CapacityTokenID.String(),
		TxHash:          d.TxHash.Hex(),
	}
}
