package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/adapter"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
)

// ChainClient covers the chain operations that are not contract calls
//
//go:generate mockgen -source=client.go -destination=../../mocks/chain_client.go -package=mocks -mock_names=ChainClient=MockChainClient
type ChainClient interface {
	// WaitMined blocks until tx has a successful receipt
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	// SendValue transfers native currency from a signer and waits for the receipt
	SendValue(ctx context.Context, from *Signer, to common.Address, amount *big.Int) (*types.Receipt, error)

	// LatestBlockHash returns the hash of the current head block
	LatestBlockHash(ctx context.Context) (common.Hash, error)
}

// Config holds receipt polling settings
type Config struct {
	// ReceiptPollInterval is the delay between receipt lookups
	ReceiptPollInterval time.Duration
	// ReceiptTimeout bounds a confirmation wait; zero waits as long as the caller's context allows
	ReceiptTimeout time.Duration
}

var errReceiptPending = errors.New("receipt pending")

type chainClient struct {
	client adapter.EthClient
	config Config
}

// NewChainClient creates a chain client on top of an RPC connection
func NewChainClient(client adapter.EthClient, config Config) ChainClient {
	if config.ReceiptPollInterval <= 0 {
		config.ReceiptPollInterval = 2 * time.Second
	}
	return &chainClient{client: client, config: config}
}

// WaitMined polls for the receipt of tx until it is mined.
// Lookup errors other than "not found" stop the wait immediately.
func (c *chainClient) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if c.config.ReceiptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.ReceiptTimeout)
		defer cancel()
	}

	var receipt *types.Receipt
	operation := func() error {
		r, err := c.client.TransactionReceipt(ctx, tx.Hash())
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return errReceiptPending
			}
			return backoff.Permanent(fmt.Errorf("failed to get receipt: %w", err))
		}
		receipt = r
		return nil
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(c.config.ReceiptPollInterval), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return nil, fmt.Errorf("%w: transaction %s not confirmed: %w", domain.ErrTransactionFailed, tx.Hash().Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: transaction %s reverted", domain.ErrTransactionFailed, tx.Hash().Hex())
	}

	logger.DebugCtx(ctx, "Transaction confirmed",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()))

	return receipt, nil
}

// SendValue transfers native currency and waits for the receipt
func (c *chainClient) SendValue(ctx context.Context, from *Signer, to common.Address, amount *big.Int) (*types.Receipt, error) {
	opts, err := from.TransactOpts(ctx, amount)
	if err != nil {
		return nil, err
	}

	// an empty ABI is enough for a plain value transfer
	recipient := bind.NewBoundContract(to, abi.ABI{}, c.client, c.client, c.client)
	tx, err := recipient.Transfer(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send value to %s: %w", domain.ErrTransactionFailed, to.Hex(), err)
	}

	logger.InfoCtx(ctx, "Value transfer submitted",
		zap.String("from", from.Address().Hex()),
		zap.String("to", to.Hex()),
		zap.String("amount_wei", amount.String()),
		zap.String("tx_hash", tx.Hash().Hex()))

	return c.WaitMined(ctx, tx)
}

// LatestBlockHash returns the hash of the current head block
func (c *chainClient) LatestBlockHash(ctx context.Context) (common.Hash, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get latest header: %w", err)
	}
	return header.Hash(), nil
}

// ParseEther converts a decimal amount of native currency into wei
func ParseEther(amount string) (*big.Int, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(amount))
	if !ok || r.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}
	r.Mul(r, new(big.Rat).SetInt(big.NewInt(1e18)))
	if !r.IsInt() {
		return nil, fmt.Errorf("amount %q has more than 18 decimals", amount)
	}
	return new(big.Int).Set(r.Num()), nil
}
