package adapter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthClient defines an interface for Ethereum client operations to enable mocking.
// It satisfies bind.ContractBackend so contract bindings can run on top of it.
//
//go:generate mockgen -source=ethclient.go -destination=../mocks/ethclient.go -package=mocks -mock_names=EthClient=MockEthClient,EthClientDialer=MockEthClientDialer
type EthClient interface {
	bind.ContractBackend

	// HeaderByNumber returns a header by number, nil for the latest
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// TransactionReceipt returns the receipt of a mined transaction
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	// BalanceAt returns the balance of an account, nil block for the latest
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)

	// ChainID returns the chain id of the connected network
	ChainID(ctx context.Context) (*big.Int, error)

	// Close closes the connection
	Close()
}

var _ EthClient = (*ethclient.Client)(nil)

// EthClientDialer defines an interface for dialing Ethereum clients
type EthClientDialer interface {
	Dial(ctx context.Context, rawurl string) (EthClient, error)
}

// RealEthClientDialer implements EthClientDialer using the standard ethclient package
type RealEthClientDialer struct{}

// NewEthClientDialer creates a new real Ethereum client dialer
func NewEthClientDialer() EthClientDialer {
	return &RealEthClientDialer{}
}

func (a *RealEthClientDialer) Dial(ctx context.Context, rawurl string) (EthClient, error) {
	return ethclient.DialContext(ctx, rawurl)
}
