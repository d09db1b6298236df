package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"path/filepath"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/adapter"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/providers/ethereum"
)

// ContractRegistry resolves contract addresses and ABIs per Lit network.
// It is loaded once and never mutated afterwards.
//
//go:generate mockgen -source=contracts.go -destination=../mocks/contract_registry.go -package=mocks -mock_names=ContractRegistry=MockContractRegistry,Contract=MockContract
type ContractRegistry interface {
	// Resolve returns a handle for a named contract on a network.
	// A nil signer yields a read-only handle.
	Resolve(network domain.Network, name string, signer *ethereum.Signer) (Contract, error)

	// Networks lists the networks with a loaded contract table
	Networks() []domain.Network
}

// Contract is a deployed contract bound to a reader or a signer
type Contract interface {
	// Name returns the published contract name
	Name() string

	// Address returns the deployed address
	Address() common.Address

	// Call invokes a constant method and returns its unpacked outputs
	Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error)

	// Transact submits a transaction invoking method, paying value (may be nil)
	Transact(ctx context.Context, value *big.Int, method string, args ...interface{}) (*types.Transaction, error)
}

// publishedNetwork is the contract table format published for every Lit network
type publishedNetwork struct {
	Data []struct {
		Name      string `json:"name"`
		Contracts []struct {
			AddressHash string          `json:"address_hash"`
			ABI         json.RawMessage `json:"ABI"`
		} `json:"contracts"`
	} `json:"data"`
}

type contractEntry struct {
	address common.Address
	abi     abi.ABI
}

// ContractRegistryLoader loads contract tables from disk
type ContractRegistryLoader struct {
	fs      adapter.FileSystem
	json    adapter.JSON
	backend adapter.EthClient
}

// NewContractRegistryLoader creates a loader whose registries bind contracts to backend
func NewContractRegistryLoader(fs adapter.FileSystem, json adapter.JSON, backend adapter.EthClient) *ContractRegistryLoader {
	return &ContractRegistryLoader{fs: fs, json: json, backend: backend}
}

// Load reads <dir>/<network>.json for every supported network.
// Missing files leave the network unresolvable; any other error aborts loading.
func (l *ContractRegistryLoader) Load(dir string) (ContractRegistry, error) {
	reg := &contractRegistry{
		backend: l.backend,
		tables:  make(map[domain.Network]map[string]contractEntry),
	}

	for _, network := range domain.SupportedNetworks {
		path := filepath.Join(dir, string(network)+".json")
		data, err := l.fs.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("No contract table for network", zap.String("network", string(network)), zap.String("path", path))
				continue
			}
			return nil, fmt.Errorf("failed to read contract table %s: %w", path, err)
		}

		var published publishedNetwork
		if err := l.json.Unmarshal(data, &published); err != nil {
			return nil, fmt.Errorf("failed to parse contract table %s: %w", path, err)
		}

		table := make(map[string]contractEntry, len(published.Data))
		for _, entry := range published.Data {
			if len(entry.Contracts) == 0 {
				continue
			}
			c := entry.Contracts[0]
			if !common.IsHexAddress(c.AddressHash) {
				return nil, fmt.Errorf("invalid address %q for %s on %s", c.AddressHash, entry.Name, network)
			}
			parsed, err := abi.JSON(bytes.NewReader(c.ABI))
			if err != nil {
				return nil, fmt.Errorf("failed to parse ABI of %s on %s: %w", entry.Name, network, err)
			}
			table[entry.Name] = contractEntry{address: common.HexToAddress(c.AddressHash), abi: parsed}
		}

		reg.tables[network] = table
		logger.Info("Loaded contract table", zap.String("network", string(network)), zap.Int("contracts", len(table)))
	}

	if len(reg.tables) == 0 {
		return nil, fmt.Errorf("no contract tables found in %s", dir)
	}

	return reg, nil
}

type contractRegistry struct {
	backend adapter.EthClient
	tables  map[domain.Network]map[string]contractEntry
}

// Resolve returns a handle for a named contract on a network
func (r *contractRegistry) Resolve(network domain.Network, name string, signer *ethereum.Signer) (Contract, error) {
	table, ok := r.tables[network]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedNetwork, network)
	}
	entry, ok := table[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", domain.ErrContractNotFound, name, network)
	}

	return &boundContract{
		name:     name,
		address:  entry.address,
		signer:   signer,
		contract: bind.NewBoundContract(entry.address, entry.abi, r.backend, r.backend, r.backend),
	}, nil
}

// Networks lists the networks with a loaded contract table
func (r *contractRegistry) Networks() []domain.Network {
	networks := make([]domain.Network, 0, len(r.tables))
	for n := range r.tables {
		networks = append(networks, n)
	}
	sort.Slice(networks, func(i, j int) bool { return networks[i] < networks[j] })
	return networks
}

type boundContract struct {
	name     string
	address  common.Address
	signer   *ethereum.Signer
	contract *bind.BoundContract
}

func (c *boundContract) Name() string {
	return c.name
}

func (c *boundContract) Address() common.Address {
	return c.address
}

func (c *boundContract) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("failed to call %s.%s: %w", c.name, method, err)
	}
	return out, nil
}

func (c *boundContract) Transact(ctx context.Context, value *big.Int, method string, args ...interface{}) (*types.Transaction, error) {
	if c.signer == nil {
		return nil, fmt.Errorf("%s is bound read-only, cannot send %s", c.name, method)
	}
	opts, err := c.signer.TransactOpts(ctx, value)
	if err != nil {
		return nil, err
	}
	tx, err := c.contract.Transact(opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s: %w", domain.ErrTransactionFailed, c.name, method, err)
	}

	logger.InfoCtx(ctx, "Transaction submitted",
		zap.String("contract", c.name),
		zap.String("method", method),
		zap.String("from", c.signer.Address().Hex()),
		zap.String("tx_hash", tx.Hash().Hex()))

	return tx, nil
}
