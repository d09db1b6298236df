package credits

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/adapter"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/metrics"
	"github.com/yhl125/iampocket-relay-server/internal/providers/ethereum"
	"github.com/yhl125/iampocket-relay-server/internal/registry"
)

const tokenURIPrefix = "data:application/json;base64,"

// Ledger lists, mints and selects capacity credits
//
//go:generate mockgen -source=ledger.go -destination=../mocks/credits.go -package=mocks -mock_names=Ledger=MockLedger,Locker=MockLocker
type Ledger interface {
	// ListCredits returns every capacity credit held by owner, in enumeration order
	ListCredits(ctx context.Context, owner common.Address, network domain.Network) ([]domain.CapacityCredit, error)

	// MintCredit mints a new capacity credit to the signer
	MintCredit(ctx context.Context, signer *ethereum.Signer, network domain.Network, opts MintOptions) (*MintResult, error)

	// GetOrMintCredit returns the first usable credit of the signer, minting one when none exists
	GetOrMintCredit(ctx context.Context, signer *ethereum.Signer, network domain.Network) (*domain.CapacityCredit, error)
}

// Locker serializes work per key across every process sharing the lock backend
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// MintOptions tunes a mint; zero values fall back to the configured defaults
type MintOptions struct {
	RequestsPerKilosecond int64
	DaysUntilExpiry       int
}

// MintResult is a freshly minted credit and the transaction that minted it
type MintResult struct {
	Credit domain.CapacityCredit
	TxHash common.Hash
}

// Config holds ledger settings
type Config struct {
	RequestsPerKilosecond int64
	DaysUntilExpiry       int
	// ListConcurrency bounds how many credits are read in parallel
	ListConcurrency int
}

type ledger struct {
	config     Config
	registry   registry.ContractRegistry
	chain      ethereum.ChainClient
	clock      adapter.Clock
	json       adapter.JSON
	base64     adapter.Base64
	locker     Locker
	listPool   pond.ResultPool[domain.CapacityCredit]
	detailPool pond.Pool
}

// NewLedger creates a capacity credit ledger
func NewLedger(
	config Config,
	registry registry.ContractRegistry,
	chain ethereum.ChainClient,
	clock adapter.Clock,
	json adapter.JSON,
	base64 adapter.Base64,
	locker Locker,
) Ledger {
	if config.RequestsPerKilosecond <= 0 {
		config.RequestsPerKilosecond = domain.DefaultCreditRequestsPerKilosecond
	}
	if config.DaysUntilExpiry <= 0 {
		config.DaysUntilExpiry = domain.DefaultCreditDaysUntilExpiry
	}
	if config.ListConcurrency <= 0 {
		config.ListConcurrency = 8
	}

	return &ledger{
		config:   config,
		registry: registry,
		chain:    chain,
		clock:    clock,
		json:     json,
		base64:   base64,
		locker:   locker,
		listPool: pond.NewResultPool[domain.CapacityCredit](config.ListConcurrency),
		// each listed credit fans out into three reads
		detailPool: pond.NewPool(config.ListConcurrency * 3),
	}
}

// ListCredits returns every capacity credit held by owner, in enumeration order.
// A failure on any single credit fails the whole listing.
func (l *ledger) ListCredits(ctx context.Context, owner common.Address, network domain.Network) ([]domain.CapacityCredit, error) {
	if err := domain.CheckCapacityCreditNetwork(network); err != nil {
		return nil, err
	}

	rateLimitNFT, err := l.registry.Resolve(network, domain.ContractRateLimitNFT, nil)
	if err != nil {
		return nil, err
	}

	out, err := rateLimitNFT.Call(ctx, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	balance, err := bigOutput(out, "balanceOf")
	if err != nil {
		return nil, err
	}
	if !balance.IsInt64() {
		return nil, fmt.Errorf("balance of %s is out of range: %s", owner.Hex(), balance)
	}

	count := balance.Int64()
	if count == 0 {
		return []domain.CapacityCredit{}, nil
	}

	group := l.listPool.NewGroupContext(ctx)
	for i := int64(0); i < count; i++ {
		index := big.NewInt(i)
		group.SubmitErr(func() (domain.CapacityCredit, error) {
			return l.readCredit(ctx, rateLimitNFT, owner, index)
		})
	}

	credits, err := group.Wait()
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Listed capacity credits",
		zap.String("owner", owner.Hex()),
		zap.String("network", string(network)),
		zap.Int("count", len(credits)))

	return credits, nil
}

// readCredit resolves the token at index and reads its URI, capacity and expiry concurrently
func (l *ledger) readCredit(ctx context.Context, rateLimitNFT registry.Contract, owner common.Address, index *big.Int) (domain.CapacityCredit, error) {
	out, err := rateLimitNFT.Call(ctx, "tokenOfOwnerByIndex", owner, index)
	if err != nil {
		return domain.CapacityCredit{}, fmt.Errorf("failed to read capacity credit at index %s: %w", index, err)
	}
	tokenID, err := bigOutput(out, "tokenOfOwnerByIndex")
	if err != nil {
		return domain.CapacityCredit{}, fmt.Errorf("failed to read capacity credit at index %s: %w", index, err)
	}

	credit := domain.CapacityCredit{TokenID: tokenID, Owner: owner}

	group := l.detailPool.NewGroupContext(ctx)
	group.SubmitErr(
		func() error {
			out, err := rateLimitNFT.Call(ctx, "tokenURI", tokenID)
			if err != nil {
				return err
			}
			uri, err := stringOutput(out, "tokenURI")
			if err != nil {
				return err
			}
			credit.Metadata, err = l.decodeTokenURI(uri)
			return err
		},
		func() error {
			out, err := rateLimitNFT.Call(ctx, "capacity", tokenID)
			if err != nil {
				return err
			}
			if len(out) == 0 {
				return fmt.Errorf("capacity returned no values")
			}
			limit, err := decodeRateLimit(out[0])
			if err != nil {
				return err
			}
			credit.RequestsPerKilosecond = limit.RequestsPerKilosecond
			credit.ExpiresAt = l.clock.Unix(limit.ExpiresAt.Int64(), 0).UTC()
			return nil
		},
		func() error {
			out, err := rateLimitNFT.Call(ctx, "isExpired", tokenID)
			if err != nil {
				return err
			}
			if len(out) == 0 {
				return fmt.Errorf("isExpired returned no values")
			}
			expired, ok := out[0].(bool)
			if !ok {
				return fmt.Errorf("isExpired returned %T", out[0])
			}
			credit.IsExpired = expired
			return nil
		},
	)

	if err := group.Wait(); err != nil {
		return domain.CapacityCredit{}, fmt.Errorf("failed to read capacity credit %s: %w", tokenID, err)
	}

	return credit, nil
}

func (l *ledger) decodeTokenURI(uri string) (*domain.CapacityCreditMetadata, error) {
	payload, ok := strings.CutPrefix(uri, tokenURIPrefix)
	if !ok {
		return nil, fmt.Errorf("unexpected token URI format")
	}
	raw, err := l.base64.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token URI: %w", err)
	}
	var metadata domain.CapacityCreditMetadata
	if err := l.json.Unmarshal(raw, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse token URI: %w", err)
	}
	return &metadata, nil
}

// MintCredit mints a new capacity credit to the signer.
// Any failure before the mint is confirmed is reported as domain.ErrMintFailed.
func (l *ledger) MintCredit(ctx context.Context, signer *ethereum.Signer, network domain.Network, opts MintOptions) (*MintResult, error) {
	if err := domain.CheckCapacityCreditNetwork(network); err != nil {
		return nil, err
	}

	if opts.RequestsPerKilosecond <= 0 {
		opts.RequestsPerKilosecond = l.config.RequestsPerKilosecond
	}
	if opts.DaysUntilExpiry <= 0 {
		opts.DaysUntilExpiry = l.config.DaysUntilExpiry
	}

	rateLimitNFT, err := l.registry.Resolve(network, domain.ContractRateLimitNFT, signer)
	if err != nil {
		return nil, err
	}

	expiresAt := ExpiryAt(l.clock.Now(), opts.DaysUntilExpiry)
	requests := big.NewInt(opts.RequestsPerKilosecond)
	expires := big.NewInt(expiresAt.Unix())

	out, err := rateLimitNFT.Call(ctx, "calculateCost", requests, expires)
	if err == nil {
		var cost *big.Int
		cost, err = bigOutput(out, "calculateCost")
		if err == nil {
			return l.mint(ctx, rateLimitNFT, signer, network, cost, requests, expiresAt)
		}
	}

	logger.WarnCtx(ctx, "Could not estimate capacity credit cost",
		zap.String("owner", signer.Address().Hex()),
		zap.String("network", string(network)),
		zap.Error(err))
	return nil, fmt.Errorf("%w: could not estimate cost: %w", domain.ErrMintFailed, err)
}

func (l *ledger) mint(
	ctx context.Context,
	rateLimitNFT registry.Contract,
	signer *ethereum.Signer,
	network domain.Network,
	cost *big.Int,
	requests *big.Int,
	expiresAt time.Time,
) (*MintResult, error) {
	tx, err := rateLimitNFT.Transact(ctx, cost, "mint", big.NewInt(expiresAt.Unix()))
	if err != nil {
		metrics.ChainTransactions.WithLabelValues(domain.ContractRateLimitNFT, "mint", "failed").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrMintFailed, err)
	}

	receipt, err := l.chain.WaitMined(ctx, tx)
	if err != nil {
		metrics.ChainTransactions.WithLabelValues(domain.ContractRateLimitNFT, "mint", "failed").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrMintFailed, err)
	}
	metrics.ChainTransactions.WithLabelValues(domain.ContractRateLimitNFT, "mint", "confirmed").Inc()

	tokenID, err := mintedTokenID(receipt)
	if err != nil {
		return nil, err
	}

	metrics.CapacityCreditsMinted.WithLabelValues(string(network)).Inc()
	logger.InfoCtx(ctx, "Minted capacity credit",
		zap.String("owner", signer.Address().Hex()),
		zap.String("network", string(network)),
		zap.String("token_id", tokenID.String()),
		zap.String("cost_wei", cost.String()),
		zap.Time("expires_at", expiresAt))

	return &MintResult{
		Credit: domain.CapacityCredit{
			TokenID:               tokenID,
			Owner:                 signer.Address(),
			RequestsPerKilosecond: requests,
			ExpiresAt:             expiresAt,
		},
		TxHash: tx.Hash(),
	}, nil
}

// GetOrMintCredit returns the first usable credit of the signer, minting one when none exists.
// The scan and the mint run under a per-owner lock so concurrent callers never both mint.
func (l *ledger) GetOrMintCredit(ctx context.Context, signer *ethereum.Signer, network domain.Network) (*domain.CapacityCredit, error) {
	if err := domain.CheckCapacityCreditNetwork(network); err != nil {
		return nil, err
	}

	var credit *domain.CapacityCredit
	err := l.locker.WithLock(ctx, LockKey(network, signer.Address()), func(ctx context.Context) error {
		credits, err := l.ListCredits(ctx, signer.Address(), network)
		if err != nil {
			return err
		}
		for i := range credits {
			if credits[i].Usable() {
				credit = &credits[i]
				return nil
			}
		}

		result, err := l.MintCredit(ctx, signer, network, MintOptions{})
		if err != nil {
			return err
		}
		credit = &result.Credit
		return nil
	})
	if err != nil {
		return nil, err
	}

	return credit, nil
}

// LockKey names the critical section guarding credit selection for an owner
func LockKey(network domain.Network, owner common.Address) string {
	return "capacity-credit:" + string(network) + ":" + strings.ToLower(owner.Hex())
}

// ExpiryAt returns the earliest UTC midnight at least days after now
func ExpiryAt(now time.Time, days int) time.Time {
	target := now.UTC().Add(time.Duration(days) * 24 * time.Hour)
	midnight := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	if midnight.Before(target) {
		midnight = midnight.AddDate(0, 0, 1)
	}
	return midnight
}

// mintedTokenID reads the token id from the fourth topic of the first receipt log (ERC-721 Transfer)
func mintedTokenID(receipt *types.Receipt) (*big.Int, error) {
	if receipt == nil || len(receipt.Logs) == 0 || len(receipt.Logs[0].Topics) < 4 {
		return nil, fmt.Errorf("%w: mint receipt carries no token id", domain.ErrMintFailed)
	}
	return receipt.Logs[0].Topics[3].Big(), nil
}

func bigOutput(out []interface{}, method string) (*big.Int, error) {
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	v, ok := out[0].(*big.Int)
	if !ok || v == nil {
		return nil, fmt.Errorf("%s returned %T, expected *big.Int", method, out[0])
	}
	return v, nil
}

func stringOutput(out []interface{}, method string) (string, error) {
	if len(out) == 0 {
		return "", fmt.Errorf("%s returned no values", method)
	}
	v, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("%s returned %T, expected string", method, out[0])
	}
	return v, nil
}

// rateLimit mirrors the RateLimit tuple returned by capacity
type rateLimit struct {
	RequestsPerKilosecond *big.Int
	ExpiresAt             *big.Int
}

func decodeRateLimit(v interface{}) (limit *rateLimit, err error) {
	defer func() {
		if r := recover(); r != nil {
			limit, err = nil, fmt.Errorf("capacity returned %T: %v", v, r)
		}
	}()

	limit = abi.ConvertType(v, new(rateLimit)).(*rateLimit)
	if limit.RequestsPerKilosecond == nil || limit.ExpiresAt == nil {
		return nil, fmt.Errorf("capacity tuple is incomplete")
	}
	return limit, nil
}
