package payment

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/yhl125/iampocket-relay-server/internal/adapter"
	"github.com/yhl125/iampocket-relay-server/internal/credits"
	"github.com/yhl125/iampocket-relay-server/internal/domain"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/metrics"
	"github.com/yhl125/iampocket-relay-server/internal/providers/ethereum"
	"github.com/yhl125/iampocket-relay-server/internal/store"
)

// PayerProvisioner creates funded payer wallets holding a capacity credit
//
//go:generate mockgen -source=payer.go -destination=../mocks/payment_payer.go -package=mocks -mock_names=PayerProvisioner=MockPayerProvisioner
type PayerProvisioner interface {
	// Provision generates a wallet, funds it from the treasury and mints it a capacity credit.
	// The returned wallet is the only place its private key ever appears.
	Provision(ctx context.Context, network domain.Network) (*domain.FundingWallet, error)
}

// PayerConfig holds payer provisioning settings
type PayerConfig struct {
	// FundingAmount is the wei sent from the treasury to every new wallet
	FundingAmount *big.Int
}

type payerProvisioner struct {
	config   PayerConfig
	treasury *ethereum.Signer
	keygen   adapter.KeyGenerator
	chain    ethereum.ChainClient
	ledger   credits.Ledger
	store    store.Store
}

// NewPayerProvisioner creates a payer provisioner funded by treasury
func NewPayerProvisioner(
	config PayerConfig,
	treasury *ethereum.Signer,
	keygen adapter.KeyGenerator,
	chain ethereum.ChainClient,
	ledger credits.Ledger,
	store store.Store,
) PayerProvisioner {
	if config.FundingAmount == nil {
		config.FundingAmount, _ = ethereum.ParseEther(domain.DefaultPayerFundingAmount)
	}
	return &payerProvisioner{
		config:   config,
		treasury: treasury,
		keygen:   keygen,
		chain:    chain,
		ledger:   ledger,
		store:    store,
	}
}

// Provision generates a wallet, funds it from the treasury and mints it a capacity credit
func (p *payerProvisioner) Provision(ctx context.Context, network domain.Network) (*domain.FundingWallet, error) {
	if err := domain.CheckCapacityCreditNetwork(network); err != nil {
		return nil, err
	}

	payer, err := ethereum.GenerateSigner(p.keygen, p.treasury.ChainID())
	if err != nil {
		return nil, err
	}

	funding, err := p.chain.SendValue(ctx, p.treasury, payer.Address(), p.config.FundingAmount)
	if err != nil {
		metrics.ChainTransactions.WithLabelValues("treasury", "transfer", "failed").Inc()
		return nil, err
	}
	metrics.ChainTransactions.WithLabelValues("treasury", "transfer", "confirmed").Inc()

	logger.InfoCtx(ctx, "Funded payer wallet",
		zap.String("payer", payer.Address().Hex()),
		zap.String("network", string(network)),
		zap.String("amount_wei", p.config.FundingAmount.String()),
		zap.String("tx_hash", funding.TxHash.Hex()))

	minted, err := p.ledger.MintCredit(ctx, payer, network, credits.MintOptions{})
	if err != nil {
		if !errors.Is(err, domain.ErrMintFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrMintFailed, err)
		}
		return nil, err
	}

	wallet := &domain.FundingWallet{
		Address:         payer.Address(),
		PrivateKey:      payer.PrivateKeyHex(),
		Network:         network,
		CapacityTokenID: minted.Credit.TokenID,
	}

	if err := p.store.CreatePayerWallet(ctx, store.CreatePayerWalletInput{
		Address:         wallet.Address.Hex(),
		Network:         network,
		CapacityTokenID: minted.Credit.TokenID.String(),
		FundingTxHash:   funding.TxHash.Hex(),
		MintTxHash:      minted.TxHash.Hex(),
	}); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record payer wallet: %w", err),
			zap.String("payer", wallet.Address.Hex()))
	}

	metrics.PayersRegistered.WithLabelValues(string(network)).Inc()
	logger.InfoCtx(ctx, "Registered payer wallet",
		zap.String("payer", wallet.Address.Hex()),
		zap.String("network", string(network)),
		zap.String("capacity_token_id", minted.Credit.TokenID.String()))

	return wallet, nil
}
