package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yhl125/iampocket-relay-server/internal/adapter"
	"github.com/yhl125/iampocket-relay-server/internal/api/middleware"
	"github.com/yhl125/iampocket-relay-server/internal/api/server"
	"github.com/yhl125/iampocket-relay-server/internal/api/shared/executor"
	"github.com/yhl125/iampocket-relay-server/internal/config"
	"github.com/yhl125/iampocket-relay-server/internal/credits"
	"github.com/yhl125/iampocket-relay-server/internal/identity"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/metrics"
	"github.com/yhl125/iampocket-relay-server/internal/payment"
	"github.com/yhl125/iampocket-relay-server/internal/providers/ethereum"
	"github.com/yhl125/iampocket-relay-server/internal/providers/lit"
	temporal "github.com/yhl125/iampocket-relay-server/internal/providers/temporal"
	"github.com/yhl125/iampocket-relay-server/internal/registry"
	"github.com/yhl125/iampocket-relay-server/internal/store"
	"github.com/yhl125/iampocket-relay-server/internal/telegram"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
			"network": string(cfg.Identity.Network),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting iampocket relay API")

	metrics.Init()

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	base64Adapter := adapter.NewBase64()
	clockAdapter := adapter.NewClock()
	keygen := adapter.NewKeyGenerator()

	// Connect to the chain hosting the Lit contracts
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial chain RPC", zap.Error(err), zap.String("rpc_url", cfg.Chain.RPCURL))
	}
	defer ethClient.Close()
	chainClient := ethereum.NewChainClient(ethClient, ethereum.Config{
		ReceiptPollInterval: cfg.Chain.ReceiptPollInterval,
		ReceiptTimeout:      cfg.Chain.ReceiptTimeout,
	})
	logger.InfoCtx(ctx, "Connected to chain RPC",
		zap.String("rpc_url", cfg.Chain.RPCURL),
		zap.Int64("chain_id", cfg.Chain.ChainID))

	treasury, err := ethereum.ParseSigner(cfg.Treasury.PrivateKey, cfg.Chain.ChainIDBig())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load treasury wallet", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Loaded treasury wallet", zap.String("address", treasury.Address().Hex()))

	fundingAmount, err := ethereum.ParseEther(cfg.Treasury.FundingAmount)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid payer funding amount", zap.Error(err), zap.String("funding_amount", cfg.Treasury.FundingAmount))
	}

	// Load contract registry
	contracts, err := registry.NewContractRegistryLoader(fs, jsonAdapter, ethClient).Load(cfg.ContractsDir)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load contract registry", zap.Error(err), zap.String("path", cfg.ContractsDir))
	}
	logger.InfoCtx(ctx, "Loaded contract registry", zap.Int("networks", len(contracts.Networks())))

	// Domain services
	ledger := credits.NewLedger(credits.Config{
		RequestsPerKilosecond: cfg.Credits.RequestsPerKilosecond,
		DaysUntilExpiry:       cfg.Credits.DaysUntilExpiry,
		ListConcurrency:       cfg.Credits.ListConcurrency,
	}, contracts, chainClient, clockAdapter, jsonAdapter, base64Adapter, credits.Stack(credits.NewLocalLocker(), dataStore))
	payers := payment.NewPayerProvisioner(payment.PayerConfig{FundingAmount: fundingAmount}, treasury, keygen, chainClient, ledger, dataStore)
	delegations := payment.NewDelegationManager(contracts, chainClient, ledger, dataStore)
	validator := telegram.NewValidator(cfg.Telegram.BotToken, cfg.Telegram.InitDataTTL, clockAdapter)
	resolver := identity.NewResolver(cfg.Identity.Network, contracts)
	nodeClient := lit.NewNodeClient(lit.Config{
		Network:       cfg.Identity.Network,
		Domain:        cfg.Lit.Domain,
		DelegationTTL: cfg.Lit.DelegationTTL,
	}, chainClient, clockAdapter, jsonAdapter, base64Adapter)

	// Connect to Temporal with logger integration
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	exec := executor.NewExecutor(executor.Config{
		Network:          cfg.Identity.Network,
		ChainID:          cfg.Chain.ChainIDBig(),
		TaskQueue:        cfg.Temporal.ProvisioningTaskQueue,
		RequirePayerAuth: cfg.Telegram.RequirePayerAuth,
	}, validator, resolver, dataStore, temporalClient, payers, delegations, nodeClient)

	limiter := middleware.NewIPRateLimiter(middleware.RateLimitConfig{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Burst:             cfg.RateLimit.Burst,
	})

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		RequestTimeout: cfg.Server.RequestTimeout,
	}, exec, limiter)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
