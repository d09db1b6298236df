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
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yhl125/iampocket-relay-server/internal/adapter"
	"github.com/yhl125/iampocket-relay-server/internal/config"
	"github.com/yhl125/iampocket-relay-server/internal/identity"
	"github.com/yhl125/iampocket-relay-server/internal/logger"
	"github.com/yhl125/iampocket-relay-server/internal/metrics"
	"github.com/yhl125/iampocket-relay-server/internal/providers/ethereum"
	"github.com/yhl125/iampocket-relay-server/internal/providers/lit"
	temporal "github.com/yhl125/iampocket-relay-server/internal/providers/temporal"
	"github.com/yhl125/iampocket-relay-server/internal/registry"
	"github.com/yhl125/iampocket-relay-server/internal/store"
	"github.com/yhl125/iampocket-relay-server/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "worker-provisioning",
			"network": string(cfg.Identity.Network),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting provisioning worker")

	metrics.Init()

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	base64Adapter := adapter.NewBase64()
	clockAdapter := adapter.NewClock()

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
	logger.InfoCtx(ctx, "Connected to chain RPC", zap.String("rpc_url", cfg.Chain.RPCURL))

	treasury, err := ethereum.ParseSigner(cfg.Treasury.PrivateKey, cfg.Chain.ChainIDBig())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load treasury wallet", zap.Error(err))
	}

	contracts, err := registry.NewContractRegistryLoader(fs, jsonAdapter, ethClient).Load(cfg.ContractsDir)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load contract registry", zap.Error(err), zap.String("path", cfg.ContractsDir))
	}

	provisioner := identity.NewProvisioner(cfg.Identity.Network, contracts, chainClient, treasury)
	nodeClient := lit.NewNodeClient(lit.Config{
		Network:       cfg.Identity.Network,
		Domain:        cfg.Lit.Domain,
		DelegationTTL: cfg.Lit.DelegationTTL,
	}, chainClient, clockAdapter, jsonAdapter, base64Adapter)

	// Initialize executor for activities
	executor := workflows.NewExecutor(workflows.ExecutorConfig{
		LitActionCID: cfg.Identity.LitActionCID,
	}, nodeClient, provisioner, dataStore)

	// Connect to Temporal
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.ProvisioningTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			Interceptors:                       []interceptor.WorkerInterceptor{temporal.NewSentryActivityInterceptor()},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("taskQueue", cfg.Temporal.ProvisioningTaskQueue))

	workerCore := workflows.NewWorkerCore(executor, workflows.WorkerCoreConfig{
		StepTimeout: cfg.Temporal.StepTimeout,
	})

	// Register workflows
	temporalWorker.RegisterWorkflow(workerCore.ProvisionIdentity)

	// Register activities
	temporalWorker.RegisterActivity(executor.ConnectNodeNetwork)
	temporalWorker.RegisterActivity(executor.MintIdentityToken)
	temporalWorker.RegisterActivity(executor.ReadIdentityPublicKey)
	temporalWorker.RegisterActivity(executor.PermitAuthMethod)
	temporalWorker.RegisterActivity(executor.PermitProgram)
	temporalWorker.RegisterActivity(executor.TransferIdentityToSelf)
	temporalWorker.RegisterActivity(executor.RecordProvisioningProgress)
	logger.InfoCtx(ctx, "Registered workflows and activities")

	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down worker...")
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
