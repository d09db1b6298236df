package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
)

const envPrefix = "RELAY"

// legacyEnvKeys maps environment names used by earlier relay deployments to config keys
var legacyEnvKeys = map[string]string{
	"telegram.bot_token":   "TELGRAM_BOT_TOKEN",
	"treasury.private_key": "EOA_PRIVATE_KEY",
}

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m"
}

// ChainConfig holds settings of the chain hosting the Lit contracts
type ChainConfig struct {
	RPCURL              string        `mapstructure:"rpc_url"`
	ChainID             int64         `mapstructure:"chain_id"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`
	ReceiptTimeout      time.Duration `mapstructure:"receipt_timeout"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string        `mapstructure:"host_port"`
	Namespace                          string        `mapstructure:"namespace"`
	ProvisioningTaskQueue              string        `mapstructure:"provisioning_task_queue"`
	MaxConcurrentActivityExecutionSize int           `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64       `mapstructure:"worker_activities_per_second"`
	StepTimeout                        time.Duration `mapstructure:"step_timeout"`
}

// TelegramConfig holds Telegram init-data verification settings
type TelegramConfig struct {
	BotToken    string        `mapstructure:"bot_token"`
	InitDataTTL time.Duration `mapstructure:"init_data_ttl"`
	// RequirePayerAuth makes payer routes verify init-data too
	RequirePayerAuth bool `mapstructure:"require_payer_auth"`
}

// TreasuryConfig holds the relay wallet paying for mints and payer funding.
// The private key is never logged.
type TreasuryConfig struct {
	PrivateKey    string `mapstructure:"private_key"`
	FundingAmount string `mapstructure:"funding_amount"` // in ether, e.g. "0.001"
}

// CreditsConfig holds capacity credit minting settings
type CreditsConfig struct {
	RequestsPerKilosecond int64 `mapstructure:"requests_per_kilosecond"`
	DaysUntilExpiry       int   `mapstructure:"days_until_expiry"`
	ListConcurrency       int   `mapstructure:"list_concurrency"`
}

// IdentityConfig holds identity provisioning settings
type IdentityConfig struct {
	Network      domain.Network `mapstructure:"network"`
	LitActionCID string         `mapstructure:"lit_action_cid"`
}

// LitConfig holds node network client settings
type LitConfig struct {
	Domain        string        `mapstructure:"domain"`
	DelegationTTL time.Duration `mapstructure:"delegation_ttl"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// RequestTimeout bounds provisioning requests that wait for a workflow
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// RateLimitConfig throttles wallet creation per client IP
type RateLimitConfig struct {
	RequestsPerMinute float64 `mapstructure:"requests_per_minute"`
	Burst             int     `mapstructure:"burst"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Temporal     TemporalConfig  `mapstructure:"temporal"`
	Chain        ChainConfig     `mapstructure:"chain"`
	Telegram     TelegramConfig  `mapstructure:"telegram"`
	Treasury     TreasuryConfig  `mapstructure:"treasury"`
	Credits      CreditsConfig   `mapstructure:"credits"`
	Identity     IdentityConfig  `mapstructure:"identity"`
	Lit          LitConfig       `mapstructure:"lit"`
	RateLimit    RateLimitConfig `mapstructure:"rate_limit"`
	ContractsDir string          `mapstructure:"contracts_dir"`
}

// WorkerConfig holds configuration for the provisioning worker
type WorkerConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Database     DatabaseConfig `mapstructure:"database"`
	Temporal     TemporalConfig `mapstructure:"temporal"`
	Chain        ChainConfig    `mapstructure:"chain"`
	Treasury     TreasuryConfig `mapstructure:"treasury"`
	Identity     IdentityConfig `mapstructure:"identity"`
	Lit          LitConfig      `mapstructure:"lit"`
	ContractsDir string         `mapstructure:"contracts_dir"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setCommonDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 180)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.request_timeout", "3m")
	v.SetDefault("telegram.init_data_ttl", "24h")
	v.SetDefault("telegram.require_payer_auth", true)
	v.SetDefault("credits.requests_per_kilosecond", domain.DefaultCreditRequestsPerKilosecond)
	v.SetDefault("credits.days_until_expiry", domain.DefaultCreditDaysUntilExpiry)
	v.SetDefault("credits.list_concurrency", 8)
	v.SetDefault("rate_limit.requests_per_minute", 10)
	v.SetDefault("rate_limit.burst", 5)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Telegram.BotToken == "" {
		return nil, errors.New("telegram.bot_token is required")
	}
	if err := validateCommon(config.Treasury, config.Identity, config.Chain); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadWorkerConfig loads configuration for the provisioning worker
func LoadWorkerConfig(configFile string, envPath string) (*WorkerConfig, error) {
	v := configureViper("worker-provisioning", configFile, envPath)

	setCommonDefaults(v)
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 20)
	v.SetDefault("temporal.worker_activities_per_second", 10)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config WorkerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateCommon(config.Treasury, config.Identity, config.Chain); err != nil {
		return nil, err
	}

	return &config, nil
}

func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.provisioning_task_queue", "identity-provisioning")
	v.SetDefault("temporal.step_timeout", "5m")
	v.SetDefault("chain.rpc_url", "https://yellowstone-rpc.litprotocol.com")
	v.SetDefault("chain.chain_id", 175188)
	v.SetDefault("chain.receipt_poll_interval", "1s")
	v.SetDefault("chain.receipt_timeout", "2m")
	v.SetDefault("treasury.funding_amount", domain.DefaultPayerFundingAmount)
	v.SetDefault("identity.network", string(domain.NetworkDatil))
	v.SetDefault("identity.lit_action_cid", domain.DefaultLitActionCID)
	v.SetDefault("lit.domain", "localhost")
	v.SetDefault("lit.delegation_ttl", "24h")
	v.SetDefault("contracts_dir", "config/networks")
}

func validateCommon(treasury TreasuryConfig, identity IdentityConfig, chain ChainConfig) error {
	if treasury.PrivateKey == "" {
		return errors.New("treasury.private_key is required")
	}
	if !domain.IsSupportedNetwork(identity.Network) {
		return fmt.Errorf("identity.network: %w: %s", domain.ErrUnsupportedNetwork, identity.Network)
	}
	if chain.ChainID <= 0 {
		return errors.New("chain.chain_id must be positive")
	}
	return nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to struct fields when no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"contracts_dir",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.provisioning_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.step_timeout",
		// Chain
		"chain.rpc_url",
		"chain.chain_id",
		"chain.receipt_poll_interval",
		"chain.receipt_timeout",
		// Telegram
		"telegram.bot_token",
		"telegram.init_data_ttl",
		"telegram.require_payer_auth",
		// Treasury
		"treasury.private_key",
		"treasury.funding_amount",
		// Credits
		"credits.requests_per_kilosecond",
		"credits.days_until_expiry",
		"credits.list_concurrency",
		// Identity
		"identity.network",
		"identity.lit_action_cid",
		// Lit
		"lit.domain",
		"lit.delegation_ttl",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.request_timeout",
		// Rate limit
		"rate_limit.requests_per_minute",
		"rate_limit.burst",
	}

	for _, key := range keys {
		envName := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if legacy, ok := legacyEnvKeys[key]; ok {
			// the prefixed name wins when both are set
			_ = v.BindEnv(key, envName, legacy)
			continue
		}
		_ = v.BindEnv(key, envName)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ChainIDBig returns the chain id as a big integer for signers
func (c *ChainConfig) ChainIDBig() *big.Int {
	return big.NewInt(c.ChainID)
}
