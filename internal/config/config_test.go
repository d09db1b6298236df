package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yhl125/iampocket-relay-server/internal/domain"
)

// testTreasuryKey is a throwaway key used only by tests
const testTreasuryKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

// isolateEnv makes the relay environment variables empty for the test and restores them afterwards
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"RELAY_TELEGRAM_BOT_TOKEN", "TELGRAM_BOT_TOKEN",
		"RELAY_TREASURY_PRIVATE_KEY", "EOA_PRIVATE_KEY",
		"RELAY_DEBUG", "RELAY_IDENTITY_NETWORK", "RELAY_CHAIN_CHAIN_ID",
		"RELAY_DATABASE_HOST", "RELAY_DATABASE_PORT",
	} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	if content == "" {
		return filepath.Join(tmpDir, "nonexistent.yaml")
	}
	path := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
contracts_dir: "/etc/relay/networks"
server:
  port: 9090
  request_timeout: "90s"
database:
  host: localhost
  user: relay
  password: secret
  dbname: relay
chain:
  rpc_url: "http://localhost:8545"
  chain_id: 31337
telegram:
  bot_token: "123:abc"
  init_data_ttl: "1h"
  require_payer_auth: false
treasury:
  private_key: "` + testTreasuryKey + `"
  funding_amount: "0.5"
credits:
  requests_per_kilosecond: 300
  days_until_expiry: 30
identity:
  network: habanero
rate_limit:
  requests_per_minute: 2
  burst: 1
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "/etc/relay/networks", cfg.ContractsDir)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 90*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "http://localhost:8545", cfg.Chain.RPCURL)
				assert.Equal(t, int64(31337), cfg.Chain.ChainID)
				assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
				assert.Equal(t, time.Hour, cfg.Telegram.InitDataTTL)
				assert.False(t, cfg.Telegram.RequirePayerAuth)
				assert.Equal(t, testTreasuryKey, cfg.Treasury.PrivateKey)
				assert.Equal(t, "0.5", cfg.Treasury.FundingAmount)
				assert.Equal(t, int64(300), cfg.Credits.RequestsPerKilosecond)
				assert.Equal(t, 30, cfg.Credits.DaysUntilExpiry)
				assert.Equal(t, domain.NetworkHabanero, cfg.Identity.Network)
				assert.Equal(t, float64(2), cfg.RateLimit.RequestsPerMinute)
				assert.Equal(t, 1, cfg.RateLimit.Burst)
			},
		},
		{
			name: "config with defaults",
			configFile: `
telegram:
  bot_token: "123:abc"
treasury:
  private_key: "` + testTreasuryKey + `"
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 3001, cfg.Server.Port)
				assert.Equal(t, 3*time.Minute, cfg.Server.RequestTimeout)
				assert.Equal(t, "https://yellowstone-rpc.litprotocol.com", cfg.Chain.RPCURL)
				assert.Equal(t, int64(175188), cfg.Chain.ChainID)
				assert.Equal(t, 2*time.Minute, cfg.Chain.ReceiptTimeout)
				assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "default", cfg.Temporal.Namespace)
				assert.Equal(t, "identity-provisioning", cfg.Temporal.ProvisioningTaskQueue)
				assert.Equal(t, 24*time.Hour, cfg.Telegram.InitDataTTL)
				assert.True(t, cfg.Telegram.RequirePayerAuth)
				assert.Equal(t, "0.001", cfg.Treasury.FundingAmount)
				assert.Equal(t, int64(150), cfg.Credits.RequestsPerKilosecond)
				assert.Equal(t, 15, cfg.Credits.DaysUntilExpiry)
				assert.Equal(t, domain.NetworkDatil, cfg.Identity.Network)
				assert.Equal(t, domain.DefaultLitActionCID, cfg.Identity.LitActionCID)
				assert.Equal(t, "config/networks", cfg.ContractsDir)
			},
		},
		{
			name: "missing bot token",
			configFile: `
treasury:
  private_key: "` + testTreasuryKey + `"
`,
			expectError: true,
		},
		{
			name: "missing treasury key",
			configFile: `
telegram:
  bot_token: "123:abc"
`,
			expectError: true,
		},
		{
			name: "unknown identity network",
			configFile: `
telegram:
  bot_token: "123:abc"
treasury:
  private_key: "` + testTreasuryKey + `"
identity:
  network: cayenne
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
telegram: [
`,
			expectError: true,
		},
		{
			name:        "no config file and no environment",
			configFile:  "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			configFile := writeConfig(t, tt.configFile)

			cfg, err := LoadAPIConfig(configFile, t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadWorkerConfig(t *testing.T) {
	isolateEnv(t)
	configFile := writeConfig(t, `
temporal:
  host_port: "temporal:7233"
  step_timeout: "2m"
treasury:
  private_key: "`+testTreasuryKey+`"
identity:
  network: datil-test
  lit_action_cid: "QmTest"
`)

	cfg, err := LoadWorkerConfig(configFile, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
	assert.Equal(t, 2*time.Minute, cfg.Temporal.StepTimeout)
	assert.Equal(t, 20, cfg.Temporal.MaxConcurrentActivityExecutionSize)
	assert.Equal(t, domain.NetworkDatilTest, cfg.Identity.Network)
	assert.Equal(t, "QmTest", cfg.Identity.LitActionCID)
	assert.Equal(t, time.Second, cfg.Chain.ReceiptPollInterval)
}

func TestLoadAPIConfig_LegacyEnvironmentNames(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TELGRAM_BOT_TOKEN", "legacy:token")
	t.Setenv("EOA_PRIVATE_KEY", testTreasuryKey)

	cfg, err := LoadAPIConfig(writeConfig(t, ""), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "legacy:token", cfg.Telegram.BotToken)
	assert.Equal(t, testTreasuryKey, cfg.Treasury.PrivateKey)
}

func TestLoadAPIConfig_PrefixedNameWinsOverLegacy(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TELGRAM_BOT_TOKEN", "legacy:token")
	t.Setenv("RELAY_TELEGRAM_BOT_TOKEN", "current:token")
	t.Setenv("RELAY_TREASURY_PRIVATE_KEY", testTreasuryKey)

	cfg, err := LoadAPIConfig(writeConfig(t, ""), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "current:token", cfg.Telegram.BotToken)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	isolateEnv(t)
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	// .env.local overrides .env
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(`RELAY_DEBUG=true
RELAY_DATABASE_HOST=env-host
RELAY_DATABASE_PORT=6543
RELAY_IDENTITY_NETWORK=manzano
`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env.local"), []byte(`RELAY_DATABASE_HOST=local-host
`), 0600))

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
debug: false
database:
  host: file-host
  port: 5432
telegram:
  bot_token: "123:abc"
treasury:
  private_key: "`+testTreasuryKey+`"
identity:
  network: datil
`), 0600))

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "local-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, domain.NetworkManzano, cfg.Identity.Network)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	config := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "relay",
		Password: "p@ssw0rd!",
		DBName:   "relay",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=relay password=p@ssw0rd! dbname=relay sslmode=disable", config.DSN())
}

func TestChainConfig_ChainIDBig(t *testing.T) {
	config := ChainConfig{ChainID: 175188}
	assert.Equal(t, int64(175188), config.ChainIDBig().Int64())
}
