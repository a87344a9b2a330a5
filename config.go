package synapse

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/synapse-protocol/synapse-go/pkg/log"
)

const (
	configDirPathEnv     = "SYNAPSE_CONFIG_DIR_PATH"
	defaultConfigDirPath = "."

	// DefaultGasLimit is used for write transactions when the caller does
	// not override it. Gas is not estimated per call.
	DefaultGasLimit = 500000

	// DefaultConfirmationTimeout bounds the receipt wait for each write.
	DefaultConfirmationTimeout = 2 * time.Minute
)

// ContractAddresses holds the deployed SYNAPSE contract addresses for one
// network. Any address may be left empty; operations against an unset
// contract return ErrContractNotConfigured.
type ContractAddresses struct {
	Token           string `env:"SYNAPSE_TOKEN_ADDRESS"`
	PaymentRouter   string `env:"SYNAPSE_PAYMENT_ROUTER_ADDRESS"`
	Reputation      string `env:"SYNAPSE_REPUTATION_ADDRESS"`
	ServiceRegistry string `env:"SYNAPSE_SERVICE_REGISTRY_ADDRESS"`
	PaymentChannel  string `env:"SYNAPSE_PAYMENT_CHANNEL_ADDRESS"`
}

// Config carries everything needed to construct a Client.
type Config struct {
	// RPCURL is the JSON-RPC endpoint of an execution node.
	RPCURL string `env:"SYNAPSE_RPC_URL" env-required:"true"`

	// PrivateKeyHex enables write operations when set. A client without it
	// is read-only.
	PrivateKeyHex string `env:"SYNAPSE_PRIVATE_KEY"`

	Contracts ContractAddresses

	// GasLimit is the fixed gas limit for write transactions.
	GasLimit uint64 `env:"SYNAPSE_GAS_LIMIT" env-default:"500000"`

	// ConfirmationTimeout bounds how long each write waits for its receipt.
	ConfirmationTimeout time.Duration `env:"SYNAPSE_CONFIRMATION_TIMEOUT" env-default:"2m"`

	// NonceStorePath, when set, persists signed channel-state nonces to a
	// SQLite file so stale-state protection survives restarts.
	NonceStorePath string `env:"SYNAPSE_NONCE_STORE_PATH"`
}

// LoadConfig builds configuration from environment variables, loading a .env
// file from SYNAPSE_CONFIG_DIR_PATH (default ".") first if one exists.
func LoadConfig(logger log.Logger) (*Config, error) {
	logger = logger.WithName("config")

	configDirPath := os.Getenv(configDirPathEnv)
	if configDirPath == "" {
		configDirPath = defaultConfigDirPath
	}

	dotEnvPath := filepath.Join(configDirPath, ".env")
	if err := godotenv.Load(dotEnvPath); err != nil {
		logger.Debug(".env file not found", "path", dotEnvPath)
	}

	var conf Config
	if err := cleanenv.ReadEnv(&conf); err != nil {
		logger.Error("failed to read env", "err", err)
		return nil, err
	}
	if conf.GasLimit == 0 {
		conf.GasLimit = DefaultGasLimit
	}
	if conf.ConfirmationTimeout <= 0 {
		conf.ConfirmationTimeout = DefaultConfirmationTimeout
	}

	logger.Info("configuration loaded",
		"rpcURL", conf.RPCURL,
		"hasSigner", conf.PrivateKeyHex != "",
		"gasLimit", conf.GasLimit,
		"confirmationTimeout", conf.ConfirmationTimeout)
	return &conf, nil
}

// address parses a configured contract address, distinguishing "not set"
// from "set but malformed".
func (c ContractAddresses) address(raw string) (common.Address, error) {
	if raw == "" {
		return common.Address{}, ErrContractNotConfigured
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, ErrInvalidInput
	}
	return common.HexToAddress(raw), nil
}
