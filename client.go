package synapse

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/synapse-protocol/synapse-go/pkg/chanstate"
	"github.com/synapse-protocol/synapse-go/pkg/log"
	"github.com/synapse-protocol/synapse-go/pkg/sign"
)

// contract pairs a deployed address with its bound ABI wrapper. A contract
// whose address was not configured has bound == nil.
type contract struct {
	name  string
	addr  common.Address
	bound *bind.BoundContract
}

// Client talks to the SYNAPSE protocol contracts over a single JSON-RPC
// connection. It is safe for concurrent use. A client constructed without a
// private key serves reads only; writes return ErrNoSigner.
type Client struct {
	eth     *ethclient.Client
	chainID *big.Int
	signer  sign.Signer
	tracker *chanstate.Tracker
	logger  log.Logger
	metrics *Metrics

	gasLimit            uint64
	confirmationTimeout time.Duration

	token           contract
	paymentRouter   contract
	reputation      contract
	serviceRegistry contract
	paymentChannel  contract
}

// NewClient dials the configured RPC endpoint and binds the configured
// contracts. The context bounds the initial dial and chain-ID fetch only.
// A nil logger disables logging; a nil metrics disables instrumentation.
func NewClient(ctx context.Context, conf *Config, logger log.Logger, metrics *Metrics) (*Client, error) {
	if conf == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidInput)
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	logger = logger.WithName("synapse")

	eth, err := ethclient.DialContext(ctx, conf.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc endpoint: %w", err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to fetch chain id: %w", err)
	}

	c := &Client{
		eth:                 eth,
		chainID:             chainID,
		logger:              logger.WithKV("chainID", chainID.String()),
		metrics:             metrics,
		gasLimit:            conf.GasLimit,
		confirmationTimeout: conf.ConfirmationTimeout,
	}
	if c.gasLimit == 0 {
		c.gasLimit = DefaultGasLimit
	}
	if c.confirmationTimeout <= 0 {
		c.confirmationTimeout = DefaultConfirmationTimeout
	}

	if conf.PrivateKeyHex != "" {
		signer, err := sign.NewLocalSigner(conf.PrivateKeyHex)
		if err != nil {
			eth.Close()
			return nil, fmt.Errorf("failed to load signing key: %w", err)
		}
		c.signer = signer
	}

	var nonces chanstate.NonceStore
	if conf.NonceStorePath != "" {
		nonces, err = chanstate.OpenSQLiteNonceStore(conf.NonceStorePath)
		if err != nil {
			eth.Close()
			return nil, fmt.Errorf("failed to open nonce store: %w", err)
		}
	}
	c.tracker = chanstate.NewTracker(c.signer, nonces)

	for _, b := range []struct {
		dst *contract
		raw string
		abi abi.ABI
	}{
		{&c.token, conf.Contracts.Token, tokenABI},
		{&c.paymentRouter, conf.Contracts.PaymentRouter, paymentRouterABI},
		{&c.reputation, conf.Contracts.Reputation, reputationABI},
		{&c.serviceRegistry, conf.Contracts.ServiceRegistry, serviceRegistryABI},
		{&c.paymentChannel, conf.Contracts.PaymentChannel, paymentChannelABI},
	} {
		if b.raw == "" {
			continue
		}
		addr, err := conf.Contracts.address(b.raw)
		if err != nil {
			eth.Close()
			return nil, fmt.Errorf("%w: bad contract address %q", err, b.raw)
		}
		b.dst.addr = addr
		b.dst.bound = bind.NewBoundContract(addr, b.abi, eth, eth, eth)
	}
	c.token.name = "token"
	c.paymentRouter.name = "payment_router"
	c.reputation.name = "reputation"
	c.serviceRegistry.name = "service_registry"
	c.paymentChannel.name = "payment_channel"

	c.logger.Info("client ready",
		"signer", c.signerAddressOrEmpty(),
		"token", conf.Contracts.Token,
		"paymentRouter", conf.Contracts.PaymentRouter)
	return c, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// Address returns the signing address, or the zero address for a read-only
// client.
func (c *Client) Address() common.Address {
	if c.signer == nil {
		return common.Address{}
	}
	return c.signer.Address()
}

// ChainID returns the connected chain's id.
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// Tracker exposes the channel-state nonce tracker used by SignChannelState.
func (c *Client) Tracker() *chanstate.Tracker {
	return c.tracker
}

// NetworkInfo fetches a snapshot of chain-level state.
func (c *Client) NetworkInfo(ctx context.Context) (*NetworkInfo, error) {
	blockNumber, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block number: %w", err)
	}
	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas price: %w", err)
	}
	return &NetworkInfo{
		ChainID:     c.ChainID(),
		BlockNumber: blockNumber,
		GasPrice:    gasPrice,
	}, nil
}

func (c *Client) signerAddressOrEmpty() string {
	if c.signer == nil {
		return ""
	}
	return c.signer.Address().Hex()
}

// call performs a read against ct, decoding results into out.
func (c *Client) call(ctx context.Context, ct *contract, out *[]interface{}, method string, args ...interface{}) error {
	if ct.bound == nil {
		return fmt.Errorf("%w: %s", ErrContractNotConfigured, ct.name)
	}
	if c.metrics != nil {
		c.metrics.ContractReads.WithLabelValues(ct.name, method).Inc()
	}
	if err := ct.bound.Call(&bind.CallOpts{Context: ctx}, out, method, args...); err != nil {
		return fmt.Errorf("%s.%s call failed: %w", ct.name, method, err)
	}
	return nil
}

// transact submits a write against ct and waits for its receipt. It returns
// a TimeoutError when the confirmation wait expires and a
// TransactionFailedError when the receipt reports failure. In both cases the
// transaction hash is recoverable from the error.
func (c *Client) transact(ctx context.Context, ct *contract, method string, args ...interface{}) (*types.Receipt, error) {
	if ct.bound == nil {
		return nil, fmt.Errorf("%w: %s", ErrContractNotConfigured, ct.name)
	}
	if c.signer == nil {
		return nil, ErrNoSigner
	}

	opts := &bind.TransactOpts{
		From:     c.signer.Address(),
		GasLimit: c.gasLimit,
		Context:  ctx,
		Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != c.signer.Address() {
				return nil, ErrNoSigner
			}
			return c.signer.SignTx(tx, c.chainID)
		},
	}

	tx, err := ct.bound.Transact(opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("%s.%s submission failed: %w", ct.name, method, err)
	}
	if c.metrics != nil {
		c.metrics.TxSubmitted.WithLabelValues(ct.name, method).Inc()
	}
	c.logger.Debug("transaction submitted",
		"contract", ct.name, "method", method, "txHash", tx.Hash().Hex())

	submitted := time.Now()
	waitCtx, cancel := context.WithTimeout(ctx, c.confirmationTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, c.eth, tx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			if c.metrics != nil {
				c.metrics.TxTimedOut.WithLabelValues(ct.name, method).Inc()
			}
			c.logger.Warn("confirmation wait expired",
				"contract", ct.name, "method", method, "txHash", tx.Hash().Hex())
			return nil, &TimeoutError{TxHash: tx.Hash(), cause: err}
		}
		return nil, fmt.Errorf("%s.%s receipt wait failed: %w", ct.name, method, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		if c.metrics != nil {
			c.metrics.TxFailed.WithLabelValues(ct.name, method).Inc()
		}
		c.logger.Warn("transaction reverted",
			"contract", ct.name, "method", method, "txHash", tx.Hash().Hex())
		return receipt, &TransactionFailedError{TxHash: tx.Hash()}
	}

	if c.metrics != nil {
		c.metrics.TxConfirmed.WithLabelValues(ct.name, method).Inc()
		c.metrics.ConfirmLatency.WithLabelValues(ct.name).Observe(time.Since(submitted).Seconds())
	}
	c.logger.Info("transaction confirmed",
		"contract", ct.name, "method", method,
		"txHash", tx.Hash().Hex(), "block", receipt.BlockNumber.Uint64())
	return receipt, nil
}

// firstEventTopic recovers a derived identifier from the first log the
// emitter wrote with an indexed first argument. Best effort: ok is false
// when no such log exists.
func firstEventTopic(receipt *types.Receipt, emitter common.Address) (common.Hash, bool) {
	for _, lg := range receipt.Logs {
		if lg.Address == emitter && len(lg.Topics) >= 2 {
			return lg.Topics[1], true
		}
	}
	return common.Hash{}, false
}
