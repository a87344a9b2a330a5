package synapse

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-protocol/synapse-go/pkg/chanstate"
	"github.com/synapse-protocol/synapse-go/pkg/log"
	"github.com/synapse-protocol/synapse-go/pkg/sign"
	"github.com/synapse-protocol/synapse-go/pkg/unit"
)

const (
	testRecipient = "0x1111111111111111111111111111111111111111"
	testArbiter   = "0x2222222222222222222222222222222222222222"
)

// newOfflineClient builds a client with no RPC connection. Every test using
// it exercises only paths that must fail (or succeed) before any network
// interaction.
func newOfflineClient(t *testing.T, withSigner bool) *Client {
	t.Helper()

	c := &Client{
		logger:              log.NewNoopLogger(),
		gasLimit:            DefaultGasLimit,
		confirmationTimeout: DefaultConfirmationTimeout,
	}
	if withSigner {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		c.signer = sign.NewLocalSignerFromKey(key)
	}
	c.tracker = chanstate.NewTracker(c.signer, nil)
	c.token.name = "token"
	c.paymentRouter.name = "payment_router"
	c.reputation.name = "reputation"
	c.serviceRegistry.name = "service_registry"
	c.paymentChannel.name = "payment_channel"
	return c
}

func TestValidationBeforeNetwork(t *testing.T) {
	ctx := context.Background()

	t.Run("Rating outside 1-5 is rejected locally", func(t *testing.T) {
		c := newOfflineClient(t, true)

		_, err := c.RateService(ctx, testRecipient, CategoryLanguageModel, 0)
		assert.ErrorIs(t, err, ErrInvalidRating)

		_, err = c.RateService(ctx, testRecipient, CategoryLanguageModel, 6)
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("Malformed addresses never reach the wire", func(t *testing.T) {
		c := newOfflineClient(t, true)

		_, err := c.Pay(ctx, "not-an-address", decimal.NewFromInt(1), nil)
		assert.Error(t, err)

		_, err = c.Balance(ctx, "0x123")
		assert.Error(t, err)
	})

	t.Run("Amounts below wire resolution are rejected", func(t *testing.T) {
		c := newOfflineClient(t, true)
		tooPrecise := decimal.RequireFromString("0.1234567890123456789")

		_, err := c.Transfer(ctx, testRecipient, tooPrecise)
		assert.ErrorIs(t, err, unit.ErrPrecisionLoss)
	})

	t.Run("Empty batch is rejected", func(t *testing.T) {
		c := newOfflineClient(t, true)

		_, err := c.BatchPay(ctx, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Batch reports the offending entry", func(t *testing.T) {
		c := newOfflineClient(t, true)

		_, err := c.BatchPay(ctx, []BatchPayment{
			{Recipient: testRecipient, Amount: decimal.NewFromInt(1)},
			{Recipient: "bogus", Amount: decimal.NewFromInt(2)},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "payment 1")
	})

	t.Run("Escrow deadline must be in the future", func(t *testing.T) {
		c := newOfflineClient(t, true)

		_, err := c.CreateEscrow(ctx, testRecipient, testArbiter,
			decimal.NewFromInt(10), time.Now().Add(-time.Hour), nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Stream window must be ordered", func(t *testing.T) {
		c := newOfflineClient(t, true)
		now := time.Now()

		_, err := c.CreateStream(ctx, testRecipient, decimal.NewFromInt(10), now, now)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Agent params are validated", func(t *testing.T) {
		c := newOfflineClient(t, true)

		_, err := c.RegisterAgent(ctx, RegisterAgentParams{Name: ""})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Service params are validated", func(t *testing.T) {
		c := newOfflineClient(t, true)

		_, err := c.RegisterService(ctx, RegisterServiceParams{
			Name:     "llm",
			Category: CategoryLanguageModel,
			// missing endpoint
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestReadOnlyClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes require a signer", func(t *testing.T) {
		c := newOfflineClient(t, false)

		_, err := c.CreateEscrow(ctx, testRecipient, testArbiter,
			decimal.NewFromInt(1), time.Now().Add(time.Hour), nil)
		assert.ErrorIs(t, err, ErrNoSigner)

		_, err = c.OpenChannel(ctx, testRecipient, decimal.NewFromInt(1), decimal.NewFromInt(1))
		assert.ErrorIs(t, err, ErrNoSigner)

		_, _, err = c.SignChannelState(testRecipient, decimal.NewFromInt(1), decimal.NewFromInt(1), 1)
		assert.ErrorIs(t, err, ErrNoSigner)
	})

	t.Run("Zero address for read-only clients", func(t *testing.T) {
		c := newOfflineClient(t, false)
		assert.Equal(t, common.Address{}, c.Address())
	})
}

func TestUnconfiguredContract(t *testing.T) {
	ctx := context.Background()
	c := newOfflineClient(t, true)

	_, err := c.ReleaseEscrow(ctx, common.HexToHash("0x01"))
	assert.ErrorIs(t, err, ErrContractNotConfigured)

	_, err = c.BaseFeeBps(ctx)
	assert.ErrorIs(t, err, ErrContractNotConfigured)
}

func TestFirstEventTopic(t *testing.T) {
	emitter := common.HexToAddress(testRecipient)
	other := common.HexToAddress(testArbiter)
	id := common.HexToHash("0xabc123")

	t.Run("Finds the first indexed topic from the emitter", func(t *testing.T) {
		receipt := &types.Receipt{Logs: []*types.Log{
			{Address: other, Topics: []common.Hash{{}, common.HexToHash("0xff")}},
			{Address: emitter, Topics: []common.Hash{{}, id}},
		}}

		got, ok := firstEventTopic(receipt, emitter)
		require.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("Ignores logs without indexed arguments", func(t *testing.T) {
		receipt := &types.Receipt{Logs: []*types.Log{
			{Address: emitter, Topics: []common.Hash{{}}},
		}}

		_, ok := firstEventTopic(receipt, emitter)
		assert.False(t, ok)
	})

	t.Run("Empty receipt yields nothing", func(t *testing.T) {
		_, ok := firstEventTopic(&types.Receipt{}, emitter)
		assert.False(t, ok)
	})
}
