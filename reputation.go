package synapse

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/synapse-protocol/synapse-go/pkg/derive"
	"github.com/synapse-protocol/synapse-go/pkg/unit"
)

var validate = validator.New()

// RegisterAgentParams are the inputs to RegisterAgent.
type RegisterAgentParams struct {
	Name        string `validate:"required,max=128"`
	MetadataURI string `validate:"omitempty,max=512"`
	// Stake is the initial stake in display units. The registry contract
	// must hold a sufficient token allowance before the call.
	Stake decimal.Decimal
}

// RegisterAgent registers the signing address as a protocol agent with an
// initial stake.
func (c *Client) RegisterAgent(ctx context.Context, params RegisterAgentParams) (common.Hash, error) {
	if err := validate.Struct(params); err != nil {
		return common.Hash{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	wire, err := unit.DecimalToWire(params.Stake)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.transact(ctx, &c.reputation, "registerAgent",
		params.Name, params.MetadataURI, wire)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// DeregisterAgent removes the signing address from the agent registry and
// returns its stake.
func (c *Client) DeregisterAgent(ctx context.Context) (common.Hash, error) {
	receipt, err := c.transact(ctx, &c.reputation, "deregisterAgent")
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// IncreaseStake adds amount display units to the caller's stake.
func (c *Client) IncreaseStake(ctx context.Context, amount decimal.Decimal) (common.Hash, error) {
	wire, err := unit.DecimalToWire(amount)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.transact(ctx, &c.reputation, "increaseStake", wire)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// DecreaseStake withdraws amount display units from the caller's stake.
// The contract rejects withdrawals that would drop the caller below its
// tier's minimum.
func (c *Client) DecreaseStake(ctx context.Context, amount decimal.Decimal) (common.Hash, error) {
	wire, err := unit.DecimalToWire(amount)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.transact(ctx, &c.reputation, "decreaseStake", wire)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// GetAgent fetches an agent's reputation record. The success rate is
// computed from the transaction counters; an agent with no transactions has
// a success rate of zero.
func (c *Client) GetAgent(ctx context.Context, agent string) (*AgentInfo, error) {
	addr, err := derive.ParseAddress(agent)
	if err != nil {
		return nil, err
	}

	var out []interface{}
	if err := c.call(ctx, &c.reputation, &out, "agents", addr); err != nil {
		return nil, err
	}

	var tierOut []interface{}
	if err := c.call(ctx, &c.reputation, &tierOut, "getTier", addr); err != nil {
		return nil, err
	}

	info := &AgentInfo{
		Registered:             *abi.ConvertType(out[0], new(bool)).(*bool),
		Name:                   *abi.ConvertType(out[1], new(string)).(*string),
		Stake:                  unit.FromWire(abi.ConvertType(out[2], new(big.Int)).(*big.Int)),
		ReputationScore:        abi.ConvertType(out[3], new(big.Int)).(*big.Int).Uint64(),
		TotalTransactions:      abi.ConvertType(out[4], new(big.Int)).(*big.Int).Uint64(),
		SuccessfulTransactions: abi.ConvertType(out[5], new(big.Int)).(*big.Int).Uint64(),
		RegisteredAt:           abi.ConvertType(out[6], new(big.Int)).(*big.Int).Uint64(),
		Tier:                   TierFromUint8(*abi.ConvertType(tierOut[0], new(uint8)).(*uint8)),
	}
	if info.TotalTransactions > 0 {
		info.SuccessRate = float64(info.SuccessfulTransactions) / float64(info.TotalTransactions) * 100
	}
	return info, nil
}

// TierDiscount returns the protocol fee discount for a tier, in percent, as
// reported by the contract.
func (c *Client) TierDiscount(ctx context.Context, tier Tier) (uint64, error) {
	var out []interface{}
	if err := c.call(ctx, &c.reputation, &out, "getTierDiscount", uint8(tier)); err != nil {
		return 0, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int).Uint64(), nil
}

// CreateDispute opens a dispute against defendant over a prior transaction.
// The dispute id is recovered from the receipt logs on a best-effort basis.
func (c *Client) CreateDispute(ctx context.Context, defendant, reason string, transactionID common.Hash) (*DisputeResult, error) {
	addr, err := derive.ParseAddress(defendant)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: dispute reason must not be empty", ErrInvalidInput)
	}

	receipt, err := c.transact(ctx, &c.reputation, "createDispute", addr, reason, transactionID)
	if err != nil {
		return nil, err
	}
	result := &DisputeResult{TxHash: receipt.TxHash}
	if id, ok := firstEventTopic(receipt, c.reputation.addr); ok {
		result.DisputeID = id
	}
	return result, nil
}

// RateService records a 1-5 star rating for a provider's service in a
// category. Out-of-range ratings are rejected before any network
// interaction.
func (c *Client) RateService(ctx context.Context, provider, category string, rating uint8) (common.Hash, error) {
	if rating < 1 || rating > 5 {
		return common.Hash{}, ErrInvalidRating
	}
	addr, err := derive.ParseAddress(provider)
	if err != nil {
		return common.Hash{}, err
	}
	if category == "" {
		return common.Hash{}, fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
	}

	receipt, err := c.transact(ctx, &c.reputation, "rateService", addr, category, rating)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// GetServiceRating returns the aggregate rating of a provider in a category.
// The contract stores the average scaled by 100.
func (c *Client) GetServiceRating(ctx context.Context, provider, category string) (*ServiceRating, error) {
	addr, err := derive.ParseAddress(provider)
	if err != nil {
		return nil, err
	}

	var out []interface{}
	if err := c.call(ctx, &c.reputation, &out, "getServiceRating", addr, category); err != nil {
		return nil, err
	}
	return &ServiceRating{
		TotalRatings:  abi.ConvertType(out[0], new(big.Int)).(*big.Int).Uint64(),
		AverageRating: float64(abi.ConvertType(out[1], new(big.Int)).(*big.Int).Uint64()) / 100,
	}, nil
}
