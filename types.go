package synapse

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// AgentInfo is the decoded reputation record of a registered agent.
// All amounts are in display form.
type AgentInfo struct {
	Registered             bool
	Name                   string
	Stake                  decimal.Decimal
	ReputationScore        uint64
	TotalTransactions      uint64
	SuccessfulTransactions uint64
	RegisteredAt           uint64
	Tier                   Tier
	SuccessRate            float64 // percentage, 0-100
}

// AgentStats is the payment router's per-agent volume record.
type AgentStats struct {
	TotalPaymentsSent     uint64
	TotalPaymentsReceived uint64
	TotalVolumeSent       decimal.Decimal
	TotalVolumeReceived   decimal.Decimal
}

// ServiceInfo is the decoded record of a registered service.
type ServiceInfo struct {
	Provider     common.Address
	Name         string
	Category     string
	Description  string
	Endpoint     string
	BasePrice    decimal.Decimal
	PricingModel PricingModel
	Active       bool
	CreatedAt    uint64
}

// ServiceRating is the aggregate rating of a provider in a category.
type ServiceRating struct {
	TotalRatings  uint64
	AverageRating float64 // 1.0 - 5.0
}

// ChannelInfo is the decoded on-chain record of a payment channel.
type ChannelInfo struct {
	ChannelID    common.Hash
	Participant1 common.Address
	Participant2 common.Address
	Balance1     decimal.Decimal
	Balance2     decimal.Decimal
	Nonce        uint64
	Status       ChannelStatus
	ChallengeEnd uint64 // unix timestamp, zero when no challenge is running
}

// PaymentResult is returned by Pay and BatchPay.
type PaymentResult struct {
	TxHash    common.Hash
	PaymentID common.Hash
}

// BatchPayResult is returned by BatchPay. PaymentIDs are index-aligned with
// the submitted payments.
type BatchPayResult struct {
	TxHash     common.Hash
	PaymentIDs []common.Hash
}

// EscrowResult is returned by CreateEscrow. EscrowID is derived locally from
// the escrow's defining tuple and matches the contract's own derivation.
type EscrowResult struct {
	TxHash    common.Hash
	EscrowID  common.Hash
	PaymentID common.Hash
}

// StreamResult is returned by CreateStream. StreamID is derived locally.
type StreamResult struct {
	TxHash   common.Hash
	StreamID common.Hash
}

// ChannelResult is returned by OpenChannel. ChannelID is derived locally
// from the sorted participant pair.
type ChannelResult struct {
	TxHash    common.Hash
	ChannelID common.Hash
}

// ServiceResult is returned by RegisterService. ServiceID is recovered from
// the receipt logs on a best-effort basis and is the zero hash when the
// contract emitted no identifying event.
type ServiceResult struct {
	TxHash    common.Hash
	ServiceID common.Hash
}

// QuoteResult is returned by RequestQuote. QuoteID recovery follows the same
// best-effort rule as ServiceResult.
type QuoteResult struct {
	TxHash  common.Hash
	QuoteID common.Hash
}

// DisputeResult is returned by CreateDispute. DisputeID recovery follows the
// same best-effort rule as ServiceResult.
type DisputeResult struct {
	TxHash    common.Hash
	DisputeID common.Hash
}

// TokenMeta is the token's ERC-20 metadata.
type TokenMeta struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// NetworkInfo is a snapshot of chain-level state.
type NetworkInfo struct {
	ChainID     *big.Int
	BlockNumber uint64
	GasPrice    *big.Int // wei
}
