package synapse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/synapse-protocol/synapse-go/pkg/chanstate"
	"github.com/synapse-protocol/synapse-go/pkg/derive"
	"github.com/synapse-protocol/synapse-go/pkg/sign"
	"github.com/synapse-protocol/synapse-go/pkg/unit"
)

// OpenChannel opens a bidirectional payment channel with the counterparty.
// The channel id is derived locally from the sorted participant pair; either
// party computes the same id regardless of who opened the channel.
func (c *Client) OpenChannel(ctx context.Context, counterparty string, myDeposit, theirDeposit decimal.Decimal) (*ChannelResult, error) {
	if c.signer == nil {
		return nil, ErrNoSigner
	}
	addr, err := derive.ParseAddress(counterparty)
	if err != nil {
		return nil, err
	}
	myWire, err := unit.DecimalToWire(myDeposit)
	if err != nil {
		return nil, err
	}
	theirWire, err := unit.DecimalToWire(theirDeposit)
	if err != nil {
		return nil, err
	}

	channelID := derive.ChannelID(c.signer.Address(), addr)
	receipt, err := c.transact(ctx, &c.paymentChannel, "openChannel", addr, myWire, theirWire)
	if err != nil {
		return nil, err
	}
	return &ChannelResult{TxHash: receipt.TxHash, ChannelID: channelID}, nil
}

// FundChannel deposits the caller's share into a channel opened by initiator.
func (c *Client) FundChannel(ctx context.Context, initiator string, amount decimal.Decimal) (common.Hash, error) {
	addr, err := derive.ParseAddress(initiator)
	if err != nil {
		return common.Hash{}, err
	}
	wire, err := unit.DecimalToWire(amount)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.transact(ctx, &c.paymentChannel, "fundChannel", addr, wire)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// AddFunds tops up the caller's side of an open channel with counterparty.
func (c *Client) AddFunds(ctx context.Context, counterparty string, amount decimal.Decimal) (common.Hash, error) {
	addr, err := derive.ParseAddress(counterparty)
	if err != nil {
		return common.Hash{}, err
	}
	wire, err := unit.DecimalToWire(amount)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.transact(ctx, &c.paymentChannel, "addFunds", addr, wire)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// GetChannel fetches the on-chain channel record between two parties. The
// locally derived id is cross-checked against the contract's own derivation
// so a divergence surfaces here rather than in a later close.
func (c *Client) GetChannel(ctx context.Context, party1, party2 string) (*ChannelInfo, error) {
	addr1, err := derive.ParseAddress(party1)
	if err != nil {
		return nil, err
	}
	addr2, err := derive.ParseAddress(party2)
	if err != nil {
		return nil, err
	}

	var idOut []interface{}
	if err := c.call(ctx, &c.paymentChannel, &idOut, "getChannelId", addr1, addr2); err != nil {
		return nil, err
	}
	channelID := common.Hash(*abi.ConvertType(idOut[0], new([32]byte)).(*[32]byte))
	if local := derive.ChannelID(addr1, addr2); local != channelID {
		return nil, fmt.Errorf("channel id mismatch: derived %s, contract reports %s", local.Hex(), channelID.Hex())
	}

	var out []interface{}
	if err := c.call(ctx, &c.paymentChannel, &out, "channels", channelID); err != nil {
		return nil, err
	}
	return &ChannelInfo{
		ChannelID:    channelID,
		Participant1: *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		Participant2: *abi.ConvertType(out[1], new(common.Address)).(*common.Address),
		Balance1:     unit.FromWire(abi.ConvertType(out[2], new(big.Int)).(*big.Int)),
		Balance2:     unit.FromWire(abi.ConvertType(out[3], new(big.Int)).(*big.Int)),
		Nonce:        abi.ConvertType(out[4], new(big.Int)).(*big.Int).Uint64(),
		Status:       ChannelStatusFromUint8(*abi.ConvertType(out[5], new(uint8)).(*uint8)),
		ChallengeEnd: abi.ConvertType(out[6], new(big.Int)).(*big.Int).Uint64(),
	}, nil
}

// SignChannelState signs an off-chain state update for the channel with
// counterparty. Balances are in display units and ordered by the sorted
// participant pair, matching the on-chain record. Signing is refused with
// chanstate.ErrStaleNonce when the nonce does not supersede the highest
// nonce this client already signed for the channel.
func (c *Client) SignChannelState(counterparty string, balance1, balance2 decimal.Decimal, nonce uint64) (sign.Signature, *chanstate.State, error) {
	if c.signer == nil {
		return nil, nil, ErrNoSigner
	}
	addr, err := derive.ParseAddress(counterparty)
	if err != nil {
		return nil, nil, err
	}
	wire1, err := unit.DecimalToWire(balance1)
	if err != nil {
		return nil, nil, err
	}
	wire2, err := unit.DecimalToWire(balance2)
	if err != nil {
		return nil, nil, err
	}

	state := chanstate.State{
		ChannelID: derive.ChannelID(c.signer.Address(), addr),
		Balance1:  wire1,
		Balance2:  wire2,
		Nonce:     nonce,
	}
	sig, err := c.tracker.SignState(state)
	if err != nil {
		return nil, nil, err
	}
	return sig, &state, nil
}

// VerifyChannelState checks a counterparty's signature over a channel state.
func (c *Client) VerifyChannelState(state chanstate.State, sig sign.Signature, signer string) (bool, error) {
	addr, err := derive.ParseAddress(signer)
	if err != nil {
		return false, err
	}
	return chanstate.VerifyState(state, sig, addr)
}

// CooperativeClose settles a channel immediately using a state both parties
// have signed. sig1 and sig2 correspond to the sorted participant order.
func (c *Client) CooperativeClose(ctx context.Context, counterparty string, balance1, balance2 decimal.Decimal, nonce uint64, sig1, sig2 sign.Signature) (common.Hash, error) {
	return c.closeWith(ctx, "cooperativeClose", counterparty, balance1, balance2, nonce, sig1, sig2)
}

// InitiateClose starts a unilateral close with the latest state this party
// holds. The counterparty may challenge with a newer state until the
// challenge period ends.
func (c *Client) InitiateClose(ctx context.Context, counterparty string, balance1, balance2 decimal.Decimal, nonce uint64, sig1, sig2 sign.Signature) (common.Hash, error) {
	return c.closeWith(ctx, "initiateClose", counterparty, balance1, balance2, nonce, sig1, sig2)
}

// ChallengeClose answers a pending unilateral close with a higher-nonce
// state, superseding the balances the initiator submitted.
func (c *Client) ChallengeClose(ctx context.Context, counterparty string, balance1, balance2 decimal.Decimal, nonce uint64, sig1, sig2 sign.Signature) (common.Hash, error) {
	return c.closeWith(ctx, "challengeClose", counterparty, balance1, balance2, nonce, sig1, sig2)
}

func (c *Client) closeWith(ctx context.Context, method, counterparty string, balance1, balance2 decimal.Decimal, nonce uint64, sig1, sig2 sign.Signature) (common.Hash, error) {
	addr, err := derive.ParseAddress(counterparty)
	if err != nil {
		return common.Hash{}, err
	}
	wire1, err := unit.DecimalToWire(balance1)
	if err != nil {
		return common.Hash{}, err
	}
	wire2, err := unit.DecimalToWire(balance2)
	if err != nil {
		return common.Hash{}, err
	}
	if len(sig1) == 0 || len(sig2) == 0 {
		return common.Hash{}, fmt.Errorf("%w: both participant signatures are required", ErrInvalidInput)
	}

	receipt, err := c.transact(ctx, &c.paymentChannel, method,
		addr, wire1, wire2, new(big.Int).SetUint64(nonce), []byte(sig1), []byte(sig2))
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// FinalizeClose settles a unilateral close after its challenge period has
// elapsed without a successful challenge.
func (c *Client) FinalizeClose(ctx context.Context, counterparty string) (common.Hash, error) {
	addr, err := derive.ParseAddress(counterparty)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.transact(ctx, &c.paymentChannel, "finalizeClose", addr)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// ChallengePeriod returns the contract's unilateral close challenge window.
func (c *Client) ChallengePeriod(ctx context.Context) (time.Duration, error) {
	var out []interface{}
	if err := c.call(ctx, &c.paymentChannel, &out, "challengePeriod"); err != nil {
		return 0, err
	}
	seconds := abi.ConvertType(out[0], new(big.Int)).(*big.Int).Uint64()
	return time.Duration(seconds) * time.Second, nil
}
