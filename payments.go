package synapse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/synapse-protocol/synapse-go/pkg/derive"
	"github.com/synapse-protocol/synapse-go/pkg/unit"
)

// BatchPayment is one entry of a BatchPay call.
type BatchPayment struct {
	Recipient string
	Amount    decimal.Decimal
	Metadata  []byte
}

// Pay sends a direct routed payment of amount display units to the
// recipient. A fresh payment id is generated per call; it is returned so the
// caller can correlate the payment off-chain.
func (c *Client) Pay(ctx context.Context, recipient string, amount decimal.Decimal, metadata []byte) (*PaymentResult, error) {
	addr, err := derive.ParseAddress(recipient)
	if err != nil {
		return nil, err
	}
	wire, err := unit.DecimalToWire(amount)
	if err != nil {
		return nil, err
	}
	if metadata == nil {
		metadata = []byte{}
	}

	paymentID := derive.NewPaymentID()
	receipt, err := c.transact(ctx, &c.paymentRouter, "pay", addr, wire, paymentID, metadata)
	if err != nil {
		return nil, err
	}
	return &PaymentResult{TxHash: receipt.TxHash, PaymentID: paymentID}, nil
}

// BatchPay sends several routed payments in one transaction. All payments
// are validated before anything touches the network; a fresh payment id is
// generated for each entry.
func (c *Client) BatchPay(ctx context.Context, payments []BatchPayment) (*BatchPayResult, error) {
	if len(payments) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrInvalidInput)
	}

	recipients := make([]common.Address, len(payments))
	amounts := make([]*big.Int, len(payments))
	paymentIDs := make([]common.Hash, len(payments))
	metadata := make([][]byte, len(payments))
	for i, p := range payments {
		addr, err := derive.ParseAddress(p.Recipient)
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i, err)
		}
		wire, err := unit.DecimalToWire(p.Amount)
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i, err)
		}
		recipients[i] = addr
		amounts[i] = wire
		paymentIDs[i] = derive.NewPaymentID()
		if p.Metadata != nil {
			metadata[i] = p.Metadata
		} else {
			metadata[i] = []byte{}
		}
	}

	receipt, err := c.transact(ctx, &c.paymentRouter, "batchPay", recipients, amounts, paymentIDs, metadata)
	if err != nil {
		return nil, err
	}
	return &BatchPayResult{TxHash: receipt.TxHash, PaymentIDs: paymentIDs}, nil
}

// CreateEscrow locks amount display units for the recipient until released,
// refunded, or the deadline passes. The returned escrow id is derived
// locally from the escrow's defining tuple and matches the contract's own
// derivation, so it is available even before the receipt.
func (c *Client) CreateEscrow(ctx context.Context, recipient, arbiter string, amount decimal.Decimal, deadline time.Time, metadata []byte) (*EscrowResult, error) {
	if c.signer == nil {
		return nil, ErrNoSigner
	}
	recipientAddr, err := derive.ParseAddress(recipient)
	if err != nil {
		return nil, err
	}
	arbiterAddr, err := derive.ParseAddress(arbiter)
	if err != nil {
		return nil, err
	}
	wire, err := unit.DecimalToWire(amount)
	if err != nil {
		return nil, err
	}
	if !deadline.After(time.Now()) {
		return nil, fmt.Errorf("%w: escrow deadline must be in the future", ErrInvalidInput)
	}
	if metadata == nil {
		metadata = []byte{}
	}

	deadlineWire := big.NewInt(deadline.Unix())
	paymentID := derive.NewPaymentID()
	escrowID, err := derive.EscrowID(c.signer.Address(), recipientAddr, paymentID, deadlineWire)
	if err != nil {
		return nil, err
	}

	receipt, err := c.transact(ctx, &c.paymentRouter, "createEscrow",
		recipientAddr, arbiterAddr, wire, deadlineWire, paymentID, metadata)
	if err != nil {
		return nil, err
	}
	return &EscrowResult{TxHash: receipt.TxHash, EscrowID: escrowID, PaymentID: paymentID}, nil
}

// ReleaseEscrow pays out a held escrow to its recipient.
func (c *Client) ReleaseEscrow(ctx context.Context, escrowID common.Hash) (common.Hash, error) {
	receipt, err := c.transact(ctx, &c.paymentRouter, "releaseEscrow", escrowID)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// RefundEscrow returns a held escrow to its initiator.
func (c *Client) RefundEscrow(ctx context.Context, escrowID common.Hash) (common.Hash, error) {
	receipt, err := c.transact(ctx, &c.paymentRouter, "refundEscrow", escrowID)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// CreateStream opens a payment stream that vests totalAmount linearly
// between start and end. The stream id is derived locally.
func (c *Client) CreateStream(ctx context.Context, recipient string, totalAmount decimal.Decimal, start, end time.Time) (*StreamResult, error) {
	if c.signer == nil {
		return nil, ErrNoSigner
	}
	recipientAddr, err := derive.ParseAddress(recipient)
	if err != nil {
		return nil, err
	}
	wire, err := unit.DecimalToWire(totalAmount)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: stream end must be after start", ErrInvalidInput)
	}

	startWire := big.NewInt(start.Unix())
	endWire := big.NewInt(end.Unix())
	streamID, err := derive.StreamID(c.signer.Address(), recipientAddr, startWire, endWire)
	if err != nil {
		return nil, err
	}

	receipt, err := c.transact(ctx, &c.paymentRouter, "createStream",
		recipientAddr, wire, startWire, endWire)
	if err != nil {
		return nil, err
	}
	return &StreamResult{TxHash: receipt.TxHash, StreamID: streamID}, nil
}

// WithdrawFromStream withdraws the vested portion of a stream to its
// recipient.
func (c *Client) WithdrawFromStream(ctx context.Context, streamID common.Hash) (common.Hash, error) {
	receipt, err := c.transact(ctx, &c.paymentRouter, "withdrawFromStream", streamID)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// CancelStream stops a stream, settling vested funds to the recipient and
// returning the rest to the sender.
func (c *Client) CancelStream(ctx context.Context, streamID common.Hash) (common.Hash, error) {
	receipt, err := c.transact(ctx, &c.paymentRouter, "cancelStream", streamID)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// BaseFeeBps returns the router's base protocol fee in basis points.
func (c *Client) BaseFeeBps(ctx context.Context) (uint64, error) {
	var out []interface{}
	if err := c.call(ctx, &c.paymentRouter, &out, "baseFeeBps"); err != nil {
		return 0, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int).Uint64(), nil
}

// AgentStats returns the router's payment counters for an agent, with
// volumes converted to display units.
func (c *Client) AgentStats(ctx context.Context, agent string) (*AgentStats, error) {
	addr, err := derive.ParseAddress(agent)
	if err != nil {
		return nil, err
	}

	var out []interface{}
	if err := c.call(ctx, &c.paymentRouter, &out, "agentStats", addr); err != nil {
		return nil, err
	}
	return &AgentStats{
		TotalPaymentsSent:     abi.ConvertType(out[0], new(big.Int)).(*big.Int).Uint64(),
		TotalPaymentsReceived: abi.ConvertType(out[1], new(big.Int)).(*big.Int).Uint64(),
		TotalVolumeSent:       unit.FromWire(abi.ConvertType(out[2], new(big.Int)).(*big.Int)),
		TotalVolumeReceived:   unit.FromWire(abi.ConvertType(out[3], new(big.Int)).(*big.Int)),
	}, nil
}
