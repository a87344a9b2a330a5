package derive

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

var (
	// ErrInvalidAddress is returned for inputs that are not well-formed
	// 20-byte hex addresses. Malformed input is never hashed.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidUint is returned for nil or negative values in a uint256 slot.
	ErrInvalidUint = errors.New("value does not fit uint256")
)

// ParseAddress validates a hex address string and returns its parsed form.
func ParseAddress(hexAddr string) (common.Address, error) {
	if !common.IsHexAddress(hexAddr) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, hexAddr)
	}
	return common.HexToAddress(hexAddr), nil
}

// EscrowID derives the identifier of an escrow from its defining tuple.
// The packing is (address, address, bytes32, uint256) in that order, hashed
// twice with Keccak-256; the contract performs the same derivation.
func EscrowID(initiator, recipient common.Address, paymentID common.Hash, deadline *big.Int) (common.Hash, error) {
	deadlineWord, err := uint256Word(deadline)
	if err != nil {
		return common.Hash{}, fmt.Errorf("deadline: %w", err)
	}

	inner := crypto.Keccak256(
		initiator.Bytes(),
		recipient.Bytes(),
		paymentID.Bytes(),
		deadlineWord,
	)
	return crypto.Keccak256Hash(inner), nil
}

// StreamID derives the identifier of a payment stream from its defining
// tuple, packed as (address, address, uint256, uint256).
func StreamID(initiator, recipient common.Address, startTime, endTime *big.Int) (common.Hash, error) {
	startWord, err := uint256Word(startTime)
	if err != nil {
		return common.Hash{}, fmt.Errorf("startTime: %w", err)
	}
	endWord, err := uint256Word(endTime)
	if err != nil {
		return common.Hash{}, fmt.Errorf("endTime: %w", err)
	}

	inner := crypto.Keccak256(
		initiator.Bytes(),
		recipient.Bytes(),
		startWord,
		endWord,
	)
	return crypto.Keccak256Hash(inner), nil
}

// ChannelID derives the identifier of a payment channel between two
// participants. The pair is canonicalized by sorting the addresses before
// hashing, so both parties derive the same id regardless of argument order.
func ChannelID(a, b common.Address) common.Hash {
	lo, hi := a, b
	if bytes.Compare(lo.Bytes(), hi.Bytes()) > 0 {
		lo, hi = hi, lo
	}
	return crypto.Keccak256Hash(lo.Bytes(), hi.Bytes())
}

// NewPaymentID generates a fresh payment identifier from a random UUID.
// Unlike a timestamp-derived id, two ids generated in the same instant
// cannot collide.
func NewPaymentID() common.Hash {
	return crypto.Keccak256Hash([]byte("pay-" + uuid.NewString()))
}

// uint256Word left-pads a non-negative big integer into a 32-byte word.
func uint256Word(v *big.Int) ([]byte, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 256 {
		return nil, ErrInvalidUint
	}
	return common.LeftPadBytes(v.Bytes(), 32), nil
}
