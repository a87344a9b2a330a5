package chanstate

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/synapse-protocol/synapse-go/pkg/sign"
)

// ErrInvalidBalance is returned when a state balance is nil or negative.
var ErrInvalidBalance = errors.New("balance does not fit uint256")

// State is an off-chain channel state. Balances are in wire form (base
// units scaled by 10^18).
type State struct {
	ChannelID common.Hash
	Balance1  *big.Int
	Balance2  *big.Int
	Nonce     uint64
}

// Encode packs the state as (bytes32, uint256, uint256, uint256) with no
// padding between fields. This byte layout is the signature pre-image the
// contract re-derives; field order and width must not change.
func (s State) Encode() ([]byte, error) {
	b1, err := balanceWord(s.Balance1)
	if err != nil {
		return nil, fmt.Errorf("balance1: %w", err)
	}
	b2, err := balanceWord(s.Balance2)
	if err != nil {
		return nil, fmt.Errorf("balance2: %w", err)
	}

	encoded := make([]byte, 0, 128)
	encoded = append(encoded, s.ChannelID.Bytes()...)
	encoded = append(encoded, b1...)
	encoded = append(encoded, b2...)
	encoded = append(encoded, common.LeftPadBytes(new(big.Int).SetUint64(s.Nonce).Bytes(), 32)...)
	return encoded, nil
}

// Hash returns the keccak256 hash of the encoded state.
func (s State) Hash() (common.Hash, error) {
	encoded, err := s.Encode()
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(encoded), nil
}

// SignState signs the state hash under the EIP-191 personal-message prefix.
// The resulting signature verifies against ecrecover on-chain.
func SignState(s State, signer sign.Signer) (sign.Signature, error) {
	hash, err := s.Hash()
	if err != nil {
		return nil, err
	}
	sig, err := signer.SignDigest(sign.PersonalDigest(hash.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("failed to sign channel state: %w", err)
	}
	return sig, nil
}

// VerifyState checks that the signature over the state was produced by the
// expected signer.
func VerifyState(s State, sig sign.Signature, expected common.Address) (bool, error) {
	hash, err := s.Hash()
	if err != nil {
		return false, err
	}
	recovered, err := sign.RecoverDigest(sign.PersonalDigest(hash.Bytes()), sig)
	if err != nil {
		return false, err
	}
	return recovered == expected, nil
}

func balanceWord(v *big.Int) ([]byte, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 256 {
		return nil, ErrInvalidBalance
	}
	return common.LeftPadBytes(v.Bytes(), 32), nil
}
