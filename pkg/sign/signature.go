package sign

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signature is a 65-byte (r, s, v) ECDSA signature with v in 27/28 form.
type Signature []byte

// MarshalJSON implements the json.Marshaler interface, encoding the signature as a hex string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}
	decoded, err := hexutil.Decode(hexStr)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// String implements the fmt.Stringer interface.
func (s Signature) String() string {
	return hexutil.Encode(s)
}

// personalMessagePrefix is the EIP-191 prefix for a 32-byte message. The
// contracts verify channel-state signatures with ecrecover over this exact
// prefixed digest; changing it breaks on-chain verification.
const personalMessagePrefix = "\x19Ethereum Signed Message:\n32"

// PersonalDigest returns the EIP-191 personal-message digest of a 32-byte
// hash: keccak256("\x19Ethereum Signed Message:\n32" || hash).
func PersonalDigest(hash []byte) []byte {
	return crypto.Keccak256([]byte(personalMessagePrefix), hash)
}

// RecoverDigest recovers the address that produced the signature over the
// given digest. It accepts v in either 0/1 or 27/28 form and never mutates
// the caller's signature.
func RecoverDigest(digest []byte, sig Signature) (common.Address, error) {
	if len(sig) != 65 {
		return common.Address{}, fmt.Errorf("invalid signature length: got %d, want 65", len(sig))
	}

	localSig := make([]byte, 65)
	copy(localSig, sig)
	if localSig[64] >= 27 {
		localSig[64] -= 27
	}

	pubKey, err := crypto.SigToPub(digest, localSig)
	if err != nil {
		return common.Address{}, fmt.Errorf("signature recovery failed: %w", err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}
