package chanstate

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-protocol/synapse-go/pkg/sign"
)

func testState() State {
	return State{
		ChannelID: common.HexToHash("0x0101010101010101010101010101010101010101010101010101010101010101"),
		Balance1:  big.NewInt(7_500_000),
		Balance2:  big.NewInt(2_500_000),
		Nonce:     3,
	}
}

func TestStateEncode(t *testing.T) {
	t.Run("Layout", func(t *testing.T) {
		s := testState()
		encoded, err := s.Encode()
		require.NoError(t, err)
		require.Len(t, encoded, 128)

		assert.Equal(t, s.ChannelID.Bytes(), encoded[:32])
		assert.Equal(t, common.LeftPadBytes(s.Balance1.Bytes(), 32), encoded[32:64])
		assert.Equal(t, common.LeftPadBytes(s.Balance2.Bytes(), 32), encoded[64:96])
		assert.Equal(t, byte(3), encoded[127])
		assert.Equal(t, make([]byte, 31), encoded[96:127])
	})

	t.Run("Rejects invalid balances", func(t *testing.T) {
		s := testState()
		s.Balance1 = nil
		_, err := s.Encode()
		assert.ErrorIs(t, err, ErrInvalidBalance)

		s = testState()
		s.Balance2 = big.NewInt(-1)
		_, err = s.Encode()
		assert.ErrorIs(t, err, ErrInvalidBalance)
	})

	t.Run("Hash is keccak of encoding", func(t *testing.T) {
		s := testState()
		encoded, err := s.Encode()
		require.NoError(t, err)

		hash, err := s.Hash()
		require.NoError(t, err)
		assert.Equal(t, crypto.Keccak256Hash(encoded), hash)
	})
}

func TestSignAndVerifyState(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := sign.NewLocalSignerFromKey(key)

	s := testState()
	sig, err := SignState(s, signer)
	require.NoError(t, err)
	require.Len(t, []byte(sig), 65)

	t.Run("Verifies against the signing address", func(t *testing.T) {
		ok, err := VerifyState(s, sig, signer.Address())
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Rejects a different address", func(t *testing.T) {
		otherKey, err := crypto.GenerateKey()
		require.NoError(t, err)

		ok, err := VerifyState(s, sig, crypto.PubkeyToAddress(otherKey.PublicKey))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Rejects a mutated state", func(t *testing.T) {
		mutated := s
		mutated.Balance1 = big.NewInt(7_500_001)

		ok, err := VerifyState(mutated, sig, signer.Address())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Signature is over the prefixed digest", func(t *testing.T) {
		// A signature over the bare state hash must not verify: the contract
		// recovers over the personal-message digest.
		hash, err := s.Hash()
		require.NoError(t, err)
		bareSig, err := signer.SignDigest(hash.Bytes())
		require.NoError(t, err)

		ok, err := VerifyState(s, bareSig, signer.Address())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
