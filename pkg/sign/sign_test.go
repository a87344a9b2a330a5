package sign

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSigner(t *testing.T) {
	t.Run("From hex key", func(t *testing.T) {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		hexKey := "0x" + hex.EncodeToString(crypto.FromECDSA(key))
		signer, err := NewLocalSigner(hexKey)
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), signer.Address())

		// Prefix is optional.
		signer2, err := NewLocalSigner(hex.EncodeToString(crypto.FromECDSA(key)))
		require.NoError(t, err)
		assert.Equal(t, signer.Address(), signer2.Address())
	})

	t.Run("Invalid key", func(t *testing.T) {
		_, err := NewLocalSigner("not-a-key")
		assert.Error(t, err)

		_, err = NewLocalSigner("0x1234")
		assert.Error(t, err)
	})

	t.Run("Sign and recover", func(t *testing.T) {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		signer := NewLocalSignerFromKey(key)

		digest := crypto.Keccak256([]byte("channel state"))
		sig, err := signer.SignDigest(digest)
		require.NoError(t, err)
		require.Len(t, []byte(sig), 65)
		assert.GreaterOrEqual(t, sig[64], byte(27), "V must be normalized to 27/28")

		recovered, err := RecoverDigest(digest, sig)
		require.NoError(t, err)
		assert.Equal(t, signer.Address(), recovered)
	})

	t.Run("Recover accepts 0/1 form V", func(t *testing.T) {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		digest := crypto.Keccak256([]byte("raw v"))
		raw, err := crypto.Sign(digest, key)
		require.NoError(t, err)
		require.Less(t, raw[64], byte(27))

		recovered, err := RecoverDigest(digest, Signature(raw))
		require.NoError(t, err)
		assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), recovered)
	})

	t.Run("Recover does not mutate the signature", func(t *testing.T) {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)
		signer := NewLocalSignerFromKey(key)

		digest := crypto.Keccak256([]byte("immutability"))
		sig, err := signer.SignDigest(digest)
		require.NoError(t, err)

		v := sig[64]
		_, err = RecoverDigest(digest, sig)
		require.NoError(t, err)
		assert.Equal(t, v, sig[64])
	})

	t.Run("Recover rejects bad lengths", func(t *testing.T) {
		_, err := RecoverDigest(make([]byte, 32), make(Signature, 64))
		assert.Error(t, err)
	})
}

func TestPersonalDigest(t *testing.T) {
	hash := crypto.Keccak256([]byte("payload"))
	digest := PersonalDigest(hash)

	expected := crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n32"), hash)
	assert.Equal(t, expected, digest)
	assert.NotEqual(t, hash, digest)
}

func TestSignatureJSON(t *testing.T) {
	sig := Signature{0x01, 0x02, 0x03}

	jsonData, err := json.Marshal(sig)
	require.NoError(t, err)
	assert.Equal(t, `"0x010203"`, string(jsonData))

	var unmarshaled Signature
	require.NoError(t, json.Unmarshal(jsonData, &unmarshaled))
	assert.Equal(t, sig, unmarshaled)

	t.Run("Invalid inputs", func(t *testing.T) {
		for _, input := range []string{`{invalid}`, `"0xzz"`, `123`} {
			var s Signature
			assert.Error(t, json.Unmarshal([]byte(input), &s), input)
		}
	})
}
