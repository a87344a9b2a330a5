package chanstate

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-protocol/synapse-go/pkg/sign"
)

func newTestTracker(t *testing.T, store NonceStore) (*Tracker, *sign.LocalSigner) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := sign.NewLocalSignerFromKey(key)
	return NewTracker(signer, store), signer
}

func stateAt(nonce uint64) State {
	return State{
		ChannelID: common.HexToHash("0xaa"),
		Balance1:  big.NewInt(100),
		Balance2:  big.NewInt(900),
		Nonce:     nonce,
	}
}

func TestTracker(t *testing.T) {
	t.Run("Signs strictly increasing nonces", func(t *testing.T) {
		tracker, signer := newTestTracker(t, nil)

		for _, nonce := range []uint64{0, 1, 5} {
			sig, err := tracker.SignState(stateAt(nonce))
			require.NoError(t, err, "nonce %d", nonce)

			ok, err := VerifyState(stateAt(nonce), sig, signer.Address())
			require.NoError(t, err)
			assert.True(t, ok)
		}

		last, found, err := tracker.LastSigned(stateAt(0).ChannelID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, uint64(5), last)
	})

	t.Run("Refuses equal or lower nonces", func(t *testing.T) {
		tracker, _ := newTestTracker(t, nil)

		_, err := tracker.SignState(stateAt(5))
		require.NoError(t, err)

		_, err = tracker.SignState(stateAt(5))
		assert.ErrorIs(t, err, ErrStaleNonce)

		_, err = tracker.SignState(stateAt(3))
		assert.ErrorIs(t, err, ErrStaleNonce)

		// And a higher nonce is accepted again afterwards.
		_, err = tracker.SignState(stateAt(6))
		assert.NoError(t, err)
	})

	t.Run("Channels are tracked independently", func(t *testing.T) {
		tracker, _ := newTestTracker(t, nil)

		_, err := tracker.SignState(stateAt(9))
		require.NoError(t, err)

		other := stateAt(1)
		other.ChannelID = common.HexToHash("0xbb")
		_, err = tracker.SignState(other)
		assert.NoError(t, err)
	})

	t.Run("Failed signing does not advance the high-water mark", func(t *testing.T) {
		tracker, _ := newTestTracker(t, nil)

		bad := stateAt(4)
		bad.Balance1 = nil
		_, err := tracker.SignState(bad)
		require.Error(t, err)

		_, err = tracker.SignState(stateAt(4))
		assert.NoError(t, err)
	})
}

func TestGormNonceStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonces.db")

	store, err := OpenSQLiteNonceStore(path)
	require.NoError(t, err)

	channelID := common.HexToHash("0xcc")

	_, found, err := store.LastSigned(channelID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetLastSigned(channelID, 7))
	nonce, found, err := store.LastSigned(channelID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(7), nonce)

	// Overwrites keep the latest value.
	require.NoError(t, store.SetLastSigned(channelID, 8))
	nonce, _, err = store.LastSigned(channelID)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), nonce)

	t.Run("Survives reopen", func(t *testing.T) {
		reopened, err := OpenSQLiteNonceStore(path)
		require.NoError(t, err)

		nonce, found, err := reopened.LastSigned(channelID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, uint64(8), nonce)
	})

	t.Run("Backs a tracker", func(t *testing.T) {
		tracker, _ := newTestTracker(t, store)

		persisted := stateAt(8)
		persisted.ChannelID = channelID
		_, err := tracker.SignState(persisted)
		assert.ErrorIs(t, err, ErrStaleNonce)

		persisted.Nonce = 9
		_, err = tracker.SignState(persisted)
		assert.NoError(t, err)
	})
}
