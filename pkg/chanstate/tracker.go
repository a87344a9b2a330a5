package chanstate

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/synapse-protocol/synapse-go/pkg/sign"
)

// ErrStaleNonce is returned when a caller asks to sign a state whose nonce
// does not supersede the highest nonce already signed for that channel.
var ErrStaleNonce = errors.New("state nonce does not supersede last signed nonce")

// NonceStore records the highest signed nonce per channel.
type NonceStore interface {
	// LastSigned returns the highest signed nonce for a channel and whether
	// any state has been signed for it.
	LastSigned(channelID common.Hash) (uint64, bool, error)
	// SetLastSigned records a newly signed nonce for a channel.
	SetLastSigned(channelID common.Hash, nonce uint64) error
}

// Tracker signs channel states while refusing nonce downgrades. Signing a
// state at or below an already-signed nonce would let a counterparty finalize
// a superseded balance split, so the tracker rejects it before any signature
// is produced.
type Tracker struct {
	signer sign.Signer
	store  NonceStore
}

// NewTracker creates a Tracker backed by the given store. A nil store
// defaults to an in-memory one.
func NewTracker(signer sign.Signer, store NonceStore) *Tracker {
	if store == nil {
		store = NewMemoryNonceStore()
	}
	return &Tracker{signer: signer, store: store}
}

// SignState signs the state if its nonce strictly exceeds the highest nonce
// previously signed for its channel, and records the new high-water mark.
func (t *Tracker) SignState(s State) (sign.Signature, error) {
	last, found, err := t.store.LastSigned(s.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to read last signed nonce: %w", err)
	}
	if found && s.Nonce <= last {
		return nil, fmt.Errorf("%w: nonce %d, last signed %d", ErrStaleNonce, s.Nonce, last)
	}

	sig, err := SignState(s, t.signer)
	if err != nil {
		return nil, err
	}

	if err := t.store.SetLastSigned(s.ChannelID, s.Nonce); err != nil {
		return nil, fmt.Errorf("failed to record signed nonce: %w", err)
	}
	return sig, nil
}

// LastSigned exposes the highest signed nonce for a channel.
func (t *Tracker) LastSigned(channelID common.Hash) (uint64, bool, error) {
	return t.store.LastSigned(channelID)
}

var _ NonceStore = (*MemoryNonceStore)(nil)

// MemoryNonceStore keeps signed nonces in process memory. State is lost on
// restart; long-lived participants should use GormNonceStore instead.
type MemoryNonceStore struct {
	mu     sync.Mutex
	nonces map[common.Hash]uint64
}

// NewMemoryNonceStore creates an empty in-memory store.
func NewMemoryNonceStore() *MemoryNonceStore {
	return &MemoryNonceStore{nonces: make(map[common.Hash]uint64)}
}

// LastSigned implements NonceStore.
func (m *MemoryNonceStore) LastSigned(channelID common.Hash) (uint64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	nonce, found := m.nonces[channelID]
	return nonce, found, nil
}

// SetLastSigned implements NonceStore.
func (m *MemoryNonceStore) SetLastSigned(channelID common.Hash, nonce uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nonces[channelID] = nonce
	return nil
}
