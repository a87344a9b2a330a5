package sign

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Signer is the signing capability consumed by the client.
type Signer interface {
	// Address returns the address derived from the signer's public key.
	Address() common.Address
	// SignDigest signs a 32-byte digest. The caller is responsible for
	// hashing (and, where required, prefixing) the message beforehand.
	SignDigest(digest []byte) (Signature, error)
	// SignTx signs a transaction for submission on the given chain.
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

var _ Signer = (*LocalSigner)(nil)

// LocalSigner signs with an in-memory secp256k1 private key.
type LocalSigner struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// NewLocalSigner creates a signer from a hex-encoded private key.
func NewLocalSigner(privateKeyHex string) (*LocalSigner, error) {
	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")
	key, err := ethcrypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("could not parse private key: %w", err)
	}
	return NewLocalSignerFromKey(key), nil
}

// NewLocalSignerFromKey creates a signer from an existing ECDSA private key.
func NewLocalSignerFromKey(key *ecdsa.PrivateKey) *LocalSigner {
	return &LocalSigner{
		privateKey: key,
		address:    ethcrypto.PubkeyToAddress(key.PublicKey),
	}
}

// Address returns the address derived from the signer's public key.
func (s *LocalSigner) Address() common.Address {
	return s.address
}

// PublicKey returns the signer's public key.
func (s *LocalSigner) PublicKey() *ecdsa.PublicKey {
	return s.privateKey.Public().(*ecdsa.PublicKey)
}

// SignDigest signs a 32-byte digest and normalizes V to 27/28.
func (s *LocalSigner) SignDigest(digest []byte) (Signature, error) {
	sig, err := ethcrypto.Sign(digest, s.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}
	if sig[64] < 27 {
		sig[64] += 27
	}
	return Signature(sig), nil
}

// SignTx signs a transaction with the latest signer for the given chain.
func (s *LocalSigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return signed, nil
}
