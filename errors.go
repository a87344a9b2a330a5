package synapse

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrNoSigner is returned when a write operation is attempted on a
	// client configured without a private key.
	ErrNoSigner = errors.New("no signing key configured")
	// ErrInvalidInput is returned when operation parameters fail validation.
	// It is always raised before any network interaction.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidRating is returned for ratings outside the closed range [1, 5].
	ErrInvalidRating = fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	// ErrContractNotConfigured is returned when an operation targets a
	// contract whose address was not supplied in the configuration.
	ErrContractNotConfigured = errors.New("contract address not configured")
)

// TransactionFailedError indicates that a transaction was mined but its
// receipt reports a failure status. The transaction hash is carried for
// caller inspection; the fee was spent and the nonce consumed.
type TransactionFailedError struct {
	TxHash common.Hash
}

func (e *TransactionFailedError) Error() string {
	return fmt.Sprintf("transaction failed: %s", e.TxHash.Hex())
}

// TimeoutError indicates that the confirmation wait exceeded the configured
// deadline. The transaction may still confirm later: the caller must
// re-check the transaction by hash rather than assume it failed.
type TimeoutError struct {
	TxHash common.Hash
	cause  error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("confirmation wait expired for transaction %s (it may still confirm)", e.TxHash.Hex())
}

func (e *TimeoutError) Unwrap() error {
	return e.cause
}
