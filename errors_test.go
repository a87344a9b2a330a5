package synapse

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	txHash := common.HexToHash("0xdeadbeef")

	t.Run("Invalid rating wraps invalid input", func(t *testing.T) {
		assert.ErrorIs(t, ErrInvalidRating, ErrInvalidInput)
	})

	t.Run("Transaction failure carries the hash", func(t *testing.T) {
		err := &TransactionFailedError{TxHash: txHash}
		assert.Contains(t, err.Error(), txHash.Hex())

		var failed *TransactionFailedError
		assert.ErrorAs(t, error(err), &failed)
		assert.Equal(t, txHash, failed.TxHash)
	})

	t.Run("Timeout unwraps to its cause", func(t *testing.T) {
		err := &TimeoutError{TxHash: txHash, cause: context.DeadlineExceeded}
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, err.Error(), "may still confirm")
		assert.Contains(t, err.Error(), txHash.Hex())
	})

	t.Run("Timeout is not a transaction failure", func(t *testing.T) {
		err := error(&TimeoutError{TxHash: txHash})
		var failed *TransactionFailedError
		assert.False(t, errors.As(err, &failed))
	})
}
