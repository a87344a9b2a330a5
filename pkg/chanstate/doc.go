// Package chanstate encodes, hashes, signs, and verifies payment-channel
// states, and tracks the highest nonce a participant has signed per channel.
//
// A channel state is the tuple (channel id, balance1, balance2, nonce). Both
// participants sign the keccak256 hash of its tight (bytes32, uint256,
// uint256, uint256) encoding under the EIP-191 personal-message prefix; the
// contract re-derives the same digest to verify signatures at close time.
// Only the highest mutually signed nonce is honored on finalize, so a
// participant must never sign a nonce at or below one it has already signed.
// The Tracker enforces that policy on the signing side; the contracts enforce
// it on finalize.
package chanstate
