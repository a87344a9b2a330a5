// Package synapse is a Go client for the SYNAPSE protocol contracts: SYN
// token transfers, routed payments with escrow and streaming, agent
// reputation and staking, the service registry, and bidirectional payment
// channels.
//
// A Client wraps a single JSON-RPC connection. Amounts cross the API in
// display units as decimal values; conversion to the contracts' 10^18-scaled
// base units is exact and rejects inputs that would lose precision. Writes
// wait for their receipt and distinguish a mined failure
// (TransactionFailedError) from an expired confirmation wait (TimeoutError,
// after which the transaction may still confirm).
package synapse
