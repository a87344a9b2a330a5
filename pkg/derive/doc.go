// Package derive computes the deterministic 32-byte identifiers used by the
// SYNAPSE Protocol contracts.
//
// Escrow and stream identifiers are not assigned by the contracts at
// registration time; both sides compute them independently from the defining
// parameters. The field order, field widths, and hashing scheme here must
// therefore match the deployed contracts bit-exactly, or the client derives
// ids that never match anything on-chain. Do not change the packing without
// a coordinated contract change.
package derive
