// Package unit converts token amounts between their human-facing decimal
// form and the fixed-point integer form consumed by the contract layer.
//
// SYNX, like most ERC-20 tokens, is accounted on-chain in base units scaled
// by 10^18. The conversions here are exact: parsing never goes through
// binary floating point, and any input that cannot be represented without
// truncation below the 18-decimal boundary is rejected rather than rounded.
//
//	wire, err := unit.ToWire("10.5") // 10500000000000000000
//	unit.ToDisplay(wire)             // "10.5"
package unit
