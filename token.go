package synapse

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/synapse-protocol/synapse-go/pkg/derive"
	"github.com/synapse-protocol/synapse-go/pkg/unit"
)

// Balance returns the SYN token balance of account in display units.
func (c *Client) Balance(ctx context.Context, account string) (decimal.Decimal, error) {
	addr, err := derive.ParseAddress(account)
	if err != nil {
		return decimal.Zero, err
	}

	var out []interface{}
	if err := c.call(ctx, &c.token, &out, "balanceOf", addr); err != nil {
		return decimal.Zero, err
	}
	return unit.FromWire(abi.ConvertType(out[0], new(big.Int)).(*big.Int)), nil
}

// Transfer moves amount display units of SYN to the recipient.
func (c *Client) Transfer(ctx context.Context, to string, amount decimal.Decimal) (common.Hash, error) {
	addr, err := derive.ParseAddress(to)
	if err != nil {
		return common.Hash{}, err
	}
	wire, err := unit.DecimalToWire(amount)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.transact(ctx, &c.token, "transfer", addr, wire)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// Approve grants spender an allowance of amount display units.
func (c *Client) Approve(ctx context.Context, spender string, amount decimal.Decimal) (common.Hash, error) {
	addr, err := derive.ParseAddress(spender)
	if err != nil {
		return common.Hash{}, err
	}
	wire, err := unit.DecimalToWire(amount)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.transact(ctx, &c.token, "approve", addr, wire)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// ApproveAll grants spender an unlimited allowance (2^256-1). Convenient for
// the protocol's own contracts; use Approve for anything else.
func (c *Client) ApproveAll(ctx context.Context, spender string) (common.Hash, error) {
	addr, err := derive.ParseAddress(spender)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.transact(ctx, &c.token, "approve", addr, abi.MaxUint256)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// Allowance returns the allowance owner has granted spender, in display units.
func (c *Client) Allowance(ctx context.Context, owner, spender string) (decimal.Decimal, error) {
	ownerAddr, err := derive.ParseAddress(owner)
	if err != nil {
		return decimal.Zero, err
	}
	spenderAddr, err := derive.ParseAddress(spender)
	if err != nil {
		return decimal.Zero, err
	}

	var out []interface{}
	if err := c.call(ctx, &c.token, &out, "allowance", ownerAddr, spenderAddr); err != nil {
		return decimal.Zero, err
	}
	return unit.FromWire(abi.ConvertType(out[0], new(big.Int)).(*big.Int)), nil
}

// TotalSupply returns the token's total supply in display units.
func (c *Client) TotalSupply(ctx context.Context) (decimal.Decimal, error) {
	var out []interface{}
	if err := c.call(ctx, &c.token, &out, "totalSupply"); err != nil {
		return decimal.Zero, err
	}
	return unit.FromWire(abi.ConvertType(out[0], new(big.Int)).(*big.Int)), nil
}

// TokenMeta fetches the token's name, symbol and decimals.
func (c *Client) TokenMeta(ctx context.Context) (*TokenMeta, error) {
	var nameOut, symbolOut, decimalsOut []interface{}
	if err := c.call(ctx, &c.token, &nameOut, "name"); err != nil {
		return nil, err
	}
	if err := c.call(ctx, &c.token, &symbolOut, "symbol"); err != nil {
		return nil, err
	}
	if err := c.call(ctx, &c.token, &decimalsOut, "decimals"); err != nil {
		return nil, err
	}
	return &TokenMeta{
		Name:     *abi.ConvertType(nameOut[0], new(string)).(*string),
		Symbol:   *abi.ConvertType(symbolOut[0], new(string)).(*string),
		Decimals: *abi.ConvertType(decimalsOut[0], new(uint8)).(*uint8),
	}, nil
}

// Delegate assigns the caller's token voting power to delegatee.
func (c *Client) Delegate(ctx context.Context, delegatee string) (common.Hash, error) {
	addr, err := derive.ParseAddress(delegatee)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.transact(ctx, &c.token, "delegate", addr)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// GetVotes returns the current voting power of account in display units.
func (c *Client) GetVotes(ctx context.Context, account string) (decimal.Decimal, error) {
	addr, err := derive.ParseAddress(account)
	if err != nil {
		return decimal.Zero, err
	}

	var out []interface{}
	if err := c.call(ctx, &c.token, &out, "getVotes", addr); err != nil {
		return decimal.Zero, err
	}
	return unit.FromWire(abi.ConvertType(out[0], new(big.Int)).(*big.Int)), nil
}
