package synapse

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/synapse-protocol/synapse-go/pkg/unit"
)

// RegisterServiceParams are the inputs to RegisterService.
type RegisterServiceParams struct {
	Name        string `validate:"required,max=128"`
	Category    string `validate:"required,max=64"`
	Description string `validate:"omitempty,max=1024"`
	Endpoint    string `validate:"required,max=512"`
	// BasePrice is the price per pricing-model unit, in display units.
	BasePrice    decimal.Decimal
	PricingModel PricingModel
}

// RegisterService lists a new service under the signing address. The service
// id is recovered from the receipt logs on a best-effort basis; it is the
// zero hash when the contract emitted no identifying event.
func (c *Client) RegisterService(ctx context.Context, params RegisterServiceParams) (*ServiceResult, error) {
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	wire, err := unit.DecimalToWire(params.BasePrice)
	if err != nil {
		return nil, err
	}

	receipt, err := c.transact(ctx, &c.serviceRegistry, "registerService",
		params.Name, params.Category, params.Description, params.Endpoint,
		wire, uint8(params.PricingModel))
	if err != nil {
		return nil, err
	}
	result := &ServiceResult{TxHash: receipt.TxHash}
	if id, ok := firstEventTopic(receipt, c.serviceRegistry.addr); ok {
		result.ServiceID = id
	}
	return result, nil
}

// UpdateServiceDescription replaces a service's description.
func (c *Client) UpdateServiceDescription(ctx context.Context, serviceID common.Hash, description string) (common.Hash, error) {
	receipt, err := c.transact(ctx, &c.serviceRegistry, "updateServiceDescription", serviceID, description)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// UpdateServiceEndpoint replaces a service's endpoint URL.
func (c *Client) UpdateServiceEndpoint(ctx context.Context, serviceID common.Hash, endpoint string) (common.Hash, error) {
	if endpoint == "" {
		return common.Hash{}, fmt.Errorf("%w: endpoint must not be empty", ErrInvalidInput)
	}
	receipt, err := c.transact(ctx, &c.serviceRegistry, "updateServiceEndpoint", serviceID, endpoint)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// UpdateServicePrice replaces a service's base price, given in display units.
func (c *Client) UpdateServicePrice(ctx context.Context, serviceID common.Hash, newPrice decimal.Decimal) (common.Hash, error) {
	wire, err := unit.DecimalToWire(newPrice)
	if err != nil {
		return common.Hash{}, err
	}
	receipt, err := c.transact(ctx, &c.serviceRegistry, "updateServicePrice", serviceID, wire)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// ActivateService makes a service discoverable again.
func (c *Client) ActivateService(ctx context.Context, serviceID common.Hash) (common.Hash, error) {
	receipt, err := c.transact(ctx, &c.serviceRegistry, "activateService", serviceID)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// DeactivateService hides a service from discovery without deleting it.
func (c *Client) DeactivateService(ctx context.Context, serviceID common.Hash) (common.Hash, error) {
	receipt, err := c.transact(ctx, &c.serviceRegistry, "deactivateService", serviceID)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// GetService fetches a service record by id.
func (c *Client) GetService(ctx context.Context, serviceID common.Hash) (*ServiceInfo, error) {
	var out []interface{}
	if err := c.call(ctx, &c.serviceRegistry, &out, "services", serviceID); err != nil {
		return nil, err
	}
	return &ServiceInfo{
		Provider:     *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		Name:         *abi.ConvertType(out[1], new(string)).(*string),
		Category:     *abi.ConvertType(out[2], new(string)).(*string),
		Description:  *abi.ConvertType(out[3], new(string)).(*string),
		Endpoint:     *abi.ConvertType(out[4], new(string)).(*string),
		BasePrice:    unit.FromWire(abi.ConvertType(out[5], new(big.Int)).(*big.Int)),
		PricingModel: PricingModelFromUint8(*abi.ConvertType(out[6], new(uint8)).(*uint8)),
		Active:       *abi.ConvertType(out[7], new(bool)).(*bool),
		CreatedAt:    abi.ConvertType(out[8], new(big.Int)).(*big.Int).Uint64(),
	}, nil
}

// FindServicesByCategory returns the ids of all services listed under a
// category, active or not.
func (c *Client) FindServicesByCategory(ctx context.Context, category string) ([]common.Hash, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
	}

	var out []interface{}
	if err := c.call(ctx, &c.serviceRegistry, &out, "getServicesByCategory", category); err != nil {
		return nil, err
	}
	raw := *abi.ConvertType(out[0], new([][32]byte)).(*[][32]byte)
	ids := make([]common.Hash, len(raw))
	for i, b := range raw {
		ids[i] = common.Hash(b)
	}
	return ids, nil
}

// CategoryExists reports whether any service has ever been listed under the
// category.
func (c *Client) CategoryExists(ctx context.Context, category string) (bool, error) {
	if category == "" {
		return false, fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
	}

	var out []interface{}
	if err := c.call(ctx, &c.serviceRegistry, &out, "categoryExists", category); err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// CalculatePrice quotes the total price for quantity units of a service, in
// display units, using the service's pricing model.
func (c *Client) CalculatePrice(ctx context.Context, serviceID common.Hash, quantity uint64) (decimal.Decimal, error) {
	var out []interface{}
	if err := c.call(ctx, &c.serviceRegistry, &out, "calculatePrice", serviceID, new(big.Int).SetUint64(quantity)); err != nil {
		return decimal.Zero, err
	}
	return unit.FromWire(abi.ConvertType(out[0], new(big.Int)).(*big.Int)), nil
}

// RequestQuote asks a provider for a binding quote on quantity units with
// free-form spec bytes. The quote id is recovered from the receipt logs on a
// best-effort basis.
func (c *Client) RequestQuote(ctx context.Context, serviceID common.Hash, quantity uint64, specs []byte) (*QuoteResult, error) {
	if specs == nil {
		specs = []byte{}
	}

	receipt, err := c.transact(ctx, &c.serviceRegistry, "requestQuote",
		serviceID, new(big.Int).SetUint64(quantity), specs)
	if err != nil {
		return nil, err
	}
	result := &QuoteResult{TxHash: receipt.TxHash}
	if id, ok := firstEventTopic(receipt, c.serviceRegistry.addr); ok {
		result.QuoteID = id
	}
	return result, nil
}

// AcceptQuote accepts a previously issued quote, locking in its price.
func (c *Client) AcceptQuote(ctx context.Context, quoteID common.Hash) (common.Hash, error) {
	receipt, err := c.transact(ctx, &c.serviceRegistry, "acceptQuote", quoteID)
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}
