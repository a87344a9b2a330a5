package synapse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTier(t *testing.T) {
	t.Run("Decodes known values", func(t *testing.T) {
		assert.Equal(t, TierGold, TierFromUint8(3))
		assert.Equal(t, "GOLD", TierGold.String())
	})

	t.Run("Unknown values fall back to unverified", func(t *testing.T) {
		assert.Equal(t, TierUnverified, TierFromUint8(42))
		assert.Equal(t, TierUnverified, TierFromUint8(255))
	})

	t.Run("Discounts grow with tier", func(t *testing.T) {
		assert.EqualValues(t, 0, TierUnverified.DiscountPercent())
		assert.EqualValues(t, 10, TierBronze.DiscountPercent())
		assert.EqualValues(t, 25, TierSilver.DiscountPercent())
		assert.EqualValues(t, 40, TierGold.DiscountPercent())
		assert.EqualValues(t, 60, TierPlatinum.DiscountPercent())
		assert.EqualValues(t, 75, TierDiamond.DiscountPercent())
	})
}

func TestPricingModel(t *testing.T) {
	t.Run("Decodes known values", func(t *testing.T) {
		assert.Equal(t, PricingPerToken, PricingModelFromUint8(1))
		assert.Equal(t, "PER_TOKEN", PricingPerToken.String())
	})

	t.Run("Unknown values fall back to custom", func(t *testing.T) {
		assert.Equal(t, PricingCustom, PricingModelFromUint8(99))
	})
}

func TestChannelStatus(t *testing.T) {
	t.Run("Decodes known values", func(t *testing.T) {
		assert.Equal(t, ChannelOpen, ChannelStatusFromUint8(1))
		assert.Equal(t, "CLOSING", ChannelClosing.String())
	})

	t.Run("Unknown values fall back to none", func(t *testing.T) {
		assert.Equal(t, ChannelNone, ChannelStatusFromUint8(200))
	})
}
