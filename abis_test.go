package synapse

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
)

func TestABIMethods(t *testing.T) {
	for _, tc := range []struct {
		name    string
		abi     abi.ABI
		methods []string
	}{
		{"token", tokenABI, []string{"balanceOf", "transfer", "approve", "allowance", "totalSupply", "delegate", "getVotes"}},
		{"payment_router", paymentRouterABI, []string{"pay", "batchPay", "createEscrow", "releaseEscrow", "refundEscrow", "createStream", "withdrawFromStream", "cancelStream", "baseFeeBps", "agentStats"}},
		{"reputation", reputationABI, []string{"registerAgent", "deregisterAgent", "increaseStake", "decreaseStake", "agents", "getTier", "getTierDiscount", "createDispute", "rateService", "getServiceRating"}},
		{"service_registry", serviceRegistryABI, []string{"registerService", "updateServicePrice", "activateService", "deactivateService", "services", "getServicesByCategory", "categoryExists", "calculatePrice", "requestQuote", "acceptQuote"}},
		{"payment_channel", paymentChannelABI, []string{"openChannel", "fundChannel", "addFunds", "cooperativeClose", "initiateClose", "challengeClose", "finalizeClose", "getChannelId", "channels", "challengePeriod"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for _, m := range tc.methods {
				_, found := tc.abi.Methods[m]
				assert.True(t, found, "missing method %s", m)
			}
		})
	}
}
