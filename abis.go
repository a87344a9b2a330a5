package synapse

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Simplified contract ABIs covering the methods the SDK calls. These mirror
// the deployed SYNAPSE contract interfaces; adding a method here requires it
// to exist on-chain with the same signature.

const tokenABIJSON = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"allowance","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"delegate","stateMutability":"nonpayable","inputs":[{"name":"delegatee","type":"address"}],"outputs":[]},
	{"type":"function","name":"getVotes","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

const paymentRouterABIJSON = `[
	{"type":"function","name":"pay","stateMutability":"nonpayable","inputs":[{"name":"recipient","type":"address"},{"name":"amount","type":"uint256"},{"name":"paymentId","type":"bytes32"},{"name":"metadata","type":"bytes"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"batchPay","stateMutability":"nonpayable","inputs":[{"name":"recipients","type":"address[]"},{"name":"amounts","type":"uint256[]"},{"name":"paymentIds","type":"bytes32[]"},{"name":"metadata","type":"bytes[]"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"createEscrow","stateMutability":"nonpayable","inputs":[{"name":"recipient","type":"address"},{"name":"arbiter","type":"address"},{"name":"amount","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"paymentId","type":"bytes32"},{"name":"metadata","type":"bytes"}],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"releaseEscrow","stateMutability":"nonpayable","inputs":[{"name":"escrowId","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"refundEscrow","stateMutability":"nonpayable","inputs":[{"name":"escrowId","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"createStream","stateMutability":"nonpayable","inputs":[{"name":"recipient","type":"address"},{"name":"totalAmount","type":"uint256"},{"name":"startTime","type":"uint256"},{"name":"endTime","type":"uint256"}],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"withdrawFromStream","stateMutability":"nonpayable","inputs":[{"name":"streamId","type":"bytes32"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"cancelStream","stateMutability":"nonpayable","inputs":[{"name":"streamId","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"baseFeeBps","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"agentStats","stateMutability":"view","inputs":[{"name":"","type":"address"}],"outputs":[{"name":"totalPaymentsSent","type":"uint256"},{"name":"totalPaymentsReceived","type":"uint256"},{"name":"totalVolumeSent","type":"uint256"},{"name":"totalVolumeReceived","type":"uint256"}]}
]`

const reputationABIJSON = `[
	{"type":"function","name":"registerAgent","stateMutability":"nonpayable","inputs":[{"name":"name","type":"string"},{"name":"metadataUri","type":"string"},{"name":"stakeAmount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"deregisterAgent","stateMutability":"nonpayable","inputs":[],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"increaseStake","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"decreaseStake","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"agents","stateMutability":"view","inputs":[{"name":"","type":"address"}],"outputs":[{"name":"registered","type":"bool"},{"name":"name","type":"string"},{"name":"stake","type":"uint256"},{"name":"reputationScore","type":"uint256"},{"name":"totalTransactions","type":"uint256"},{"name":"successfulTransactions","type":"uint256"},{"name":"registeredAt","type":"uint256"}]},
	{"type":"function","name":"getTier","stateMutability":"view","inputs":[{"name":"agent","type":"address"}],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"getTierDiscount","stateMutability":"view","inputs":[{"name":"tier","type":"uint8"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getSuccessRate","stateMutability":"view","inputs":[{"name":"agent","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"createDispute","stateMutability":"nonpayable","inputs":[{"name":"defendant","type":"address"},{"name":"reason","type":"string"},{"name":"transactionId","type":"bytes32"}],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"rateService","stateMutability":"nonpayable","inputs":[{"name":"provider","type":"address"},{"name":"category","type":"string"},{"name":"rating","type":"uint8"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getServiceRating","stateMutability":"view","inputs":[{"name":"provider","type":"address"},{"name":"category","type":"string"}],"outputs":[{"name":"totalRatings","type":"uint256"},{"name":"averageRating","type":"uint256"}]}
]`

const serviceRegistryABIJSON = `[
	{"type":"function","name":"registerService","stateMutability":"nonpayable","inputs":[{"name":"name","type":"string"},{"name":"category","type":"string"},{"name":"description","type":"string"},{"name":"endpoint","type":"string"},{"name":"basePrice","type":"uint256"},{"name":"pricingModel","type":"uint8"}],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"updateServiceDescription","stateMutability":"nonpayable","inputs":[{"name":"serviceId","type":"bytes32"},{"name":"description","type":"string"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"updateServiceEndpoint","stateMutability":"nonpayable","inputs":[{"name":"serviceId","type":"bytes32"},{"name":"endpoint","type":"string"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"updateServicePrice","stateMutability":"nonpayable","inputs":[{"name":"serviceId","type":"bytes32"},{"name":"newPrice","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"activateService","stateMutability":"nonpayable","inputs":[{"name":"serviceId","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"deactivateService","stateMutability":"nonpayable","inputs":[{"name":"serviceId","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"services","stateMutability":"view","inputs":[{"name":"","type":"bytes32"}],"outputs":[{"name":"provider","type":"address"},{"name":"name","type":"string"},{"name":"category","type":"string"},{"name":"description","type":"string"},{"name":"endpoint","type":"string"},{"name":"basePrice","type":"uint256"},{"name":"pricingModel","type":"uint8"},{"name":"active","type":"bool"},{"name":"createdAt","type":"uint256"}]},
	{"type":"function","name":"getServicesByCategory","stateMutability":"view","inputs":[{"name":"category","type":"string"}],"outputs":[{"name":"","type":"bytes32[]"}]},
	{"type":"function","name":"categoryExists","stateMutability":"view","inputs":[{"name":"category","type":"string"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"calculatePrice","stateMutability":"view","inputs":[{"name":"serviceId","type":"bytes32"},{"name":"quantity","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"requestQuote","stateMutability":"nonpayable","inputs":[{"name":"serviceId","type":"bytes32"},{"name":"quantity","type":"uint256"},{"name":"specs","type":"bytes"}],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"acceptQuote","stateMutability":"nonpayable","inputs":[{"name":"quoteId","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]}
]`

const paymentChannelABIJSON = `[
	{"type":"function","name":"openChannel","stateMutability":"nonpayable","inputs":[{"name":"counterparty","type":"address"},{"name":"myDeposit","type":"uint256"},{"name":"theirDeposit","type":"uint256"}],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"fundChannel","stateMutability":"nonpayable","inputs":[{"name":"initiator","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"addFunds","stateMutability":"nonpayable","inputs":[{"name":"counterparty","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"cooperativeClose","stateMutability":"nonpayable","inputs":[{"name":"counterparty","type":"address"},{"name":"balance1","type":"uint256"},{"name":"balance2","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"sig1","type":"bytes"},{"name":"sig2","type":"bytes"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"initiateClose","stateMutability":"nonpayable","inputs":[{"name":"counterparty","type":"address"},{"name":"balance1","type":"uint256"},{"name":"balance2","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"sig1","type":"bytes"},{"name":"sig2","type":"bytes"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"challengeClose","stateMutability":"nonpayable","inputs":[{"name":"counterparty","type":"address"},{"name":"balance1","type":"uint256"},{"name":"balance2","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"sig1","type":"bytes"},{"name":"sig2","type":"bytes"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"finalizeClose","stateMutability":"nonpayable","inputs":[{"name":"counterparty","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getChannelId","stateMutability":"view","inputs":[{"name":"party1","type":"address"},{"name":"party2","type":"address"}],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"getChannelBalance","stateMutability":"view","inputs":[{"name":"party1","type":"address"},{"name":"party2","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"channels","stateMutability":"view","inputs":[{"name":"","type":"bytes32"}],"outputs":[{"name":"participant1","type":"address"},{"name":"participant2","type":"address"},{"name":"balance1","type":"uint256"},{"name":"balance2","type":"uint256"},{"name":"nonce","type":"uint256"},{"name":"status","type":"uint8"},{"name":"challengeEnd","type":"uint256"}]},
	{"type":"function","name":"challengePeriod","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

var (
	tokenABI           = mustParseABI(tokenABIJSON)
	paymentRouterABI   = mustParseABI(paymentRouterABIJSON)
	reputationABI      = mustParseABI(reputationABIJSON)
	serviceRegistryABI = mustParseABI(serviceRegistryABIJSON)
	paymentChannelABI  = mustParseABI(paymentChannelABIJSON)
)

func mustParseABI(abiJSON string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		panic(err)
	}
	return parsed
}
