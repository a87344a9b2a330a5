package synapse

// Tier is an agent's reputation tier.
type Tier uint8

const (
	TierUnverified Tier = iota
	TierBronze
	TierSilver
	TierGold
	TierPlatinum
	TierDiamond
)

// TierFromUint8 decodes a raw on-chain tier value. Unknown values decode to
// TierUnverified.
func TierFromUint8(v uint8) Tier {
	if v > uint8(TierDiamond) {
		return TierUnverified
	}
	return Tier(v)
}

// String returns the display name of the tier.
func (t Tier) String() string {
	switch t {
	case TierUnverified:
		return "UNVERIFIED"
	case TierBronze:
		return "BRONZE"
	case TierSilver:
		return "SILVER"
	case TierGold:
		return "GOLD"
	case TierPlatinum:
		return "PLATINUM"
	case TierDiamond:
		return "DIAMOND"
	default:
		return "UNKNOWN"
	}
}

// DiscountPercent returns the protocol fee discount for the tier, in percent.
func (t Tier) DiscountPercent() uint8 {
	switch t {
	case TierBronze:
		return 10
	case TierSilver:
		return 25
	case TierGold:
		return 40
	case TierPlatinum:
		return 60
	case TierDiamond:
		return 75
	default:
		return 0
	}
}

// PricingModel is how a registered service charges for usage.
type PricingModel uint8

const (
	PricingPerRequest PricingModel = iota
	PricingPerToken
	PricingPerSecond
	PricingPerByte
	PricingSubscription
	PricingCustom
)

// PricingModelFromUint8 decodes a raw on-chain pricing model. Unknown values
// decode to PricingCustom.
func PricingModelFromUint8(v uint8) PricingModel {
	if v > uint8(PricingCustom) {
		return PricingCustom
	}
	return PricingModel(v)
}

// String returns the display name of the pricing model.
func (m PricingModel) String() string {
	switch m {
	case PricingPerRequest:
		return "PER_REQUEST"
	case PricingPerToken:
		return "PER_TOKEN"
	case PricingPerSecond:
		return "PER_SECOND"
	case PricingPerByte:
		return "PER_BYTE"
	case PricingSubscription:
		return "SUBSCRIPTION"
	case PricingCustom:
		return "CUSTOM"
	default:
		return "UNKNOWN"
	}
}

// ChannelStatus is the lifecycle state of a payment channel.
type ChannelStatus uint8

const (
	ChannelNone ChannelStatus = iota
	ChannelOpen
	ChannelClosing
	ChannelClosed
)

// ChannelStatusFromUint8 decodes a raw on-chain channel status. Unknown
// values decode to ChannelNone.
func ChannelStatusFromUint8(v uint8) ChannelStatus {
	if v > uint8(ChannelClosed) {
		return ChannelNone
	}
	return ChannelStatus(v)
}

// String returns the display name of the channel status.
func (s ChannelStatus) String() string {
	switch s {
	case ChannelNone:
		return "NONE"
	case ChannelOpen:
		return "OPEN"
	case ChannelClosing:
		return "CLOSING"
	case ChannelClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// Well-known service categories. The registry accepts arbitrary category
// strings; these are the conventional ones.
const (
	CategoryLanguageModel   = "language_model"
	CategoryImageGeneration = "image_generation"
	CategoryCodeGeneration  = "code_generation"
	CategoryTranslation     = "translation"
	CategoryDataAnalysis    = "data_analysis"
	CategoryReasoning       = "reasoning"
	CategoryEmbedding       = "embedding"
	CategorySpeech          = "speech"
	CategoryVision          = "vision"
	CategoryMultimodal      = "multimodal"
	CategoryAgent           = "agent"
	CategoryTool            = "tool"
	CategoryCustom          = "custom"
)
