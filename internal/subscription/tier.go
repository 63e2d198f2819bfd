package subscription

// Tier is a named subscription level.
type Tier string

const (
	TierFree         Tier = "free"
	TierPremium      Tier = "premium"
	TierProfessional Tier = "professional"
)

// AllTiers returns all tiers in ascending order of entitlement.
func AllTiers() []Tier {
	return []Tier{TierFree, TierPremium, TierProfessional}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierFree:
		return "Free"
	case TierPremium:
		return "Premium"
	case TierProfessional:
		return "Professional"
	default:
		return string(t)
	}
}

// Feature names a gated capability or limit.
type Feature string

const (
	FeatureIndustries           Feature = "industries"
	FeatureLessonsPerMonth      Feature = "lessonsPerMonth"
	FeatureConversationPractice Feature = "conversationPractice"
	FeatureAdvancedAnalytics    Feature = "advancedAnalytics"
)

// Unlimited marks a limit with no bound.
const Unlimited = -1

// Plan is the feature/limit table for one tier.
type Plan struct {
	Tier                 Tier
	MaxIndustries        int // Unlimited or a positive bound
	LessonsPerMonth      int // Unlimited or a positive bound
	ConversationPractice bool
	AdvancedAnalytics    bool
}

// plans is the static per-tier limit table.
var plans = map[Tier]Plan{
	TierFree: {
		Tier:            TierFree,
		MaxIndustries:   1,
		LessonsPerMonth: 10,
	},
	TierPremium: {
		Tier:                 TierPremium,
		MaxIndustries:        Unlimited,
		LessonsPerMonth:      Unlimited,
		ConversationPractice: true,
	},
	TierProfessional: {
		Tier:                 TierProfessional,
		MaxIndustries:        Unlimited,
		LessonsPerMonth:      Unlimited,
		ConversationPractice: true,
		AdvancedAnalytics:    true,
	},
}

// PlanFor resolves a tier to its plan. A tier that does not resolve to
// a known plan falls back to the free plan, the most restrictive,
// never the most permissive.
func PlanFor(tier Tier) Plan {
	if p, ok := plans[tier]; ok {
		return p
	}
	return plans[TierFree]
}
