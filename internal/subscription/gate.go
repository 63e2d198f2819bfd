package subscription

import "fmt"

// Denial is the typed refusal returned when a gated action is
// rejected. It is a value, not a fault: callers decide whether to
// surface an upgrade prompt.
type Denial struct {
	Feature Feature
	Tier    Tier
}

func (d *Denial) Error() string {
	return fmt.Sprintf("plan %q does not include %q", d.Tier, d.Feature)
}

// UpgradePrompter is the collaborator invoked when a gate check denies
// access. The user's decision is handled out of band; the core never
// awaits it.
type UpgradePrompter interface {
	PromptUpgrade(feature Feature)
}

// HasFeatureAccess reports whether a tier includes a boolean feature.
// Everything else fails closed: unknown features, and the limit-style
// features, whose bounds only the Can* checks below can grant.
func HasFeatureAccess(tier Tier, feature Feature) bool {
	p := PlanFor(tier)
	switch feature {
	case FeatureConversationPractice:
		return p.ConversationPractice
	case FeatureAdvancedAnalytics:
		return p.AdvancedAnalytics
	default:
		return false
	}
}

// CanAccessIndustry reports whether a tier may add one more industry
// given how many the user already uses. Callers run this check before
// mutating the current industry; a rejection mutates nothing.
func CanAccessIndustry(tier Tier, industriesUsed int) bool {
	p := PlanFor(tier)
	if p.MaxIndustries == Unlimited {
		return true
	}
	return industriesUsed < p.MaxIndustries
}

// CanStartLesson reports whether a tier may start another lesson this
// month given the count already taken.
func CanStartLesson(tier Tier, lessonsThisMonth int) bool {
	p := PlanFor(tier)
	if p.LessonsPerMonth == Unlimited {
		return true
	}
	return lessonsThisMonth < p.LessonsPerMonth
}
