package subscription

import "testing"

func TestHasFeatureAccess(t *testing.T) {
	tests := []struct {
		tier    Tier
		feature Feature
		want    bool
	}{
		{TierFree, FeatureConversationPractice, false},
		{TierFree, FeatureAdvancedAnalytics, false},
		{TierFree, FeatureIndustries, false},
		{TierFree, FeatureLessonsPerMonth, false},
		{TierPremium, FeatureIndustries, false},
		{TierPremium, FeatureConversationPractice, true},
		{TierPremium, FeatureAdvancedAnalytics, false},
		{TierProfessional, FeatureConversationPractice, true},
		{TierProfessional, FeatureAdvancedAnalytics, true},
	}

	for _, tt := range tests {
		if got := HasFeatureAccess(tt.tier, tt.feature); got != tt.want {
			t.Errorf("HasFeatureAccess(%q, %q) = %v, want %v", tt.tier, tt.feature, got, tt.want)
		}
	}
}

func TestHasFeatureAccess_FailsClosed(t *testing.T) {
	if HasFeatureAccess(TierProfessional, "no-such-feature") {
		t.Error("unknown feature must resolve to false")
	}
	for _, f := range []Feature{
		FeatureConversationPractice,
		FeatureAdvancedAnalytics,
		FeatureIndustries,
		FeatureLessonsPerMonth,
	} {
		if HasFeatureAccess("unknown-tier", f) {
			t.Errorf("HasFeatureAccess(unknown-tier, %q) must be false", f)
		}
	}
}

func TestPlanFor_UnknownTierIsFree(t *testing.T) {
	p := PlanFor("enterprise-gold")
	if p.Tier != TierFree {
		t.Errorf("PlanFor(unknown).Tier = %q, want %q", p.Tier, TierFree)
	}
}

func TestCanAccessIndustry(t *testing.T) {
	tests := []struct {
		tier Tier
		used int
		want bool
	}{
		{TierFree, 0, true},
		{TierFree, 1, false},
		{TierFree, 2, false},
		{TierPremium, 0, true},
		{TierPremium, 10, true},
		{TierProfessional, 10, true},
		{"unknown-tier", 1, false},
	}

	for _, tt := range tests {
		if got := CanAccessIndustry(tt.tier, tt.used); got != tt.want {
			t.Errorf("CanAccessIndustry(%q, %d) = %v, want %v", tt.tier, tt.used, got, tt.want)
		}
	}
}

func TestCanStartLesson(t *testing.T) {
	tests := []struct {
		tier  Tier
		taken int
		want  bool
	}{
		{TierFree, 0, true},
		{TierFree, 9, true},
		{TierFree, 10, false},
		{TierPremium, 500, true},
		{"unknown-tier", 10, false},
	}

	for _, tt := range tests {
		if got := CanStartLesson(tt.tier, tt.taken); got != tt.want {
			t.Errorf("CanStartLesson(%q, %d) = %v, want %v", tt.tier, tt.taken, got, tt.want)
		}
	}
}

func TestDenialError(t *testing.T) {
	d := &Denial{Feature: FeatureIndustries, Tier: TierFree}
	if d.Error() == "" {
		t.Error("Denial must render a message")
	}
}
