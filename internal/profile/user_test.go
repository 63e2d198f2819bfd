package profile

import (
	"testing"
	"time"

	"github.com/fluentpath/fluentpath/internal/subscription"
)

func TestNewUser_Defaults(t *testing.T) {
	u := NewUser("Ana", "ana@example.com")

	if u.ID == "" {
		t.Error("ID must be generated")
	}
	if u.Tier != subscription.TierFree {
		t.Errorf("Tier = %q, want free", u.Tier)
	}
	if u.Preferences.Theme != "system" {
		t.Errorf("Theme = %q, want system", u.Preferences.Theme)
	}
	if u.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}

	other := NewUser("Ben", "ben@example.com")
	if other.ID == u.ID {
		t.Error("IDs must be unique")
	}
}

func TestOnboardingDraft_Apply(t *testing.T) {
	target := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	d := OnboardingDraft{
		Step:       3,
		Level:      "intermediate",
		Industry:   "healthcare",
		Goal:       "pass the OET",
		TargetDate: &target,
	}

	u := NewUser("Ana", "ana@example.com")
	d.Apply(u)

	if u.Industry != "healthcare" || u.Level != "intermediate" || u.Goal != "pass the OET" {
		t.Errorf("draft not merged: %+v", u)
	}
	if u.TargetDate == nil || !u.TargetDate.Equal(target) {
		t.Errorf("TargetDate = %v, want %v", u.TargetDate, target)
	}
}
