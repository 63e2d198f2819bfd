package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/fluentpath/fluentpath/internal/subscription"
)

// Preferences is the user's settings bag.
type Preferences struct {
	Theme                string `json:"theme"`
	SoundEnabled         bool   `json:"soundEnabled"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

// DefaultPreferences returns the settings applied at signup.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:                "system",
		SoundEnabled:         true,
		NotificationsEnabled: true,
	}
}

// User is the learner's identity and profile. It is owned by the
// session: created at signup, updated by profile edits.
type User struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"displayName"`
	Email       string            `json:"email"`
	Industry    string            `json:"industry"`
	Level       string            `json:"level"`
	Goal        string            `json:"goal"`
	TargetDate  *time.Time        `json:"targetDate,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	Tier        subscription.Tier `json:"tier"`
	Preferences Preferences       `json:"preferences"`
}

// NewUser creates a user on the free tier with default preferences.
func NewUser(displayName, email string) *User {
	return &User{
		ID:          uuid.NewString(),
		DisplayName: displayName,
		Email:       email,
		CreatedAt:   time.Now().UTC(),
		Tier:        subscription.TierFree,
		Preferences: DefaultPreferences(),
	}
}

// OnboardingDraft is the transient state accumulated during the
// onboarding flow. It is merged into the user on completion and
// discarded after.
type OnboardingDraft struct {
	Step       int
	Level      string
	Industry   string
	Goal       string
	TargetDate *time.Time
}

// Apply merges the draft into the user. The caller loads the chosen
// industry's catalog afterwards; the draft itself is done with.
func (d *OnboardingDraft) Apply(u *User) {
	u.Level = d.Level
	u.Industry = d.Industry
	u.Goal = d.Goal
	u.TargetDate = d.TargetDate
}
