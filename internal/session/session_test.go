package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fluentpath/fluentpath/internal/profile"
	"github.com/fluentpath/fluentpath/internal/progress"
	"github.com/fluentpath/fluentpath/internal/store"
	"github.com/fluentpath/fluentpath/internal/subscription"
)

// fakeRecords is an in-memory store.RecordRepo.
type fakeRecords struct {
	mu      sync.Mutex
	records map[string]*progress.Record
	puts    int
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{records: map[string]*progress.Record{}}
}

func (f *fakeRecords) Get(ctx context.Context, userID string) (*progress.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

func (f *fakeRecords) Put(ctx context.Context, userID string, rec *progress.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	f.records[userID] = rec.Clone()
	return nil
}

// fakeEvents captures activity log appends.
type fakeEvents struct {
	lessons []string
	modules []string
}

func (f *fakeEvents) AppendLessonCompleted(ctx context.Context, data store.ActivityEventData) error {
	f.lessons = append(f.lessons, data.LessonID)
	return nil
}

func (f *fakeEvents) AppendModuleCompleted(ctx context.Context, data store.ActivityEventData) error {
	f.modules = append(f.modules, data.ModuleID)
	return nil
}

// fakePrompter records upgrade prompts.
type fakePrompter struct {
	features []subscription.Feature
}

func (f *fakePrompter) PromptUpgrade(feature subscription.Feature) {
	f.features = append(f.features, feature)
}

func startedSession(t *testing.T, tier subscription.Tier, opts Options) *Session {
	t.Helper()
	u := profile.NewUser("Ana", "ana@example.com")
	u.Industry = "healthcare"
	u.Tier = tier
	if opts.Records == nil {
		opts.Records = newFakeRecords()
	}
	if opts.QuietPeriod == 0 {
		opts.QuietPeriod = time.Hour // keep the debounce timer out of these tests
	}
	s := New(u, opts)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestStart_AbsentRemoteInitializesFresh(t *testing.T) {
	s := startedSession(t, subscription.TierPremium, Options{})

	if s.Tracker() == nil {
		t.Fatal("tracker not bound")
	}
	if len(s.Tracker().Record().CompletedLessons) != 0 {
		t.Error("fresh record expected")
	}
	if s.Syncing() {
		t.Error("no unsynced changes before the first mutation")
	}
}

func TestStart_LoadsExistingRecordAndBackfills(t *testing.T) {
	records := newFakeRecords()
	u := profile.NewUser("Ana", "ana@example.com")
	u.Industry = "healthcare"
	u.Tier = subscription.TierPremium

	existing := progress.NewRecord()
	for _, id := range []string{"health-foundations-01", "health-foundations-02", "health-foundations-03"} {
		existing.CompletedLessons[id] = true
	}
	records.records[u.ID] = existing

	s := New(u, Options{Records: records, QuietPeriod: time.Hour})
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if !s.Tracker().Record().CompletedModules["health-foundations"] {
		t.Error("backfill did not settle on load")
	}
}

func TestCompleteLesson_MarksDirtyAndLogs(t *testing.T) {
	events := &fakeEvents{}
	s := startedSession(t, subscription.TierPremium, Options{Events: events})

	res, err := s.CompleteLesson(context.Background(), "health-foundations-01")
	if err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	if !res.Changed {
		t.Error("expected change")
	}
	if !s.Syncing() {
		t.Error("mutation must mark unsynced state")
	}
	if len(events.lessons) != 1 || events.lessons[0] != "health-foundations-01" {
		t.Errorf("lesson events = %v", events.lessons)
	}
}

func TestCompleteLesson_RepeatDoesNotRelog(t *testing.T) {
	events := &fakeEvents{}
	s := startedSession(t, subscription.TierPremium, Options{Events: events})

	ctx := context.Background()
	if _, err := s.CompleteLesson(ctx, "health-foundations-01"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CompleteLesson(ctx, "health-foundations-01"); err != nil {
		t.Fatal(err)
	}
	if len(events.lessons) != 1 {
		t.Errorf("lesson events = %d, want 1", len(events.lessons))
	}
}

func TestCompleteLesson_ModuleCompletionLogged(t *testing.T) {
	events := &fakeEvents{}
	s := startedSession(t, subscription.TierPremium, Options{Events: events})

	ctx := context.Background()
	for _, id := range []string{"health-foundations-01", "health-foundations-02", "health-foundations-03"} {
		if _, err := s.CompleteLesson(ctx, id); err != nil {
			t.Fatal(err)
		}
	}
	if len(events.modules) != 1 || events.modules[0] != "health-foundations" {
		t.Errorf("module events = %v", events.modules)
	}
}

func TestCompleteLesson_FreeTierMonthlyLimit(t *testing.T) {
	prompter := &fakePrompter{}
	s := startedSession(t, subscription.TierFree, Options{Upgrades: prompter})
	s.SetClock(func() time.Time {
		return time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	})

	// The free plan allows 10 lessons per month; this month is spent.
	rec := s.Tracker().Record()
	rec.DailyActivity = append(rec.DailyActivity, progress.DayActivity{
		Date: "2026-03-10", LessonsCompleted: 10, TimeSpentMinutes: 120,
	})

	_, err := s.CompleteLesson(context.Background(), "health-foundations-01")
	var denial *subscription.Denial
	if !errors.As(err, &denial) {
		t.Fatalf("err = %v, want *subscription.Denial", err)
	}
	if denial.Feature != subscription.FeatureLessonsPerMonth {
		t.Errorf("denied feature = %q", denial.Feature)
	}
	if len(prompter.features) != 1 {
		t.Errorf("upgrade prompts = %v", prompter.features)
	}
	if rec.CompletedLessons["health-foundations-01"] {
		t.Error("denied completion must not mutate state")
	}
}

func TestCompleteLesson_RepeatAtLimitIsNoOp(t *testing.T) {
	prompter := &fakePrompter{}
	s := startedSession(t, subscription.TierFree, Options{Upgrades: prompter})
	s.SetClock(func() time.Time {
		return time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	})

	ctx := context.Background()
	if _, err := s.CompleteLesson(ctx, "health-foundations-01"); err != nil {
		t.Fatal(err)
	}

	rec := s.Tracker().Record()
	rec.DailyActivity = append(rec.DailyActivity, progress.DayActivity{
		Date: "2026-03-10", LessonsCompleted: 9, TimeSpentMinutes: 90,
	})

	// Spent allowance, but the lesson is already done: no denial.
	res, err := s.CompleteLesson(ctx, "health-foundations-01")
	if err != nil {
		t.Fatalf("re-completion at the limit must be a no-op, got %v", err)
	}
	if res.Changed {
		t.Error("re-completion must not change state")
	}
	if len(prompter.features) != 0 {
		t.Errorf("upgrade prompts = %v, want none", prompter.features)
	}
}

func TestCompleteLesson_LimitIgnoresOtherMonths(t *testing.T) {
	s := startedSession(t, subscription.TierFree, Options{})
	s.SetClock(func() time.Time {
		return time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	})

	rec := s.Tracker().Record()
	rec.DailyActivity = append(rec.DailyActivity, progress.DayActivity{
		Date: "2026-03-10", LessonsCompleted: 10, TimeSpentMinutes: 120,
	})

	if _, err := s.CompleteLesson(context.Background(), "health-foundations-01"); err != nil {
		t.Fatalf("last month's lessons must not count: %v", err)
	}
}

func TestSwitchIndustry_FreeTierDenied(t *testing.T) {
	prompter := &fakePrompter{}
	s := startedSession(t, subscription.TierFree, Options{Upgrades: prompter})

	err := s.SwitchIndustry("technology")
	var denial *subscription.Denial
	if !errors.As(err, &denial) {
		t.Fatalf("err = %v, want *subscription.Denial", err)
	}
	if denial.Feature != subscription.FeatureIndustries {
		t.Errorf("denied feature = %q", denial.Feature)
	}
	if s.User().Industry != "healthcare" {
		t.Error("denied switch must not mutate the current industry")
	}
	if len(prompter.features) != 1 {
		t.Errorf("upgrade prompts = %v", prompter.features)
	}
}

func TestSwitchIndustry_BackToCurrentIsAllowed(t *testing.T) {
	s := startedSession(t, subscription.TierFree, Options{})

	if err := s.SwitchIndustry("healthcare"); err != nil {
		t.Fatalf("switching to the already-used industry must pass the gate: %v", err)
	}
}

func TestSwitchIndustry_PremiumCarriesProgress(t *testing.T) {
	s := startedSession(t, subscription.TierPremium, Options{})

	if _, err := s.CompleteLesson(context.Background(), "health-foundations-01"); err != nil {
		t.Fatal(err)
	}
	if err := s.SwitchIndustry("technology"); err != nil {
		t.Fatalf("SwitchIndustry: %v", err)
	}
	if s.Tracker().Industry().Key != "technology" {
		t.Errorf("industry = %q", s.Tracker().Industry().Key)
	}
	if !s.Tracker().Record().CompletedLessons["health-foundations-01"] {
		t.Error("record is per user and must carry across industries")
	}
}

func TestSwitchIndustry_UnknownKey(t *testing.T) {
	s := startedSession(t, subscription.TierPremium, Options{})
	if err := s.SwitchIndustry("aerospace"); err == nil {
		t.Fatal("expected error for unknown industry")
	}
}

func TestQuickModeUnlocksEverything(t *testing.T) {
	s := startedSession(t, subscription.TierPremium, Options{})

	if s.ModuleUnlocked(2) {
		t.Error("module 2 must start locked")
	}
	s.SetQuickMode(true)
	for i := 0; i < 3; i++ {
		if !s.ModuleUnlocked(i) {
			t.Errorf("module %d locked in quick mode", i)
		}
	}
	if !s.LessonUnlocked(2, 0) {
		t.Error("lesson 0 of module 2 locked in quick mode")
	}
}

func TestWeeklyGoalDisplay(t *testing.T) {
	s := startedSession(t, subscription.TierPremium, Options{})
	s.Tracker().SetWeeklyGoal(5)

	if got := s.WeeklyGoalDisplay(); got != "0/5" {
		t.Errorf("WeeklyGoalDisplay = %q, want 0/5", got)
	}
}

func TestWeeklyGoalDisplay_ResetsAcrossIdleWeekBoundary(t *testing.T) {
	s := startedSession(t, subscription.TierPremium, Options{})
	s.Tracker().SetWeeklyGoal(5)

	// Friday 2026-03-06.
	s.SetClock(func() time.Time {
		return time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
	})
	if _, err := s.CompleteLesson(context.Background(), "health-foundations-01"); err != nil {
		t.Fatal(err)
	}
	if got := s.WeeklyGoalDisplay(); got != "1/5" {
		t.Errorf("WeeklyGoalDisplay = %q, want 1/5", got)
	}

	// Monday 2026-03-09: a week boundary passed with no activity.
	s.SetClock(func() time.Time {
		return time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	})
	if got := s.WeeklyGoalDisplay(); got != "0/5" {
		t.Errorf("WeeklyGoalDisplay = %q, want 0/5 after idle boundary", got)
	}
}

func TestOverallPercent_FreshRecord(t *testing.T) {
	s := startedSession(t, subscription.TierPremium, Options{})
	if got := s.OverallPercent(); got != 0 {
		t.Errorf("OverallPercent = %v, want 0", got)
	}
}

func TestSignOut_FlushesAndStops(t *testing.T) {
	records := newFakeRecords()
	s := startedSession(t, subscription.TierPremium, Options{Records: records})

	if _, err := s.CompleteLesson(context.Background(), "health-foundations-01"); err != nil {
		t.Fatal(err)
	}
	if err := s.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	records.mu.Lock()
	stored := records.records[s.User().ID]
	puts := records.puts
	records.mu.Unlock()

	if puts != 1 {
		t.Errorf("puts = %d, want 1 from flush", puts)
	}
	if stored == nil || !stored.CompletedLessons["health-foundations-01"] {
		t.Error("flush did not persist the mutation")
	}

	// After sign-out no further writes may fire.
	s.engine.MarkDirty(s.Tracker().Record())
	time.Sleep(20 * time.Millisecond)
	records.mu.Lock()
	defer records.mu.Unlock()
	if records.puts != 1 {
		t.Errorf("puts after sign-out = %d, want 1", records.puts)
	}
}
