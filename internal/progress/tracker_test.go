package progress

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/fluentpath/fluentpath/internal/catalog"
)

func healthcareTracker(t *testing.T, notifier AchievementNotifier) *Tracker {
	t.Helper()
	ind, err := catalog.Load("healthcare")
	if err != nil {
		t.Fatal(err)
	}
	return NewTracker(NewRecord(), ind, notifier)
}

type captureNotifier struct {
	modules []string
}

func (c *captureNotifier) ModuleCompleted(moduleID string) {
	c.modules = append(c.modules, moduleID)
}

func TestCompleteLesson(t *testing.T) {
	tr := healthcareTracker(t, nil)

	res, err := tr.CompleteLesson("health-foundations-01")
	if err != nil {
		t.Fatalf("CompleteLesson error: %v", err)
	}
	if !res.Changed {
		t.Error("expected Changed = true on first completion")
	}
	if !tr.Record().CompletedLessons["health-foundations-01"] {
		t.Error("lesson not in CompletedLessons")
	}
	if tr.Record().TotalTimeMinutes != 10 {
		t.Errorf("TotalTimeMinutes = %d, want 10", tr.Record().TotalTimeMinutes)
	}
}

func TestCompleteLesson_Idempotent(t *testing.T) {
	tr := healthcareTracker(t, nil)

	if _, err := tr.CompleteLesson("health-foundations-01"); err != nil {
		t.Fatal(err)
	}
	once := tr.Record().Clone()

	res, err := tr.CompleteLesson("health-foundations-01")
	if err != nil {
		t.Fatal(err)
	}
	if res.Changed {
		t.Error("expected Changed = false on repeat completion")
	}
	if !reflect.DeepEqual(once, tr.Record()) {
		t.Error("repeat completion mutated state")
	}
}

func TestCompleteLesson_UnknownLesson(t *testing.T) {
	tr := healthcareTracker(t, nil)

	_, err := tr.CompleteLesson("no-such-lesson")
	if !errors.Is(err, ErrUnknownLesson) {
		t.Fatalf("err = %v, want ErrUnknownLesson", err)
	}
	if len(tr.Record().CompletedLessons) != 0 {
		t.Error("unknown lesson mutated state")
	}
}

func TestBackfill_ModuleCompletion(t *testing.T) {
	notifier := &captureNotifier{}
	tr := healthcareTracker(t, notifier)

	for _, id := range []string{"health-foundations-01", "health-foundations-02"} {
		if _, err := tr.CompleteLesson(id); err != nil {
			t.Fatal(err)
		}
	}
	if tr.Record().CompletedModules["health-foundations"] {
		t.Error("module completed before all lessons done")
	}

	res, err := tr.CompleteLesson("health-foundations-03")
	if err != nil {
		t.Fatal(err)
	}
	if !tr.Record().CompletedModules["health-foundations"] {
		t.Error("module not completed after final lesson")
	}
	if !reflect.DeepEqual(res.NewModules, []string{"health-foundations"}) {
		t.Errorf("NewModules = %v", res.NewModules)
	}
	if !reflect.DeepEqual(notifier.modules, []string{"health-foundations"}) {
		t.Errorf("notifier received %v", notifier.modules)
	}
}

func TestBackfill_OnLoad(t *testing.T) {
	ind, err := catalog.Load("healthcare")
	if err != nil {
		t.Fatal(err)
	}

	// A record persisted before the module-completion invariant settled.
	rec := NewRecord()
	for _, l := range ind.Modules[0].Lessons {
		rec.CompletedLessons[l.ID] = true
	}

	tr := NewTracker(rec, ind, nil)
	if !tr.Record().CompletedModules[ind.Modules[0].ID] {
		t.Error("Backfill on load did not settle module completion")
	}

	// Running it again is a no-op.
	if added := tr.Backfill(); added != nil {
		t.Errorf("second Backfill added %v", added)
	}
}

func TestBackfill_ZeroLessonModule(t *testing.T) {
	ind := catalog.Industry{
		Key:  "synthetic",
		Name: "Synthetic",
		Modules: []catalog.Module{
			{ID: "empty-module"},
		},
	}
	tr := NewTracker(NewRecord(), ind, nil)
	if !tr.Record().CompletedModules["empty-module"] {
		t.Error("zero-lesson module should be vacuously complete")
	}
}

func TestMonotonicity(t *testing.T) {
	tr := healthcareTracker(t, nil)

	lessons := []string{
		"health-foundations-01", "health-foundations-02", "health-foundations-03",
		"health-patient-care-01", "health-patient-care-02", "health-patient-care-03",
	}
	prevLessons, prevModules := 0, 0
	for _, id := range lessons {
		if _, err := tr.CompleteLesson(id); err != nil {
			t.Fatal(err)
		}
		if len(tr.Record().CompletedLessons) < prevLessons {
			t.Fatal("CompletedLessons shrank")
		}
		if len(tr.Record().CompletedModules) < prevModules {
			t.Fatal("CompletedModules shrank")
		}
		prevLessons = len(tr.Record().CompletedLessons)
		prevModules = len(tr.Record().CompletedModules)
	}
}

func TestDailyActivity_MergesSameDay(t *testing.T) {
	tr := healthcareTracker(t, nil)
	tr.SetClock(func() time.Time {
		return time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	})

	mustComplete(t, tr, "health-foundations-01")
	mustComplete(t, tr, "health-foundations-02")

	if len(tr.Record().DailyActivity) != 1 {
		t.Fatalf("DailyActivity entries = %d, want 1", len(tr.Record().DailyActivity))
	}
	day := tr.Record().DailyActivity[0]
	if day.Date != "2026-03-04" {
		t.Errorf("Date = %q", day.Date)
	}
	if day.LessonsCompleted != 2 {
		t.Errorf("LessonsCompleted = %d, want 2", day.LessonsCompleted)
	}
	if day.TimeSpentMinutes != 25 {
		t.Errorf("TimeSpentMinutes = %d, want 25", day.TimeSpentMinutes)
	}
}

func TestStreak_ConsecutiveDays(t *testing.T) {
	tr := healthcareTracker(t, nil)
	day := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	lessons := []string{"health-foundations-01", "health-foundations-02", "health-foundations-03"}
	for i, id := range lessons {
		d := day.AddDate(0, 0, i)
		tr.SetClock(func() time.Time { return d })
		mustComplete(t, tr, id)
	}

	if tr.Record().StreakDays != 3 {
		t.Errorf("StreakDays = %d, want 3", tr.Record().StreakDays)
	}
}

func TestStreak_ResetsAfterMissedDay(t *testing.T) {
	tr := healthcareTracker(t, nil)
	day := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	tr.SetClock(func() time.Time { return day })
	mustComplete(t, tr, "health-foundations-01")
	tr.SetClock(func() time.Time { return day.AddDate(0, 0, 1) })
	mustComplete(t, tr, "health-foundations-02")

	// Skip a day.
	tr.SetClock(func() time.Time { return day.AddDate(0, 0, 3) })
	mustComplete(t, tr, "health-foundations-03")

	if tr.Record().StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", tr.Record().StreakDays)
	}
}

func TestStreak_SameDayDoesNotDoubleCount(t *testing.T) {
	tr := healthcareTracker(t, nil)
	tr.SetClock(func() time.Time {
		return time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	})

	mustComplete(t, tr, "health-foundations-01")
	mustComplete(t, tr, "health-foundations-02")

	if tr.Record().StreakDays != 1 {
		t.Errorf("StreakDays = %d, want 1", tr.Record().StreakDays)
	}
}

func TestWeeklyProgress_ResetsOnWeekBoundary(t *testing.T) {
	tr := healthcareTracker(t, nil)

	// Friday 2026-03-06.
	tr.SetClock(func() time.Time {
		return time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
	})
	mustComplete(t, tr, "health-foundations-01")
	mustComplete(t, tr, "health-foundations-02")
	if tr.Record().WeeklyProgress != 2 {
		t.Fatalf("WeeklyProgress = %d, want 2", tr.Record().WeeklyProgress)
	}

	// Monday 2026-03-09, new ISO week.
	tr.SetClock(func() time.Time {
		return time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	})
	mustComplete(t, tr, "health-foundations-03")
	if tr.Record().WeeklyProgress != 1 {
		t.Errorf("WeeklyProgress = %d, want 1 after week reset", tr.Record().WeeklyProgress)
	}
	if tr.Record().WeekStart != "2026-03-09" {
		t.Errorf("WeekStart = %q, want 2026-03-09", tr.Record().WeekStart)
	}
}

func TestWeeklyProgressAsOf_StaleWeekReadsZero(t *testing.T) {
	tr := healthcareTracker(t, nil)

	// Friday 2026-03-06.
	tr.SetClock(func() time.Time {
		return time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
	})
	mustComplete(t, tr, "health-foundations-01")

	rec := tr.Record()
	sameWeek := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC) // Sunday, same ISO week
	if got := rec.WeeklyProgressAsOf(sameWeek); got != 1 {
		t.Errorf("WeeklyProgressAsOf(same week) = %d, want 1", got)
	}

	// No mutation crosses the boundary; the read still resets.
	nextWeek := time.Date(2026, 3, 9, 0, 30, 0, 0, time.UTC) // Monday
	if got := rec.WeeklyProgressAsOf(nextWeek); got != 0 {
		t.Errorf("WeeklyProgressAsOf(next week) = %d, want 0", got)
	}
}

func TestUnlockAchievement_Idempotent(t *testing.T) {
	tr := healthcareTracker(t, nil)
	tr.SetClock(func() time.Time {
		return time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	})

	if !tr.UnlockAchievement("first-lesson") {
		t.Error("first unlock should report change")
	}
	if tr.UnlockAchievement("first-lesson") {
		t.Error("second unlock should be a no-op")
	}
	if len(tr.Record().Achievements) != 1 {
		t.Errorf("Achievements = %d entries, want 1", len(tr.Record().Achievements))
	}
}

func TestAddVocabularyMastered(t *testing.T) {
	tr := healthcareTracker(t, nil)

	if !tr.AddVocabularyMastered(5) {
		t.Error("expected change")
	}
	if tr.AddVocabularyMastered(0) {
		t.Error("zero increment should not report change")
	}
	if got := tr.Record().VocabularyMastered; got != 5 {
		t.Errorf("VocabularyMastered = %d, want 5", got)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), "2026-03-02"},  // Monday
		{time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC), "2026-03-02"}, // Wednesday
		{time.Date(2026, 3, 8, 1, 0, 0, 0, time.UTC), "2026-03-02"},  // Sunday
		{time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), "2026-03-09"},  // next Monday
	}

	for _, tt := range tests {
		if got := dateString(weekStart(tt.in)); got != tt.want {
			t.Errorf("weekStart(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func mustComplete(t *testing.T, tr *Tracker, lessonID string) {
	t.Helper()
	res, err := tr.CompleteLesson(lessonID)
	if err != nil {
		t.Fatalf("CompleteLesson(%q): %v", lessonID, err)
	}
	if !res.Changed {
		t.Fatalf("CompleteLesson(%q) reported no change", lessonID)
	}
}
