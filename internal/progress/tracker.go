package progress

import (
	"errors"
	"time"

	"github.com/fluentpath/fluentpath/internal/catalog"
)

// ErrUnknownLesson is returned when a completion is reported for a
// lesson ID that does not exist in the catalog. No state is mutated.
var ErrUnknownLesson = errors.New("unknown lesson")

// AchievementNotifier receives module-completion signals. Whether a
// completion unlocks a badge is the collaborator's decision; the
// tracker only reports the fact.
type AchievementNotifier interface {
	ModuleCompleted(moduleID string)
}

// Result reports what a mutation actually changed. The syncer keys
// its dirty flag off Changed so repeated completions of the same
// lesson never trigger redundant writes.
type Result struct {
	Changed    bool
	NewModules []string // modules newly completed by this mutation, in curriculum order
}

// Tracker owns a Record and applies all mutations to it. It is bound
// to one industry curriculum at a time and is not safe for concurrent
// use; the application mutates it from a single goroutine (the syncer
// only ever reads a Clone).
type Tracker struct {
	rec      *Record
	industry catalog.Industry
	notifier AchievementNotifier
	now      func() time.Time
}

// NewTracker binds a tracker to a record and an industry curriculum.
// It runs Backfill immediately so a record loaded from storage settles
// to the module-completion invariant before the first read. notifier
// may be nil.
func NewTracker(rec *Record, ind catalog.Industry, notifier AchievementNotifier) *Tracker {
	rec.Normalize()
	t := &Tracker{
		rec:      rec,
		industry: ind,
		notifier: notifier,
		now:      time.Now,
	}
	t.Backfill()
	return t
}

// Record returns the tracked record. Local state is always the source
// of truth for reads.
func (t *Tracker) Record() *Record {
	return t.rec
}

// Industry returns the curriculum the tracker is bound to.
func (t *Tracker) Industry() catalog.Industry {
	return t.industry
}

// SetClock overrides the tracker's time source. Tests use this to pin
// day and week boundaries.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// CompleteLesson records that a lesson was finished. The call is
// idempotent: a second completion of the same lesson changes nothing
// and does not double-count activity, streak, or weekly progress.
func (t *Tracker) CompleteLesson(lessonID string) (Result, error) {
	lesson, err := catalog.GetLesson(lessonID)
	if err != nil {
		return Result{}, ErrUnknownLesson
	}

	if t.rec.CompletedLessons[lessonID] {
		return Result{}, nil
	}
	t.rec.CompletedLessons[lessonID] = true

	newModules := t.Backfill()
	for _, id := range newModules {
		if t.notifier != nil {
			t.notifier.ModuleCompleted(id)
		}
	}

	t.recordActivity(lesson.DurationMinutes)

	return Result{Changed: true, NewModules: newModules}, nil
}

// Backfill recomputes CompletedModules membership from the raw
// CompletedLessons data for every module in the bound industry. It is
// idempotent, add-only, and safe to run on every load. Returns the
// module IDs newly added, in curriculum order.
func (t *Tracker) Backfill() []string {
	var added []string
	for _, m := range t.industry.Modules {
		if t.rec.CompletedModules[m.ID] {
			continue
		}
		if moduleCovered(m, t.rec.CompletedLessons) {
			t.rec.CompletedModules[m.ID] = true
			added = append(added, m.ID)
		}
	}
	return added
}

// moduleCovered reports whether every lesson of the module is in the
// completed set. A module with zero lessons is vacuously covered.
func moduleCovered(m catalog.Module, completed map[string]bool) bool {
	for _, l := range m.Lessons {
		if !completed[l.ID] {
			return false
		}
	}
	return true
}

// recordActivity updates the daily activity log, streak, weekly
// counter, and time accumulator for one fresh lesson completion.
func (t *Tracker) recordActivity(minutes int) {
	now := t.now().UTC()
	today := dateString(now)
	yesterday := dateString(now.AddDate(0, 0, -1))

	// Streak is judged before today's entry is merged in: a day counts
	// once it has a nonzero activity entry.
	if t.rec.ActivityOn(today) == nil {
		if t.rec.ActivityOn(yesterday) != nil {
			t.rec.StreakDays++
		} else {
			t.rec.StreakDays = 1
		}
	}

	if day := t.rec.ActivityOn(today); day != nil {
		day.LessonsCompleted++
		day.TimeSpentMinutes += minutes
	} else {
		t.rec.DailyActivity = append(t.rec.DailyActivity, DayActivity{
			Date:             today,
			LessonsCompleted: 1,
			TimeSpentMinutes: minutes,
		})
	}

	week := dateString(weekStart(now))
	if t.rec.WeekStart != week {
		t.rec.WeekStart = week
		t.rec.WeeklyProgress = 0
	}
	t.rec.WeeklyProgress++

	t.rec.TotalTimeMinutes += minutes
}

// AddVocabularyMastered increments the mastered-vocabulary counter.
// Returns true if the record changed.
func (t *Tracker) AddVocabularyMastered(n int) bool {
	if n <= 0 {
		return false
	}
	t.rec.VocabularyMastered += n
	return true
}

// SetWeeklyGoal sets the weekly lesson goal. Returns true if the
// record changed.
func (t *Tracker) SetWeeklyGoal(n int) bool {
	if n < 0 || n == t.rec.WeeklyGoal {
		return false
	}
	t.rec.WeeklyGoal = n
	return true
}

// UnlockAchievement records an achievement with an unlock timestamp.
// Idempotent; returns true only on first unlock.
func (t *Tracker) UnlockAchievement(id string) bool {
	if _, ok := t.rec.Achievements[id]; ok {
		return false
	}
	t.rec.Achievements[id] = t.now().UTC()
	return true
}

// dateString formats a time as a UTC calendar-day key.
func dateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// weekStart returns the Monday 00:00 UTC of t's ISO week.
func weekStart(t time.Time) time.Time {
	t = t.UTC().Truncate(24 * time.Hour)
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday belongs to the week that started the previous Monday
	}
	return t.AddDate(0, 0, 1-wd)
}
