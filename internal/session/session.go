// Package session owns the live application state for one signed-in
// learner: the user profile, the progress tracker bound to the current
// industry, and the sync engine. The session object is threaded
// through constructors rather than held in a package singleton, so
// ownership stays explicit.
package session

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fluentpath/fluentpath/internal/catalog"
	"github.com/fluentpath/fluentpath/internal/profile"
	"github.com/fluentpath/fluentpath/internal/progress"
	"github.com/fluentpath/fluentpath/internal/progression"
	"github.com/fluentpath/fluentpath/internal/store"
	"github.com/fluentpath/fluentpath/internal/subscription"
	"github.com/fluentpath/fluentpath/internal/syncer"
)

// Options configures a session. Records is required; the collaborators
// are optional and degrade to no-ops when absent.
type Options struct {
	Records      store.RecordRepo
	Events       store.EventRepo
	Achievements progress.AchievementNotifier
	Upgrades     subscription.UpgradePrompter
	QuietPeriod  time.Duration // 0 selects the syncer default
}

// Session is the single owned state object for a signed-in learner.
// It is mutated only from the caller's goroutine; the syncer's timer
// goroutine works on serialized snapshots and never touches session
// state.
type Session struct {
	user    *profile.User
	opts    Options
	engine  *syncer.Engine
	tracker *progress.Tracker

	quickMode      bool
	industriesUsed map[string]bool
	now            func() time.Time
}

// New creates a session for a user. Call Start to load state.
func New(user *profile.User, opts Options) *Session {
	return &Session{
		user:           user,
		opts:           opts,
		engine:         syncer.New(opts.Records, opts.QuietPeriod),
		industriesUsed: map[string]bool{},
		now:            time.Now,
	}
}

// Start establishes the session: it loads the remote progress record
// once (absence means a fresh record, not an error), loads the user's
// industry curriculum, and binds the tracker. Backfill runs as part of
// the bind so the module-completion invariant settles before the
// first read.
func (s *Session) Start(ctx context.Context) error {
	rec, err := s.engine.Load(ctx, s.user.ID)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	ind, err := catalog.Load(s.user.Industry)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	s.tracker = progress.NewTracker(rec, ind, s.opts.Achievements)
	s.tracker.SetClock(s.now)
	s.industriesUsed[ind.Key] = true
	return nil
}

// User returns the session's user profile.
func (s *Session) User() *profile.User {
	return s.user
}

// Tracker returns the progress tracker. Local state is the source of
// truth for all reads.
func (s *Session) Tracker() *progress.Tracker {
	return s.tracker
}

// QuickMode reports whether the unlock-everything override is on.
func (s *Session) QuickMode() bool {
	return s.quickMode
}

// SetQuickMode toggles the explicit review/testing override that
// unlocks all content. It affects display only; completion state is
// always computed from raw data.
func (s *Session) SetQuickMode(on bool) {
	s.quickMode = on
}

// CompleteLesson runs the full mutation path: lesson-limit gate,
// tracker mutation, dirty-mark for the debounced write, and activity
// log append. Gate denials return a typed *subscription.Denial and
// mutate nothing.
func (s *Session) CompleteLesson(ctx context.Context, lessonID string) (progress.Result, error) {
	rec := s.tracker.Record()

	// Re-completions are no-ops and bypass the gate: they consume no
	// lesson from the monthly allowance.
	if !rec.CompletedLessons[lessonID] && !subscription.CanStartLesson(s.user.Tier, s.lessonsThisMonth()) {
		d := &subscription.Denial{Feature: subscription.FeatureLessonsPerMonth, Tier: s.user.Tier}
		if s.opts.Upgrades != nil {
			s.opts.Upgrades.PromptUpgrade(d.Feature)
		}
		return progress.Result{}, d
	}

	res, err := s.tracker.CompleteLesson(lessonID)
	if err != nil {
		return progress.Result{}, err
	}
	if !res.Changed {
		return res, nil
	}

	s.engine.MarkDirty(rec)
	s.appendEvents(ctx, lessonID, res.NewModules)
	return res, nil
}

// appendEvents writes the activity log. Log failures are warned and
// dropped; the progress document is the durability backstop, not the
// event log.
func (s *Session) appendEvents(ctx context.Context, lessonID string, newModules []string) {
	if s.opts.Events == nil {
		return
	}
	err := s.opts.Events.AppendLessonCompleted(ctx, store.ActivityEventData{
		UserID:   s.user.ID,
		LessonID: lessonID,
		ModuleID: catalog.ModuleOfLesson(lessonID),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log lesson event: %v\n", err)
	}
	for _, moduleID := range newModules {
		err := s.opts.Events.AppendModuleCompleted(ctx, store.ActivityEventData{
			UserID:   s.user.ID,
			ModuleID: moduleID,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log module event: %v\n", err)
		}
	}
}

// SwitchIndustry moves the session to another curriculum. The gate
// check runs before anything mutates: on a single-industry plan the
// switch into a new industry is rejected with a typed denial and the
// upgrade prompt collaborator is invoked. Progress carries over: the
// record is per user, not per industry.
func (s *Session) SwitchIndustry(key string) error {
	if !s.industriesUsed[key] {
		if !subscription.CanAccessIndustry(s.user.Tier, len(s.industriesUsed)) {
			d := &subscription.Denial{Feature: subscription.FeatureIndustries, Tier: s.user.Tier}
			if s.opts.Upgrades != nil {
				s.opts.Upgrades.PromptUpgrade(d.Feature)
			}
			return d
		}
	}

	ind, err := catalog.Load(key)
	if err != nil {
		return err
	}

	s.user.Industry = key
	s.industriesUsed[key] = true
	s.tracker = progress.NewTracker(s.tracker.Record(), ind, s.opts.Achievements)
	s.tracker.SetClock(s.now)
	return nil
}

// ModuleUnlocked derives the unlock state of module i in the current
// industry, honoring quick mode.
func (s *Session) ModuleUnlocked(i int) bool {
	return progression.ModuleUnlocked(i, s.tracker.Industry().Modules, s.tracker.Record(), s.quickMode)
}

// LessonUnlocked derives the unlock state of lesson j within module i.
func (s *Session) LessonUnlocked(i, j int) bool {
	modules := s.tracker.Industry().Modules
	if i < 0 || i >= len(modules) {
		return false
	}
	return progression.LessonUnlocked(j, modules[i].Lessons, s.ModuleUnlocked(i), s.tracker.Record())
}

// OverallPercent derives the completion percentage for the current
// industry.
func (s *Session) OverallPercent() float64 {
	return progression.IndustryPercent(s.tracker.Industry(), s.tracker.Record())
}

// WeeklyGoalDisplay renders the weekly counter as "done/goal",
// e.g. "0/5" for a fresh week. The count is derived as of now, so a
// week boundary passing without activity reads as zero.
func (s *Session) WeeklyGoalDisplay() string {
	rec := s.tracker.Record()
	return fmt.Sprintf("%d/%d", rec.WeeklyProgressAsOf(s.now()), rec.WeeklyGoal)
}

// Syncing reports whether unsynced local changes exist, for a
// non-blocking indicator in the UI.
func (s *Session) Syncing() bool {
	return s.engine.Dirty()
}

// SignOut flushes unsaved progress and tears the sync engine down so
// no debounced write can fire with a stale identity. The flush is best
// effort; a failure is returned but sign-out proceeds.
func (s *Session) SignOut(ctx context.Context) error {
	err := s.engine.Flush(ctx)
	s.engine.Stop()
	return err
}

// SetClock overrides the session's time source for tests.
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
	if s.tracker != nil {
		s.tracker.SetClock(now)
	}
}

// lessonsThisMonth counts lessons completed in the current UTC
// calendar month from the daily activity log.
func (s *Session) lessonsThisMonth() int {
	prefix := s.now().UTC().Format("2006-01")
	n := 0
	for _, day := range s.tracker.Record().DailyActivity {
		if strings.HasPrefix(day.Date, prefix) {
			n += day.LessonsCompleted
		}
	}
	return n
}
