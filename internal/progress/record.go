package progress

import (
	"maps"
	"slices"
	"time"
)

// DayActivity is one calendar day's learning activity.
// Dates are UTC calendar days formatted as "2006-01-02"; all day and
// week arithmetic in this package uses UTC to keep streaks stable
// across timezones.
type DayActivity struct {
	Date             string `json:"date"`
	LessonsCompleted int    `json:"lessonsCompleted"`
	TimeSpentMinutes int    `json:"timeSpentMinutes"`
}

// Record is the per-user mutable learning state. It is a plain data
// document: the tracker mutates it, the syncer persists it as JSON.
//
// CompletedModules is derived from CompletedLessons but persisted;
// Backfill re-establishes the invariant on every load and mutation.
type Record struct {
	CompletedLessons   map[string]bool      `json:"completedLessons"`
	CompletedModules   map[string]bool      `json:"completedModules"`
	DailyActivity      []DayActivity        `json:"dailyActivity"`
	StreakDays         int                  `json:"streakDays"`
	WeeklyGoal         int                  `json:"weeklyGoal"`
	WeeklyProgress     int                  `json:"weeklyProgress"`
	WeekStart          string               `json:"weekStart"` // Monday of the week WeeklyProgress counts, "2006-01-02"
	VocabularyMastered int                  `json:"vocabularyMastered"`
	Achievements       map[string]time.Time `json:"achievements"`
	TotalTimeMinutes   int                  `json:"totalTimeMinutes"`
}

// NewRecord returns an empty record with all sets initialized.
func NewRecord() *Record {
	return &Record{
		CompletedLessons: make(map[string]bool),
		CompletedModules: make(map[string]bool),
		Achievements:     make(map[string]time.Time),
	}
}

// Normalize initializes any nil maps on a record loaded from storage.
func (r *Record) Normalize() {
	if r.CompletedLessons == nil {
		r.CompletedLessons = make(map[string]bool)
	}
	if r.CompletedModules == nil {
		r.CompletedModules = make(map[string]bool)
	}
	if r.Achievements == nil {
		r.Achievements = make(map[string]time.Time)
	}
}

// Clone returns a deep copy of the record. The syncer serializes a
// clone so in-flight writes never observe a half-applied mutation.
func (r *Record) Clone() *Record {
	c := *r
	c.CompletedLessons = maps.Clone(r.CompletedLessons)
	c.CompletedModules = maps.Clone(r.CompletedModules)
	c.Achievements = maps.Clone(r.Achievements)
	c.DailyActivity = slices.Clone(r.DailyActivity)
	return &c
}

// WeeklyProgressAsOf returns the weekly counter as seen at now. The
// persisted counter only resets inside a mutation, so a record whose
// counted week has already passed reads as zero.
func (r *Record) WeeklyProgressAsOf(now time.Time) int {
	if r.WeekStart != dateString(weekStart(now)) {
		return 0
	}
	return r.WeeklyProgress
}

// ActivityOn returns the activity entry for a UTC date string,
// or nil if the record has none.
func (r *Record) ActivityOn(date string) *DayActivity {
	for i := range r.DailyActivity {
		if r.DailyActivity[i].Date == date {
			return &r.DailyActivity[i]
		}
	}
	return nil
}
