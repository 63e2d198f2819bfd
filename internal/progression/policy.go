// Package progression computes lock/unlock state for modules and
// lessons. Everything here is a pure function over catalog data and a
// progress record; unlock state is derived on every read and never
// cached, so it can't go stale when the underlying data changes.
package progression

import (
	"github.com/fluentpath/fluentpath/internal/catalog"
	"github.com/fluentpath/fluentpath/internal/progress"
)

// ModuleComplete reports whether every lesson of the module is in the
// record's completed set. Computed from the raw lesson data, never
// from the persisted CompletedModules set or the unlock flag. A module
// with zero lessons is vacuously complete.
func ModuleComplete(m catalog.Module, rec *progress.Record) bool {
	for _, l := range m.Lessons {
		if !rec.CompletedLessons[l.ID] {
			return false
		}
	}
	return true
}

// ModuleUnlocked reports whether module i in the industry's ordered
// module list is unlocked. Module 0 is always unlocked; module i>0
// unlocks when module i-1 is fully completed. Quick mode is an
// explicit bypass that unlocks everything.
func ModuleUnlocked(i int, modules []catalog.Module, rec *progress.Record, quickMode bool) bool {
	if i < 0 || i >= len(modules) {
		return false
	}
	if quickMode || i == 0 {
		return true
	}
	return ModuleComplete(modules[i-1], rec)
}

// LessonUnlocked reports whether lesson j in the module's ordered
// lesson list is unlocked. Lesson 0 follows its module's unlock state;
// lesson j>0 unlocks when lesson j-1 is completed.
func LessonUnlocked(j int, lessons []catalog.Lesson, moduleUnlocked bool, rec *progress.Record) bool {
	if j < 0 || j >= len(lessons) {
		return false
	}
	if !moduleUnlocked {
		return false
	}
	if j == 0 {
		return true
	}
	return rec.CompletedLessons[lessons[j-1].ID]
}

// LessonDisplayedCompleted reports whether a lesson should be shown as
// completed: it must be both unlocked and in the completed set, so a
// lesson whose module re-locked after a data change never shows stale
// completion.
func LessonDisplayedCompleted(j int, lessons []catalog.Lesson, moduleUnlocked bool, rec *progress.Record) bool {
	if j < 0 || j >= len(lessons) {
		return false
	}
	return LessonUnlocked(j, lessons, moduleUnlocked, rec) && rec.CompletedLessons[lessons[j].ID]
}

// ModulePercent returns the module's completion percentage in [0, 100].
// A module with zero lessons reports 100.
func ModulePercent(m catalog.Module, rec *progress.Record) float64 {
	if len(m.Lessons) == 0 {
		return 100
	}
	done := 0
	for _, l := range m.Lessons {
		if rec.CompletedLessons[l.ID] {
			done++
		}
	}
	return float64(done) / float64(len(m.Lessons)) * 100
}

// IndustryPercent returns the overall completion percentage across the
// industry's lessons in [0, 100]. An industry with no lessons reports
// 0, never NaN.
func IndustryPercent(ind catalog.Industry, rec *progress.Record) float64 {
	total := ind.LessonCount()
	if total == 0 {
		return 0
	}
	done := 0
	for _, m := range ind.Modules {
		for _, l := range m.Lessons {
			if rec.CompletedLessons[l.ID] {
				done++
			}
		}
	}
	return float64(done) / float64(total) * 100
}
