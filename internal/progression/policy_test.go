package progression

import (
	"testing"

	"github.com/fluentpath/fluentpath/internal/catalog"
	"github.com/fluentpath/fluentpath/internal/progress"
)

func testIndustry() catalog.Industry {
	return catalog.Industry{
		Key:  "test",
		Name: "Test",
		Modules: []catalog.Module{
			{
				ID: "m0",
				Lessons: []catalog.Lesson{
					{ID: "m0-l0"}, {ID: "m0-l1"},
				},
			},
			{
				ID: "m1",
				Lessons: []catalog.Lesson{
					{ID: "m1-l0"}, {ID: "m1-l1"},
				},
			},
			{
				ID: "m2",
				Lessons: []catalog.Lesson{
					{ID: "m2-l0"},
				},
			},
		},
	}
}

func recordWith(lessons ...string) *progress.Record {
	rec := progress.NewRecord()
	for _, id := range lessons {
		rec.CompletedLessons[id] = true
	}
	return rec
}

func TestModuleUnlocked_FirstAlwaysUnlocked(t *testing.T) {
	ind := testIndustry()
	rec := progress.NewRecord()

	if !ModuleUnlocked(0, ind.Modules, rec, false) {
		t.Error("module 0 must always be unlocked")
	}
	if ModuleUnlocked(1, ind.Modules, rec, false) {
		t.Error("module 1 must be locked with no progress")
	}
}

func TestModuleUnlocked_RequiresFullPredecessor(t *testing.T) {
	ind := testIndustry()

	partial := recordWith("m0-l0")
	if ModuleUnlocked(1, ind.Modules, partial, false) {
		t.Error("module 1 unlocked with predecessor only partially complete")
	}

	full := recordWith("m0-l0", "m0-l1")
	if !ModuleUnlocked(1, ind.Modules, full, false) {
		t.Error("module 1 locked with predecessor fully complete")
	}
	if ModuleUnlocked(2, ind.Modules, full, false) {
		t.Error("module 2 unlocked without module 1 complete")
	}
}

func TestModuleUnlocked_QuickMode(t *testing.T) {
	ind := testIndustry()
	rec := progress.NewRecord()

	for i := range ind.Modules {
		if !ModuleUnlocked(i, ind.Modules, rec, true) {
			t.Errorf("module %d locked in quick mode", i)
		}
	}
}

func TestModuleUnlocked_OutOfRange(t *testing.T) {
	ind := testIndustry()
	rec := progress.NewRecord()

	if ModuleUnlocked(-1, ind.Modules, rec, true) {
		t.Error("negative index must be locked")
	}
	if ModuleUnlocked(len(ind.Modules), ind.Modules, rec, true) {
		t.Error("out-of-range index must be locked")
	}
}

func TestLessonUnlocked(t *testing.T) {
	lessons := testIndustry().Modules[0].Lessons

	tests := []struct {
		name           string
		j              int
		moduleUnlocked bool
		completed      []string
		want           bool
	}{
		{"first lesson, module unlocked", 0, true, nil, true},
		{"first lesson, module locked", 0, false, nil, false},
		{"second lesson, predecessor incomplete", 1, true, nil, false},
		{"second lesson, predecessor complete", 1, true, []string{"m0-l0"}, true},
		{"second lesson, module locked", 1, false, []string{"m0-l0"}, false},
		{"out of range", 2, true, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recordWith(tt.completed...)
			if got := LessonUnlocked(tt.j, lessons, tt.moduleUnlocked, rec); got != tt.want {
				t.Errorf("LessonUnlocked(%d) = %v, want %v", tt.j, got, tt.want)
			}
		})
	}
}

func TestLessonDisplayedCompleted(t *testing.T) {
	lessons := testIndustry().Modules[0].Lessons
	rec := recordWith("m0-l0")

	if !LessonDisplayedCompleted(0, lessons, true, rec) {
		t.Error("unlocked completed lesson should display as completed")
	}
	// Same data, but the module re-locked: stale completion must not show.
	if LessonDisplayedCompleted(0, lessons, false, rec) {
		t.Error("locked lesson must not display as completed")
	}
	if LessonDisplayedCompleted(1, lessons, true, rec) {
		t.Error("uncompleted lesson must not display as completed")
	}
}

func TestModuleComplete_IgnoresPersistedSet(t *testing.T) {
	ind := testIndustry()
	rec := progress.NewRecord()
	// A corrupt record claims module completion without the lesson data.
	rec.CompletedModules["m0"] = true

	if ModuleComplete(ind.Modules[0], rec) {
		t.Error("completion must be computed from raw lesson data")
	}
	if ModuleUnlocked(1, ind.Modules, rec, false) {
		t.Error("unlock must not trust the persisted module set")
	}
}

func TestModuleComplete_ZeroLessons(t *testing.T) {
	m := catalog.Module{ID: "empty"}
	if !ModuleComplete(m, progress.NewRecord()) {
		t.Error("zero-lesson module must be vacuously complete")
	}
	if got := ModulePercent(m, progress.NewRecord()); got != 100 {
		t.Errorf("ModulePercent = %v, want 100", got)
	}
}

func TestIndustryPercent(t *testing.T) {
	ind := testIndustry() // 5 lessons total

	tests := []struct {
		name      string
		completed []string
		want      float64
	}{
		{"none", nil, 0},
		{"two of five", []string{"m0-l0", "m0-l1"}, 40},
		{"all", []string{"m0-l0", "m0-l1", "m1-l0", "m1-l1", "m2-l0"}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndustryPercent(ind, recordWith(tt.completed...)); got != tt.want {
				t.Errorf("IndustryPercent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndustryPercent_NoModules(t *testing.T) {
	got := IndustryPercent(catalog.Industry{Key: "empty"}, progress.NewRecord())
	if got != 0 {
		t.Errorf("IndustryPercent = %v, want 0 for empty industry", got)
	}
}
