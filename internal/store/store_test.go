package store

import (
	"context"
	"testing"

	"github.com/fluentpath/fluentpath/ent"
	"github.com/fluentpath/fluentpath/ent/activityevent"
	"github.com/fluentpath/fluentpath/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRecordRepo_GetAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()

	rec, err := repo.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get (absent): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record when none exists")
	}
}

func TestRecordRepo_PutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	rec := progress.NewRecord()
	rec.CompletedLessons["health-foundations-01"] = true
	rec.StreakDays = 4
	rec.WeeklyGoal = 5
	rec.DailyActivity = append(rec.DailyActivity, progress.DayActivity{
		Date: "2026-03-04", LessonsCompleted: 2, TimeSpentMinutes: 25,
	})

	if err := repo.Put(ctx, "user-1", rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored record")
	}
	if !got.CompletedLessons["health-foundations-01"] {
		t.Error("completed lesson lost in round trip")
	}
	if got.StreakDays != 4 || got.WeeklyGoal != 5 {
		t.Errorf("counters = %d/%d, want 4/5", got.StreakDays, got.WeeklyGoal)
	}
	if len(got.DailyActivity) != 1 || got.DailyActivity[0].TimeSpentMinutes != 25 {
		t.Errorf("daily activity = %+v", got.DailyActivity)
	}
}

func TestRecordRepo_PutOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	rec := progress.NewRecord()
	rec.TotalTimeMinutes = 10
	if err := repo.Put(ctx, "user-1", rec); err != nil {
		t.Fatalf("first put: %v", err)
	}

	rec.TotalTimeMinutes = 30
	if err := repo.Put(ctx, "user-1", rec); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalTimeMinutes != 30 {
		t.Errorf("TotalTimeMinutes = %d, want 30", got.TotalTimeMinutes)
	}

	count, err := s.Client().ProgressDoc.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("documents = %d, want 1 per user", count)
	}
}

func TestRecordRepo_RecordsAreIndependentPerUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.RecordRepo()
	ctx := context.Background()

	a := progress.NewRecord()
	a.StreakDays = 1
	b := progress.NewRecord()
	b.StreakDays = 9

	if err := repo.Put(ctx, "user-a", a); err != nil {
		t.Fatal(err)
	}
	if err := repo.Put(ctx, "user-b", b); err != nil {
		t.Fatal(err)
	}

	gotA, err := repo.Get(ctx, "user-a")
	if err != nil {
		t.Fatal(err)
	}
	if gotA.StreakDays != 1 {
		t.Errorf("user-a StreakDays = %d, want 1", gotA.StreakDays)
	}
}

func TestEventRepo_AppendsWithIncreasingSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLessonCompleted(ctx, ActivityEventData{
		UserID: "user-1", LessonID: "health-foundations-01", ModuleID: "health-foundations",
	})
	if err != nil {
		t.Fatalf("append lesson: %v", err)
	}
	err = repo.AppendModuleCompleted(ctx, ActivityEventData{
		UserID: "user-1", ModuleID: "health-foundations",
	})
	if err != nil {
		t.Fatalf("append module: %v", err)
	}

	events, err := s.Client().ActivityEvent.Query().
		Order(ent.Asc(activityevent.FieldSequence)).
		All(ctx)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Kind != KindLessonCompleted || events[1].Kind != KindModuleCompleted {
		t.Errorf("kinds = %q, %q", events[0].Kind, events[1].Kind)
	}
	if events[1].Sequence <= events[0].Sequence {
		t.Errorf("sequence not increasing: %d then %d", events[0].Sequence, events[1].Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"progress_docs", "activity_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
