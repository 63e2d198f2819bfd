package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/fluentpath/fluentpath/ent"
)

// Activity event kinds.
const (
	KindLessonCompleted = "lesson-completed"
	KindModuleCompleted = "module-completed"
)

// ActivityEventData captures one learning-activity event.
type ActivityEventData struct {
	UserID   string
	LessonID string
	ModuleID string
}

// EventRepo provides append access to the activity log. The log is an
// audit supplement; the progress document remains the durability
// backstop.
type EventRepo interface {
	// AppendLessonCompleted records a lesson completion.
	AppendLessonCompleted(ctx context.Context, data ActivityEventData) error

	// AppendModuleCompleted records a module completion.
	AppendModuleCompleted(ctx context.Context, data ActivityEventData) error
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLessonCompleted(ctx context.Context, data ActivityEventData) error {
	return r.append(ctx, KindLessonCompleted, data)
}

func (r *eventRepo) AppendModuleCompleted(ctx context.Context, data ActivityEventData) error {
	return r.append(ctx, KindModuleCompleted, data)
}

func (r *eventRepo) append(ctx context.Context, kind string, data ActivityEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetKind(kind).
		SetLessonID(data.LessonID).
		SetModuleID(data.ModuleID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

// sequenceCounter manages the global monotonic sequence number shared
// across all event types, assigning a single increasing sequence to
// every event so the log has one total order.
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
