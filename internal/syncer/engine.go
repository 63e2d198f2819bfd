// Package syncer keeps a remote copy of the progress record eventually
// consistent with local state. Local state is always the source of
// truth for reads; the remote copy is a durability backstop loaded
// once per session and written behind a trailing-edge debounce.
package syncer

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fluentpath/fluentpath/internal/progress"
)

// DefaultQuietPeriod is the debounce window measured from the most
// recent mutation.
const DefaultQuietPeriod = 2000 * time.Millisecond

// RemoteStore is the remote document store contract. Get returns
// (nil, nil) when no record exists for the user; absence is not an
// error.
type RemoteStore interface {
	Get(ctx context.Context, userID string) (*progress.Record, error)
	Put(ctx context.Context, userID string, rec *progress.Record) error
}

// Engine debounces remote writes of one user's progress record.
//
// Mutations are reported with MarkDirty, which snapshots the record on
// the caller's goroutine and (re)arms the quiet-period timer. When the
// timer fires the snapshot is written; at most one write is in flight
// at a time, and a timer firing mid-write defers the write until the
// in-flight one settles. A failed write leaves the engine dirty and is
// retried on the next mutation-triggered cycle only; there is no
// background retry loop.
type Engine struct {
	remote RemoteStore
	quiet  time.Duration

	mu       sync.Mutex
	settled  *sync.Cond // signaled each time an in-flight write settles
	userID   string
	pending  *progress.Record // latest snapshot awaiting write
	timer    *time.Timer
	dirty    bool
	inflight bool
	deferred bool
	stopped  bool
}

// New creates an engine over a remote store. quiet <= 0 selects the
// default 2-second window.
func New(remote RemoteStore, quiet time.Duration) *Engine {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	e := &Engine{remote: remote, quiet: quiet}
	e.settled = sync.NewCond(&e.mu)
	return e
}

// Load fetches the user's remote record once at session start. When no
// remote record exists a fresh one is returned; nothing is written
// until the first mutation.
func (e *Engine) Load(ctx context.Context, userID string) (*progress.Record, error) {
	rec, err := e.remote.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load progress for %s: %w", userID, err)
	}

	e.mu.Lock()
	e.userID = userID
	e.stopped = false
	e.mu.Unlock()

	if rec == nil {
		return progress.NewRecord(), nil
	}
	rec.Normalize()
	return rec, nil
}

// MarkDirty records that the local record changed. The snapshot is
// taken here, on the mutating goroutine, so the timer goroutine never
// races with further mutations. Each call restarts the quiet-period
// timer; N mutations within the window coalesce into one write.
func (e *Engine) MarkDirty(rec *progress.Record) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped || e.userID == "" {
		return
	}

	e.pending = rec.Clone()
	e.dirty = true

	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.quiet, e.timerFired)
}

// timerFired runs on the timer goroutine when the quiet period elapses.
func (e *Engine) timerFired() {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	if e.inflight {
		// Defer until the in-flight write settles.
		e.deferred = true
		e.mu.Unlock()
		return
	}
	snap, userID := e.takeSnapshotLocked()
	e.mu.Unlock()

	if snap != nil {
		e.write(userID, snap)
	}
}

// takeSnapshotLocked claims the pending snapshot for writing and marks
// the engine in flight. Caller holds mu. Returns nil if there is
// nothing to write.
func (e *Engine) takeSnapshotLocked() (*progress.Record, string) {
	if !e.dirty || e.pending == nil {
		return nil, ""
	}
	e.dirty = false
	e.inflight = true
	return e.pending, e.userID
}

// write pushes one snapshot, then settles: on failure the engine is
// re-marked dirty so the next mutation cycle retries; a deferred timer
// fire re-runs the write with the latest snapshot.
func (e *Engine) write(userID string, snap *progress.Record) {
	err := e.remote.Put(context.Background(), userID, snap)

	e.mu.Lock()
	e.inflight = false
	e.settled.Broadcast()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: progress sync failed for %s: %v\n", userID, err)
		e.dirty = true
	}
	redo := e.deferred && !e.stopped
	e.deferred = false

	var nextSnap *progress.Record
	var nextUser string
	if redo {
		nextSnap, nextUser = e.takeSnapshotLocked()
	}
	e.mu.Unlock()

	if nextSnap != nil {
		e.write(nextUser, nextSnap)
	}
}

// Flush synchronously writes any unsaved snapshot. It waits for an
// in-flight write to settle first, so the newest snapshot is never
// skipped behind an older one. Used at session teardown; a failure is
// returned to the caller but the engine stays usable.
func (e *Engine) Flush(ctx context.Context) error {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	for e.inflight {
		e.settled.Wait()
	}
	snap, userID := e.takeSnapshotLocked()
	e.mu.Unlock()

	if snap == nil {
		return nil
	}

	err := e.remote.Put(ctx, userID, snap)

	e.mu.Lock()
	e.inflight = false
	e.settled.Broadcast()
	if err != nil {
		e.dirty = true
	}
	e.mu.Unlock()

	if err != nil {
		return fmt.Errorf("flush progress for %s: %w", userID, err)
	}
	return nil
}

// Stop cancels any pending write and forgets the session identity. A
// debounced write must never fire with a torn-down identity, so this
// is called on sign-out after Flush.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopped = true
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.userID = ""
	e.pending = nil
	e.dirty = false
	e.deferred = false
}

// Dirty reports whether local changes are awaiting a write. UI layers
// use this as the non-blocking "unsynced" indicator.
func (e *Engine) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty || e.inflight
}
