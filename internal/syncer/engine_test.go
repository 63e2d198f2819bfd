package syncer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentpath/fluentpath/internal/progress"
)

// fakeRemote is an in-memory RemoteStore that counts calls and can be
// made to fail or block.
type fakeRemote struct {
	mu            sync.Mutex
	records       map[string]*progress.Record
	puts          int
	gets          int
	failPuts      bool
	blockPut      chan struct{} // when non-nil, Put waits on this before returning
	concurrent    int
	maxConcurrent int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{records: map[string]*progress.Record{}}
}

func (f *fakeRemote) Get(ctx context.Context, userID string) (*progress.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	rec, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

func (f *fakeRemote) Put(ctx context.Context, userID string, rec *progress.Record) error {
	f.mu.Lock()
	f.concurrent++
	if f.concurrent > f.maxConcurrent {
		f.maxConcurrent = f.concurrent
	}
	block := f.blockPut
	fail := f.failPuts
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.concurrent--
	f.puts++
	if fail {
		return errors.New("remote unavailable")
	}
	f.records[userID] = rec.Clone()
	return nil
}

func (f *fakeRemote) putCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts
}

func (f *fakeRemote) stored(userID string) *progress.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records[userID]
}

func TestLoad_AbsentInitializesFresh(t *testing.T) {
	remote := newFakeRemote()
	e := New(remote, 10*time.Millisecond)

	rec, err := e.Load(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Empty(t, rec.CompletedLessons)

	// Absence must not trigger a write.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, remote.putCount())
}

func TestLoad_ReturnsExistingRecord(t *testing.T) {
	remote := newFakeRemote()
	existing := progress.NewRecord()
	existing.CompletedLessons["health-foundations-01"] = true
	remote.records["user-1"] = existing

	e := New(remote, 10*time.Millisecond)
	rec, err := e.Load(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, rec.CompletedLessons["health-foundations-01"])
}

func TestMarkDirty_DebounceCoalesces(t *testing.T) {
	remote := newFakeRemote()
	e := New(remote, 40*time.Millisecond)

	rec, err := e.Load(context.Background(), "user-1")
	require.NoError(t, err)

	// Five mutations inside the quiet window produce one write.
	for i := 0; i < 5; i++ {
		rec.TotalTimeMinutes++
		e.MarkDirty(rec)
		time.Sleep(5 * time.Millisecond)
	}

	// The window is timed from the last mutation: shortly after the
	// burst there must still be no write.
	assert.Equal(t, 0, remote.putCount())

	require.Eventually(t, func() bool {
		return remote.putCount() == 1
	}, time.Second, 5*time.Millisecond)

	// And it stays at one.
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 1, remote.putCount())
	assert.Equal(t, 5, remote.stored("user-1").TotalTimeMinutes)
}

func TestMarkDirty_BeforeLoadIsIgnored(t *testing.T) {
	remote := newFakeRemote()
	e := New(remote, 10*time.Millisecond)

	e.MarkDirty(progress.NewRecord())
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 0, remote.putCount())
}

func TestWriteFailure_RetriesOnNextCycleOnly(t *testing.T) {
	remote := newFakeRemote()
	remote.failPuts = true
	e := New(remote, 10*time.Millisecond)

	rec, err := e.Load(context.Background(), "user-1")
	require.NoError(t, err)

	rec.TotalTimeMinutes = 1
	e.MarkDirty(rec)

	require.Eventually(t, func() bool {
		return remote.putCount() == 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, e.Dirty(), "failed write must leave the engine dirty")

	// No background retry loop: the count must not climb on its own.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, remote.putCount())

	// The next mutation-triggered cycle retries and succeeds.
	remote.mu.Lock()
	remote.failPuts = false
	remote.mu.Unlock()

	rec.TotalTimeMinutes = 2
	e.MarkDirty(rec)
	require.Eventually(t, func() bool {
		return remote.putCount() == 2
	}, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return !e.Dirty()
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, remote.stored("user-1").TotalTimeMinutes)
}

func TestSingleInflightWrite(t *testing.T) {
	remote := newFakeRemote()
	release := make(chan struct{})
	remote.blockPut = release

	e := New(remote, 10*time.Millisecond)
	rec, err := e.Load(context.Background(), "user-1")
	require.NoError(t, err)

	rec.TotalTimeMinutes = 1
	e.MarkDirty(rec)

	// Wait for the first write to start and block inside Put.
	require.Eventually(t, func() bool {
		remote.mu.Lock()
		defer remote.mu.Unlock()
		return remote.concurrent == 1
	}, time.Second, time.Millisecond)

	// A second mutation's timer fires while the write is in flight.
	rec.TotalTimeMinutes = 2
	e.MarkDirty(rec)
	time.Sleep(30 * time.Millisecond)

	remote.mu.Lock()
	remote.blockPut = nil
	remote.mu.Unlock()
	close(release)

	require.Eventually(t, func() bool {
		return remote.putCount() == 2
	}, time.Second, 5*time.Millisecond)

	remote.mu.Lock()
	defer remote.mu.Unlock()
	assert.Equal(t, 1, remote.maxConcurrent, "writes must never overlap")
	assert.Equal(t, 2, remote.records["user-1"].TotalTimeMinutes)
}

func TestStop_CancelsPendingWrite(t *testing.T) {
	remote := newFakeRemote()
	e := New(remote, 20*time.Millisecond)

	rec, err := e.Load(context.Background(), "user-1")
	require.NoError(t, err)

	rec.TotalTimeMinutes = 1
	e.MarkDirty(rec)
	e.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, remote.putCount(), "no write may fire after sign-out")

	// A stopped engine ignores further mutations.
	e.MarkDirty(rec)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, remote.putCount())
}

func TestFlush_WaitsForInflightThenWritesLatest(t *testing.T) {
	remote := newFakeRemote()
	release := make(chan struct{})
	remote.blockPut = release

	e := New(remote, 10*time.Millisecond)
	rec, err := e.Load(context.Background(), "user-1")
	require.NoError(t, err)

	rec.TotalTimeMinutes = 1
	e.MarkDirty(rec)

	// First write starts and blocks inside Put.
	require.Eventually(t, func() bool {
		remote.mu.Lock()
		defer remote.mu.Unlock()
		return remote.concurrent == 1
	}, time.Second, time.Millisecond)

	// A newer mutation lands while the write is in flight.
	rec.TotalTimeMinutes = 2
	e.MarkDirty(rec)

	go func() {
		time.Sleep(20 * time.Millisecond)
		remote.mu.Lock()
		remote.blockPut = nil
		remote.mu.Unlock()
		close(release)
	}()

	require.NoError(t, e.Flush(context.Background()))
	e.Stop()

	assert.Equal(t, 2, remote.putCount())
	assert.Equal(t, 2, remote.stored("user-1").TotalTimeMinutes,
		"flush must persist the newest snapshot, not just the in-flight one")
}

func TestFlush_WritesUnsavedState(t *testing.T) {
	remote := newFakeRemote()
	e := New(remote, time.Hour) // timer will never fire on its own

	rec, err := e.Load(context.Background(), "user-1")
	require.NoError(t, err)

	rec.TotalTimeMinutes = 7
	e.MarkDirty(rec)

	require.NoError(t, e.Flush(context.Background()))
	assert.Equal(t, 1, remote.putCount())
	assert.Equal(t, 7, remote.stored("user-1").TotalTimeMinutes)

	// Nothing left to write.
	require.NoError(t, e.Flush(context.Background()))
	assert.Equal(t, 1, remote.putCount())
}
