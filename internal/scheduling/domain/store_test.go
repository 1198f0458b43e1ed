package domain

import (
	"sync"
	"testing"
	"time"

	sharedDomain "github.com/felixgeelhaar/tempo/internal/shared/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreTestBlock(t *testing.T, title string, start time.Time, d time.Duration) *ScheduleBlock {
	t.Helper()
	block, err := NewScheduleBlock(title, BlockTypeTask, PriorityMedium, start, start.Add(d))
	require.NoError(t, err)
	return block
}

type recordingObserver struct {
	mu     sync.Mutex
	events []sharedDomain.DomainEvent
}

func (o *recordingObserver) HandleScheduleEvent(event sharedDomain.DomainEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	names := make([]string, 0, len(o.events))
	for _, e := range o.events {
		names = append(names, e.EventName())
	}
	return names
}

func TestScheduleStore_Insert(t *testing.T) {
	store := NewScheduleStore()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	block := newStoreTestBlock(t, "a", start, time.Hour)

	require.NoError(t, store.Insert(block))
	assert.Equal(t, 1, store.Len())

	assert.ErrorIs(t, store.Insert(block), ErrBlockAlreadyExists)
	assert.ErrorIs(t, store.Insert(nil), ErrNilBlock)
}

func TestScheduleStore_Get(t *testing.T) {
	store := NewScheduleStore()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	block := newStoreTestBlock(t, "a", start, time.Hour)
	require.NoError(t, store.Insert(block))

	got, err := store.Get(block.ID())
	require.NoError(t, err)
	assert.Same(t, block, got)

	_, err = store.Get(uuid.New())
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestScheduleStore_List_SortedByStart(t *testing.T) {
	store := NewScheduleStore()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	late := newStoreTestBlock(t, "late", day.Add(15*time.Hour), time.Hour)
	early := newStoreTestBlock(t, "early", day.Add(9*time.Hour), time.Hour)
	middle := newStoreTestBlock(t, "middle", day.Add(12*time.Hour), time.Hour)

	require.NoError(t, store.InsertAll([]*ScheduleBlock{late, early, middle}))

	blocks := store.List()
	require.Len(t, blocks, 3)
	assert.Equal(t, "early", blocks[0].Title())
	assert.Equal(t, "middle", blocks[1].Title())
	assert.Equal(t, "late", blocks[2].Title())
}

func TestScheduleStore_List_DeterministicOnEqualStarts(t *testing.T) {
	store := NewScheduleStore()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Insert(newStoreTestBlock(t, "same", start, time.Hour)))
	}

	first := store.List()
	for i := 0; i < 10; i++ {
		again := store.List()
		for j := range first {
			assert.Equal(t, first[j].ID(), again[j].ID())
		}
	}
}

func TestScheduleStore_InsertAll_AtomicOnDuplicate(t *testing.T) {
	store := NewScheduleStore()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	existing := newStoreTestBlock(t, "existing", start, time.Hour)
	require.NoError(t, store.Insert(existing))

	fresh := newStoreTestBlock(t, "fresh", start.Add(2*time.Hour), time.Hour)
	err := store.InsertAll([]*ScheduleBlock{fresh, existing})
	assert.ErrorIs(t, err, ErrBlockAlreadyExists)
	assert.Equal(t, 1, store.Len(), "batch must not be partially applied")
}

func TestScheduleStore_Reschedule(t *testing.T) {
	store := NewScheduleStore()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	block := newStoreTestBlock(t, "a", start, time.Hour)
	require.NoError(t, store.Insert(block))

	newStart := start.Add(3 * time.Hour)
	require.NoError(t, store.Reschedule(block.ID(), newStart, newStart.Add(time.Hour)))
	assert.Equal(t, newStart, block.Start())

	assert.ErrorIs(t, store.Reschedule(uuid.New(), newStart, newStart.Add(time.Hour)), ErrBlockNotFound)
	assert.ErrorIs(t, store.Reschedule(block.ID(), newStart, newStart), ErrInvalidTimeRange)
}

func TestScheduleStore_Remove(t *testing.T) {
	store := NewScheduleStore()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	block := newStoreTestBlock(t, "a", start, time.Hour)
	require.NoError(t, store.Insert(block))

	require.NoError(t, store.Remove(block.ID()))
	assert.Equal(t, 0, store.Len())
	assert.ErrorIs(t, store.Remove(block.ID()), ErrBlockNotFound)
}

func TestScheduleStore_Observers(t *testing.T) {
	store := NewScheduleStore()
	observer := &recordingObserver{}
	store.RegisterObserver(observer)

	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	block := newStoreTestBlock(t, "a", start, time.Hour)

	require.NoError(t, store.Insert(block))
	require.NoError(t, store.Reschedule(block.ID(), start.Add(time.Hour), start.Add(2*time.Hour)))
	require.NoError(t, store.Complete(block.ID()))
	require.NoError(t, store.Remove(block.ID()))

	assert.Equal(t, []string{
		EventBlockInserted,
		EventBlockRescheduled,
		EventBlockCompleted,
		EventBlockRemoved,
	}, observer.names())
}

func TestScheduleStore_ConcurrentAccess(t *testing.T) {
	store := NewScheduleStore()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := day.Add(time.Duration(i) * time.Hour)
			block, err := NewScheduleBlock("concurrent", BlockTypeTask, PriorityMedium, start, start.Add(30*time.Minute))
			if assert.NoError(t, err) {
				assert.NoError(t, store.Insert(block))
			}
			store.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, store.Len())
}
