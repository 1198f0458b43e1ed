package queries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func insertBlock(t *testing.T, store *domain.ScheduleStore, title string, bt domain.BlockType, start time.Time, d time.Duration) *domain.ScheduleBlock {
	t.Helper()
	block, err := domain.NewScheduleBlock(title, bt, domain.PriorityMedium, start, start.Add(d))
	require.NoError(t, err)
	require.NoError(t, store.Insert(block))
	return block
}

func TestScheduleEfficiencyEmptyStore(t *testing.T) {
	store := domain.NewScheduleStore()
	handler := NewScheduleEfficiencyHandler(store, nil, fixedClock{t: testNow})

	report, err := handler.Handle(context.Background(), ScheduleEfficiencyQuery{})
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalScheduled)
	assert.Equal(t, 0, report.FocusTime)
	assert.Equal(t, 0, report.Efficiency)
	assert.Equal(t, 0, report.Utilization)
	assert.Equal(t, 0, report.Conflicts)
}

func TestScheduleEfficiencyTodayOnly(t *testing.T) {
	store := domain.NewScheduleStore()

	insertBlock(t, store, "Planning", domain.BlockTypeMeeting,
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), time.Hour)
	insertBlock(t, store, "Deep Work", domain.BlockTypeFocus,
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), 2*time.Hour)
	insertBlock(t, store, "Write docs", domain.BlockTypeTask,
		time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC), time.Hour)

	// Tomorrow: must not count.
	insertBlock(t, store, "Future sync", domain.BlockTypeMeeting,
		time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), time.Hour)

	handler := NewScheduleEfficiencyHandler(store, nil, fixedClock{t: testNow})
	report, err := handler.Handle(context.Background(), ScheduleEfficiencyQuery{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.BlockCount)
	assert.Equal(t, 240, report.TotalScheduled)
	assert.Equal(t, 180, report.FocusTime)
	assert.Equal(t, 75, report.Efficiency)
	assert.Equal(t, 40, report.Utilization)
	assert.Equal(t, 0, report.Conflicts)
}

func TestScheduleEfficiencyCountsConflicts(t *testing.T) {
	store := domain.NewScheduleStore()

	insertBlock(t, store, "A", domain.BlockTypeMeeting,
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), 90*time.Minute)
	insertBlock(t, store, "B", domain.BlockTypeMeeting,
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), time.Hour)

	handler := NewScheduleEfficiencyHandler(store, nil, fixedClock{t: testNow})
	report, err := handler.Handle(context.Background(), ScheduleEfficiencyQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Conflicts)
}

func TestScheduleEfficiencyCompletedMinutes(t *testing.T) {
	store := domain.NewScheduleStore()

	done := insertBlock(t, store, "Done task", domain.BlockTypeTask,
		time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), time.Hour)
	insertBlock(t, store, "Open task", domain.BlockTypeTask,
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), time.Hour)

	require.NoError(t, store.Complete(done.ID()))

	handler := NewScheduleEfficiencyHandler(store, nil, fixedClock{t: testNow})
	report, err := handler.Handle(context.Background(), ScheduleEfficiencyQuery{})
	require.NoError(t, err)

	assert.Equal(t, 60, report.CompletedMinutes)
	assert.Equal(t, 100, report.Efficiency)
}
