package services

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlock(t *testing.T, title string, priority domain.Priority, start, end time.Time, flexScore int) *domain.ScheduleBlock {
	t.Helper()
	block, err := domain.NewScheduleBlock(title, domain.BlockTypeMeeting, priority, start, end)
	require.NoError(t, err)
	require.NoError(t, block.SetFlexibility(true, flexScore))
	return block
}

func TestConflictDetector_NoOverlap(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	detector := NewConflictDetector(nil)

	a := newTestBlock(t, "Morning sync", domain.PriorityMedium, day.Add(9*time.Hour), day.Add(10*time.Hour), 50)
	b := newTestBlock(t, "Afternoon review", domain.PriorityMedium, day.Add(14*time.Hour), day.Add(15*time.Hour), 50)

	conflicts := detector.Detect([]*domain.ScheduleBlock{a, b})
	assert.Empty(t, conflicts)
}

func TestConflictDetector_AdjacentBlocksDoNotConflict(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	detector := NewConflictDetector(nil)

	a := newTestBlock(t, "a", domain.PriorityMedium, day.Add(9*time.Hour), day.Add(10*time.Hour), 50)
	b := newTestBlock(t, "b", domain.PriorityMedium, day.Add(10*time.Hour), day.Add(11*time.Hour), 50)

	assert.Empty(t, detector.Detect([]*domain.ScheduleBlock{a, b}))
}

func TestConflictDetector_MoverHasHigherFlexibility(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	detector := NewConflictDetector(nil)

	// A 09:00-10:30 (score 20), B 10:00-11:00 (score 80): B moves to 10:30.
	a := newTestBlock(t, "A", domain.PriorityMedium, day.Add(9*time.Hour), day.Add(10*time.Hour+30*time.Minute), 20)
	b := newTestBlock(t, "B", domain.PriorityMedium, day.Add(10*time.Hour), day.Add(11*time.Hour), 80)

	conflicts := detector.Detect([]*domain.ScheduleBlock{a, b})
	require.Len(t, conflicts, 1)

	conflict := conflicts[0]
	require.Len(t, conflict.Actions(), 1)
	action := conflict.Actions()[0]

	assert.Equal(t, b.ID(), action.BlockID())
	assert.Equal(t, a.End(), action.NewStart())
	assert.Equal(t, a.End().Add(time.Hour), action.NewEnd())
	assert.True(t, conflict.IsAutoResolvable())
}

func TestConflictDetector_FlexibilityTieMovesLowerPriority(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	detector := NewConflictDetector(nil)

	critical := newTestBlock(t, "Incident review", domain.PriorityCritical, day.Add(9*time.Hour), day.Add(11*time.Hour), 50)
	low := newTestBlock(t, "Inbox triage", domain.PriorityLow, day.Add(10*time.Hour), day.Add(11*time.Hour), 50)

	conflicts := detector.Detect([]*domain.ScheduleBlock{low, critical})
	require.Len(t, conflicts, 1)

	action := conflicts[0].Actions()[0]
	assert.Equal(t, low.ID(), action.BlockID(), "lower priority block moves on a flexibility tie")
	assert.Equal(t, critical.End(), action.NewStart())
}

func TestConflictDetector_InflexibleMoverNotAutoResolvable(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	detector := NewConflictDetector(nil)

	a := newTestBlock(t, "a", domain.PriorityMedium, day.Add(9*time.Hour), day.Add(10*time.Hour+30*time.Minute), 20)
	b, err := domain.NewScheduleBlock("b", domain.BlockTypeFocus, domain.PriorityHigh, day.Add(10*time.Hour), day.Add(11*time.Hour))
	require.NoError(t, err)
	require.NoError(t, b.SetFlexibility(false, 80))

	conflicts := detector.Detect([]*domain.ScheduleBlock{a, b})
	require.Len(t, conflicts, 1)
	assert.False(t, conflicts[0].IsAutoResolvable())
	assert.Equal(t, b.ID(), conflicts[0].Actions()[0].BlockID())
}

func TestConflictDetector_PreservesMoverDuration(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	detector := NewConflictDetector(nil)

	a := newTestBlock(t, "a", domain.PriorityMedium, day.Add(9*time.Hour), day.Add(12*time.Hour), 10)
	b := newTestBlock(t, "b", domain.PriorityMedium, day.Add(10*time.Hour), day.Add(10*time.Hour+45*time.Minute), 90)

	conflicts := detector.Detect([]*domain.ScheduleBlock{a, b})
	require.Len(t, conflicts, 1)

	action := conflicts[0].Actions()[0]
	assert.Equal(t, 45*time.Minute, action.NewEnd().Sub(action.NewStart()))
}

func TestConflictDetector_EveryIntersectingPairReported(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	detector := NewConflictDetector(nil)

	// Three mutually overlapping blocks yield three pairwise conflicts.
	a := newTestBlock(t, "a", domain.PriorityMedium, day.Add(9*time.Hour), day.Add(12*time.Hour), 10)
	b := newTestBlock(t, "b", domain.PriorityMedium, day.Add(10*time.Hour), day.Add(11*time.Hour), 50)
	c := newTestBlock(t, "c", domain.PriorityMedium, day.Add(10*time.Hour+30*time.Minute), day.Add(11*time.Hour+30*time.Minute), 90)

	conflicts := detector.Detect([]*domain.ScheduleBlock{a, b, c})
	require.Len(t, conflicts, 3)

	assert.True(t, conflicts[0].Involves(a.ID(), b.ID()))
	assert.True(t, conflicts[1].Involves(a.ID(), c.ID()))
	assert.True(t, conflicts[2].Involves(b.ID(), c.ID()))
}

func TestConflictDetector_DeterministicAcrossCalls(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	detector := NewConflictDetector(nil)

	a := newTestBlock(t, "a", domain.PriorityHigh, day.Add(9*time.Hour), day.Add(11*time.Hour), 30)
	b := newTestBlock(t, "b", domain.PriorityLow, day.Add(10*time.Hour), day.Add(12*time.Hour), 30)
	blocks := []*domain.ScheduleBlock{a, b}

	first := detector.Detect(blocks)
	second := detector.Detect(blocks)
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	// IDs may differ between runs; the semantics must not.
	assert.Equal(t, first[0].First().ID(), second[0].First().ID())
	assert.Equal(t, first[0].Actions()[0].BlockID(), second[0].Actions()[0].BlockID())
	assert.Equal(t, first[0].Actions()[0].NewStart(), second[0].Actions()[0].NewStart())
	assert.Equal(t, first[0].IsAutoResolvable(), second[0].IsAutoResolvable())
}
