package services

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
)

// ConflictDetector scans a block list for overlapping pairs and proposes a
// resolution for each. Detection is pure: it never mutates blocks or the
// store, and identical inputs produce semantically identical output.
type ConflictDetector struct {
	logger *slog.Logger
}

// NewConflictDetector creates a new conflict detector.
func NewConflictDetector(logger *slog.Logger) *ConflictDetector {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConflictDetector{logger: logger}
}

// Detect returns one ConflictResolution per overlapping pair, scanning
// blocks in start-time order.
func (d *ConflictDetector) Detect(blocks []*domain.ScheduleBlock) []*domain.ConflictResolution {
	sorted := make([]*domain.ScheduleBlock, len(blocks))
	copy(sorted, blocks)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Start().Equal(sorted[j].Start()) {
			return sorted[i].Start().Before(sorted[j].Start())
		}
		return sorted[i].ID().String() < sorted[j].ID().String()
	})

	var conflicts []*domain.ConflictResolution
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if !sorted[i].OverlapsWith(sorted[j]) {
				continue
			}
			conflict := d.resolve(sorted[i], sorted[j])
			conflicts = append(conflicts, conflict)

			d.logger.Debug("conflict detected",
				"first", sorted[i].Title(),
				"second", sorted[j].Title(),
				"auto_resolvable", conflict.IsAutoResolvable(),
			)
		}
	}
	return conflicts
}

// resolve picks which of the two blocks moves and proposes its new
// interval: immediately after the kept block, preserving duration.
func (d *ConflictDetector) resolve(first, second *domain.ScheduleBlock) *domain.ConflictResolution {
	mover, kept := chooseMover(first, second)

	newStart := kept.End()
	newEnd := newStart.Add(mover.Duration())

	reason := fmt.Sprintf("overlaps %q", kept.Title())
	action := domain.NewRescheduleAction(mover, newStart, newEnd, reason, impactOf(mover.Priority()))

	suggestion := fmt.Sprintf("Move %q to %s after %q ends",
		mover.Title(), newStart.Format("15:04"), kept.Title())

	return domain.NewConflictResolution(first, second, suggestion,
		[]*domain.RescheduleAction{action}, mover.IsFlexible())
}

// chooseMover selects the block to relocate: the one with the higher
// flexibility score, ties broken by lower priority. On a full tie the
// later-starting block moves.
func chooseMover(first, second *domain.ScheduleBlock) (mover, kept *domain.ScheduleBlock) {
	if first.FlexibilityScore() > second.FlexibilityScore() {
		return first, second
	}
	if second.FlexibilityScore() > first.FlexibilityScore() {
		return second, first
	}
	if second.Priority().HigherThan(first.Priority()) {
		return first, second
	}
	return second, first
}

func impactOf(p domain.Priority) domain.Impact {
	switch p {
	case domain.PriorityCritical:
		return domain.ImpactHigh
	case domain.PriorityHigh:
		return domain.ImpactMedium
	case domain.PriorityMedium:
		return domain.ImpactLow
	default:
		return domain.ImpactNone
	}
}
