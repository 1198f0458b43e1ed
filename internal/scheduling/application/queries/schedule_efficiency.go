// Package queries contains the read-side handlers of the scheduling
// context: efficiency reporting and slot lookup.
package queries

import (
	"context"
	"math"
	"time"

	"github.com/felixgeelhaar/tempo/internal/scheduling/application/services"
	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
)

// ScheduleEfficiencyQuery requests today's efficiency report.
type ScheduleEfficiencyQuery struct{}

// EfficiencyReport summarizes today's schedule. Always recomputed from
// the current store contents, never cached.
type EfficiencyReport struct {
	Date time.Time

	// Minutes
	TotalScheduled   int
	FocusTime        int
	CompletedMinutes int

	// Percentages
	Efficiency  int
	Utilization int

	BlockCount int
	Conflicts  int
}

// ScheduleEfficiencyHandler handles schedule efficiency queries.
type ScheduleEfficiencyHandler struct {
	store    *domain.ScheduleStore
	detector *services.ConflictDetector
	clock    services.Clock
}

// NewScheduleEfficiencyHandler creates a new ScheduleEfficiencyHandler.
func NewScheduleEfficiencyHandler(store *domain.ScheduleStore, detector *services.ConflictDetector, clock services.Clock) *ScheduleEfficiencyHandler {
	if detector == nil {
		detector = services.NewConflictDetector(nil)
	}
	if clock == nil {
		clock = services.SystemClock()
	}
	return &ScheduleEfficiencyHandler{
		store:    store,
		detector: detector,
		clock:    clock,
	}
}

// workingWindowMinutes is the 08:00-18:00 day used for utilization.
const workingWindowMinutes = 10 * 60

// Handle computes the report over blocks starting today. Efficiency is
// the focus share of scheduled time; utilization is scheduled time
// against the working window.
func (h *ScheduleEfficiencyHandler) Handle(ctx context.Context, query ScheduleEfficiencyQuery) (*EfficiencyReport, error) {
	now := h.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	blocks := h.store.List()
	report := &EfficiencyReport{Date: today}

	for _, block := range blocks {
		start := block.Start()
		if start.Year() != today.Year() || start.YearDay() != today.YearDay() {
			continue
		}

		minutes := int(block.Duration().Minutes())
		report.BlockCount++
		report.TotalScheduled += minutes
		if block.BlockType() == domain.BlockTypeFocus || block.BlockType() == domain.BlockTypeTask {
			report.FocusTime += minutes
		}
		if block.IsCompleted() {
			report.CompletedMinutes += minutes
		}
	}

	if report.TotalScheduled > 0 {
		report.Efficiency = int(math.Round(float64(report.FocusTime) / float64(report.TotalScheduled) * 100))
		report.Utilization = int(math.Round(float64(report.TotalScheduled) / workingWindowMinutes * 100))
	}

	report.Conflicts = len(h.detector.Detect(blocks))

	return report, nil
}
