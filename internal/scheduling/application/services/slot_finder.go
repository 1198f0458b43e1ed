package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
)

var (
	// ErrNoAvailableSlot is returned when the whole search window holds no
	// free candidate. Non-fatal: callers may relax duration or deadline and
	// retry.
	ErrNoAvailableSlot = errors.New("no available slot in search window")

	ErrInvalidDuration = errors.New("duration must be positive")
)

const (
	// Candidates are evaluated at hour granularity inside this daily window.
	scanStartHour = 8
	scanEndHour   = 18

	defaultHorizon = 7 * 24 * time.Hour

	baseScore = 50
)

// ScoredSlot is a free interval together with the score it earned.
type ScoredSlot struct {
	Start time.Time
	End   time.Time
	Score int
}

// SlotFinder searches a bounded future window for the highest-scoring free
// interval of a requested duration. It reads the store but never writes.
type SlotFinder struct {
	store   *domain.ScheduleStore
	energy  *domain.EnergyModel
	clock   Clock
	logger  *slog.Logger
	horizon time.Duration
}

// NewSlotFinder creates a slot finder. A nil energy model falls back to
// the default table; a nil clock uses the system clock.
func NewSlotFinder(store *domain.ScheduleStore, energy *domain.EnergyModel, clock Clock, logger *slog.Logger) *SlotFinder {
	if energy == nil {
		energy = domain.DefaultEnergyModel()
	}
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SlotFinder{
		store:   store,
		energy:  energy,
		clock:   clock,
		logger:  logger,
		horizon: defaultHorizon,
	}
}

// SetHorizon overrides the default search horizon used when no deadline
// is given.
func (f *SlotFinder) SetHorizon(horizon time.Duration) {
	if horizon > 0 {
		f.horizon = horizon
	}
}

// FindOptimalSlot scans hour candidates from now through deadline (default
// now + 7 days) and returns the strictly-highest-scoring free slot; ties
// resolve to the earliest-scanned candidate.
func (f *SlotFinder) FindOptimalSlot(duration time.Duration, priority domain.Priority, preferredEnergy domain.EnergyLevel, deadline *time.Time) (*ScoredSlot, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority %q", priority)
	}
	if !preferredEnergy.IsValid() {
		return nil, fmt.Errorf("invalid energy level %q", preferredEnergy)
	}

	now := f.clock.Now()
	horizon := now.Add(f.horizon)
	if deadline != nil {
		horizon = *deadline
	}

	blocks := f.store.List()

	var best *ScoredSlot
	days := int(horizon.Sub(now).Hours()/24) + 1
	for day := 0; day <= days; day++ {
		date := now.AddDate(0, 0, day)
		for hour := scanStartHour; hour <= scanEndHour; hour++ {
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, now.Location())
			if start.Before(now) || start.After(horizon) {
				continue
			}
			end := start.Add(duration)
			if overlapsAny(blocks, start, end) {
				continue
			}

			score := f.score(start, hour, priority, preferredEnergy, now)
			if best == nil || score > best.Score {
				best = &ScoredSlot{Start: start, End: end, Score: score}
			}
		}
	}

	if best == nil {
		f.logger.Debug("slot search exhausted",
			"duration", duration,
			"horizon", horizon,
		)
		return nil, ErrNoAvailableSlot
	}

	f.logger.Debug("slot found",
		"start", best.Start,
		"score", best.Score,
	)
	return best, nil
}

// score rates a candidate: a flat base, a bonus when the hour's energy
// tier suits the preference, and an urgency bonus that decays by the hour
// for critical/high priorities.
func (f *SlotFinder) score(start time.Time, hour int, priority domain.Priority, preferredEnergy domain.EnergyLevel, now time.Time) int {
	score := baseScore

	tier := f.energy.TierAt(hour)
	switch preferredEnergy {
	case domain.EnergyHigh:
		if tier == domain.TierPeak || tier == domain.TierHigh {
			score += 30
		}
	case domain.EnergyMedium:
		if tier == domain.TierMedium {
			score += 20
		}
	case domain.EnergyLow:
		if tier == domain.TierLow || tier == domain.TierRecovery {
			score += 25
		}
	}

	if priority.IsUrgent() {
		hoursFromNow := int(start.Sub(now).Hours())
		if bonus := 20 - hoursFromNow; bonus > 0 {
			score += bonus
		}
	}

	return score
}

// overlapsAny checks the candidate against every block under half-open
// semantics.
func overlapsAny(blocks []*domain.ScheduleBlock, start, end time.Time) bool {
	for _, b := range blocks {
		if start.Before(b.End()) && b.Start().Before(end) {
			return true
		}
	}
	return false
}
