package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/tempo/internal/scheduling/application/services"
	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
)

// FindOptimalSlotQuery requests the best free slot without inserting
// anything.
type FindOptimalSlotQuery struct {
	DurationMins    int
	Priority        string
	PreferredEnergy string
	Deadline        *time.Time
}

// OptimalSlotResult contains the winning candidate.
type OptimalSlotResult struct {
	Start time.Time
	End   time.Time
	Score int
}

// FindOptimalSlotHandler handles dry-run slot lookups.
type FindOptimalSlotHandler struct {
	finder *services.SlotFinder
}

// NewFindOptimalSlotHandler creates a new FindOptimalSlotHandler.
func NewFindOptimalSlotHandler(finder *services.SlotFinder) *FindOptimalSlotHandler {
	return &FindOptimalSlotHandler{finder: finder}
}

// Handle executes the slot lookup. services.ErrNoAvailableSlot passes
// through when the window is exhausted.
func (h *FindOptimalSlotHandler) Handle(ctx context.Context, query FindOptimalSlotQuery) (*OptimalSlotResult, error) {
	priority, err := domain.ParsePriority(query.Priority)
	if err != nil {
		return nil, err
	}
	energy, err := domain.ParseEnergyLevel(query.PreferredEnergy)
	if err != nil {
		return nil, err
	}

	slot, err := h.finder.FindOptimalSlot(time.Duration(query.DurationMins)*time.Minute, priority, energy, query.Deadline)
	if err != nil {
		return nil, err
	}

	return &OptimalSlotResult{Start: slot.Start, End: slot.End, Score: slot.Score}, nil
}
