// Package commands contains the write-side handlers of the scheduling
// context: task auto-placement, focus-time protection, and habit planning.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/tempo/internal/scheduling/application/services"
	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
	"github.com/felixgeelhaar/tempo/pkg/observability"
)

// ErrNoSlotForTask is returned when the search window holds no free slot
// for the requested task. Nothing is inserted.
var ErrNoSlotForTask = errors.New("no slot available for task")

// AutoScheduleTaskCommand contains the data needed to place a task.
type AutoScheduleTaskCommand struct {
	Title        string
	DurationMins int
	Priority     string
	Deadline     *time.Time
}

// AutoScheduleTaskResult contains the placed block.
type AutoScheduleTaskResult struct {
	Block *domain.ScheduleBlock
	Score int
}

// AutoScheduleTaskHandler handles the AutoScheduleTaskCommand.
type AutoScheduleTaskHandler struct {
	store   *domain.ScheduleStore
	finder  *services.SlotFinder
	logger  *slog.Logger
	metrics observability.Metrics
}

// NewAutoScheduleTaskHandler creates a new AutoScheduleTaskHandler.
func NewAutoScheduleTaskHandler(store *domain.ScheduleStore, finder *services.SlotFinder, logger *slog.Logger, metrics observability.Metrics) *AutoScheduleTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &AutoScheduleTaskHandler{
		store:   store,
		finder:  finder,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle finds the best free slot for the task and inserts a block there.
// On ErrNoSlotForTask the store is untouched.
func (h *AutoScheduleTaskHandler) Handle(ctx context.Context, cmd AutoScheduleTaskCommand) (*AutoScheduleTaskResult, error) {
	priority, err := domain.ParsePriority(cmd.Priority)
	if err != nil {
		return nil, err
	}

	preferredEnergy := domain.EnergyMedium
	if priority.IsUrgent() {
		preferredEnergy = domain.EnergyHigh
	}

	duration := time.Duration(cmd.DurationMins) * time.Minute
	searchStart := time.Now()
	slot, err := h.finder.FindOptimalSlot(duration, priority, preferredEnergy, cmd.Deadline)
	h.metrics.Timing("scheduling.slot_search", time.Since(searchStart))
	if err != nil {
		if errors.Is(err, services.ErrNoAvailableSlot) {
			h.metrics.Counter("scheduling.task.no_slot", 1,
				observability.T("priority", string(priority)))
			return nil, fmt.Errorf("%w: %q", ErrNoSlotForTask, cmd.Title)
		}
		return nil, err
	}

	block, err := domain.NewScheduleBlock(cmd.Title, domain.BlockTypeTask, priority, slot.Start, slot.End)
	if err != nil {
		return nil, err
	}
	if err := block.SetFlexibility(priority != domain.PriorityCritical, flexibilityScoreFor(priority)); err != nil {
		return nil, err
	}
	if err := block.SetEnergyLevel(preferredEnergy); err != nil {
		return nil, err
	}
	if err := block.SetSource(domain.SourceAuto); err != nil {
		return nil, err
	}

	if err := h.store.Insert(block); err != nil {
		return nil, err
	}

	h.metrics.Counter("scheduling.task.placed", 1,
		observability.T("priority", string(priority)))
	h.logger.Info("task auto-scheduled",
		"title", cmd.Title,
		"start", slot.Start,
		"score", slot.Score,
	)

	return &AutoScheduleTaskResult{Block: block, Score: slot.Score}, nil
}

// flexibilityScoreFor maps priority to how movable a placed task is.
func flexibilityScoreFor(priority domain.Priority) int {
	switch priority {
	case domain.PriorityCritical:
		return 10
	case domain.PriorityHigh:
		return 40
	default:
		return 70
	}
}
