package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
	"github.com/google/uuid"
)

// ErrUnknownAction is returned when an action ID does not match any
// pending action from the last detection pass.
var ErrUnknownAction = errors.New("unknown reschedule action")

// Rescheduler applies or rejects proposed reschedules against the store.
// It caches the conflict list from the most recent detection pass; the
// list is discarded after a resolution pass and never carried forward.
type Rescheduler struct {
	store    *domain.ScheduleStore
	detector *ConflictDetector
	logger   *slog.Logger

	mu        sync.Mutex
	conflicts []*domain.ConflictResolution
	actions   map[uuid.UUID]*domain.RescheduleAction
}

// NewRescheduler creates a rescheduler over the given store.
func NewRescheduler(store *domain.ScheduleStore, detector *ConflictDetector, logger *slog.Logger) *Rescheduler {
	if detector == nil {
		detector = NewConflictDetector(logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Rescheduler{
		store:    store,
		detector: detector,
		logger:   logger,
		actions:  make(map[uuid.UUID]*domain.RescheduleAction),
	}
}

// DetectConflicts recomputes the conflict list from the current store
// contents and caches it for the apply/reject/auto-resolve calls.
func (r *Rescheduler) DetectConflicts() []*domain.ConflictResolution {
	conflicts := r.detector.Detect(r.store.List())

	r.mu.Lock()
	defer r.mu.Unlock()

	r.conflicts = conflicts
	r.actions = make(map[uuid.UUID]*domain.RescheduleAction)
	for _, c := range conflicts {
		for _, a := range c.Actions() {
			r.actions[a.ID()] = a
		}
	}
	return conflicts
}

// Conflicts returns the cached conflict list from the last detection pass.
func (r *Rescheduler) Conflicts() []*domain.ConflictResolution {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conflicts
}

// ApplyReschedule moves the referenced block to the action's proposed
// interval and marks the action applied. Unknown or terminal actions are
// reported no-ops: an error comes back, nothing changes.
func (r *Rescheduler) ApplyReschedule(actionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	action, ok := r.actions[actionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, actionID)
	}
	if action.IsTerminal() {
		return fmt.Errorf("action %s: %w", actionID, domain.ErrActionTerminal)
	}

	if err := r.store.Reschedule(action.BlockID(), action.NewStart(), action.NewEnd()); err != nil {
		return fmt.Errorf("apply reschedule %s: %w", actionID, err)
	}
	if err := action.MarkApplied(); err != nil {
		return err
	}

	r.logger.Info("reschedule applied",
		"action_id", actionID,
		"block_id", action.BlockID(),
		"new_start", action.NewStart(),
	)
	return nil
}

// RejectReschedule marks the action rejected without touching any block.
// Same unknown/terminal guard as ApplyReschedule.
func (r *Rescheduler) RejectReschedule(actionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	action, ok := r.actions[actionID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, actionID)
	}
	if action.IsTerminal() {
		return fmt.Errorf("action %s: %w", actionID, domain.ErrActionTerminal)
	}
	if err := action.MarkRejected(); err != nil {
		return err
	}

	r.logger.Info("reschedule rejected", "action_id", actionID)
	return nil
}

// AutoResolveConflicts applies every action of every auto-resolvable
// conflict as one batch, then discards the now-stale conflict list. The
// next DetectConflicts call recomputes from the mutated store. Returns
// the number of actions applied.
func (r *Rescheduler) AutoResolveConflicts() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	applied := 0
	for _, conflict := range r.conflicts {
		if !conflict.IsAutoResolvable() {
			continue
		}
		for _, action := range conflict.Actions() {
			if action.IsTerminal() {
				continue
			}
			if err := r.store.Reschedule(action.BlockID(), action.NewStart(), action.NewEnd()); err != nil {
				r.logger.Warn("auto-resolve skipped action",
					"action_id", action.ID(),
					"block_id", action.BlockID(),
					"error", err,
				)
				continue
			}
			if err := action.MarkApplied(); err != nil {
				continue
			}
			applied++
		}
	}

	r.conflicts = nil
	r.actions = make(map[uuid.UUID]*domain.RescheduleAction)

	r.logger.Info("auto-resolve completed", "applied", applied)
	return applied
}
