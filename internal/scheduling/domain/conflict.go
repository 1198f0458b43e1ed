package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrActionTerminal is returned when applying or rejecting an action
	// that has already reached a terminal status.
	ErrActionTerminal = errors.New("reschedule action already applied or rejected")
)

// Impact describes how disruptive applying a reschedule would be.
type Impact string

const (
	ImpactNone   Impact = "none"
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// ActionStatus tracks the lifecycle of a reschedule action.
// Transitions: pending -> applied | rejected, both terminal.
type ActionStatus string

const (
	ActionPending  ActionStatus = "pending"
	ActionApplied  ActionStatus = "applied"
	ActionRejected ActionStatus = "rejected"
)

// RescheduleAction is a proposed move for a block. It references the block
// by ID; the store keeps ownership.
type RescheduleAction struct {
	id            uuid.UUID
	blockID       uuid.UUID
	originalStart time.Time
	originalEnd   time.Time
	newStart      time.Time
	newEnd        time.Time
	reason        string
	impact        Impact
	status        ActionStatus
}

// NewRescheduleAction creates a pending action proposing to move block to
// [newStart, newEnd).
func NewRescheduleAction(block *ScheduleBlock, newStart, newEnd time.Time, reason string, impact Impact) *RescheduleAction {
	return &RescheduleAction{
		id:            uuid.New(),
		blockID:       block.ID(),
		originalStart: block.Start(),
		originalEnd:   block.End(),
		newStart:      newStart,
		newEnd:        newEnd,
		reason:        reason,
		impact:        impact,
		status:        ActionPending,
	}
}

func (a *RescheduleAction) ID() uuid.UUID            { return a.id }
func (a *RescheduleAction) BlockID() uuid.UUID       { return a.blockID }
func (a *RescheduleAction) OriginalStart() time.Time { return a.originalStart }
func (a *RescheduleAction) OriginalEnd() time.Time   { return a.originalEnd }
func (a *RescheduleAction) NewStart() time.Time      { return a.newStart }
func (a *RescheduleAction) NewEnd() time.Time        { return a.newEnd }
func (a *RescheduleAction) Reason() string           { return a.reason }
func (a *RescheduleAction) Impact() Impact           { return a.impact }
func (a *RescheduleAction) Status() ActionStatus     { return a.status }

// IsTerminal reports whether the action has been applied or rejected.
func (a *RescheduleAction) IsTerminal() bool {
	return a.status != ActionPending
}

// MarkApplied transitions the action to applied.
func (a *RescheduleAction) MarkApplied() error {
	if a.IsTerminal() {
		return ErrActionTerminal
	}
	a.status = ActionApplied
	return nil
}

// MarkRejected transitions the action to rejected.
func (a *RescheduleAction) MarkRejected() error {
	if a.IsTerminal() {
		return ErrActionTerminal
	}
	a.status = ActionRejected
	return nil
}

// ConflictResolution is a detected overlap between two blocks together
// with the proposed fix. Resolutions are transient: the detector recomputes
// them from scratch on every run.
type ConflictResolution struct {
	id             uuid.UUID
	first          *ScheduleBlock
	second         *ScheduleBlock
	suggestion     string
	actions        []*RescheduleAction
	autoResolvable bool
}

// NewConflictResolution creates a conflict between first and second,
// ordered by start time.
func NewConflictResolution(first, second *ScheduleBlock, suggestion string, actions []*RescheduleAction, autoResolvable bool) *ConflictResolution {
	return &ConflictResolution{
		id:             uuid.New(),
		first:          first,
		second:         second,
		suggestion:     suggestion,
		actions:        actions,
		autoResolvable: autoResolvable,
	}
}

func (c *ConflictResolution) ID() uuid.UUID                 { return c.id }
func (c *ConflictResolution) First() *ScheduleBlock         { return c.first }
func (c *ConflictResolution) Second() *ScheduleBlock        { return c.second }
func (c *ConflictResolution) Suggestion() string            { return c.suggestion }
func (c *ConflictResolution) Actions() []*RescheduleAction  { return c.actions }
func (c *ConflictResolution) IsAutoResolvable() bool        { return c.autoResolvable }

// Involves reports whether the conflict is between the two given blocks,
// in either order.
func (c *ConflictResolution) Involves(a, b uuid.UUID) bool {
	return (c.first.ID() == a && c.second.ID() == b) ||
		(c.first.ID() == b && c.second.ID() == a)
}

// String renders a short, human-readable description.
func (c *ConflictResolution) String() string {
	return fmt.Sprintf("%q (%s-%s) overlaps %q (%s-%s)",
		c.first.Title(), c.first.Start().Format("15:04"), c.first.End().Format("15:04"),
		c.second.Title(), c.second.Start().Format("15:04"), c.second.End().Format("15:04"),
	)
}
