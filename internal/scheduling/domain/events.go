package domain

import (
	"time"

	sharedDomain "github.com/felixgeelhaar/tempo/internal/shared/domain"
)

const (
	EventBlockInserted    = "scheduling.block.inserted"
	EventBlockRescheduled = "scheduling.block.rescheduled"
	EventBlockCompleted   = "scheduling.block.completed"
	EventBlockRemoved     = "scheduling.block.removed"
)

// BlockInserted is emitted when a block is added to the store.
type BlockInserted struct {
	sharedDomain.BaseEvent
	Title     string
	BlockType BlockType
	Source    Source
	Start     time.Time
	End       time.Time
}

// NewBlockInserted creates a BlockInserted event.
func NewBlockInserted(block *ScheduleBlock) BlockInserted {
	return BlockInserted{
		BaseEvent: sharedDomain.NewBaseEvent(block.ID(), EventBlockInserted),
		Title:     block.Title(),
		BlockType: block.BlockType(),
		Source:    block.Source(),
		Start:     block.Start(),
		End:       block.End(),
	}
}

// BlockRescheduled is emitted when a block is moved to a new interval.
type BlockRescheduled struct {
	sharedDomain.BaseEvent
	OldStart time.Time
	OldEnd   time.Time
	NewStart time.Time
	NewEnd   time.Time
}

// NewBlockRescheduled creates a BlockRescheduled event.
func NewBlockRescheduled(block *ScheduleBlock, oldStart, oldEnd time.Time) BlockRescheduled {
	return BlockRescheduled{
		BaseEvent: sharedDomain.NewBaseEvent(block.ID(), EventBlockRescheduled),
		OldStart:  oldStart,
		OldEnd:    oldEnd,
		NewStart:  block.Start(),
		NewEnd:    block.End(),
	}
}

// BlockCompleted is emitted when a block is marked completed.
type BlockCompleted struct {
	sharedDomain.BaseEvent
	Title     string
	BlockType BlockType
}

// NewBlockCompleted creates a BlockCompleted event.
func NewBlockCompleted(block *ScheduleBlock) BlockCompleted {
	return BlockCompleted{
		BaseEvent: sharedDomain.NewBaseEvent(block.ID(), EventBlockCompleted),
		Title:     block.Title(),
		BlockType: block.BlockType(),
	}
}

// BlockRemoved is emitted when a block is deleted from the store.
type BlockRemoved struct {
	sharedDomain.BaseEvent
	Title string
}

// NewBlockRemoved creates a BlockRemoved event.
func NewBlockRemoved(block *ScheduleBlock) BlockRemoved {
	return BlockRemoved{
		BaseEvent: sharedDomain.NewBaseEvent(block.ID(), EventBlockRemoved),
		Title:     block.Title(),
	}
}
