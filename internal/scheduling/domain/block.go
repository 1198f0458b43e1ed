package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sharedDomain "github.com/felixgeelhaar/tempo/internal/shared/domain"
)

var (
	ErrInvalidTimeRange        = errors.New("end time must be after start time")
	ErrEmptyTitle              = errors.New("block title cannot be empty")
	ErrInvalidFlexibilityScore = errors.New("flexibility score must be between 0 and 100")
)

// BlockType represents the kind of commitment a block holds.
type BlockType string

const (
	BlockTypeMeeting  BlockType = "meeting"
	BlockTypeTask     BlockType = "task"
	BlockTypeFocus    BlockType = "focus"
	BlockTypeBreak    BlockType = "break"
	BlockTypePersonal BlockType = "personal"
	BlockTypeBlocked  BlockType = "blocked"
)

// IsValid checks if the block type is one of the known values.
func (t BlockType) IsValid() bool {
	switch t {
	case BlockTypeMeeting, BlockTypeTask, BlockTypeFocus, BlockTypeBreak, BlockTypePersonal, BlockTypeBlocked:
		return true
	default:
		return false
	}
}

// ParseBlockType converts free text into a BlockType.
func ParseBlockType(s string) (BlockType, error) {
	t := BlockType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid block type %q", s)
	}
	return t, nil
}

// Priority represents how important a block is when conflicts are resolved.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// IsValid checks if the priority is one of the known values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// ParsePriority converts free text into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority %q", s)
	}
	return p, nil
}

// rank orders priorities: lower rank means more important.
func (p Priority) rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// HigherThan reports whether p is more important than other.
func (p Priority) HigherThan(other Priority) bool {
	return p.rank() < other.rank()
}

// IsUrgent reports whether the priority is critical or high.
func (p Priority) IsUrgent() bool {
	return p == PriorityCritical || p == PriorityHigh
}

// EnergyLevel represents the cognitive demand a block prefers.
type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

// IsValid checks if the energy level is one of the known values.
func (e EnergyLevel) IsValid() bool {
	switch e {
	case EnergyHigh, EnergyMedium, EnergyLow:
		return true
	default:
		return false
	}
}

// ParseEnergyLevel converts free text into an EnergyLevel.
func ParseEnergyLevel(s string) (EnergyLevel, error) {
	e := EnergyLevel(strings.ToLower(strings.TrimSpace(s)))
	if !e.IsValid() {
		return "", fmt.Errorf("invalid energy level %q", s)
	}
	return e, nil
}

// Source records which subsystem created a block.
type Source string

const (
	SourceCalendar Source = "calendar"
	SourceTask     Source = "task"
	SourceHabit    Source = "habit"
	SourceAuto     Source = "auto"
)

// IsValid checks if the source is one of the known values.
func (s Source) IsValid() bool {
	switch s {
	case SourceCalendar, SourceTask, SourceHabit, SourceAuto:
		return true
	default:
		return false
	}
}

// ScheduleBlock is an atomic, named time interval with metadata governing
// how movable it is. Intervals are half-open: [start, end).
type ScheduleBlock struct {
	sharedDomain.BaseEntity
	title            string
	blockType        BlockType
	priority         Priority
	start            time.Time
	end              time.Time
	flexible         bool
	flexibilityScore int
	energyLevel      EnergyLevel
	category         string
	source           Source
	completed        bool
}

// NewScheduleBlock creates a new schedule block. The interval must be
// well-formed; every downstream algorithm assumes it.
func NewScheduleBlock(title string, blockType BlockType, priority Priority, start, end time.Time) (*ScheduleBlock, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !blockType.IsValid() {
		return nil, fmt.Errorf("invalid block type %q", blockType)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority %q", priority)
	}
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	return &ScheduleBlock{
		BaseEntity:       sharedDomain.NewBaseEntity(),
		title:            title,
		blockType:        blockType,
		priority:         priority,
		start:            start,
		end:              end,
		flexible:         true,
		flexibilityScore: 50,
		energyLevel:      EnergyMedium,
		source:           SourceCalendar,
	}, nil
}

// Getters
func (b *ScheduleBlock) Title() string            { return b.title }
func (b *ScheduleBlock) BlockType() BlockType     { return b.blockType }
func (b *ScheduleBlock) Priority() Priority       { return b.priority }
func (b *ScheduleBlock) Start() time.Time         { return b.start }
func (b *ScheduleBlock) End() time.Time           { return b.end }
func (b *ScheduleBlock) IsFlexible() bool         { return b.flexible }
func (b *ScheduleBlock) FlexibilityScore() int    { return b.flexibilityScore }
func (b *ScheduleBlock) EnergyLevel() EnergyLevel { return b.energyLevel }
func (b *ScheduleBlock) Category() string         { return b.category }
func (b *ScheduleBlock) Source() Source           { return b.source }
func (b *ScheduleBlock) IsCompleted() bool        { return b.completed }

// Duration returns the block duration.
func (b *ScheduleBlock) Duration() time.Duration {
	return b.end.Sub(b.start)
}

// OverlapsWith checks if this block overlaps with another under half-open
// semantics: blocks that merely touch do not overlap.
func (b *ScheduleBlock) OverlapsWith(other *ScheduleBlock) bool {
	return b.start.Before(other.end) && other.start.Before(b.end)
}

// Contains checks if a time falls within the block's interval.
func (b *ScheduleBlock) Contains(t time.Time) bool {
	return !t.Before(b.start) && t.Before(b.end)
}

// SetFlexibility updates how movable the block is during conflict resolution.
func (b *ScheduleBlock) SetFlexibility(flexible bool, score int) error {
	if score < 0 || score > 100 {
		return ErrInvalidFlexibilityScore
	}
	b.flexible = flexible
	b.flexibilityScore = score
	b.Touch()
	return nil
}

// SetEnergyLevel updates the preferred energy level.
func (b *ScheduleBlock) SetEnergyLevel(level EnergyLevel) error {
	if !level.IsValid() {
		return fmt.Errorf("invalid energy level %q", level)
	}
	b.energyLevel = level
	b.Touch()
	return nil
}

// SetCategory updates the optional category label.
func (b *ScheduleBlock) SetCategory(category string) {
	b.category = strings.TrimSpace(category)
	b.Touch()
}

// SetSource records which subsystem created the block.
func (b *ScheduleBlock) SetSource(source Source) error {
	if !source.IsValid() {
		return fmt.Errorf("invalid source %q", source)
	}
	b.source = source
	b.Touch()
	return nil
}

// MarkCompleted marks the block as completed.
func (b *ScheduleBlock) MarkCompleted() {
	b.completed = true
	b.Touch()
}

// Reschedule moves the block to a new interval. Only the store calls this,
// so mutation stays behind its lock.
func (b *ScheduleBlock) Reschedule(newStart, newEnd time.Time) error {
	if !newEnd.After(newStart) {
		return ErrInvalidTimeRange
	}
	b.start = newStart
	b.end = newEnd
	b.Touch()
	return nil
}
