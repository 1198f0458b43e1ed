package domain

import (
	"context"
	"time"

	sharedDomain "github.com/felixgeelhaar/tempo/internal/shared/domain"
	"github.com/google/uuid"
)

// BlockRepository is the persistence collaborator port. The engine itself
// operates purely in-memory; a caller loads blocks through an
// implementation, hands them to a ScheduleStore, and saves the mutated
// list back when it chooses.
type BlockRepository interface {
	// LoadAll retrieves every persisted block.
	LoadAll(ctx context.Context) ([]*ScheduleBlock, error)

	// SaveAll replaces the persisted set with the given blocks.
	SaveAll(ctx context.Context, blocks []*ScheduleBlock) error
}

// RehydrateScheduleBlock recreates a block from persisted state. Values
// are trusted; validation happened at construction time.
func RehydrateScheduleBlock(
	id uuid.UUID,
	title string,
	blockType BlockType,
	priority Priority,
	start, end time.Time,
	flexible bool,
	flexibilityScore int,
	energyLevel EnergyLevel,
	category string,
	source Source,
	completed bool,
	createdAt, updatedAt time.Time,
) *ScheduleBlock {
	return &ScheduleBlock{
		BaseEntity:       sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		title:            title,
		blockType:        blockType,
		priority:         priority,
		start:            start,
		end:              end,
		flexible:         flexible,
		flexibilityScore: flexibilityScore,
		energyLevel:      energyLevel,
		category:         category,
		source:           source,
		completed:        completed,
	}
}
