package domain

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent represents something that happened in the domain.
type DomainEvent interface {
	EventID() uuid.UUID
	AggregateID() uuid.UUID
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	eventID     uuid.UUID
	aggregateID uuid.UUID
	eventName   string
	occurredAt  time.Time
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(aggregateID uuid.UUID, eventName string) BaseEvent {
	return BaseEvent{
		eventID:     uuid.New(),
		aggregateID: aggregateID,
		eventName:   eventName,
		occurredAt:  time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID     { return e.eventID }
func (e BaseEvent) AggregateID() uuid.UUID { return e.aggregateID }
func (e BaseEvent) EventName() string      { return e.eventName }
func (e BaseEvent) OccurredAt() time.Time  { return e.occurredAt }
