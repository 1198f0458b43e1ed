package domain

import (
	"errors"
	"sort"
	"sync"
	"time"

	sharedDomain "github.com/felixgeelhaar/tempo/internal/shared/domain"
	"github.com/google/uuid"
)

var (
	ErrBlockNotFound      = errors.New("schedule block not found")
	ErrBlockAlreadyExists = errors.New("schedule block already exists")
	ErrNilBlock           = errors.New("schedule block is nil")
)

// Observer receives schedule store events synchronously after each
// mutation. Observers must not call back into the store from the handler.
type Observer interface {
	HandleScheduleEvent(event sharedDomain.DomainEvent)
}

// ScheduleStore is the single point of truth for schedule blocks. It owns
// every block it holds; blocks are mutated only through Reschedule and
// Complete so all writes stay behind one lock.
type ScheduleStore struct {
	mu        sync.RWMutex
	blocks    map[uuid.UUID]*ScheduleBlock
	observers []Observer
}

// NewScheduleStore creates an empty store.
func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{
		blocks: make(map[uuid.UUID]*ScheduleBlock),
	}
}

// RegisterObserver adds an observer for schedule mutations.
func (s *ScheduleStore) RegisterObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Insert adds a block to the store.
func (s *ScheduleStore) Insert(block *ScheduleBlock) error {
	if block == nil {
		return ErrNilBlock
	}

	s.mu.Lock()
	if _, exists := s.blocks[block.ID()]; exists {
		s.mu.Unlock()
		return ErrBlockAlreadyExists
	}
	s.blocks[block.ID()] = block
	s.mu.Unlock()

	s.notify(NewBlockInserted(block))
	return nil
}

// InsertAll adds a batch of blocks. The batch is validated up front so a
// duplicate leaves the store untouched.
func (s *ScheduleStore) InsertAll(blocks []*ScheduleBlock) error {
	s.mu.Lock()
	for _, block := range blocks {
		if block == nil {
			s.mu.Unlock()
			return ErrNilBlock
		}
		if _, exists := s.blocks[block.ID()]; exists {
			s.mu.Unlock()
			return ErrBlockAlreadyExists
		}
	}
	for _, block := range blocks {
		s.blocks[block.ID()] = block
	}
	s.mu.Unlock()

	for _, block := range blocks {
		s.notify(NewBlockInserted(block))
	}
	return nil
}

// Get returns the block with the given ID.
func (s *ScheduleStore) Get(id uuid.UUID) (*ScheduleBlock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	block, ok := s.blocks[id]
	if !ok {
		return nil, ErrBlockNotFound
	}
	return block, nil
}

// List returns a snapshot of all blocks sorted by start time. Ties are
// broken by ID so repeated calls against an unchanged store agree.
func (s *ScheduleStore) List() []*ScheduleBlock {
	s.mu.RLock()
	blocks := make([]*ScheduleBlock, 0, len(s.blocks))
	for _, block := range s.blocks {
		blocks = append(blocks, block)
	}
	s.mu.RUnlock()

	sort.Slice(blocks, func(i, j int) bool {
		if !blocks[i].Start().Equal(blocks[j].Start()) {
			return blocks[i].Start().Before(blocks[j].Start())
		}
		return blocks[i].ID().String() < blocks[j].ID().String()
	})
	return blocks
}

// Len returns the number of blocks in the store.
func (s *ScheduleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blocks)
}

// Reschedule moves a block to a new interval.
func (s *ScheduleStore) Reschedule(id uuid.UUID, newStart, newEnd time.Time) error {
	s.mu.Lock()
	block, ok := s.blocks[id]
	if !ok {
		s.mu.Unlock()
		return ErrBlockNotFound
	}

	oldStart := block.Start()
	oldEnd := block.End()
	if err := block.Reschedule(newStart, newEnd); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.notify(NewBlockRescheduled(block, oldStart, oldEnd))
	return nil
}

// Complete marks a block as completed.
func (s *ScheduleStore) Complete(id uuid.UUID) error {
	s.mu.Lock()
	block, ok := s.blocks[id]
	if !ok {
		s.mu.Unlock()
		return ErrBlockNotFound
	}
	block.MarkCompleted()
	s.mu.Unlock()

	s.notify(NewBlockCompleted(block))
	return nil
}

// Remove deletes a block from the store.
func (s *ScheduleStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	block, ok := s.blocks[id]
	if !ok {
		s.mu.Unlock()
		return ErrBlockNotFound
	}
	delete(s.blocks, id)
	s.mu.Unlock()

	s.notify(NewBlockRemoved(block))
	return nil
}

// notify dispatches an event to registered observers. Called without the
// write lock held so observers may read from the store.
func (s *ScheduleStore) notify(event sharedDomain.DomainEvent) {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, o := range observers {
		o.HandleScheduleEvent(event)
	}
}
