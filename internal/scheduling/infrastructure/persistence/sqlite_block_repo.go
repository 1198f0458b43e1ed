// Package persistence provides the SQLite adapter behind
// domain.BlockRepository.
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/tempo/internal/scheduling/domain"
)

// SQLiteBlockRepository implements domain.BlockRepository using SQLite.
type SQLiteBlockRepository struct {
	db *sql.DB
}

// NewSQLiteBlockRepository creates a new SQLite block repository.
func NewSQLiteBlockRepository(db *sql.DB) *SQLiteBlockRepository {
	return &SQLiteBlockRepository{db: db}
}

// EnsureSchema creates the schedule_blocks table if it is missing.
func (r *SQLiteBlockRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS schedule_blocks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	block_type TEXT NOT NULL,
	priority TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	flexible INTEGER NOT NULL,
	flexibility_score INTEGER NOT NULL,
	energy_level TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_schedule_blocks_start ON schedule_blocks(start_time);`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// LoadAll retrieves every persisted block, ordered by start time.
func (r *SQLiteBlockRepository) LoadAll(ctx context.Context) ([]*domain.ScheduleBlock, error) {
	const query = `
SELECT id, title, block_type, priority, start_time, end_time,
       flexible, flexibility_score, energy_level, category, source,
       completed, created_at, updated_at
FROM schedule_blocks
ORDER BY start_time, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*domain.ScheduleBlock
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load blocks: %w", err)
	}
	return blocks, nil
}

// SaveAll replaces the persisted set with the given blocks in one
// transaction.
func (r *SQLiteBlockRepository) SaveAll(ctx context.Context, blocks []*domain.ScheduleBlock) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_blocks`); err != nil {
		return fmt.Errorf("clear blocks: %w", err)
	}

	const insert = `
INSERT INTO schedule_blocks (
	id, title, block_type, priority, start_time, end_time,
	flexible, flexibility_score, energy_level, category, source,
	completed, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, block := range blocks {
		_, err := stmt.ExecContext(ctx,
			block.ID().String(),
			block.Title(),
			string(block.BlockType()),
			string(block.Priority()),
			block.Start().Format(time.RFC3339),
			block.End().Format(time.RFC3339),
			boolToInt(block.IsFlexible()),
			block.FlexibilityScore(),
			string(block.EnergyLevel()),
			block.Category(),
			string(block.Source()),
			boolToInt(block.IsCompleted()),
			block.CreatedAt().Format(time.RFC3339),
			block.UpdatedAt().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert block %s: %w", block.ID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func scanBlock(rows *sql.Rows) (*domain.ScheduleBlock, error) {
	var (
		idStr, title, blockType, priority   string
		startStr, endStr                    string
		flexible, completed                 int
		flexibilityScore                    int
		energyLevel, category, source       string
		createdStr, updatedStr              string
	)
	if err := rows.Scan(&idStr, &title, &blockType, &priority, &startStr, &endStr,
		&flexible, &flexibilityScore, &energyLevel, &category, &source,
		&completed, &createdStr, &updatedStr); err != nil {
		return nil, fmt.Errorf("scan block: %w", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse block id %q: %w", idStr, err)
	}
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("parse start time: %w", err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, fmt.Errorf("parse end time: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedStr)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return domain.RehydrateScheduleBlock(
		id, title,
		domain.BlockType(blockType),
		domain.Priority(priority),
		start, end,
		flexible != 0,
		flexibilityScore,
		domain.EnergyLevel(energyLevel),
		category,
		domain.Source(source),
		completed != 0,
		createdAt, updatedAt,
	), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
