package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const memoryColumns = `id, title, description, memory_date, created_at, category`

// Undated memories ("future" ones) go after every dated memory on both
// dialects. SQLite and Postgres disagree on where NULLs land by default.
const memoryOrder = `ORDER BY memory_date IS NULL, memory_date DESC, created_at DESC, id DESC`

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func scanMemory(row rowScanner) (*Memory, error) {
	m := &Memory{}
	if err := row.Scan(&m.ID, &m.Title, &m.Description, &m.MemoryDate, &m.CreatedAt, &m.Category); err != nil {
		return nil, err
	}
	return m, nil
}

// CreateMemory stores a memory and returns its ID
func (db *DB) CreateMemory(ctx context.Context, memory *Memory) (int64, error) {
	memory.CreatedAt = timestamp(memory.CreatedAt)
	if memory.MemoryDate.Valid {
		memory.MemoryDate.Time = DateOnly(memory.MemoryDate.Time)
	}

	var id int64
	err := db.QueryRowContext(ctx,
		`INSERT INTO memories (title, description, memory_date, created_at, category)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		memory.Title, memory.Description, memory.MemoryDate, memory.CreatedAt, memory.Category,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create memory: %w", err)
	}

	memory.ID = id
	return id, nil
}

// ListMemories retrieves all memories, most recent date first
func (db *DB) ListMemories(ctx context.Context) ([]*Memory, error) {
	return db.queryMemories(ctx, `SELECT `+memoryColumns+` FROM memories `+memoryOrder)
}

// ListMemoriesByCategory retrieves the memories of one category, most recent date first
func (db *DB) ListMemoriesByCategory(ctx context.Context, category string) ([]*Memory, error) {
	return db.queryMemories(ctx,
		`SELECT `+memoryColumns+` FROM memories WHERE category = $1 `+memoryOrder,
		category,
	)
}

func (db *DB) CountMemories(ctx context.Context) (int, error) {
	return count(ctx, db.DB, "memories")
}

func (db *DB) queryMemories(ctx context.Context, query string, args ...any) ([]*Memory, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get memories: %w", err)
	}
	defer rows.Close()

	var memories []*Memory
	for rows.Next() {
		m, err := scanMemory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan memory: %w", err)
		}
		memories = append(memories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate memories: %w", err)
	}

	return memories, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func nullDate(t time.Time) sql.NullTime {
	return sql.NullTime{Time: DateOnly(t), Valid: true}
}
