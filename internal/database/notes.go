package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const noteColumns = `id, title, content, created_at, is_secret`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*Note, error) {
	note := &Note{}
	if err := row.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.IsSecret); err != nil {
		return nil, err
	}
	return note, nil
}

// CreateNote stores a love note and returns its ID
func (db *DB) CreateNote(ctx context.Context, note *Note) (int64, error) {
	note.CreatedAt = timestamp(note.CreatedAt)

	var id int64
	err := db.QueryRowContext(ctx,
		`INSERT INTO love_notes (title, content, is_secret, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		note.Title, note.Content, note.IsSecret, note.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create note: %w", err)
	}

	note.ID = id
	return id, nil
}

// ListNotes retrieves the notes with the given secrecy flag, newest first
func (db *DB) ListNotes(ctx context.Context, secret bool) ([]*Note, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+noteColumns+`
		 FROM love_notes WHERE is_secret = $1 ORDER BY created_at DESC, id DESC`,
		secret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// FirstSecretNote returns the oldest secret note, or nil if there is none
func (db *DB) FirstSecretNote(ctx context.Context) (*Note, error) {
	note, err := scanNote(db.QueryRowContext(ctx,
		`SELECT `+noteColumns+`
		 FROM love_notes WHERE is_secret = $1 ORDER BY id LIMIT 1`,
		true,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get secret note: %w", err)
	}

	return note, nil
}

func (db *DB) CountNotes(ctx context.Context) (int, error) {
	return count(ctx, db.DB, "love_notes")
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// count returns the number of rows in a table. The table name is never user input.
func count(ctx context.Context, q queryRower, table string) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
