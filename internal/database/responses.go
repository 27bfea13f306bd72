package database

import (
	"context"
	"fmt"
	"time"
)

const DecisionYes = "yes"

// timestamp normalises a creation time for storage. Zero means "now".
func timestamp(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Truncate(time.Second)
}

// CreateResponse stores a new invitation response and returns its ID
func (db *DB) CreateResponse(ctx context.Context, resp *Response) (int64, error) {
	resp.CreatedAt = timestamp(resp.CreatedAt)

	var id int64
	err := db.QueryRowContext(ctx,
		`INSERT INTO valentine_responses (girlfriend_name, response, message, created_at, ip_address)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		resp.GirlfriendName, resp.Response, resp.Message, resp.CreatedAt, resp.IPAddress,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create response: %w", err)
	}

	resp.ID = id
	return id, nil
}

// ListResponses retrieves all responses, newest first
func (db *DB) ListResponses(ctx context.Context) ([]*Response, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, girlfriend_name, response, message, created_at, ip_address
		 FROM valentine_responses ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get responses: %w", err)
	}
	defer rows.Close()

	var responses []*Response
	for rows.Next() {
		resp := &Response{}
		err := rows.Scan(&resp.ID, &resp.GirlfriendName, &resp.Response, &resp.Message,
			&resp.CreatedAt, &resp.IPAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate responses: %w", err)
	}

	return responses, nil
}

// GetResponseStats counts all responses and the ones that are exactly "yes"
func (db *DB) GetResponseStats(ctx context.Context) (*ResponseStats, error) {
	stats := &ResponseStats{}

	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM valentine_responses`,
	).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("failed to count responses: %w", err)
	}

	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM valentine_responses WHERE response = $1`,
		DecisionYes,
	).Scan(&stats.Yes); err != nil {
		return nil, fmt.Errorf("failed to count yes responses: %w", err)
	}

	return stats, nil
}
