package database

import (
	"database/sql"
	"time"
)

// Response is one submission of the invitation form.
type Response struct {
	ID             int64
	GirlfriendName string
	Response       string
	Message        sql.NullString
	CreatedAt      time.Time
	IPAddress      sql.NullString
}

// SaidYes reports whether the decision is exactly "yes".
func (r *Response) SaidYes() bool {
	return r.Response == DecisionYes
}

type Note struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	IsSecret  bool
}

type Memory struct {
	ID          int64
	Title       string
	Description sql.NullString
	MemoryDate  sql.NullTime
	CreatedAt   time.Time
	Category    sql.NullString
}

type ResponseStats struct {
	Total int
	Yes   int
}

// YesRate returns the percentage of yes responses, 0 when nothing was submitted.
func (s ResponseStats) YesRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Yes) / float64(s.Total) * 100
}
