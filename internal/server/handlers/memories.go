package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/AlexTLDR/valentine/internal/database"
	"go.uber.org/zap"
)

const defaultMemoryCategory = "special"

type createMemoryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	MemoryDate  *string `json:"memory_date"`
}

type memoryResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	MemoryDate  *string `json:"memory_date"`
}

func toMemoryResponse(m *database.Memory) memoryResponse {
	resp := memoryResponse{ID: m.ID, Title: m.Title}
	if m.Description.Valid {
		resp.Description = &m.Description.String
	}
	if m.Category.Valid {
		resp.Category = &m.Category.String
	}
	if m.MemoryDate.Valid {
		date := m.MemoryDate.Time.Format(time.DateOnly)
		resp.MemoryDate = &date
	}
	return resp
}

// HandleListMemories returns memories as JSON, optionally filtered by ?category=
func HandleListMemories(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			memories []*database.Memory
			err      error
		)
		if category := r.URL.Query().Get("category"); category != "" {
			memories, err = s.GetDB().ListMemoriesByCategory(r.Context(), category)
		} else {
			memories, err = s.GetDB().ListMemories(r.Context())
		}
		if err != nil {
			s.GetLogger().Error("failed to list memories", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load memories")
			return
		}

		out := make([]memoryResponse, 0, len(memories))
		for _, m := range memories {
			out = append(out, toMemoryResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// HandleCreateMemory stores a memory. A missing memory_date means today.
func HandleCreateMemory(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMemoryRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := requireField("title", req.Title); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		now := s.Now()
		memoryDate := now.UTC()
		if dateStr := stringOr(req.MemoryDate, ""); dateStr != "" {
			parsed, err := time.Parse(time.DateOnly, dateStr)
			if err != nil {
				writeError(w, http.StatusBadRequest, "memory_date must be formatted as YYYY-MM-DD")
				return
			}
			memoryDate = parsed
		}

		memory := &database.Memory{
			Title:      *req.Title,
			MemoryDate: sql.NullTime{Time: database.DateOnly(memoryDate), Valid: true},
			Category:   sql.NullString{String: stringOr(req.Category, defaultMemoryCategory), Valid: true},
			CreatedAt:  now,
		}
		if req.Description != nil {
			memory.Description = sql.NullString{String: *req.Description, Valid: true}
		}

		id, err := s.GetDB().CreateMemory(r.Context(), memory)
		if err != nil {
			s.GetLogger().Error("failed to create memory", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to save memory")
			return
		}

		writeJSON(w, http.StatusOK, createdResponse{Success: true, ID: id})
	}
}
