package handlers

import (
	"net/http"

	"github.com/AlexTLDR/valentine/internal/database"
	"go.uber.org/zap"
)

// noteDateFormat renders created_at as e.g. "February 05, 2026"
const noteDateFormat = "January 02, 2006"

type createNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsSecret *bool   `json:"is_secret"`
}

type noteResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// HandleListLoveNotes returns the public notes as JSON, newest first
func HandleListLoveNotes(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := s.GetDB().ListNotes(r.Context(), false)
		if err != nil {
			s.GetLogger().Error("failed to list love notes", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load love notes")
			return
		}

		out := make([]noteResponse, 0, len(notes))
		for _, n := range notes {
			out = append(out, noteResponse{
				ID:        n.ID,
				Title:     n.Title,
				Content:   n.Content,
				CreatedAt: n.CreatedAt.Format(noteDateFormat),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// HandleCreateLoveNote stores a public or secret note
func HandleCreateLoveNote(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createNoteRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := requireField("title", req.Title); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := requireField("content", req.Content); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		note := &database.Note{
			Title:     *req.Title,
			Content:   *req.Content,
			IsSecret:  req.IsSecret != nil && *req.IsSecret,
			CreatedAt: s.Now(),
		}
		id, err := s.GetDB().CreateNote(r.Context(), note)
		if err != nil {
			s.GetLogger().Error("failed to create love note", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to save love note")
			return
		}

		writeJSON(w, http.StatusOK, createdResponse{Success: true, ID: id})
	}
}
