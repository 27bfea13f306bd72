package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/AlexTLDR/valentine/internal/config"
	"github.com/AlexTLDR/valentine/internal/database"
	"github.com/AlexTLDR/valentine/internal/utils"
	"github.com/AlexTLDR/valentine/templates"
	"github.com/a-h/templ"
	"go.uber.org/zap"
)

// Server interface defines the methods needed by handlers
type Server interface {
	GetDB() *database.DB
	GetConfig() *config.Config
	GetLogger() *zap.Logger
	Now() time.Time
	GetVisitor(r *http.Request) Visitor
	SaveVisitor(w http.ResponseWriter, r *http.Request, v Visitor) error
}

// Visitor is what the session remembers about the last response.
type Visitor struct {
	Name    string
	SaidYes bool
}

// pageData gathers the layout data shared by every page
func pageData(s Server, r *http.Request) templates.Page {
	themes := config.GetThemes(s.GetConfig().StaticDir)
	visitor := s.GetVisitor(r)

	return templates.Page{
		LightTheme:     themes.Light,
		DarkTheme:      themes.Dark,
		GirlfriendName: visitor.Name,
		SaidYes:        visitor.SaidYes,
	}
}

// render buffers the page so a failed render never leaves a half-written 200
func render(s Server, w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		s.GetLogger().Error("failed to render page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// HandleHome renders the invitation page
func HandleHome(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(s, w, r, http.StatusOK, templates.Invitation(pageData(s, r)))
	}
}

// HandleLoveNotesPage renders all public notes, newest first
func HandleLoveNotesPage(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := s.GetDB().ListNotes(r.Context(), false)
		if err != nil {
			s.GetLogger().Error("failed to load love notes", zap.Error(err))
			http.Error(w, "Failed to load love notes", http.StatusInternalServerError)
			return
		}

		render(s, w, r, http.StatusOK, templates.LoveNotes(pageData(s, r), notes))
	}
}

// HandleMemoriesPage renders all memories, most recent date first
func HandleMemoriesPage(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memories, err := s.GetDB().ListMemories(r.Context())
		if err != nil {
			s.GetLogger().Error("failed to load memories", zap.Error(err))
			http.Error(w, "Failed to load memories", http.StatusInternalServerError)
			return
		}

		render(s, w, r, http.StatusOK, templates.Memories(pageData(s, r), memories))
	}
}

// HandleSecretNotePage renders the password form for the secret note
func HandleSecretNotePage(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(s, w, r, http.StatusOK, templates.SecretNote(pageData(s, r)))
	}
}

// HandleCountdown renders the days left until the next Valentine's Day
func HandleCountdown(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target, daysLeft := utils.NextValentine(s.Now())
		render(s, w, r, http.StatusOK, templates.Countdown(pageData(s, r), daysLeft, target))
	}
}

// HandleNotFound renders the not-found page for every unmatched route
func HandleNotFound(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(s, w, r, http.StatusNotFound, templates.NotFound(pageData(s, r)))
	}
}
