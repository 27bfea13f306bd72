package server

import (
	"net/http"

	"github.com/AlexTLDR/valentine/internal/config"
	"github.com/AlexTLDR/valentine/internal/server/handlers"
	"github.com/gorilla/sessions"
)

const (
	sessionName       = "valentine-session"
	keyGirlfriendName = "girlfriend_name"
	keySaidYes        = "said_yes"
)

func newSessionStore(cfg *config.Config) *sessions.CookieStore {
	store := sessions.NewCookieStore(cfg.SessionSecret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// GetVisitor implements handlers.Server interface. A missing or undecodable
// cookie yields the zero Visitor.
func (s *Server) GetVisitor(r *http.Request) handlers.Visitor {
	session, _ := s.sessionStore.Get(r, sessionName)
	name, _ := session.Values[keyGirlfriendName].(string)
	saidYes, _ := session.Values[keySaidYes].(bool)
	return handlers.Visitor{Name: name, SaidYes: saidYes}
}

// SaveVisitor implements handlers.Server interface
func (s *Server) SaveVisitor(w http.ResponseWriter, r *http.Request, v handlers.Visitor) error {
	session, _ := s.sessionStore.Get(r, sessionName)
	session.Values[keyGirlfriendName] = v.Name
	session.Values[keySaidYes] = v.SaidYes
	return session.Save(r, w)
}
