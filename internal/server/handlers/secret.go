package handlers

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

const (
	defaultSecretTitle   = "My Secret Love"
	defaultSecretContent = "I have a lifetime of love to share with you."
)

// Password is left untyped so a non-string value is a wrong password, not a bad request.
type checkSecretRequest struct {
	Password any `json:"password"`
}

type secretNote struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type checkSecretResponse struct {
	Success bool       `json:"success"`
	Note    secretNote `json:"note"`
}

// passwordMatches compares candidate against every accepted password in
// constant time. It is a shared passphrase, not authentication.
func passwordMatches(candidate string, accepted []string) bool {
	match := 0
	for _, p := range accepted {
		match |= subtle.ConstantTimeCompare([]byte(candidate), []byte(p))
	}
	return match == 1
}

// HandleCheckSecret unlocks the first secret note for the right password
func HandleCheckSecret(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkSecretRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		password, ok := req.Password.(string)
		if !ok || !passwordMatches(password, s.GetConfig().SecretPasswords) {
			writeError(w, http.StatusUnauthorized, "Incorrect password")
			return
		}

		note, err := s.GetDB().FirstSecretNote(r.Context())
		if err != nil {
			s.GetLogger().Error("failed to load secret note", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Failed to load secret note")
			return
		}

		resp := checkSecretResponse{
			Success: true,
			Note:    secretNote{Title: defaultSecretTitle, Content: defaultSecretContent},
		}
		if note != nil {
			resp.Note = secretNote{Title: note.Title, Content: note.Content}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
