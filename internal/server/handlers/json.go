package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const maxBodyBytes = 1 << 20

// errorResponse is the body of every failed API call
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// createdResponse is returned by the create endpoints
type createdResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

// decodeJSON reads a single JSON object from the request body into dst.
// The returned error is safe to show to the client.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &syntaxErr):
			return fmt.Errorf("malformed JSON at position %d", syntaxErr.Offset)
		case errors.As(err, &typeErr):
			if typeErr.Field == "" {
				return errors.New("request body must be a JSON object")
			}
			return fmt.Errorf("invalid value for field %q", typeErr.Field)
		case errors.As(err, &maxErr):
			return errors.New("request body too large")
		default:
			return errors.New("invalid JSON body")
		}
	}

	return nil
}

// requireField reports a missing required field.
func requireField(name string, value *string) error {
	if value == nil {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
