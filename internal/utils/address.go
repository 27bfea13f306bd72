package utils

import (
	"net"
	"net/http"
	"strings"
)

// ClientAddress returns the best-effort network address of the client.
// With trustProxy the first X-Forwarded-For entry wins. Returns "" when
// nothing usable is known.
func ClientAddress(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if first = strings.TrimSpace(first); first != "" {
				return first
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
