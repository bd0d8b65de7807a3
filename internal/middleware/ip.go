package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ExtractIP returns the client IP address without port. The first entry of
// X-Forwarded-For wins, then X-Real-IP, then RemoteAddr.
//
// The proxy headers are trusted as sent; run the portal behind a reverse
// proxy that overwrites them, or clients can pick their own rate limit key.
func ExtractIP(r *http.Request) string {
	if first, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ","); strings.TrimSpace(first) != "" {
		return strings.TrimSpace(first)
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
