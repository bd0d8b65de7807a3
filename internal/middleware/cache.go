package middleware

import (
	"net/http"
	"strings"
)

const (
	noStore      = "no-store"
	pageCache    = "public, max-age=300, must-revalidate"
	assetCache   = "public, max-age=86400"
	swaggerCache = "public, max-age=3600"
	apiCache     = "public, max-age=60, must-revalidate"
)

// cacheRule maps a path prefix, or an exact path when exact is set, to a
// Cache-Control value. The first matching rule wins.
type cacheRule struct {
	path  string
	exact bool
	value string
}

var cacheRules = []cacheRule{
	// Forms carry session values and confirmations carry issued references.
	{path: "/services/passport", exact: true, value: noStore},
	{path: "/services/license", exact: true, value: noStore},
	{path: "/contact", exact: true, value: noStore},
	{path: "/confirmation/", value: noStore},
	{path: "/metrics", exact: true, value: noStore},

	{path: "/static/", value: assetCache},
	{path: "/favicon.svg", exact: true, value: assetCache},
	{path: "/robots.txt", exact: true, value: assetCache},
	{path: "/swagger/", value: swaggerCache},
	{path: "/api/", value: apiCache},
}

// CacheControl sets Cache-Control by request path. Anything but GET and HEAD
// is never cached; pages without a rule are cached for five minutes.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Cache-Control", noStore)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Cache-Control", cacheValue(r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func cacheValue(path string) string {
	for _, rule := range cacheRules {
		if rule.exact && path == rule.path || !rule.exact && strings.HasPrefix(path, rule.path) {
			return rule.value
		}
	}
	return pageCache
}
