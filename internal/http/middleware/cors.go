package middleware

import (
	"net/http"
	"strings"
)

// wildcardOrigin matches every subdomain of a site, e.g. the pattern
// "https://*.nztours.co.nz" matches "https://chat.nztours.co.nz".
type wildcardOrigin struct {
	prefix string // scheme, e.g. "https://"
	suffix string // parent domain with leading dot, e.g. ".nztours.co.nz"
}

func (w wildcardOrigin) matches(origin string) bool {
	return strings.HasPrefix(origin, w.prefix) &&
		strings.HasSuffix(origin, w.suffix) &&
		len(origin) > len(w.prefix)+len(w.suffix)
}

// CORS restricts browser access to the origins the chat widget is embedded
// on. Entries may be exact origins ("https://www.nztours.co.nz"), a
// wildcard-subdomain pattern ("https://*.nztours.co.nz"), or "*" to allow
// any origin during local development.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAny := false
	exact := map[string]struct{}{}
	var wildcards []wildcardOrigin
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		switch {
		case origin == "":
		case origin == "*":
			allowAny = true
		case strings.Contains(origin, "://*."):
			scheme, domain, _ := strings.Cut(origin, "://*.")
			wildcards = append(wildcards, wildcardOrigin{
				prefix: scheme + "://",
				suffix: "." + domain,
			})
		default:
			exact[origin] = struct{}{}
		}
	}

	// The widget only issues GET and POST; it carries no credentials, just
	// the session header.
	const allowedHeaders = "Content-Type, X-Session-Id"
	const allowedMethods = "GET, POST, OPTIONS"

	originAllowed := func(origin string) bool {
		if allowAny {
			return true
		}
		if _, ok := exact[origin]; ok {
			return true
		}
		for _, w := range wildcards {
			if w.matches(origin) {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin != "" && originAllowed(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
				w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
				w.Header().Set("Access-Control-Max-Age", "600")
			}

			// Handle preflight requests.
			if r.Method == http.MethodOptions && origin != "" && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
