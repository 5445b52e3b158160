package server

import (
	"net/http"
	"strings"

	"tinylink/pkg/apierror"

	"github.com/samber/lo"
)

// DefaultAllowedOrigins is used when no allow-list is configured.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"https://tiny-link-xi.vercel.app",
}

const corsAllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"

// CORS returns a filter enforcing an origin allow-list. Requests without an
// Origin header pass untouched; unknown origins are rejected with 403.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = DefaultAllowedOrigins
	}
	allowed := lo.SliceToMap(allowedOrigins, func(origin string) (string, struct{}) {
		return strings.TrimSuffix(origin, "/"), struct{}{}
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := allowed[origin]; !ok {
				apierror.Write(w, http.StatusForbidden, apierror.New(apierror.MessageCORS, apierror.ReasonCORS))
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", corsAllowedMethods)
				if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
					h.Set("Access-Control-Allow-Headers", reqHeaders)
					h.Add("Vary", "Access-Control-Request-Headers")
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
