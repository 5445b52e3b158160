package server

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusTeapot)
	})

	tests := []struct {
		name        string
		allowed     []string
		method      string
		headers     map[string]string
		wantStatus  int
		wantOrigin  string
		wantMethods string
	}{
		{
			name:       "no origin passes through",
			allowed:    []string{"https://app.example"},
			method:     nethttp.MethodGet,
			wantStatus: nethttp.StatusTeapot,
		},
		{
			name:       "allowed origin",
			allowed:    []string{"https://app.example"},
			method:     nethttp.MethodGet,
			headers:    map[string]string{"Origin": "https://app.example"},
			wantStatus: nethttp.StatusTeapot,
			wantOrigin: "https://app.example",
		},
		{
			name:       "trailing slash in allow-list",
			allowed:    []string{"https://app.example/"},
			method:     nethttp.MethodGet,
			headers:    map[string]string{"Origin": "https://app.example"},
			wantStatus: nethttp.StatusTeapot,
			wantOrigin: "https://app.example",
		},
		{
			name:       "unknown origin",
			allowed:    []string{"https://app.example"},
			method:     nethttp.MethodGet,
			headers:    map[string]string{"Origin": "https://evil.example"},
			wantStatus: nethttp.StatusForbidden,
		},
		{
			name:    "preflight",
			allowed: []string{"https://app.example"},
			method:  nethttp.MethodOptions,
			headers: map[string]string{
				"Origin":                        "https://app.example",
				"Access-Control-Request-Method": "DELETE",
			},
			wantStatus:  nethttp.StatusNoContent,
			wantOrigin:  "https://app.example",
			wantMethods: corsAllowedMethods,
		},
		{
			name:       "defaults when unconfigured",
			method:     nethttp.MethodGet,
			headers:    map[string]string{"Origin": "https://tiny-link-xi.vercel.app"},
			wantStatus: nethttp.StatusTeapot,
			wantOrigin: "https://tiny-link-xi.vercel.app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(tt.method, "/api/links", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			// Act
			CORS(tt.allowed)(next).ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethods, rec.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}
