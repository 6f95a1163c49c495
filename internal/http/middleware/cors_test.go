package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS_OriginMatching(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"exact match", []string{"https://www.nztours.co.nz"}, "https://www.nztours.co.nz", true},
		{"exact mismatch", []string{"https://www.nztours.co.nz"}, "https://evil.example.com", false},
		{"wildcard subdomain", []string{"https://*.nztours.co.nz"}, "https://chat.nztours.co.nz", true},
		{"wildcard requires a subdomain", []string{"https://*.nztours.co.nz"}, "https://nztours.co.nz", false},
		{"wildcard scheme mismatch", []string{"https://*.nztours.co.nz"}, "http://chat.nztours.co.nz", false},
		{"wildcard rejects lookalike domain", []string{"https://*.nztours.co.nz"}, "https://notnztours.co.nz", false},
		{"allow any", []string{"*"}, "https://anywhere.example.com", true},
		{"no origins configured", nil, "https://www.nztours.co.nz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(tt.allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/chat/message", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if tt.want {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "Content-Type, X-Session-Id", rec.Header().Get("Access-Control-Allow-Headers"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	nextCalled := false
	handler := CORS([]string{"https://www.nztours.co.nz"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/chat/message", nil)
	req.Header.Set("Origin", "https://www.nztours.co.nz")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, nextCalled)
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}
