package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	detector := NewSuspiciousActivityDetector()
	handler := AuthMiddleware(apiKey, nil, detector)(okHandler())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Best Case: valid API key", apiKey, "/api/v1/board", http.StatusOK},
		{"Error Case: invalid API key", "wrong-key", "/api/v1/board", http.StatusUnauthorized},
		{"Error Case: missing API key", "", "/api/v1/admin/reset", http.StatusUnauthorized},
		{"Edge Case: public healthz", "", "/healthz", http.StatusOK},
		{"Edge Case: public metrics", "", "/metrics", http.StatusOK},
		{"Edge Case: public version", "", "/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 2, detector.failedAuthByIP["192.0.2.1"])
}

func TestAuthMiddleware_EmptyKeyDisablesAuth(t *testing.T) {
	handler := AuthMiddleware("", nil, NewSuspiciousActivityDetector())(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/reset", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"Best Case: direct connection", "203.0.113.7:5555", "", nil, "203.0.113.7"},
		{"Error Case: untrusted forwarded header ignored", "203.0.113.7:5555", "198.51.100.1", nil, "203.0.113.7"},
		{"Best Case: trusted proxy uses rightmost hop", "10.0.0.1:80", "198.51.100.1, 198.51.100.2", []string{"10.0.0.1"}, "198.51.100.2"},
		{"Edge Case: trusted proxy without header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"Edge Case: unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		var tooLarge *http.MaxBytesError
		if _, err := r.Body.Read(buf); errors.As(err, &tooLarge) {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", stringsReader("this body is far too long")))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSuspiciousActivityDetector_WindowReset(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	now := time.Now()
	detector.now = func() time.Time { return now }

	for i := 0; i < RequestRateLimit; i++ {
		assert.True(t, detector.RecordRequest("ip"))
	}
	assert.False(t, detector.RecordRequest("ip"))

	now = now.Add(DetectorWindow + time.Second)
	assert.True(t, detector.RecordRequest("ip"))
}
