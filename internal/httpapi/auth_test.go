package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthDisabledWhenNoKeyConfigured(t *testing.T) {
	SetAPIKey("")
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestAuthRejectsMissingAndWrongKey(t *testing.T) {
	SetAPIKey("s3cret")
	defer SetAPIKey("")
	r := NewMux(&mockService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing key: status=%d", w.Code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(APIKeyHeader, "wrong")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong key: status=%d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(APIKeyHeader, "s3cret")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("correct key: status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthLeavesProbesOpen(t *testing.T) {
	SetAPIKey("s3cret")
	defer SetAPIKey("")
	r := NewMux(&mockService{ready: true})

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", path, w.Code)
		}
	}
}
