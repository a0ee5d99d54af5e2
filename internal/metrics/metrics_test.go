package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	c.Handler().ServeHTTP(w, req)

	body, err := io.ReadAll(w.Result().Body)
	if err != nil {
		t.Fatalf("failed to read metrics body: %v", err)
	}
	return string(body)
}

func TestCollector_RecordRequest(t *testing.T) {
	c := NewCollector()

	c.RecordRequest(http.MethodGet, "/api/users", http.StatusOK, 10*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/api/users", http.StatusOK, 20*time.Millisecond)

	body := scrape(t, c)

	if !strings.Contains(body, `userboard_http_requests_total{method="GET",path="/api/users",status="200"} 2`) {
		t.Errorf("metrics output missing request counter:\n%s", body)
	}
	if !strings.Contains(body, "userboard_http_request_duration_seconds") {
		t.Error("metrics output missing duration histogram")
	}
}

func TestCollector_RecordSignupAndLogin(t *testing.T) {
	c := NewCollector()

	c.RecordSignup("success")
	c.RecordSignup("failure")
	c.RecordLogin("success")

	body := scrape(t, c)

	if !strings.Contains(body, `userboard_signups_total{result="success"} 1`) {
		t.Errorf("metrics output missing signup success counter:\n%s", body)
	}
	if !strings.Contains(body, `userboard_signups_total{result="failure"} 1`) {
		t.Errorf("metrics output missing signup failure counter:\n%s", body)
	}
	if !strings.Contains(body, `userboard_logins_total{result="success"} 1`) {
		t.Errorf("metrics output missing login counter:\n%s", body)
	}
}

// 専用レジストリのため、複数のCollectorを同一プロセスで生成しても衝突しない
func TestNewCollector_IndependentRegistries(t *testing.T) {
	c1 := NewCollector()
	c2 := NewCollector()

	c1.RecordSignup("success")

	if strings.Contains(scrape(t, c2), `userboard_signups_total{result="success"} 1`) {
		t.Error("collectors should not share a registry")
	}
}

// --- ミドルウェアテスト ---

func TestNewHTTPMiddleware_UsesRoutePattern(t *testing.T) {
	c := NewCollector()

	r := chi.NewRouter()
	r.Use(NewHTTPMiddleware(c))
	r.Delete("/api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/users/2f9c3a62-8d1e-4b6f-9a27-5c1e8f0d3b41", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	body := scrape(t, c)

	// 生のパスではなくルートパターンがラベルになる（カーディナリティ抑制）
	if !strings.Contains(body, `path="/api/users/{id}"`) {
		t.Errorf("metrics should use the route pattern as path label:\n%s", body)
	}
	if strings.Contains(body, "2f9c3a62") {
		t.Error("metrics must not contain raw path parameters")
	}
}

func TestNewHTTPMiddleware_RecordsSignupOutcome(t *testing.T) {
	c := NewCollector()

	r := chi.NewRouter()
	r.Use(NewHTTPMiddleware(c))
	r.Post("/api/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	r.Post("/api/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/signup", nil))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", nil))

	body := scrape(t, c)

	if !strings.Contains(body, `userboard_signups_total{result="failure"} 1`) {
		t.Errorf("409 signup should be recorded as failure:\n%s", body)
	}
	if !strings.Contains(body, `userboard_logins_total{result="success"} 1`) {
		t.Errorf("200 login should be recorded as success:\n%s", body)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "success"},
		{http.StatusCreated, "success"},
		{http.StatusConflict, "failure"},
		{http.StatusUnauthorized, "failure"},
		{http.StatusInternalServerError, "failure"},
	}

	for _, tt := range tests {
		if got := outcome(tt.status); got != tt.want {
			t.Errorf("outcome(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
