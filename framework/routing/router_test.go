package routing_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-beans/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Get(t *testing.T) {
	r := routing.New(zerolog.Nop())
	r.Get("/hello", okHandler)

	rr := do(t, r, http.MethodGet, "/hello")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /hello: got %d want 200", rr.Code)
	}

	rr = do(t, r, http.MethodPost, "/hello")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /hello: got %d want 405", rr.Code)
	}
}

// ── 404 for unregistered routes ──────────────────────────────────────────────

func TestRouter_NotFound(t *testing.T) {
	r := routing.New(zerolog.Nop())
	rr := do(t, r, http.MethodGet, "/not-registered")
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestRouter_CustomNotFound(t *testing.T) {
	r := routing.New(zerolog.Nop())
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := do(t, r, http.MethodGet, "/missing")
	if rr.Code != http.StatusTeapot {
		t.Errorf("expected 418, got %d", rr.Code)
	}
}

// ── Route params ─────────────────────────────────────────────────────────────

func TestRouter_Param(t *testing.T) {
	r := routing.New(zerolog.Nop())
	r.Get("/beans/{type}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(routing.Param(req, "type")))
	})

	rr := do(t, r, http.MethodGet, "/beans/demo.ServiceA")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	if rr.Body.String() != "demo.ServiceA" {
		t.Errorf("got body %q want %q", rr.Body.String(), "demo.ServiceA")
	}
}

// ── Prefix / Middleware ───────────────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := routing.New(zerolog.Nop())
	r.Prefix("/api", func(api *routing.Router) {
		api.Get("/beans", okHandler)
	})

	if rr := do(t, r, http.MethodGet, "/api/beans"); rr.Code != http.StatusOK {
		t.Errorf("GET /api/beans: got %d want 200", rr.Code)
	}
	if rr := do(t, r, http.MethodGet, "/beans"); rr.Code != http.StatusNotFound {
		t.Errorf("GET /beans: expected 404, got %d", rr.Code)
	}
}

func TestRouter_Middleware(t *testing.T) {
	r := routing.New(zerolog.Nop())
	r.Middleware(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Beans", "1")
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/", okHandler)

	if rr := do(t, r, http.MethodGet, "/"); rr.Header().Get("X-Beans") != "1" {
		t.Error("middleware did not run")
	}
}

func TestRouter_RecoversPanics(t *testing.T) {
	r := routing.New(zerolog.Nop())
	r.Get("/boom", func(w http.ResponseWriter, req *http.Request) { panic("boom") })

	if rr := do(t, r, http.MethodGet, "/boom"); rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
}

// ── Request logging ───────────────────────────────────────────────────────────

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := routing.New(zerolog.New(&buf))
	r.Get("/hello", okHandler)

	do(t, r, http.MethodGet, "/hello")
	do(t, r, http.MethodGet, "/missing")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"level":"info"`) || !strings.Contains(lines[0], `"status":200`) {
		t.Errorf("unexpected line: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"level":"warn"`) || !strings.Contains(lines[1], `"path":"/missing"`) {
		t.Errorf("unexpected line: %s", lines[1])
	}
}
