package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecovery_NoPanic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	called := false

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	Recovery(logger)(handler).ServeHTTP(rec, req)

	if !called {
		t.Error("expected handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestRecovery_Panic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("something went wrong"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/get-game", nil)
	rec := httptest.NewRecorder()

	Recovery(logger)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected JSON content type, got %q", got)
	}

	body := strings.TrimSpace(rec.Body.String())
	if body != `{"error":"Server error: internal error"}` {
		t.Errorf("unexpected body %q", body)
	}
}

func TestRecovery_LogsPanicValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("string error message")
	})

	req := httptest.NewRequest(http.MethodGet, "/error-path", nil)
	Recovery(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	for _, want := range []string{"panic recovered", "string error message", "/error-path", "stack="} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("expected log to contain %q, got %q", want, logOutput)
		}
	}
}

func TestRecovery_AbortHandlerRepanics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("expected http.ErrAbortHandler to propagate, got %v", rec)
		}
	}()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	Recovery(logger)(handler).ServeHTTP(httptest.NewRecorder(), req)
}
