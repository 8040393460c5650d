package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testServer(t *testing.T, status int, header http.Header, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		for k, vals := range header {
			for _, v := range vals {
				w.Header().Add(k, v)
			}
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func okBody(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func errBody(msg string) map[string]any {
	return map[string]any{"error": map[string]any{"message": msg}}
}

func TestCompleteSuccess(t *testing.T) {
	srv := testServer(t, http.StatusOK, nil, okBody("hello"))
	c := NewClientWithBaseURL("key", 2*time.Second, srv.URL)
	got, err := c.Complete(context.Background(), ChatRequest{
		Model:    "test-model",
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "hello" {
		t.Fatalf("content = %q, want %q", got, "hello")
	}
}

func TestCompleteMissingAPIKey(t *testing.T) {
	c := NewClient("", time.Second)
	_, err := c.Complete(context.Background(), ChatRequest{Model: "m"})
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError for missing key, got %v", err)
	}
}

func TestCompleteInvalidKeyClassified(t *testing.T) {
	srv := testServer(t, http.StatusUnauthorized, nil, errBody("invalid api key"))
	c := NewClientWithBaseURL("bad", 2*time.Second, srv.URL)
	_, err := c.Complete(context.Background(), ChatRequest{Model: "m", Messages: []Message{{Role: "user", Content: "hi"}}})
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %v", err)
	}
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("auth error should unwrap to *ServiceError, got %v", err)
	}
	if svcErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", svcErr.StatusCode)
	}
}

func TestCompleteRateLimited(t *testing.T) {
	srv := testServer(t, http.StatusTooManyRequests, http.Header{"Retry-After": {"7"}}, errBody("slow down"))
	c := NewClientWithBaseURL("key", 2*time.Second, srv.URL)
	_, err := c.Complete(context.Background(), ChatRequest{Model: "m", Messages: []Message{{Role: "user", Content: "hi"}}})
	var rl *RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("expected *RateLimitError, got %v", err)
	}
	if rl.RetryAfter != 7*time.Second {
		t.Errorf("RetryAfter = %v, want 7s", rl.RetryAfter)
	}
}

func TestCompleteServerError(t *testing.T) {
	srv := testServer(t, http.StatusInternalServerError, nil, errBody("boom"))
	c := NewClientWithBaseURL("key", 2*time.Second, srv.URL)
	_, err := c.Complete(context.Background(), ChatRequest{Model: "m", Messages: []Message{{Role: "user", Content: "hi"}}})
	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ServerError, got %v", err)
	}
}

func TestCompleteErrorIncludesRequestID(t *testing.T) {
	srv := testServer(t, http.StatusBadRequest, http.Header{"X-Request-Id": {"req-123"}}, errBody("bad"))
	c := NewClientWithBaseURL("key", 2*time.Second, srv.URL)
	_, err := c.Complete(context.Background(), ChatRequest{Model: "m", Messages: []Message{{Role: "user", Content: "hi"}}})
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %v", err)
	}
	if svcErr.RequestID != "req-123" {
		t.Errorf("request id = %q, want req-123", svcErr.RequestID)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := testServer(t, http.StatusOK, nil, map[string]any{"choices": []any{}})
	c := NewClientWithBaseURL("key", 2*time.Second, srv.URL)
	_, err := c.Complete(context.Background(), ChatRequest{Model: "m", Messages: []Message{{Role: "user", Content: "hi"}}})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestCompleteNetworkError(t *testing.T) {
	c := NewClientWithBaseURL("key", 500*time.Millisecond, "http://127.0.0.1:1")
	_, err := c.Complete(context.Background(), ChatRequest{Model: "m", Messages: []Message{{Role: "user", Content: "hi"}}})
	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError for network failure, got %v", err)
	}
}
