package llm

import (
	"context"
	"strings"
	"testing"
)

// stubCompleter records the request and returns a canned answer or error.
type stubCompleter struct {
	req    ChatRequest
	answer string
	err    error
}

func (s *stubCompleter) Complete(_ context.Context, req ChatRequest) (string, error) {
	s.req = req
	return s.answer, s.err
}

func TestAskBuildsPrompt(t *testing.T) {
	stub := &stubCompleter{answer: "42 calories"}
	svc := NewService(stub, "test-model")

	exchange, err := svc.Ask(context.Background(), "What is the lightest drink?", "drinks data: 2 items")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if exchange.Answer != "42 calories" {
		t.Errorf("answer = %q", exchange.Answer)
	}
	if exchange.ID == "" {
		t.Error("exchange id should be set")
	}
	if stub.req.Model != "test-model" {
		t.Errorf("model = %q, want test-model", stub.req.Model)
	}
	if len(stub.req.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(stub.req.Messages))
	}
	if stub.req.Messages[0].Role != "system" || !strings.Contains(stub.req.Messages[0].Content, "nutritional analysis expert") {
		t.Errorf("unexpected system message: %+v", stub.req.Messages[0])
	}
	user := stub.req.Messages[1]
	if user.Role != "user" {
		t.Errorf("second message role = %q, want user", user.Role)
	}
	if !strings.Contains(user.Content, "What is the lightest drink?") {
		t.Errorf("user message missing the question: %q", user.Content)
	}
	if !strings.Contains(user.Content, "drinks data: 2 items") {
		t.Errorf("user message missing the data context: %q", user.Content)
	}
}

func TestAskSendsTemperature(t *testing.T) {
	stub := &stubCompleter{answer: "ok"}
	svc := NewService(stub, "m").WithTemperature(0.7)
	if _, err := svc.Ask(context.Background(), "q", ""); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if stub.req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", stub.req.Temperature)
	}
}

func TestAskWithoutContext(t *testing.T) {
	stub := &stubCompleter{answer: "ok"}
	svc := NewService(stub, "")
	if _, err := svc.Ask(context.Background(), "hello", ""); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if stub.req.Model != DefaultModel {
		t.Errorf("model = %q, want default %q", stub.req.Model, DefaultModel)
	}
	if got := stub.req.Messages[1].Content; got != "hello" {
		t.Errorf("user message = %q, want bare question", got)
	}
}

func TestAskPropagatesServiceError(t *testing.T) {
	stub := &stubCompleter{err: &AuthError{&ServiceError{Message: "bad key"}}}
	svc := NewService(stub, "m")
	_, err := svc.Ask(context.Background(), "q", "ctx")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "bad key") {
		t.Errorf("error should surface provider message, got %v", err)
	}
}
