package cmd

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/menulens/menulens-cli/internal/llm"
)

// failingCompleter always errors, standing in for a provider rejecting the
// API key.
type failingCompleter struct {
	calls int
	err   error
}

func (f *failingCompleter) Complete(_ context.Context, _ llm.ChatRequest) (string, error) {
	f.calls++
	return "", f.err
}

func TestAskOnceSubstitutesErrorText(t *testing.T) {
	stub := &failingCompleter{err: &llm.AuthError{ServiceError: &llm.ServiceError{Message: "invalid api key"}}}
	svc := llm.NewService(stub, "m")

	answer := askOnce(svc, "how much fat?", "food data: 2 items")
	if !strings.Contains(answer, "invalid api key") {
		t.Errorf("answer should carry the service error text, got %q", answer)
	}
	if !strings.HasPrefix(answer, "(no answer:") {
		t.Errorf("answer should be the substitute form, got %q", answer)
	}
}

func TestRunChatLoopContinuesAfterAuthError(t *testing.T) {
	food, drinks := testDatasets(t)
	stub := &failingCompleter{err: &llm.AuthError{ServiceError: &llm.ServiceError{Message: "invalid api key"}}}
	svc := llm.NewService(stub, "m")

	script := "how much fat?\nwhich drink is lightest?\nq\n"
	var out strings.Builder
	runChatLoop(bufio.NewReader(strings.NewReader(script)), &out, svc, food, drinks)

	got := out.String()
	if n := strings.Count(got, "(no answer:"); n != 2 {
		t.Fatalf("substitute answers printed %d times, want 2:\n%s", n, got)
	}
	if !strings.Contains(got, "invalid api key") {
		t.Errorf("error text missing from output:\n%s", got)
	}
	if stub.calls != 2 {
		t.Errorf("provider called %d times, want 2 (loop should keep accepting input)", stub.calls)
	}
	if !strings.Contains(got, "Returning to menu...") {
		t.Errorf("loop did not return to menu on quit:\n%s", got)
	}
}
