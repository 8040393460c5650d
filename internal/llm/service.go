package llm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DefaultModel is the Groq model used when no model is configured.
const DefaultModel = "llama-3.3-70b-versatile"

// systemPrompt frames the assistant as a nutrition analyst over the loaded
// datasets.
const systemPrompt = `You are a nutritional analysis expert that provides clear, data-driven insights about Starbucks's food and drink items.

Guidelines:
- Analyze the provided dataset to answer user questions about nutritional content
- Provide specific statistics and comparisons when available
- Use simple language that general users can understand
- If the data doesn't contain the requested information, politely inform the user
- Keep responses concise and focused on the user's question
- When comparing items or categories, highlight key differences clearly`

// Completer is the narrow provider interface the service depends on, so
// tests can stub the network out.
type Completer interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// Exchange captures one question/answer round trip. Exchanges are ephemeral;
// nothing is persisted across turns.
type Exchange struct {
	ID       string
	Question string
	Context  string
	Answer   string
}

// Service answers natural-language questions about the datasets by sending a
// condensed data summary plus the verbatim question to the provider.
type Service struct {
	client      Completer
	model       string
	temperature float64
}

// NewService builds a Service around a Completer. An empty model selects
// DefaultModel.
func NewService(client Completer, model string) *Service {
	if model == "" {
		model = DefaultModel
	}
	return &Service{client: client, model: model}
}

// WithTemperature sets the sampling temperature sent with each request.
func (s *Service) WithTemperature(t float64) *Service {
	s.temperature = t
	return s
}

// Ask sends one question with the given dataset context and returns the
// completed exchange. Provider failures surface as *ServiceError variants;
// the caller reports them and keeps the chat loop running.
func (s *Service) Ask(ctx context.Context, question, dataContext string) (*Exchange, error) {
	user := question
	if dataContext != "" {
		user = fmt.Sprintf("Based on the provided data: %s, answer the following question: %s", dataContext, question)
	}
	answer, err := s.client.Complete(ctx, ChatRequest{
		Model:       s.model,
		Temperature: s.temperature,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return nil, err
	}
	return &Exchange{
		ID:       uuid.NewString(),
		Question: question,
		Context:  dataContext,
		Answer:   answer,
	}, nil
}
