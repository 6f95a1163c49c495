package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routingLLMClient answers classification requests (which carry a system
// prompt) with intentText and generation requests with genText.
type routingLLMClient struct {
	intentText string
	genText    string
	genErr     error

	lastGenPrompt string
}

func (r *routingLLMClient) Complete(_ context.Context, req LLMRequest) (LLMResponse, error) {
	if len(req.System) > 0 {
		return LLMResponse{Text: r.intentText}, nil
	}
	if r.genErr != nil {
		return LLMResponse{}, r.genErr
	}
	if len(req.Messages) > 0 {
		r.lastGenPrompt = req.Messages[len(req.Messages)-1].Content
	}
	return LLMResponse{Text: r.genText}, nil
}

func newTestService(t *testing.T, llm LLMClient) (*Service, *MemoryHistoryStore) {
	t.Helper()

	embedder := &stubEmbedder{vectors: map[string][]float32{
		"Air New Zealand domestic checked baggage: 23kg.": {1, 0},
		"Cancellation within 24 hours: full refund.":      {0, 1},
		"How much baggage can I take on my flight?":       {0.95, 0.05},
	}}
	store := NewMemoryVectorStore(embedder, "test-embed", nil)
	require.NoError(t, store.Add(context.Background(), []Document{
		{Content: "Air New Zealand domestic checked baggage: 23kg.", Metadata: map[string]string{"type": "baggage_policy"}},
		{Content: "Cancellation within 24 hours: full refund.", Metadata: map[string]string{"type": "cancellation_policy"}},
	}))

	history := NewMemoryHistoryStore()
	guardrails := NewGuardrails(2000)
	classifier := NewIntentClassifier(llm, "test-model", nil)
	responder := NewResponder(store, llm, ResponderConfig{ModelID: "test-model", TopK: 2}, nil, nil)

	return NewService(guardrails, classifier, responder, store, history, nil, nil), history
}

func TestService_ProcessMessage(t *testing.T) {
	llm := &routingLLMClient{
		intentText: "check_baggage_allowance",
		genText:    "You can check in 23kg on Air New Zealand domestic flights.",
	}
	service, history := newTestService(t, llm)

	reply, err := service.ProcessMessage(context.Background(), "s1", "How much baggage can I take on my flight?")
	require.NoError(t, err)

	assert.False(t, reply.Rejected)
	assert.Equal(t, IntentCheckBaggageAllowance, reply.Intent)
	assert.Equal(t, "You can check in 23kg on Air New Zealand domestic flights.", reply.Text)
	require.NotEmpty(t, reply.Sources)
	assert.Equal(t, "baggage_policy", reply.Sources[0].Metadata["type"])

	// The generation prompt carried the retrieved context and the question.
	assert.Contains(t, llm.lastGenPrompt, "Air New Zealand domestic checked baggage: 23kg.")
	assert.Contains(t, llm.lastGenPrompt, "How much baggage can I take on my flight?")

	// Both turns were logged.
	turns, err := history.Tail(context.Background(), "s1", 10)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, ChatRoleUser, turns[0].Role)
	assert.Equal(t, ChatRoleAssistant, turns[1].Role)
	assert.Equal(t, IntentCheckBaggageAllowance, turns[1].Intent)
}

func TestService_ProcessMessage_RejectedInputNotLogged(t *testing.T) {
	llm := &routingLLMClient{intentText: "check_in", genText: "ok"}
	service, history := newTestService(t, llm)

	reply, err := service.ProcessMessage(context.Background(), "s1", "DROP TABLE bookings")
	require.NoError(t, err)

	assert.True(t, reply.Rejected)
	assert.Equal(t, "Your message contains harmful content. Please try again.", reply.RejectReason)
	assert.Empty(t, reply.Text)

	turns, err := history.Tail(context.Background(), "s1", 10)
	require.NoError(t, err)
	assert.Empty(t, turns, "rejected input must not reach the transcript")
}

func TestService_ProcessMessage_GenerationFailureApologizes(t *testing.T) {
	llm := &routingLLMClient{
		intentText: "check_baggage_allowance",
		genErr:     errors.New("model unavailable"),
	}
	service, history := newTestService(t, llm)

	reply, err := service.ProcessMessage(context.Background(), "s1", "How much baggage can I take on my flight?")
	require.Error(t, err)

	var genErr *GenerationError
	assert.True(t, errors.As(err, &genErr))

	// The user still gets a usable reply.
	assert.Contains(t, reply.Text, "I apologize")
	assert.Contains(t, reply.Text, "+64 9 123 4567")
	assert.Equal(t, IntentCheckBaggageAllowance, reply.Intent)

	// The apology is logged so the transcript stays coherent.
	turns, tailErr := history.Tail(context.Background(), "s1", 10)
	require.NoError(t, tailErr)
	require.Len(t, turns, 2)
	assert.Equal(t, reply.Text, turns[1].Content)
}

func TestService_ProcessMessage_RedactsGeneratedOutput(t *testing.T) {
	llm := &routingLLMClient{
		intentText: "check_baggage_allowance",
		genText:    "We charged your card 4111 1111 1111 1111 for the excess baggage.",
	}
	service, _ := newTestService(t, llm)

	reply, err := service.ProcessMessage(context.Background(), "s1", "How much baggage can I take on my flight?")
	require.NoError(t, err)

	assert.NotContains(t, reply.Text, "4111")
	assert.Contains(t, reply.Text, "[CREDIT CARD REDACTED]")
}

func TestService_Search(t *testing.T) {
	llm := &routingLLMClient{intentText: "check_in", genText: "ok"}
	service, _ := newTestService(t, llm)

	docs, err := service.Search(context.Background(), "How much baggage can I take on my flight?", 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Air New Zealand domestic checked baggage: 23kg.", docs[0].Content)

	// Search applies the same input validation as chat.
	_, err = service.Search(context.Background(), "", 1)
	var rejected *InputRejectedError
	assert.True(t, errors.As(err, &rejected))
}

func TestService_ClearHistory(t *testing.T) {
	llm := &routingLLMClient{
		intentText: "check_baggage_allowance",
		genText:    "23kg checked baggage.",
	}
	service, _ := newTestService(t, llm)

	_, err := service.ProcessMessage(context.Background(), "s1", "How much baggage can I take on my flight?")
	require.NoError(t, err)

	require.NoError(t, service.ClearHistory(context.Background(), "s1"))

	turns, err := service.History(context.Background(), "s1", 5)
	require.NoError(t, err)
	assert.Empty(t, turns)
}
