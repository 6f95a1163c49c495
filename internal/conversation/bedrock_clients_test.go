package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConverseAPI struct {
	output *bedrockruntime.ConverseOutput
	err    error

	lastInput *bedrockruntime.ConverseInput
}

func (s *stubConverseAPI) Converse(_ context.Context, params *bedrockruntime.ConverseInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error) {
	s.lastInput = params
	return s.output, s.err
}

func converseTextOutput(text string) *bedrockruntime.ConverseOutput {
	return &bedrockruntime.ConverseOutput{
		Output: &brtypes.ConverseOutputMemberMessage{
			Value: brtypes.Message{
				Role: brtypes.ConversationRoleAssistant,
				Content: []brtypes.ContentBlock{
					&brtypes.ContentBlockMemberText{Value: text},
				},
			},
		},
		StopReason: brtypes.StopReasonEndTurn,
		Usage: &brtypes.TokenUsage{
			InputTokens:  aws.Int32(120),
			OutputTokens: aws.Int32(40),
			TotalTokens:  aws.Int32(160),
		},
	}
}

func TestBedrockLLMClient_Complete(t *testing.T) {
	api := &stubConverseAPI{output: converseTextOutput("  Kia ora! How can I help?  ")}
	client := NewBedrockLLMClient(api)

	resp, err := client.Complete(context.Background(), LLMRequest{
		Model:  "anthropic.claude-3-haiku-20240307-v1:0",
		System: []string{"You are a travel assistant."},
		Messages: []ChatMessage{
			{Role: ChatRoleUser, Content: "hello"},
			{Role: ChatRoleAssistant, Content: "hi"},
			{Role: ChatRoleUser, Content: "flights to Queenstown?"},
		},
		MaxTokens:   800,
		Temperature: 0.2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Kia ora! How can I help?", resp.Text)
	assert.Equal(t, "end_turn", resp.StopReason)
	assert.Equal(t, int32(120), resp.Usage.InputTokens)
	assert.Equal(t, int32(160), resp.Usage.TotalTokens)

	in := api.lastInput
	require.NotNil(t, in)
	assert.Equal(t, "anthropic.claude-3-haiku-20240307-v1:0", aws.ToString(in.ModelId))
	require.Len(t, in.System, 1)
	require.Len(t, in.Messages, 3)
	assert.Equal(t, brtypes.ConversationRoleUser, in.Messages[0].Role)
	assert.Equal(t, brtypes.ConversationRoleAssistant, in.Messages[1].Role)
	require.NotNil(t, in.InferenceConfig)
	assert.Equal(t, int32(800), aws.ToInt32(in.InferenceConfig.MaxTokens))
}

func TestBedrockLLMClient_SystemRoleMessagesBecomeSystemBlocks(t *testing.T) {
	api := &stubConverseAPI{output: converseTextOutput("ok")}
	client := NewBedrockLLMClient(api)

	_, err := client.Complete(context.Background(), LLMRequest{
		Model: "test-model",
		Messages: []ChatMessage{
			{Role: ChatRoleSystem, Content: "be brief"},
			{Role: ChatRoleUser, Content: "hello"},
		},
		Temperature: -1,
	})
	require.NoError(t, err)

	assert.Len(t, api.lastInput.System, 1)
	assert.Len(t, api.lastInput.Messages, 1)
}

func TestBedrockLLMClient_Errors(t *testing.T) {
	t.Run("missing model", func(t *testing.T) {
		client := NewBedrockLLMClient(&stubConverseAPI{})
		_, err := client.Complete(context.Background(), LLMRequest{})
		assert.Error(t, err)
	})

	t.Run("api error", func(t *testing.T) {
		client := NewBedrockLLMClient(&stubConverseAPI{err: errors.New("throttled")})
		_, err := client.Complete(context.Background(), LLMRequest{
			Model:    "test-model",
			Messages: []ChatMessage{{Role: ChatRoleUser, Content: "hi"}},
		})
		assert.Error(t, err)
	})

	t.Run("empty response", func(t *testing.T) {
		client := NewBedrockLLMClient(&stubConverseAPI{output: &bedrockruntime.ConverseOutput{}})
		_, err := client.Complete(context.Background(), LLMRequest{
			Model:    "test-model",
			Messages: []ChatMessage{{Role: ChatRoleUser, Content: "hi"}},
		})
		assert.Error(t, err)
	})
}

type stubInvokeModelAPI struct {
	bodies [][]byte
	err    error

	calls []*bedrockruntime.InvokeModelInput
}

func (s *stubInvokeModelAPI) InvokeModel(_ context.Context, params *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	s.calls = append(s.calls, params)
	if s.err != nil {
		return nil, s.err
	}
	body := s.bodies[0]
	if len(s.bodies) > 1 {
		s.bodies = s.bodies[1:]
	}
	return &bedrockruntime.InvokeModelOutput{Body: body}, nil
}

func TestBedrockEmbeddingClient_Embed(t *testing.T) {
	api := &stubInvokeModelAPI{bodies: [][]byte{
		[]byte(`{"embedding": [0.1, 0.2, 0.3]}`),
		[]byte(`{"embedding": [0.4, 0.5, 0.6]}`),
	}}
	client := NewBedrockEmbeddingClient(api)

	vectors, err := client.Embed(context.Background(), "amazon.titan-embed-text-v2:0",
		[]string{"first document", "second document"})
	require.NoError(t, err)

	require.Len(t, vectors, 2)
	assert.InDelta(t, 0.1, float64(vectors[0][0]), 1e-6)
	assert.InDelta(t, 0.6, float64(vectors[1][2]), 1e-6)

	require.Len(t, api.calls, 2)
	var payload struct {
		InputText string `json:"inputText"`
	}
	require.NoError(t, json.Unmarshal(api.calls[0].Body, &payload))
	assert.Equal(t, "first document", payload.InputText)
	assert.Equal(t, "amazon.titan-embed-text-v2:0", aws.ToString(api.calls[0].ModelId))
}

func TestBedrockEmbeddingClient_Errors(t *testing.T) {
	t.Run("missing model id", func(t *testing.T) {
		client := NewBedrockEmbeddingClient(&stubInvokeModelAPI{})
		_, err := client.Embed(context.Background(), " ", []string{"text"})
		assert.Error(t, err)
	})

	t.Run("empty embedding", func(t *testing.T) {
		client := NewBedrockEmbeddingClient(&stubInvokeModelAPI{bodies: [][]byte{[]byte(`{"embedding": []}`)}})
		_, err := client.Embed(context.Background(), "model", []string{"text"})
		assert.Error(t, err)
	})

	t.Run("no texts", func(t *testing.T) {
		client := NewBedrockEmbeddingClient(&stubInvokeModelAPI{})
		vectors, err := client.Embed(context.Background(), "model", nil)
		require.NoError(t, err)
		assert.Nil(t, vectors)
	})
}
