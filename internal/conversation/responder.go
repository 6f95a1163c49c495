package conversation

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/nztours/travel-ai-platform/internal/observability/metrics"
	"github.com/nztours/travel-ai-platform/pkg/logging"
)

// ResponderConfig tunes the retrieval and generation stages.
type ResponderConfig struct {
	ModelID           string
	TopK              int
	RetrievalTimeout  time.Duration
	GenerationTimeout time.Duration
	Temperature       float32
	MaxOutputTokens   int32
}

func (c *ResponderConfig) applyDefaults() {
	if c.TopK <= 0 {
		c.TopK = 3
	}
	if c.RetrievalTimeout <= 0 {
		c.RetrievalTimeout = 10 * time.Second
	}
	if c.GenerationTimeout <= 0 {
		c.GenerationTimeout = 30 * time.Second
	}
	if c.MaxOutputTokens <= 0 {
		c.MaxOutputTokens = 800
	}
}

// Responder runs the retrieval-augmented answer stage: search the index,
// build the intent-conditioned prompt, and generate with the LLM.
type Responder struct {
	retriever Retriever
	llm       LLMClient
	cfg       ResponderConfig
	metrics   *metrics.ConversationMetrics
	logger    *logging.Logger
	tracer    trace.Tracer
}

func NewResponder(retriever Retriever, llm LLMClient, cfg ResponderConfig, m *metrics.ConversationMetrics, logger *logging.Logger) *Responder {
	if retriever == nil {
		panic("conversation: retriever cannot be nil")
	}
	if llm == nil {
		panic("conversation: LLM client cannot be nil")
	}
	if cfg.ModelID == "" {
		panic("conversation: responder model id cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}
	cfg.applyDefaults()

	return &Responder{
		retriever: retriever,
		llm:       llm,
		cfg:       cfg,
		metrics:   m,
		logger:    logger,
		tracer:    otel.Tracer("nztours.internal.conversation.responder"),
	}
}

// Respond retrieves supporting documents for the query and generates the
// answer conditioned on the intent. Errors are typed: *RetrievalError for
// the search stage, *GenerationError for the model stage.
func (r *Responder) Respond(ctx context.Context, intent Intent, query string) (string, []ScoredDocument, error) {
	ctx, span := r.tracer.Start(ctx, "conversation.respond")
	defer span.End()

	retrievalCtx, cancel := context.WithTimeout(ctx, r.cfg.RetrievalTimeout)
	retrievalStart := time.Now()
	docs, err := r.retriever.Search(retrievalCtx, query, r.cfg.TopK)
	cancel()
	r.metrics.ObserveRetrievalLatency(time.Since(retrievalStart).Seconds())
	if err != nil {
		span.RecordError(err)
		return "", nil, &RetrievalError{Err: err}
	}

	prompt := BuildPrompt(intent, docs, query)

	genCtx, cancel := context.WithTimeout(ctx, r.cfg.GenerationTimeout)
	defer cancel()

	genStart := time.Now()
	resp, err := r.llm.Complete(genCtx, LLMRequest{
		Model:       r.cfg.ModelID,
		Messages:    []ChatMessage{{Role: ChatRoleUser, Content: prompt}},
		MaxTokens:   r.cfg.MaxOutputTokens,
		Temperature: r.cfg.Temperature,
	})
	r.metrics.ObserveGenerationLatency(string(intent), time.Since(genStart).Seconds())
	if err != nil {
		span.RecordError(err)
		return "", docs, &GenerationError{Err: err}
	}

	r.logger.Debug("generated response",
		"intent", string(intent),
		"documents", len(docs),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)
	return resp.Text, docs, nil
}
