package conversation

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/nztours/travel-ai-platform/internal/observability/metrics"
	"github.com/nztours/travel-ai-platform/pkg/logging"
)

// apologyText is returned to the user when the pipeline fails after input
// validation. The underlying error still reaches the caller for logging.
const apologyText = "I apologize, but I'm having trouble processing your request right now. " +
	"Please try again, or contact our customer service team at +64 9 123 4567 for immediate assistance."

// Reply is the outcome of processing one chat message.
type Reply struct {
	Text         string
	Intent       Intent
	Rejected     bool
	RejectReason string
	Sources      []ScoredDocument
}

// Service orchestrates the chat pipeline: input validation, intent
// classification, retrieval-augmented generation, output redaction, and
// session history logging.
type Service struct {
	guardrails *Guardrails
	classifier *IntentClassifier
	responder  *Responder
	retriever  Retriever
	history    HistoryStore
	metrics    *metrics.ConversationMetrics
	logger     *logging.Logger
	tracer     trace.Tracer
}

func NewService(
	guardrails *Guardrails,
	classifier *IntentClassifier,
	responder *Responder,
	retriever Retriever,
	history HistoryStore,
	m *metrics.ConversationMetrics,
	logger *logging.Logger,
) *Service {
	if guardrails == nil {
		panic("conversation: guardrails cannot be nil")
	}
	if classifier == nil {
		panic("conversation: classifier cannot be nil")
	}
	if responder == nil {
		panic("conversation: responder cannot be nil")
	}
	if retriever == nil {
		panic("conversation: retriever cannot be nil")
	}
	if history == nil {
		history = NewMemoryHistoryStore()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Service{
		guardrails: guardrails,
		classifier: classifier,
		responder:  responder,
		retriever:  retriever,
		history:    history,
		metrics:    m,
		logger:     logger,
		tracer:     otel.Tracer("nztours.internal.conversation.service"),
	}
}

// ProcessMessage runs one user message through the full pipeline. Rejected
// input produces a Reply with Rejected set and no error; the rejected text
// is never logged to the session transcript. Pipeline failures after
// validation return an apology Reply together with the typed error, and the
// apology is logged as the assistant turn so the transcript stays coherent.
func (s *Service) ProcessMessage(ctx context.Context, sessionID, message string) (Reply, error) {
	ctx, span := s.tracer.Start(ctx, "conversation.process_message")
	defer span.End()

	if err := s.guardrails.ValidateInput(message); err != nil {
		var rejected *InputRejectedError
		if errors.As(err, &rejected) {
			s.metrics.ObserveRejection(rejected.Reason)
			s.logger.Warn("message rejected by input validation",
				"session_id", sessionID,
				"reason", rejected.Reason,
			)
			return Reply{Rejected: true, RejectReason: rejected.Reason}, nil
		}
		return Reply{}, err
	}

	intent, err := s.classifier.Classify(ctx, message)
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveMessage("unknown", "error")
		s.logger.Error("intent classification failed",
			"session_id", sessionID,
			"error", err.Error(),
		)
		return s.apologize(ctx, sessionID, message, IntentHumanAgent), &GenerationError{Err: err}
	}

	text, docs, err := s.responder.Respond(ctx, intent, message)
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveMessage(string(intent), "error")
		s.logger.Error("response generation failed",
			"session_id", sessionID,
			"intent", string(intent),
			"error", err.Error(),
		)
		return s.apologize(ctx, sessionID, message, intent), err
	}

	text = s.guardrails.RedactOutput(text)

	now := time.Now().UTC()
	if err := s.history.Append(ctx, sessionID,
		ChatTurn{Role: ChatRoleUser, Content: message, Timestamp: now},
		ChatTurn{Role: ChatRoleAssistant, Content: text, Intent: intent, Timestamp: now},
	); err != nil {
		// History is best-effort; the user still gets their answer.
		s.logger.Warn("failed to log session history",
			"session_id", sessionID,
			"error", err.Error(),
		)
	}

	s.metrics.ObserveMessage(string(intent), "ok")
	return Reply{Text: text, Intent: intent, Sources: docs}, nil
}

func (s *Service) apologize(ctx context.Context, sessionID, message string, intent Intent) Reply {
	now := time.Now().UTC()
	if err := s.history.Append(ctx, sessionID,
		ChatTurn{Role: ChatRoleUser, Content: message, Timestamp: now},
		ChatTurn{Role: ChatRoleAssistant, Content: apologyText, Intent: intent, Timestamp: now},
	); err != nil {
		s.logger.Warn("failed to log session history",
			"session_id", sessionID,
			"error", err.Error(),
		)
	}
	return Reply{Text: apologyText, Intent: intent}
}

// History returns the most recent n turns for a session.
func (s *Service) History(ctx context.Context, sessionID string, n int) ([]ChatTurn, error) {
	return s.history.Tail(ctx, sessionID, n)
}

// ClearHistory erases a session's transcript.
func (s *Service) ClearHistory(ctx context.Context, sessionID string) error {
	return s.history.Clear(ctx, sessionID)
}

// Search runs a raw similarity query against the knowledge index, bypassing
// classification and generation. Used by the diagnostic search endpoint.
func (s *Service) Search(ctx context.Context, query string, topK int) ([]ScoredDocument, error) {
	if err := s.guardrails.ValidateInput(query); err != nil {
		return nil, err
	}
	docs, err := s.retriever.Search(ctx, query, topK)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}
	return docs, nil
}
