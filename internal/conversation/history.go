package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// ChatTurn is one logged exchange entry in a session transcript.
type ChatTurn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Intent    Intent    `json:"intent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryStore persists per-session transcripts.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, turns ...ChatTurn) error
	// Tail returns the most recent n turns in chronological order. Fewer
	// than n stored turns returns all of them; an unknown session returns
	// an empty slice, not an error.
	Tail(ctx context.Context, sessionID string, n int) ([]ChatTurn, error)
	Clear(ctx context.Context, sessionID string) error
}

// MemoryHistoryStore keeps transcripts in process memory. It is the default
// backend; history is lost on restart.
type MemoryHistoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]ChatTurn
}

func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{sessions: make(map[string][]ChatTurn)}
}

func (s *MemoryHistoryStore) Append(_ context.Context, sessionID string, turns ...ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], turns...)
	return nil
}

func (s *MemoryHistoryStore) Tail(_ context.Context, sessionID string, n int) ([]ChatTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[sessionID]
	if n <= 0 || n > len(turns) {
		n = len(turns)
	}
	out := make([]ChatTurn, n)
	copy(out, turns[len(turns)-n:])
	return out, nil
}

func (s *MemoryHistoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// RedisHistoryStore persists transcripts in Redis with a sliding TTL, so
// sessions survive restarts and expire after a period of inactivity.
type RedisHistoryStore struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

func NewRedisHistoryStore(client *redis.Client, ttl time.Duration, tracer trace.Tracer) *RedisHistoryStore {
	if client == nil {
		panic("conversation: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if tracer == nil {
		tracer = otel.Tracer("nztours.internal.conversation.history")
	}
	return &RedisHistoryStore{
		redis:  client,
		ttl:    ttl,
		tracer: tracer,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *RedisHistoryStore) Append(ctx context.Context, sessionID string, turns ...ChatTurn) error {
	ctx, span := s.tracer.Start(ctx, "conversation.append_history")
	defer span.End()

	if len(turns) == 0 {
		return nil
	}

	values := make([]any, 0, len(turns))
	for _, turn := range turns {
		data, err := json.Marshal(turn)
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("conversation: failed to marshal chat turn: %w", err)
		}
		values = append(values, data)
	}

	key := sessionKey(sessionID)
	pipe := s.redis.Pipeline()
	pipe.RPush(ctx, key, values...)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("conversation: failed to persist history: %w", err)
	}
	return nil
}

func (s *RedisHistoryStore) Tail(ctx context.Context, sessionID string, n int) ([]ChatTurn, error) {
	ctx, span := s.tracer.Start(ctx, "conversation.load_history")
	defer span.End()

	start := int64(0)
	if n > 0 {
		start = int64(-n)
	}

	entries, err := s.redis.LRange(ctx, sessionKey(sessionID), start, -1).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("conversation: failed to load history: %w", err)
	}

	turns := make([]ChatTurn, 0, len(entries))
	for _, entry := range entries {
		var turn ChatTurn
		if err := json.Unmarshal([]byte(entry), &turn); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("conversation: failed to decode chat turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (s *RedisHistoryStore) Clear(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "conversation.clear_history")
	defer span.End()

	if err := s.redis.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("conversation: failed to clear history: %w", err)
	}
	return nil
}
