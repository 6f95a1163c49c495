package conversation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/nztours/travel-ai-platform/pkg/logging"
)

// Retriever exposes the query capability needed by the response pipeline.
type Retriever interface {
	Search(ctx context.Context, query string, topK int) ([]ScoredDocument, error)
}

// MemoryVectorStore keeps document embeddings in memory and answers
// nearest-neighbor queries by cosine similarity. Documents are added once at
// index-build time; afterwards the store is read-only, so concurrent
// searches are safe.
type MemoryVectorStore struct {
	embedder Embedder
	model    string
	logger   *logging.Logger

	mu   sync.RWMutex
	docs []indexedDocument
}

type indexedDocument struct {
	Document  Document  `json:"document"`
	Embedding []float32 `json:"embedding"`
}

// NewMemoryVectorStore creates an empty in-memory store.
func NewMemoryVectorStore(embedder Embedder, model string, logger *logging.Logger) *MemoryVectorStore {
	if embedder == nil {
		panic("conversation: embedder cannot be nil")
	}
	if model == "" {
		panic("conversation: embedding model id cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &MemoryVectorStore{
		embedder: embedder,
		model:    model,
		logger:   logger,
	}
}

// Add embeds and stores the provided documents.
func (s *MemoryVectorStore) Add(ctx context.Context, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	contents := make([]string, len(docs))
	for i, doc := range docs {
		contents[i] = doc.Content
	}

	vectors, err := s.embedder.Embed(ctx, s.model, contents)
	if err != nil {
		return fmt.Errorf("conversation: failed to embed documents: %w", err)
	}
	if len(vectors) != len(docs) {
		return errors.New("conversation: embedding response size mismatch")
	}

	s.mu.Lock()
	for i, doc := range docs {
		s.docs = append(s.docs, indexedDocument{Document: doc, Embedding: vectors[i]})
	}
	total := len(s.docs)
	s.mu.Unlock()

	s.logger.Debug("indexed documents", "added", len(docs), "total", total)
	return nil
}

// Len reports how many documents are indexed.
func (s *MemoryVectorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Search returns the topK most similar documents to the query.
func (s *MemoryVectorStore) Search(ctx context.Context, query string, topK int) ([]ScoredDocument, error) {
	if topK <= 0 {
		topK = 3
	}

	vectors, err := s.embedder.Embed(ctx, s.model, []string{query})
	if err != nil {
		return nil, fmt.Errorf("conversation: failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, nil
	}
	queryVec := vectors[0]

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.docs) == 0 {
		return nil, nil
	}

	results := make([]ScoredDocument, 0, len(s.docs))
	for _, doc := range s.docs {
		results = append(results, ScoredDocument{
			Document: doc.Document,
			Score:    cosineSimilarity(queryVec, doc.Embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot float64
	var normA float64
	var normB float64
	for i := range a {
		dot += float64(a[i] * b[i])
		normA += float64(a[i] * a[i])
		normB += float64(b[i] * b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
