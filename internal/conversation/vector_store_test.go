package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder returns canned vectors keyed by input text.
type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) Embed(_ context.Context, _ string, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, 0, len(texts))
	for _, text := range texts {
		vec, ok := s.vectors[text]
		if !ok {
			return nil, errors.New("no stub vector for " + text)
		}
		out = append(out, vec)
	}
	return out, nil
}

func TestMemoryVectorStore_SearchOrdering(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"baggage rules":       {1, 0, 0},
		"cancellation policy": {0, 1, 0},
		"tour itinerary":      {0.7, 0.7, 0},
		"how much luggage":    {0.9, 0.1, 0},
	}}
	store := NewMemoryVectorStore(embedder, "test-embed", nil)

	err := store.Add(context.Background(), []Document{
		{Content: "baggage rules", Metadata: map[string]string{"type": "baggage_policy"}},
		{Content: "cancellation policy", Metadata: map[string]string{"type": "cancellation_policy"}},
		{Content: "tour itinerary", Metadata: map[string]string{"type": "tour_package"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())

	results, err := store.Search(context.Background(), "how much luggage", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "baggage rules", results[0].Content)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestMemoryVectorStore_SearchTopKLargerThanIndex(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"doc":   {1, 0},
		"query": {1, 0},
	}}
	store := NewMemoryVectorStore(embedder, "test-embed", nil)
	require.NoError(t, store.Add(context.Background(), []Document{{Content: "doc"}}))

	results, err := store.Search(context.Background(), "query", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
}

func TestMemoryVectorStore_SearchEmptyIndex(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{"query": {1, 0}}}
	store := NewMemoryVectorStore(embedder, "test-embed", nil)

	results, err := store.Search(context.Background(), "query", 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMemoryVectorStore_EmbedderError(t *testing.T) {
	store := NewMemoryVectorStore(&stubEmbedder{err: errors.New("boom")}, "test-embed", nil)

	err := store.Add(context.Background(), []Document{{Content: "doc"}})
	assert.Error(t, err)

	_, err = store.Search(context.Background(), "query", 3)
	assert.Error(t, err)
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"length mismatch", []float32{1, 0}, []float32{1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}
