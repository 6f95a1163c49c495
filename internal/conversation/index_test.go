package conversation

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_SaveLoadRoundTrip(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"alpha": {1, 0},
		"beta":  {0, 1},
	}}
	store := NewMemoryVectorStore(embedder, "test-embed", nil)
	require.NoError(t, store.Add(context.Background(), []Document{
		{Content: "alpha", Metadata: map[string]string{"type": "faq"}},
		{Content: "beta"},
	}))

	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, store.SaveIndex(path))

	// A fresh store loading the file needs no embedding calls for its
	// documents.
	restored := NewMemoryVectorStore(&stubEmbedder{vectors: map[string][]float32{
		"alpha": {1, 0},
	}}, "test-embed", nil)
	require.NoError(t, restored.LoadIndex(path))
	assert.Equal(t, 2, restored.Len())

	results, err := restored.Search(context.Background(), "alpha", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "alpha", results[0].Content)
	assert.Equal(t, "faq", results[0].Metadata["type"])
}

func TestIndex_LoadRejectsModelMismatch(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{"doc": {1}}}
	store := NewMemoryVectorStore(embedder, "model-a", nil)
	require.NoError(t, store.Add(context.Background(), []Document{{Content: "doc"}}))

	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, store.SaveIndex(path))

	other := NewMemoryVectorStore(embedder, "model-b", nil)
	err := other.LoadIndex(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model-a")
	assert.Contains(t, err.Error(), "model-b")
}

func TestEnsureIndex_BuildsOnceThenLoads(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{"doc": {1, 0}}}
	path := filepath.Join(t.TempDir(), "index.json")

	builds := 0
	buildDocs := func() ([]Document, error) {
		builds++
		return []Document{{Content: "doc"}}, nil
	}

	store := NewMemoryVectorStore(embedder, "test-embed", nil)
	require.NoError(t, EnsureIndex(context.Background(), store, path, nil, buildDocs))
	assert.Equal(t, 1, builds)
	assert.Equal(t, 1, store.Len())

	// Second startup finds the persisted file and never rebuilds.
	second := NewMemoryVectorStore(embedder, "test-embed", nil)
	require.NoError(t, EnsureIndex(context.Background(), second, path, nil, buildDocs))
	assert.Equal(t, 1, builds)
	assert.Equal(t, 1, second.Len())
}

func TestEnsureIndex_BuildError(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{}}
	path := filepath.Join(t.TempDir(), "index.json")

	err := EnsureIndex(context.Background(), NewMemoryVectorStore(embedder, "test-embed", nil), path, nil,
		func() ([]Document, error) { return nil, errors.New("no data files") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data files")
}
