package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nztours/travel-ai-platform/pkg/logging"
)

// buildMu serializes index construction. Concurrent startups within one
// process build at most one index; cross-process exclusion is left to the
// deployment (single writer before serving).
var buildMu sync.Mutex

type indexFile struct {
	Model     string            `json:"model"`
	Documents []indexedDocument `json:"documents"`
}

// SaveIndex persists the embedded documents to path. The file is written to
// a temp name and renamed so a crashed build never leaves a partial index
// behind.
func (s *MemoryVectorStore) SaveIndex(path string) error {
	s.mu.RLock()
	payload := indexFile{Model: s.model, Documents: s.docs}
	data, err := json.Marshal(payload)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("conversation: failed to encode index: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("conversation: failed to create index directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("conversation: failed to write index: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("conversation: failed to finalize index: %w", err)
	}
	return nil
}

// LoadIndex restores a persisted index into the store, replacing its
// contents. The stored model must match the configured embedding model;
// vectors from different models are not comparable.
func (s *MemoryVectorStore) LoadIndex(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("conversation: failed to read index %s: %w", path, err)
	}

	var payload indexFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("conversation: failed to decode index %s: %w", path, err)
	}
	if payload.Model != s.model {
		return fmt.Errorf("conversation: index %s was built with model %q, configured model is %q",
			path, payload.Model, s.model)
	}

	s.mu.Lock()
	s.docs = payload.Documents
	s.mu.Unlock()
	return nil
}

// EnsureIndex loads a persisted index if one exists at path, otherwise
// builds one from the documents returned by buildDocs and persists it.
// Startup is idempotent: repeated starts against the same path embed
// nothing. There is no invalidation; stale documents are only refreshed by
// deleting the index file and restarting.
func EnsureIndex(ctx context.Context, store *MemoryVectorStore, path string, logger *logging.Logger, buildDocs func() ([]Document, error)) error {
	if logger == nil {
		logger = logging.Default()
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	if _, err := os.Stat(path); err == nil {
		if err := store.LoadIndex(path); err != nil {
			return err
		}
		logger.Info("loaded persisted vector index", "path", path, "documents", store.Len())
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("conversation: failed to stat index %s: %w", path, err)
	}

	docs, err := buildDocs()
	if err != nil {
		return fmt.Errorf("conversation: failed to assemble documents: %w", err)
	}

	logger.Info("building vector index", "path", path, "documents", len(docs))
	if err := store.Add(ctx, docs); err != nil {
		return err
	}
	if err := store.SaveIndex(path); err != nil {
		return err
	}
	logger.Info("vector index built and persisted", "path", path)
	return nil
}
