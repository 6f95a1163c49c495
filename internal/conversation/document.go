package conversation

// Document is a single retrievable knowledge-base entry. Documents are
// write-once: the index is built from the generated dataset and never
// updated in place.
type Document struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ScoredDocument pairs a document with its retrieval similarity score.
type ScoredDocument struct {
	Document `json:"document"`
	Score    float64 `json:"score"`
}
