package conversation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoredDocument_PromotesDocumentFields(t *testing.T) {
	scored := ScoredDocument{
		Document: Document{
			Content:  "Milford Sound day cruise departs daily at 9am.",
			Metadata: map[string]string{"type": "tour_package"},
		},
		Score: 0.87,
	}

	assert.Equal(t, "Milford Sound day cruise departs daily at 9am.", scored.Content)
	assert.Equal(t, "tour_package", scored.Metadata["type"])
}

func TestScoredDocument_JSONShape(t *testing.T) {
	scored := ScoredDocument{
		Document: Document{Content: "Checked baggage is 23kg on international routes."},
		Score:    0.5,
	}

	encoded, err := json.Marshal(scored)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"document": {"content": "Checked baggage is 23kg on international routes."},
		"score": 0.5
	}`, string(encoded))

	var decoded ScoredDocument
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, scored, decoded)
}
