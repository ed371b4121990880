package ingestion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata_Fields(t *testing.T) {
	meta := NewMetadata("normalized resume text", "resume.pdf", 2)

	assert.Equal(t, "resume.pdf", meta.Filename)
	assert.Equal(t, 2, meta.Pages)
	assert.Equal(t, len("normalized resume text"), meta.Chars)
	assert.Len(t, meta.Hash, 64)
	assert.NotEmpty(t, meta.Timestamp)
}

func TestComputeHash_Deterministic(t *testing.T) {
	assert.Equal(t, ComputeHash("same text"), ComputeHash("same text"))
	assert.NotEqual(t, ComputeHash("same text"), ComputeHash("other text"))
}

func TestMetadata_ToJSON(t *testing.T) {
	meta := NewMetadata("content", "resume.pdf", 1)

	jsonBytes, err := meta.ToJSON()
	require.NoError(t, err)

	var decoded Metadata
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, meta.Hash, decoded.Hash)
	assert.Equal(t, meta.Filename, decoded.Filename)
}
