package reporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/ocrdiff/internal/compare"
)

func TestWriteResultsJSON(t *testing.T) {
	outputDir := t.TempDir()
	documents := []DocumentSummary{
		{
			ItemName:       "item_01",
			Stats:          compare.Stats{Equal: 3, Similar: 1, TotalWordsSource: 4, TotalWordsOCR: 4, Accuracy: 75},
			ComparisonFile: "item_01_comparison.html",
		},
	}

	path, err := WriteResultsJSON(outputDir, documents, compare.CompareOptions{IgnoreCase: true}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, ResultsFile), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Options struct {
			IgnoreCase        bool `json:"ignore_case"`
			IgnorePunctuation bool `json:"ignore_punctuation"`
		} `json:"options"`
		Results []DocumentSummary `json:"results"`
	}
	require.NoError(t, json.Unmarshal(content, &decoded))

	assert.True(t, decoded.Options.IgnoreCase)
	assert.False(t, decoded.Options.IgnorePunctuation)
	require.Len(t, decoded.Results, 1)
	assert.Equal(t, "item_01", decoded.Results[0].ItemName)
	assert.InDelta(t, 75.0, decoded.Results[0].Stats.Accuracy, 0.001)
}

func TestWriteResultsJSON_NoDocuments(t *testing.T) {
	outputDir := t.TempDir()

	path, err := WriteResultsJSON(outputDir, nil, compare.CompareOptions{}, zerolog.Nop())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"results": []`)
}
