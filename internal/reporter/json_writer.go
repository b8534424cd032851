package reporter

import (
	"encoding/json"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/aleister1102/ocrdiff/internal/common"
	"github.com/aleister1102/ocrdiff/internal/compare"
)

// ResultsFile is the file name of the machine-readable artifact.
const ResultsFile = "results.json"

// resultsArtifact is the schema of results.json.
type resultsArtifact struct {
	Options struct {
		IgnoreCase        bool `json:"ignore_case"`
		IgnorePunctuation bool `json:"ignore_punctuation"`
	} `json:"options"`
	Results []DocumentSummary `json:"results"`
}

// WriteResultsJSON writes the per-document stats and active options as a
// JSON artifact under outputDir.
func WriteResultsJSON(outputDir string, documents []DocumentSummary, opts compare.CompareOptions, logger zerolog.Logger) (string, error) {
	artifact := resultsArtifact{Results: documents}
	artifact.Options.IgnoreCase = opts.IgnoreCase
	artifact.Options.IgnorePunctuation = opts.IgnorePunctuation
	if artifact.Results == nil {
		artifact.Results = []DocumentSummary{}
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return "", common.WrapError(err, "failed to marshal results artifact")
	}

	path := filepath.Join(outputDir, ResultsFile)
	fileManager := common.NewFileManager(logger)
	if err := fileManager.WriteFile(path, data, common.DefaultFileWriteOptions()); err != nil {
		return "", err
	}
	return path, nil
}
