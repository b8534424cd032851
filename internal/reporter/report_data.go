package reporter

import (
	"html/template"

	"github.com/aleister1102/ocrdiff/internal/compare"
)

// Accuracy thresholds for report styling.
const (
	accuracyGoodThreshold = 80.0
	accuracyWarnThreshold = 50.0
)

// DocumentSummary is the per-document outcome the orchestrator hands to the
// summary report and artifact writers.
type DocumentSummary struct {
	ItemName       string        `json:"item_name"`
	Stats          compare.Stats `json:"stats"`
	ComparisonFile string        `json:"comparison_file"`
}

// DiffRow is one row of the differences table in a document report.
type DiffRow struct {
	Index      int
	Kind       string
	SourceText string
	OCRText    string
}

// documentReportData is the view model for the per-document report template.
type documentReportData struct {
	Title              string
	ItemName           string
	OptionsLabel       string
	IgnoreCase         bool
	IgnorePunctuation  bool
	Stats              compare.Stats
	TotalErrors        int
	AccuracyClass      string
	MarkedSource       []MarkedWord
	MarkedOCR          []MarkedWord
	DiffRows           []DiffRow
	TotalDifferences   int
	OmittedDifferences int
	RawDiff            template.HTML
	GeneratedAt        string
}

// summaryRow is one document line in the summary report table.
type summaryRow struct {
	ItemName       string
	ComparisonFile string
	Stats          compare.Stats
	Errors         int
	AccuracyClass  string
}

// summaryReportData is the view model for the summary report template.
type summaryReportData struct {
	Title           string
	OptionsLabel    string
	DocumentCount   int
	Totals          compare.Stats
	TotalErrors     int
	OverallAccuracy float64
	AccuracyClass   string
	Rows            []summaryRow
	GeneratedAt     string
}

// accuracyClass maps an accuracy percentage to a styling class.
func accuracyClass(accuracy float64) string {
	switch {
	case accuracy >= accuracyGoodThreshold:
		return "good"
	case accuracy >= accuracyWarnThreshold:
		return "warn"
	default:
		return "bad"
	}
}

// buildDiffRows converts the ordered differences into table rows, capped at
// maxRows. The number of omitted rows is returned alongside.
func buildDiffRows(differences []compare.Difference, maxRows int) (rows []DiffRow, omitted int) {
	for i, diff := range differences {
		if maxRows > 0 && i >= maxRows {
			return rows, len(differences) - maxRows
		}
		rows = append(rows, DiffRow{
			Index:      i + 1,
			Kind:       diff.Kind.String(),
			SourceText: diff.SourceText,
			OCRText:    diff.OCRText,
		})
	}
	return rows, 0
}
