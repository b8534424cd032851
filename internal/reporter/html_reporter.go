// Package reporter renders comparison results as HTML reports, a terminal
// view and a JSON artifact. The core never chooses a rendering format; all
// styling decisions live here.
package reporter

import (
	"bytes"
	"embed"
	"html/template"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/ocrdiff/internal/common"
	"github.com/aleister1102/ocrdiff/internal/compare"
	"github.com/aleister1102/ocrdiff/internal/config"
)

//go:embed templates/*
var templateFS embed.FS

const (
	comparisonReportTemplate = "comparison_report.html.tmpl"
	summaryReportTemplate    = "summary_report.html.tmpl"

	// SummaryReportFile is the file name of the aggregate report, linked from
	// every per-document report.
	SummaryReportFile = "summary_report.html"

	reportTimeLayout = "2006-01-02 15:04:05"
)

// HtmlReporter creates the per-document and summary HTML reports.
type HtmlReporter struct {
	logger      zerolog.Logger
	cfg         *config.ReporterConfig
	template    *template.Template
	fileManager *common.FileManager
	rawDiff     *RawDiffProcessor
}

// NewHtmlReporter creates a new HtmlReporter and parses the embedded
// templates.
func NewHtmlReporter(cfg *config.ReporterConfig, logger zerolog.Logger) (*HtmlReporter, error) {
	if cfg == nil {
		return nil, common.NewValidationError("reporter_config", cfg, "reporter config cannot be nil")
	}

	componentLogger := logger.With().Str("component", "HtmlReporter").Logger()

	tmpl, err := template.New("").Funcs(GetReportTemplateFunctions()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, common.WrapError(err, "failed to parse report templates")
	}

	return &HtmlReporter{
		logger:      componentLogger,
		cfg:         cfg,
		template:    tmpl,
		fileManager: common.NewFileManager(componentLogger),
		rawDiff:     NewRawDiffProcessor(),
	}, nil
}

// GenerateDocumentReport renders the comparison report for one document and
// writes it to "<item>_comparison.html" under the output directory. The
// written file name (relative to the output directory) is returned for
// linking from the summary.
func (r *HtmlReporter) GenerateDocumentReport(itemName string, result *compare.Result, opts compare.CompareOptions, sourceText, ocrText string) (string, error) {
	markedSource, markedOCR := BuildMarkedTexts(result)
	diffRows, omitted := buildDiffRows(result.Differences, r.cfg.MaxDifferencesPerReport)

	data := documentReportData{
		Title:              r.cfg.ReportTitle,
		ItemName:           itemName,
		OptionsLabel:       opts.Describe(),
		IgnoreCase:         opts.IgnoreCase,
		IgnorePunctuation:  opts.IgnorePunctuation,
		Stats:              result.Stats,
		TotalErrors:        result.Stats.TotalErrors(),
		AccuracyClass:      accuracyClass(result.Stats.Accuracy),
		MarkedSource:       markedSource,
		MarkedOCR:          markedOCR,
		DiffRows:           diffRows,
		TotalDifferences:   len(result.Differences),
		OmittedDifferences: omitted,
		GeneratedAt:        time.Now().Format(reportTimeLayout),
	}
	if r.cfg.IncludeRawDiff {
		data.RawDiff = r.rawDiff.RenderHTML(sourceText, ocrText)
	}

	fileName := itemName + "_comparison.html"
	if err := r.renderToFile(comparisonReportTemplate, data, fileName); err != nil {
		return "", err
	}

	r.logger.Info().
		Str("item", itemName).
		Str("file", fileName).
		Float64("accuracy", result.Stats.Accuracy).
		Msg("Generated document comparison report")
	return fileName, nil
}

// GenerateSummaryReport renders the aggregate report over all compared
// documents and returns the written file path.
func (r *HtmlReporter) GenerateSummaryReport(documents []DocumentSummary, opts compare.CompareOptions) (string, error) {
	totals := compare.Stats{}
	rows := make([]summaryRow, 0, len(documents))
	for _, doc := range documents {
		totals = totals.Merge(doc.Stats)
		rows = append(rows, summaryRow{
			ItemName:       doc.ItemName,
			ComparisonFile: doc.ComparisonFile,
			Stats:          doc.Stats,
			Errors:         doc.Stats.TotalErrors(),
			AccuracyClass:  accuracyClass(doc.Stats.Accuracy),
		})
	}

	data := summaryReportData{
		Title:           r.cfg.ReportTitle,
		OptionsLabel:    opts.Describe(),
		DocumentCount:   len(documents),
		Totals:          totals,
		TotalErrors:     totals.TotalErrors(),
		OverallAccuracy: totals.Accuracy,
		AccuracyClass:   accuracyClass(totals.Accuracy),
		Rows:            rows,
		GeneratedAt:     time.Now().Format(reportTimeLayout),
	}

	if err := r.renderToFile(summaryReportTemplate, data, SummaryReportFile); err != nil {
		return "", err
	}

	path := filepath.Join(r.cfg.OutputDir, SummaryReportFile)
	r.logger.Info().
		Int("documents", len(documents)).
		Str("path", path).
		Float64("overall_accuracy", totals.Accuracy).
		Msg("Generated summary report")
	return path, nil
}

// renderToFile executes the named template and writes the result under the
// output directory.
func (r *HtmlReporter) renderToFile(templateName string, data any, fileName string) error {
	var buf bytes.Buffer
	if err := r.template.ExecuteTemplate(&buf, templateName, data); err != nil {
		return common.WrapError(err, "failed to execute template "+templateName)
	}

	path := filepath.Join(r.cfg.OutputDir, fileName)
	return r.fileManager.WriteFile(path, buf.Bytes(), common.DefaultFileWriteOptions())
}
