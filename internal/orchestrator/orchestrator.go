// Package orchestrator drives a batch comparison run: it pairs transcription
// files with their OCR counterparts, compares each pair and hands the
// outcomes to the reporters and the history store.
package orchestrator

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/ocrdiff/internal/common"
	"github.com/aleister1102/ocrdiff/internal/compare"
	"github.com/aleister1102/ocrdiff/internal/config"
	"github.com/aleister1102/ocrdiff/internal/datastore"
	"github.com/aleister1102/ocrdiff/internal/reporter"
)

const textFileExtension = ".txt"

// RunSummary aggregates the outcome of one batch run.
type RunSummary struct {
	DocumentCount     int
	SkippedCount      int
	Totals            compare.Stats
	Documents         []reporter.DocumentSummary
	SummaryReportPath string
	ResultsPath       string
}

// Orchestrator wires the comparer, reporters and history store into a batch
// run over a directory of transcription files.
type Orchestrator struct {
	cfg          *config.GlobalConfig
	logger       zerolog.Logger
	fileManager  *common.FileManager
	comparer     *compare.TextComparer
	htmlReporter *reporter.HtmlReporter
	resultStore  *datastore.ParquetResultStore
}

// New creates an Orchestrator from the global configuration. The history
// store is only initialized when storage is enabled.
func New(cfg *config.GlobalConfig, logger zerolog.Logger) (*Orchestrator, error) {
	if cfg == nil {
		return nil, common.NewValidationError("config", cfg, "global config cannot be nil")
	}

	componentLogger := logger.With().Str("component", "Orchestrator").Logger()

	comparer := compare.NewTextComparerBuilder().
		WithOptions(cfg.CompareConfig.ToOptions()).
		WithLogger(logger).
		Build()

	htmlReporter, err := reporter.NewHtmlReporter(&cfg.ReporterConfig, logger)
	if err != nil {
		return nil, common.WrapError(err, "failed to initialize HTML reporter")
	}

	orch := &Orchestrator{
		cfg:          cfg,
		logger:       componentLogger,
		fileManager:  common.NewFileManager(logger),
		comparer:     comparer,
		htmlReporter: htmlReporter,
	}

	if cfg.StorageConfig.Enabled {
		store, err := datastore.NewParquetResultStore(&cfg.StorageConfig, logger)
		if err != nil {
			return nil, common.WrapError(err, "failed to initialize result store")
		}
		orch.resultStore = store
	}

	return orch, nil
}

// Run compares every transcription file against its OCR counterpart and
// generates the per-document reports, the summary report, the JSON artifact
// and the history records. Documents without an OCR counterpart are skipped
// with a warning.
func (o *Orchestrator) Run(ctx context.Context) (*RunSummary, error) {
	inputCfg := o.cfg.InputConfig
	if !o.fileManager.FileExists(inputCfg.TranscriptionsDir) {
		return nil, common.NewValidationError("transcriptions_dir", inputCfg.TranscriptionsDir, "directory does not exist")
	}

	names, err := o.fileManager.ListFilesWithExtension(inputCfg.TranscriptionsDir, textFileExtension)
	if err != nil {
		return nil, common.WrapError(err, "failed to list transcription files")
	}
	if len(names) == 0 {
		return nil, common.NewValidationError("transcriptions_dir", inputCfg.TranscriptionsDir, "no transcription files found")
	}

	o.logger.Info().
		Int("documents", len(names)).
		Str("transcriptions_dir", inputCfg.TranscriptionsDir).
		Str("ocr_dir", inputCfg.OCROutputDir).
		Msg("Starting batch comparison")

	opts := o.comparer.Options()
	summary := &RunSummary{}
	var records []datastore.ComparisonRecord

	for _, name := range names {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		itemName := strings.TrimSuffix(name, textFileExtension)

		ocrPath, ok := o.findOCRFile(itemName)
		if !ok {
			o.logger.Warn().Str("item", itemName).Msg("No OCR counterpart found, skipping")
			summary.SkippedCount++
			continue
		}

		docSummary, record, err := o.compareDocument(itemName, filepath.Join(inputCfg.TranscriptionsDir, name), ocrPath, opts)
		if err != nil {
			return nil, common.WrapError(err, "failed to compare document '"+itemName+"'")
		}

		summary.Documents = append(summary.Documents, docSummary)
		summary.Totals = summary.Totals.Merge(docSummary.Stats)
		summary.DocumentCount++
		records = append(records, record)
	}

	summaryPath, err := o.htmlReporter.GenerateSummaryReport(summary.Documents, opts)
	if err != nil {
		return nil, common.WrapError(err, "failed to generate summary report")
	}
	summary.SummaryReportPath = summaryPath

	resultsPath, err := reporter.WriteResultsJSON(o.cfg.ReporterConfig.OutputDir, summary.Documents, opts, o.logger)
	if err != nil {
		return nil, common.WrapError(err, "failed to write results artifact")
	}
	summary.ResultsPath = resultsPath

	if o.resultStore != nil {
		if err := o.resultStore.AppendRecords(records); err != nil {
			return nil, common.WrapError(err, "failed to append history records")
		}
	}

	o.logger.Info().
		Int("compared", summary.DocumentCount).
		Int("skipped", summary.SkippedCount).
		Float64("overall_accuracy", summary.Totals.Accuracy).
		Msg("Batch comparison finished")
	return summary, nil
}

// findOCRFile locates the OCR counterpart of an item: "<item><suffix>.txt"
// under the OCR output directory, falling back to "<item>.txt".
func (o *Orchestrator) findOCRFile(itemName string) (string, bool) {
	inputCfg := o.cfg.InputConfig

	candidates := []string{
		itemName + inputCfg.OCRFileSuffix + textFileExtension,
		itemName + textFileExtension,
	}
	for _, candidate := range candidates {
		path := filepath.Join(inputCfg.OCROutputDir, candidate)
		if o.fileManager.FileExists(path) {
			return path, true
		}
	}
	return "", false
}

// compareDocument compares one source/OCR file pair and generates its report.
func (o *Orchestrator) compareDocument(itemName, sourcePath, ocrPath string, opts compare.CompareOptions) (reporter.DocumentSummary, datastore.ComparisonRecord, error) {
	readOpts := common.DefaultFileReadOptions()

	sourceData, err := o.fileManager.ReadFile(sourcePath, readOpts)
	if err != nil {
		return reporter.DocumentSummary{}, datastore.ComparisonRecord{}, err
	}
	ocrData, err := o.fileManager.ReadFile(ocrPath, readOpts)
	if err != nil {
		return reporter.DocumentSummary{}, datastore.ComparisonRecord{}, err
	}

	sourceText := string(sourceData)
	ocrText := string(ocrData)
	result := o.comparer.Compare(sourceText, ocrText)

	reportFile, err := o.htmlReporter.GenerateDocumentReport(itemName, result, opts, sourceText, ocrText)
	if err != nil {
		return reporter.DocumentSummary{}, datastore.ComparisonRecord{}, err
	}

	o.logger.Info().
		Str("item", itemName).
		Float64("accuracy", result.Stats.Accuracy).
		Int("errors", result.Stats.TotalErrors()).
		Msg("Compared document")

	docSummary := reporter.DocumentSummary{
		ItemName:       itemName,
		Stats:          result.Stats,
		ComparisonFile: reportFile,
	}
	record := datastore.NewComparisonRecord(itemName, result.Stats, opts, time.Now())
	record.ReportFile = &reportFile
	return docSummary, record, nil
}
