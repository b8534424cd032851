package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/ocrdiff/internal/config"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func newTestConfig(t *testing.T) *config.GlobalConfig {
	t.Helper()
	root := t.TempDir()

	cfg := config.NewDefaultGlobalConfig()
	cfg.InputConfig.TranscriptionsDir = filepath.Join(root, "transcriptions")
	cfg.InputConfig.OCROutputDir = filepath.Join(root, "ocr_output")
	cfg.ReporterConfig.OutputDir = filepath.Join(root, "comparisons")
	cfg.StorageConfig.ParquetBasePath = filepath.Join(root, "history")

	require.NoError(t, os.MkdirAll(cfg.InputConfig.TranscriptionsDir, 0755))
	require.NoError(t, os.MkdirAll(cfg.InputConfig.OCROutputDir, 0755))
	return cfg
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestRun_MissingTranscriptionsDir(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.InputConfig.TranscriptionsDir = filepath.Join(t.TempDir(), "does-not-exist")

	orch, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	_, err = orch.Run(context.Background())
	assert.Error(t, err)
}

func TestRun_NoTranscriptionFiles(t *testing.T) {
	cfg := newTestConfig(t)

	orch, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	_, err = orch.Run(context.Background())
	assert.ErrorContains(t, err, "no transcription files")
}

func TestRun_BatchComparison(t *testing.T) {
	cfg := newTestConfig(t)

	writeTestFile(t, cfg.InputConfig.TranscriptionsDir, "item_01.txt", "The quick brown fox")
	writeTestFile(t, cfg.InputConfig.OCROutputDir, "item_01_ocr.txt", "The qucik brown fox")

	writeTestFile(t, cfg.InputConfig.TranscriptionsDir, "item_02.txt", "hello world")
	writeTestFile(t, cfg.InputConfig.OCROutputDir, "item_02_ocr.txt", "hello world")

	// item_03 has no OCR counterpart and must be skipped.
	writeTestFile(t, cfg.InputConfig.TranscriptionsDir, "item_03.txt", "orphan text")

	orch, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	summary, err := orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.DocumentCount)
	assert.Equal(t, 1, summary.SkippedCount)
	require.Len(t, summary.Documents, 2)

	// Directory listing is sorted, so item_01 comes first.
	assert.Equal(t, "item_01", summary.Documents[0].ItemName)
	assert.InDelta(t, 75.0, summary.Documents[0].Stats.Accuracy, 0.001)
	assert.Equal(t, "item_02", summary.Documents[1].ItemName)
	assert.InDelta(t, 100.0, summary.Documents[1].Stats.Accuracy, 0.001)

	// Merged totals: 5 of 6 source words matched exactly.
	assert.Equal(t, 6, summary.Totals.TotalWordsSource)
	assert.Equal(t, 5, summary.Totals.Equal)

	// Every artifact ends up under the output directory.
	assert.FileExists(t, filepath.Join(cfg.ReporterConfig.OutputDir, "item_01_comparison.html"))
	assert.FileExists(t, filepath.Join(cfg.ReporterConfig.OutputDir, "item_02_comparison.html"))
	assert.FileExists(t, summary.SummaryReportPath)
	assert.FileExists(t, summary.ResultsPath)
	assert.FileExists(t, filepath.Join(cfg.StorageConfig.ParquetBasePath, "comparison_history.parquet"))
}

func TestRun_SameNameOCRFallback(t *testing.T) {
	cfg := newTestConfig(t)

	writeTestFile(t, cfg.InputConfig.TranscriptionsDir, "page.txt", "alpha beta")
	writeTestFile(t, cfg.InputConfig.OCROutputDir, "page.txt", "alpha beta")

	orch, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	summary, err := orch.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.DocumentCount)
	assert.Equal(t, 0, summary.SkippedCount)
}

func TestRun_StorageDisabled(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.StorageConfig.Enabled = false

	writeTestFile(t, cfg.InputConfig.TranscriptionsDir, "doc.txt", "some text")
	writeTestFile(t, cfg.InputConfig.OCROutputDir, "doc_ocr.txt", "some text")

	orch, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	summary, err := orch.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.DocumentCount)
	assert.NoFileExists(t, filepath.Join(cfg.StorageConfig.ParquetBasePath, "comparison_history.parquet"))
}

func TestRun_CanceledContext(t *testing.T) {
	cfg := newTestConfig(t)
	writeTestFile(t, cfg.InputConfig.TranscriptionsDir, "doc.txt", "some text")
	writeTestFile(t, cfg.InputConfig.OCROutputDir, "doc_ocr.txt", "some text")

	orch, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = orch.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
