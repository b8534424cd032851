// Command ocrdiff compares a directory of source transcriptions against
// their OCR outputs and generates per-document and summary accuracy reports.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/ocrdiff/internal/config"
	"github.com/aleister1102/ocrdiff/internal/logger"
	"github.com/aleister1102/ocrdiff/internal/orchestrator"
)

func main() {
	flags := parseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config using path '%s': %v", flags.ConfigFile, err)
	}
	applyFlagOverrides(gCfg, flags)

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	orch, err := orchestrator.New(gCfg, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize orchestrator")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := orch.Run(ctx)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Batch comparison failed")
	}

	printSummary(summary)
	if summary.DocumentCount == 0 {
		os.Exit(1)
	}
}

// applyFlagOverrides lets command line flags take precedence over the
// config file.
func applyFlagOverrides(gCfg *config.GlobalConfig, flags cliFlags) {
	if flags.SourceDir != "" {
		gCfg.InputConfig.TranscriptionsDir = flags.SourceDir
	}
	if flags.OCRDir != "" {
		gCfg.InputConfig.OCROutputDir = flags.OCRDir
	}
	if flags.OutputDir != "" {
		gCfg.ReporterConfig.OutputDir = flags.OutputDir
	}
	if flags.IgnoreCase {
		gCfg.CompareConfig.IgnoreCase = true
	}
	if flags.IgnorePunctuation {
		gCfg.CompareConfig.IgnorePunctuation = true
	}
	if flags.NoHistory {
		gCfg.StorageConfig.Enabled = false
	}
}

func printSummary(summary *orchestrator.RunSummary) {
	fmt.Printf("Compared %d document(s), skipped %d\n", summary.DocumentCount, summary.SkippedCount)
	fmt.Printf("Overall word accuracy: %.1f%%\n", summary.Totals.Accuracy)
	fmt.Printf("Summary report: %s\n", summary.SummaryReportPath)
	fmt.Printf("Results artifact: %s\n", summary.ResultsPath)
}
