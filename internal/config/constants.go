package config

const (
	// Input defaults
	DefaultTranscriptionsDir = "transcriptions"
	DefaultOCROutputDir      = "ocr_output"
	DefaultOCRFileSuffix     = "_ocr"

	// Reporter defaults
	DefaultReporterOutputDir       = "comparisons"
	DefaultReporterTitle           = "OCR Comparison Report"
	DefaultMaxDifferencesPerReport = 100

	// Storage defaults
	DefaultStorageParquetBasePath  = "history"
	DefaultStorageCompressionCodec = "zstd"
)
