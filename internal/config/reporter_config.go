package config

// ReporterConfig defines configuration for generating reports
type ReporterConfig struct {
	OutputDir               string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	ReportTitle             string `json:"report_title,omitempty" yaml:"report_title,omitempty"`
	MaxDifferencesPerReport int    `json:"max_differences_per_report,omitempty" yaml:"max_differences_per_report,omitempty" validate:"omitempty,min=1"`
	IncludeRawDiff          bool   `json:"include_raw_diff" yaml:"include_raw_diff"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir:               DefaultReporterOutputDir,
		ReportTitle:             DefaultReporterTitle,
		MaxDifferencesPerReport: DefaultMaxDifferencesPerReport,
		IncludeRawDiff:          true,
	}
}
