package config

// InputConfig defines where transcription and cached OCR text files live
type InputConfig struct {
	TranscriptionsDir string `json:"transcriptions_dir,omitempty" yaml:"transcriptions_dir,omitempty" validate:"omitempty,dirpath"`
	OCROutputDir      string `json:"ocr_output_dir,omitempty" yaml:"ocr_output_dir,omitempty" validate:"omitempty,dirpath"`
	OCRFileSuffix     string `json:"ocr_file_suffix,omitempty" yaml:"ocr_file_suffix,omitempty"`
}

// NewDefaultInputConfig creates default input configuration
func NewDefaultInputConfig() InputConfig {
	return InputConfig{
		TranscriptionsDir: DefaultTranscriptionsDir,
		OCROutputDir:      DefaultOCROutputDir,
		OCRFileSuffix:     DefaultOCRFileSuffix,
	}
}
