package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.False(t, cfg.CompareConfig.IgnoreCase)
	assert.False(t, cfg.CompareConfig.IgnorePunctuation)
	assert.Equal(t, DefaultTranscriptionsDir, cfg.InputConfig.TranscriptionsDir)
	assert.Equal(t, DefaultReporterOutputDir, cfg.ReporterConfig.OutputDir)
	assert.Equal(t, DefaultMaxDifferencesPerReport, cfg.ReporterConfig.MaxDifferencesPerReport)
	assert.True(t, cfg.StorageConfig.Enabled)
}

func TestLoadGlobalConfig_NoFileReturnsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadGlobalConfig("")
	require.NoError(t, err)
	assert.Equal(t, NewDefaultGlobalConfig(), cfg)
}

func TestLoadGlobalConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
compare_config:
  ignore_case: true
  ignore_punctuation: true
reporter_config:
  output_dir: out
  max_differences_per_report: 50
log_config:
  log_level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.CompareConfig.IgnoreCase)
	assert.True(t, cfg.CompareConfig.IgnorePunctuation)
	assert.Equal(t, "out", cfg.ReporterConfig.OutputDir)
	assert.Equal(t, 50, cfg.ReporterConfig.MaxDifferencesPerReport)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultOCROutputDir, cfg.InputConfig.OCROutputDir)
}

func TestLoadGlobalConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := []byte(`{"compare_config": {"ignore_case": true}}`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.CompareConfig.IgnoreCase)
}

func TestLoadGlobalConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("compare_config: ["), 0644))

	_, err := LoadGlobalConfig(path)
	assert.Error(t, err)
}

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, ValidateConfig(NewDefaultGlobalConfig()))
}

func TestValidateConfig_BadLogLevel(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "verbose"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_BadCompressionCodec(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.StorageConfig.CompressionCodec = "lzma"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_InputDirIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	cfg := NewDefaultGlobalConfig()
	cfg.InputConfig.TranscriptionsDir = path

	assert.Error(t, ValidateConfig(cfg))
}

func TestGetConfigPath_EnvVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	t.Setenv("OCRDIFF_CONFIG_PATH", path)

	assert.Equal(t, path, GetConfigPath(""))
}
