package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aleister1102/ocrdiff/internal/common"
	"github.com/aleister1102/ocrdiff/internal/logger"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	CompareConfig  CompareConfig        `json:"compare_config,omitempty" yaml:"compare_config,omitempty"`
	InputConfig    InputConfig          `json:"input_config,omitempty" yaml:"input_config,omitempty"`
	LogConfig      logger.FileLogConfig `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ReporterConfig ReporterConfig       `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	StorageConfig  StorageConfig        `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		CompareConfig:  NewDefaultCompareConfig(),
		InputConfig:    NewDefaultInputConfig(),
		LogConfig:      logger.NewDefaultFileLogConfig(),
		ReporterConfig: NewDefaultReporterConfig(),
		StorageConfig:  NewDefaultStorageConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// YAML and JSON formats, YAML preferred for .yaml/.yml extensions. Without a
// config file the defaults are returned unchanged.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		if providedPath != "" {
			return nil, common.NewValidationError("config_file", providedPath, "config file does not exist")
		}
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to read config file")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
