package config

import "github.com/aleister1102/ocrdiff/internal/compare"

// CompareConfig defines the text comparison options
type CompareConfig struct {
	IgnoreCase        bool `json:"ignore_case" yaml:"ignore_case"`
	IgnorePunctuation bool `json:"ignore_punctuation" yaml:"ignore_punctuation"`
}

// NewDefaultCompareConfig creates default comparison configuration (exact matching)
func NewDefaultCompareConfig() CompareConfig {
	return CompareConfig{}
}

// ToOptions converts the config section to core comparison options.
func (c CompareConfig) ToOptions() compare.CompareOptions {
	return compare.CompareOptions{
		IgnoreCase:        c.IgnoreCase,
		IgnorePunctuation: c.IgnorePunctuation,
	}
}
