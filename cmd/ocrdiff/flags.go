package main

import "flag"

// cliFlags holds the consolidated command line flag values.
type cliFlags struct {
	ConfigFile        string
	SourceDir         string
	OCRDir            string
	OutputDir         string
	IgnoreCase        bool
	IgnorePunctuation bool
	NoHistory         bool
}

// parseFlags defines and parses the command line flags, consolidating the
// short aliases into their long forms.
func parseFlags() cliFlags {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	sourceDir := flag.String("source-dir", "", "Directory containing the source transcription .txt files (overrides config file if set).")
	ocrDir := flag.String("ocr-dir", "", "Directory containing the OCR output .txt files (overrides config file if set).")
	outputDir := flag.String("output-dir", "", "Directory to write reports into (overrides config file if set).")

	ignoreCase := flag.Bool("ignore-case", false, "Compare case-insensitively.")
	ignoreCaseAlias := flag.Bool("i", false, "Alias for -ignore-case")

	ignorePunctuation := flag.Bool("ignore-punctuation", false, "Strip leading/trailing punctuation before comparing.")
	ignorePunctuationAlias := flag.Bool("p", false, "Alias for -ignore-punctuation")

	noHistory := flag.Bool("no-history", false, "Disable writing comparison history records.")

	flag.Parse()

	flags := cliFlags{
		ConfigFile:        *configFile,
		SourceDir:         *sourceDir,
		OCRDir:            *ocrDir,
		OutputDir:         *outputDir,
		IgnoreCase:        *ignoreCase || *ignoreCaseAlias,
		IgnorePunctuation: *ignorePunctuation || *ignorePunctuationAlias,
		NoHistory:         *noHistory,
	}
	if flags.ConfigFile == "" && *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}
	return flags
}
