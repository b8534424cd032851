// Command textdiff compares two text files word by word and prints an
// annotated diff with accuracy statistics to the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/aleister1102/ocrdiff/internal/common"
	"github.com/aleister1102/ocrdiff/internal/compare"
	"github.com/aleister1102/ocrdiff/internal/reporter"
)

func main() {
	ignoreCase := flag.Bool("ignore-case", false, "Compare case-insensitively.")
	ignoreCaseAlias := flag.Bool("i", false, "Alias for -ignore-case")
	ignorePunctuation := flag.Bool("ignore-punctuation", false, "Strip leading/trailing punctuation before comparing.")
	ignorePunctuationAlias := flag.Bool("p", false, "Alias for -ignore-punctuation")
	noList := flag.Bool("no-list", false, "Suppress the numbered differences list.")
	noColor := flag.Bool("no-color", false, "Disable colored output.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <source-file> <ocr-file>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	opts := compare.CompareOptions{
		IgnoreCase:        *ignoreCase || *ignoreCaseAlias,
		IgnorePunctuation: *ignorePunctuation || *ignorePunctuationAlias,
	}

	fileManager := common.NewFileManager(zerolog.Nop())
	readOpts := common.DefaultFileReadOptions()

	sourceData, err := fileManager.ReadFile(flag.Arg(0), readOpts)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	ocrData, err := fileManager.ReadFile(flag.Arg(1), readOpts)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	result := compare.CompareTexts(string(sourceData), string(ocrData), opts)

	palette := reporter.MonochromePalette()
	if !*noColor && reporter.DetectColor(os.Stdout) {
		palette = reporter.DefaultPalette()
	}

	fmt.Printf("Comparing with %s\n\n", opts.Describe())
	reporter.NewConsoleReporter(os.Stdout, palette).Render(result, !*noList)
}
