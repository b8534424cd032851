// Package compare aligns a trusted source transcription against a
// machine-generated OCR transcription at word granularity, classifies every
// divergence and produces aggregate accuracy statistics. It is a pure,
// stateless transformation: no I/O, no retained state, safe for concurrent
// use on independent inputs.
package compare

import (
	"github.com/rs/zerolog"

	"github.com/aleister1102/ocrdiff/internal/compare/align"
)

// similarityThreshold is the fixed cutoff above which a one-to-one replaced
// word pair is classified as similar rather than replaced. The ratio must be
// strictly greater.
const similarityThreshold = 0.5

// Result is the output contract of one comparison. SourceWords and OCRWords
// are the filtered original token sequences, and Ops the word-level
// alignment over them, so reporting collaborators can build marked-up views
// without re-running the alignment.
type Result struct {
	Stats       Stats
	Differences []Difference
	SourceWords []string
	OCRWords    []string
	Ops         []align.Op
}

// CompareTexts tokenizes and aligns the two texts under the given options
// and returns the classified differences and summary statistics.
func CompareTexts(sourceText, ocrText string, opts CompareOptions) *Result {
	sourceWords, sourceKeys := tokenSequences(sourceText, opts)
	ocrWords, ocrKeys := tokenSequences(ocrText, opts)

	result := &Result{
		SourceWords: sourceWords,
		OCRWords:    ocrWords,
		Ops:         align.Align(sourceKeys, ocrKeys),
	}
	result.Stats.TotalWordsSource = len(sourceWords)
	result.Stats.TotalWordsOCR = len(ocrWords)

	for _, op := range result.Ops {
		classifyOp(result, op, sourceWords, sourceKeys, ocrWords, ocrKeys)
	}

	result.Stats.Accuracy = accuracy(result.Stats.Equal, result.Stats.TotalWordsSource)
	return result
}

// classifyOp folds one alignment operation into the result's differences and
// counters. A replace block with mismatched lengths is never pairwise
// matched: each source word counts as deleted and each OCR word as inserted.
func classifyOp(result *Result, op align.Op, sourceWords, sourceKeys, ocrWords, ocrKeys []string) {
	switch op.Tag {
	case align.OpEqual:
		result.Stats.Equal += op.I2 - op.I1

	case align.OpReplace:
		if op.I2-op.I1 != op.J2-op.J1 {
			appendDeleted(result, sourceWords[op.I1:op.I2])
			appendInserted(result, ocrWords[op.J1:op.J2])
			return
		}
		for k := 0; k < op.I2-op.I1; k++ {
			i, j := op.I1+k, op.J1+k
			classifyPair(result, sourceWords[i], sourceKeys[i], ocrWords[j], ocrKeys[j])
		}

	case align.OpDelete:
		appendDeleted(result, sourceWords[op.I1:op.I2])

	case align.OpInsert:
		appendInserted(result, ocrWords[op.J1:op.J2])
	}
}

// classifyPair decides similar vs replaced for a one-to-one word pair. The
// similarity ratio is computed over the normalized keys; the presentation
// spans over the original forms.
func classifyPair(result *Result, srcWord, srcKey, ocrWord, ocrKey string) {
	if similarityRatio(srcKey, ocrKey) > similarityThreshold {
		result.Stats.Similar++
		srcSpans, ocrSpans := HighlightWords(srcWord, ocrWord)
		result.Differences = append(result.Differences, Difference{
			SourceText:  srcWord,
			OCRText:     ocrWord,
			Kind:        KindSimilar,
			SourceSpans: srcSpans,
			OCRSpans:    ocrSpans,
		})
		return
	}

	result.Stats.Replaced++
	result.Differences = append(result.Differences, Difference{
		SourceText: srcWord,
		OCRText:    ocrWord,
		Kind:       KindReplaced,
	})
}

func appendDeleted(result *Result, words []string) {
	for _, w := range words {
		result.Stats.Deleted++
		result.Differences = append(result.Differences, Difference{SourceText: w, Kind: KindDeleted})
	}
}

func appendInserted(result *Result, words []string) {
	for _, w := range words {
		result.Stats.Inserted++
		result.Differences = append(result.Differences, Difference{OCRText: w, Kind: KindInserted})
	}
}

// similarityRatio measures two words at character granularity using the same
// longest-common-block alignment as the word level.
func similarityRatio(x, y string) float64 {
	return align.Ratio([]rune(x), []rune(y))
}

// TextComparer binds a fixed set of options to the comparison functions.
type TextComparer struct {
	options CompareOptions
	logger  zerolog.Logger
}

// TextComparerBuilder provides a fluent interface for creating TextComparer.
type TextComparerBuilder struct {
	options CompareOptions
	logger  zerolog.Logger
}

// NewTextComparerBuilder creates a new builder with exact-matching defaults.
func NewTextComparerBuilder() *TextComparerBuilder {
	return &TextComparerBuilder{logger: zerolog.Nop()}
}

// WithOptions sets the comparison options.
func (b *TextComparerBuilder) WithOptions(opts CompareOptions) *TextComparerBuilder {
	b.options = opts
	return b
}

// WithLogger sets the logger used for debug tracing.
func (b *TextComparerBuilder) WithLogger(logger zerolog.Logger) *TextComparerBuilder {
	b.logger = logger.With().Str("component", "TextComparer").Logger()
	return b
}

// Build creates a new TextComparer instance.
func (b *TextComparerBuilder) Build() *TextComparer {
	return &TextComparer{options: b.options, logger: b.logger}
}

// Options returns the options the comparer was built with.
func (tc *TextComparer) Options() CompareOptions {
	return tc.options
}

// Compare runs CompareTexts with the comparer's options.
func (tc *TextComparer) Compare(sourceText, ocrText string) *Result {
	result := CompareTexts(sourceText, ocrText, tc.options)
	tc.logger.Debug().
		Int("source_words", result.Stats.TotalWordsSource).
		Int("ocr_words", result.Stats.TotalWordsOCR).
		Int("differences", len(result.Differences)).
		Float64("accuracy", result.Stats.Accuracy).
		Msg("Compared texts")
	return result
}
