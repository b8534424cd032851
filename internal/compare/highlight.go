package compare

import "github.com/aleister1102/ocrdiff/internal/compare/align"

// SpanKind classifies a span of characters within a highlighted word pair.
type SpanKind int

const (
	// SpanEqual marks characters present in both words.
	SpanEqual SpanKind = iota
	// SpanRemoved marks characters present only in the source-side word.
	SpanRemoved
	// SpanAdded marks characters present only in the OCR-side word.
	SpanAdded
)

// Span is a run of characters with a single classification. Rendering
// (terminal colors, HTML markup) is entirely the consumer's choice.
type Span struct {
	Text string
	Kind SpanKind
}

// HighlightWords aligns two words at character granularity and returns the
// classified spans for each side: equal spans appear on both, replaced and
// deleted characters appear as SpanRemoved on the first word, replaced and
// inserted characters as SpanAdded on the second.
func HighlightWords(wordA, wordB string) (spansA, spansB []Span) {
	ra := []rune(wordA)
	rb := []rune(wordB)

	for _, op := range align.Align(ra, rb) {
		switch op.Tag {
		case align.OpEqual:
			spansA = append(spansA, Span{Text: string(ra[op.I1:op.I2]), Kind: SpanEqual})
			spansB = append(spansB, Span{Text: string(rb[op.J1:op.J2]), Kind: SpanEqual})
		case align.OpReplace:
			spansA = append(spansA, Span{Text: string(ra[op.I1:op.I2]), Kind: SpanRemoved})
			spansB = append(spansB, Span{Text: string(rb[op.J1:op.J2]), Kind: SpanAdded})
		case align.OpDelete:
			spansA = append(spansA, Span{Text: string(ra[op.I1:op.I2]), Kind: SpanRemoved})
		case align.OpInsert:
			spansB = append(spansB, Span{Text: string(rb[op.J1:op.J2]), Kind: SpanAdded})
		}
	}
	return spansA, spansB
}
