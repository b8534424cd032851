package reporter

import (
	"github.com/aleister1102/ocrdiff/internal/compare"
	"github.com/aleister1102/ocrdiff/internal/compare/align"
)

// MarkedWord is one word of a side-by-side text view with its styling class.
// Class is empty for matched words; "error" marks one-to-one replacements
// (Title carries the counterpart word), "deleted" and "inserted" mark words
// present on only one side.
type MarkedWord struct {
	Text  string
	Class string
	Title string
}

// BuildMarkedTexts walks the word-level alignment of a comparison result and
// returns the source and OCR word sequences annotated for display. The
// classification mirrors the one the differences list uses: equal-length
// replace blocks pair words position-wise, unequal blocks degenerate to
// deleted plus inserted words.
func BuildMarkedTexts(result *compare.Result) (markedSource, markedOCR []MarkedWord) {
	for _, op := range result.Ops {
		switch op.Tag {
		case align.OpEqual:
			for i := op.I1; i < op.I2; i++ {
				markedSource = append(markedSource, MarkedWord{Text: result.SourceWords[i]})
			}
			for j := op.J1; j < op.J2; j++ {
				markedOCR = append(markedOCR, MarkedWord{Text: result.OCRWords[j]})
			}

		case align.OpReplace:
			if op.I2-op.I1 == op.J2-op.J1 {
				for k := 0; k < op.I2-op.I1; k++ {
					srcWord := result.SourceWords[op.I1+k]
					ocrWord := result.OCRWords[op.J1+k]
					markedSource = append(markedSource, MarkedWord{Text: srcWord, Class: "error", Title: "OCR: " + ocrWord})
					markedOCR = append(markedOCR, MarkedWord{Text: ocrWord, Class: "error", Title: "Source: " + srcWord})
				}
				continue
			}
			for i := op.I1; i < op.I2; i++ {
				markedSource = append(markedSource, MarkedWord{Text: result.SourceWords[i], Class: "deleted"})
			}
			for j := op.J1; j < op.J2; j++ {
				markedOCR = append(markedOCR, MarkedWord{Text: result.OCRWords[j], Class: "inserted"})
			}

		case align.OpDelete:
			for i := op.I1; i < op.I2; i++ {
				markedSource = append(markedSource, MarkedWord{Text: result.SourceWords[i], Class: "deleted"})
			}

		case align.OpInsert:
			for j := op.J1; j < op.J2; j++ {
				markedOCR = append(markedOCR, MarkedWord{Text: result.OCRWords[j], Class: "inserted"})
			}
		}
	}
	return markedSource, markedOCR
}
