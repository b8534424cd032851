package compare

// DiffKind classifies one word-level difference.
type DiffKind int

const (
	// KindSimilar marks a one-to-one replacement whose similarity ratio
	// exceeds the similarity threshold (a likely OCR misread).
	KindSimilar DiffKind = iota
	// KindReplaced marks a one-to-one replacement below the threshold.
	KindReplaced
	// KindDeleted marks a source word with no OCR counterpart.
	KindDeleted
	// KindInserted marks an OCR word with no source counterpart.
	KindInserted
)

// String returns the lowercase kind name used in reports and artifacts.
func (k DiffKind) String() string {
	switch k {
	case KindSimilar:
		return "similar"
	case KindReplaced:
		return "replaced"
	case KindDeleted:
		return "deleted"
	case KindInserted:
		return "inserted"
	default:
		return "unknown"
	}
}

// Difference is one classified divergence between the two texts, in
// left-to-right discovery order. SourceText is empty for KindInserted,
// OCRText for KindDeleted. For KindSimilar the character-level spans of the
// original word pair are included for presentation.
type Difference struct {
	SourceText  string
	OCRText     string
	Kind        DiffKind
	SourceSpans []Span
	OCRSpans    []Span
}
