package compare

// Stats holds the summary counters for one comparison, or the field-wise sum
// of several comparisons. Every filtered source token is accounted for
// exactly once across Equal, Similar, Replaced and Deleted; every filtered
// OCR token exactly once across Equal, Similar, Replaced and Inserted.
type Stats struct {
	Equal            int     `json:"equal"`
	Similar          int     `json:"similar"`
	Replaced         int     `json:"replaced"`
	Deleted          int     `json:"deleted"`
	Inserted         int     `json:"inserted"`
	TotalWordsSource int     `json:"total_words_source"`
	TotalWordsOCR    int     `json:"total_words_ocr"`
	Accuracy         float64 `json:"accuracy"`
}

// TotalErrors returns the number of tokens that did not match exactly.
func (s Stats) TotalErrors() int {
	return s.Similar + s.Replaced + s.Deleted + s.Inserted
}

// Merge returns the field-wise sum of two Stats values with the accuracy
// recomputed over the combined totals. Merging is commutative and
// associative on the counters, so multi-document aggregation is
// order-independent.
func (s Stats) Merge(other Stats) Stats {
	merged := Stats{
		Equal:            s.Equal + other.Equal,
		Similar:          s.Similar + other.Similar,
		Replaced:         s.Replaced + other.Replaced,
		Deleted:          s.Deleted + other.Deleted,
		Inserted:         s.Inserted + other.Inserted,
		TotalWordsSource: s.TotalWordsSource + other.TotalWordsSource,
		TotalWordsOCR:    s.TotalWordsOCR + other.TotalWordsOCR,
	}
	merged.Accuracy = accuracy(merged.Equal, merged.TotalWordsSource)
	return merged
}

// accuracy is the percentage of source words matched exactly. A zero source
// total yields 0, never a division fault.
func accuracy(equal, totalSource int) float64 {
	if totalSource == 0 {
		return 0
	}
	return float64(equal) / float64(totalSource) * 100
}
