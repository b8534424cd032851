package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_TotalErrors(t *testing.T) {
	stats := Stats{Similar: 1, Replaced: 2, Deleted: 3, Inserted: 4}
	assert.Equal(t, 10, stats.TotalErrors())
}

func TestStats_Merge(t *testing.T) {
	a := Stats{Equal: 8, Similar: 1, Deleted: 1, TotalWordsSource: 10, TotalWordsOCR: 9, Accuracy: 80}
	b := Stats{Equal: 2, Inserted: 3, TotalWordsSource: 10, TotalWordsOCR: 5, Accuracy: 20}

	merged := a.Merge(b)

	assert.Equal(t, 10, merged.Equal)
	assert.Equal(t, 1, merged.Similar)
	assert.Equal(t, 1, merged.Deleted)
	assert.Equal(t, 3, merged.Inserted)
	assert.Equal(t, 20, merged.TotalWordsSource)
	assert.Equal(t, 14, merged.TotalWordsOCR)
	assert.InDelta(t, 50.0, merged.Accuracy, 1e-9)
}

func TestStats_MergeCommutative(t *testing.T) {
	a := Stats{Equal: 3, Similar: 1, TotalWordsSource: 5, TotalWordsOCR: 4}
	b := Stats{Equal: 7, Replaced: 2, TotalWordsSource: 9, TotalWordsOCR: 10}

	assert.Equal(t, a.Merge(b), b.Merge(a))
}

func TestStats_MergeAssociative(t *testing.T) {
	a := Stats{Equal: 1, Deleted: 2, TotalWordsSource: 3, TotalWordsOCR: 1}
	b := Stats{Equal: 4, Inserted: 1, TotalWordsSource: 4, TotalWordsOCR: 5}
	c := Stats{Equal: 2, Similar: 2, Replaced: 1, TotalWordsSource: 5, TotalWordsOCR: 5}

	assert.Equal(t, a.Merge(b).Merge(c), a.Merge(b.Merge(c)))
}

func TestStats_MergeZeroSourceTotal(t *testing.T) {
	merged := Stats{}.Merge(Stats{})
	assert.Zero(t, merged.Accuracy)
}
