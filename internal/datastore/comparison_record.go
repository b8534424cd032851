package datastore

import (
	"time"

	"github.com/aleister1102/ocrdiff/internal/compare"
)

// ComparisonRecord defines the schema for storing per-document comparison
// outcomes in Parquet format. Timestamps are stored as Unix milliseconds.
type ComparisonRecord struct {
	DocumentID        string  `parquet:"document_id"`
	ComparedAt        int64   `parquet:"compared_at"`
	IgnoreCase        bool    `parquet:"ignore_case"`
	IgnorePunctuation bool    `parquet:"ignore_punctuation"`
	SourceWords       int64   `parquet:"source_words"`
	OCRWords          int64   `parquet:"ocr_words"`
	Equal             int64   `parquet:"equal"`
	Similar           int64   `parquet:"similar"`
	Replaced          int64   `parquet:"replaced"`
	Deleted           int64   `parquet:"deleted"`
	Inserted          int64   `parquet:"inserted"`
	Accuracy          float64 `parquet:"accuracy"`
	ReportFile        *string `parquet:"report_file,optional"`
}

// NewComparisonRecord builds a record from one document's comparison stats.
func NewComparisonRecord(documentID string, stats compare.Stats, opts compare.CompareOptions, comparedAt time.Time) ComparisonRecord {
	return ComparisonRecord{
		DocumentID:        documentID,
		ComparedAt:        comparedAt.UnixMilli(),
		IgnoreCase:        opts.IgnoreCase,
		IgnorePunctuation: opts.IgnorePunctuation,
		SourceWords:       int64(stats.TotalWordsSource),
		OCRWords:          int64(stats.TotalWordsOCR),
		Equal:             int64(stats.Equal),
		Similar:           int64(stats.Similar),
		Replaced:          int64(stats.Replaced),
		Deleted:           int64(stats.Deleted),
		Inserted:          int64(stats.Inserted),
		Accuracy:          stats.Accuracy,
	}
}

// ToStats converts the stored counters back into a Stats value.
func (r ComparisonRecord) ToStats() compare.Stats {
	return compare.Stats{
		Equal:            int(r.Equal),
		Similar:          int(r.Similar),
		Replaced:         int(r.Replaced),
		Deleted:          int(r.Deleted),
		Inserted:         int(r.Inserted),
		TotalWordsSource: int(r.SourceWords),
		TotalWordsOCR:    int(r.OCRWords),
		Accuracy:         r.Accuracy,
	}
}
