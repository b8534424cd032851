// Package datastore persists per-document comparison outcomes to Parquet so
// accuracy can be tracked across runs.
package datastore

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"

	"github.com/aleister1102/ocrdiff/internal/common"
	"github.com/aleister1102/ocrdiff/internal/config"
)

const comparisonHistoryFile = "comparison_history.parquet"

// ParquetResultStore stores comparison records in a single Parquet history
// file under the configured base path.
type ParquetResultStore struct {
	storageConfig *config.StorageConfig
	logger        zerolog.Logger
}

// NewParquetResultStore creates a new ParquetResultStore and ensures the
// base directory exists.
func NewParquetResultStore(cfg *config.StorageConfig, logger zerolog.Logger) (*ParquetResultStore, error) {
	if cfg == nil {
		return nil, common.NewValidationError("storage_config", cfg, "storage config cannot be nil")
	}

	store := &ParquetResultStore{
		storageConfig: cfg,
		logger:        logger.With().Str("component", "ParquetResultStore").Logger(),
	}

	if err := os.MkdirAll(cfg.ParquetBasePath, 0755); err != nil {
		return nil, common.WrapError(err, "failed to ensure history base directory '"+cfg.ParquetBasePath+"'")
	}
	return store, nil
}

// historyFilePath returns the path of the history Parquet file.
func (prs *ParquetResultStore) historyFilePath() string {
	return filepath.Join(prs.storageConfig.ParquetBasePath, comparisonHistoryFile)
}

// AppendRecords appends the given records to the history file. The existing
// records are read, combined with the new ones, and written to a temporary
// file that atomically replaces the current one.
func (prs *ParquetResultStore) AppendRecords(records []ComparisonRecord) error {
	if len(records) == 0 {
		return nil
	}

	existing, err := prs.ReadAllRecords()
	if err != nil {
		return common.WrapError(err, "failed to read existing history records")
	}
	combined := append(existing, records...)

	filePath := prs.historyFilePath()
	tmpPath := filePath + ".tmp"

	if err := prs.writeRecords(tmpPath, combined); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		return common.WrapError(err, "failed to replace history file")
	}

	prs.logger.Info().
		Int("appended", len(records)).
		Int("total", len(combined)).
		Str("path", filePath).
		Msg("Appended comparison records to history")
	return nil
}

// ReadAllRecords reads every record from the history file, sorted by
// comparison time ascending then document ID. A missing or empty file
// yields an empty slice, not an error.
func (prs *ParquetResultStore) ReadAllRecords() ([]ComparisonRecord, error) {
	filePath := prs.historyFilePath()

	osFile, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []ComparisonRecord{}, nil
		}
		return nil, common.WrapError(err, "failed to open history file '"+filePath+"'")
	}
	defer osFile.Close()

	stat, err := osFile.Stat()
	if err != nil {
		return nil, common.WrapError(err, "failed to stat history file '"+filePath+"'")
	}
	if stat.Size() == 0 {
		return []ComparisonRecord{}, nil
	}

	pqFile, err := parquet.OpenFile(osFile, stat.Size())
	if err != nil {
		return nil, common.WrapError(err, "failed to open parquet file '"+filePath+"'")
	}

	reader := parquet.NewGenericReader[ComparisonRecord](pqFile)
	defer reader.Close()

	var records []ComparisonRecord
	buf := make([]ComparisonRecord, 64)
	for {
		n, err := reader.Read(buf)
		records = append(records, buf[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, common.WrapError(err, "failed to read history records from '"+filePath+"'")
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].ComparedAt != records[j].ComparedAt {
			return records[i].ComparedAt < records[j].ComparedAt
		}
		return records[i].DocumentID < records[j].DocumentID
	})
	return records, nil
}

// writeRecords writes all records to the given path with the configured
// compression codec.
func (prs *ParquetResultStore) writeRecords(path string, records []ComparisonRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return common.WrapError(err, "failed to create history file '"+path+"'")
	}

	writer := parquet.NewGenericWriter[ComparisonRecord](file, prs.compressionOption())
	if _, err := writer.Write(records); err != nil {
		_ = file.Close()
		return common.WrapError(err, "failed to write history records")
	}
	if err := writer.Close(); err != nil {
		_ = file.Close()
		return common.WrapError(err, "failed to finalize history file")
	}
	return file.Close()
}

// compressionOption maps the configured codec name to a writer option.
func (prs *ParquetResultStore) compressionOption() parquet.WriterOption {
	switch strings.ToLower(prs.storageConfig.CompressionCodec) {
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "zstd":
		return parquet.Compression(&parquet.Zstd)
	default:
		return parquet.Compression(&parquet.Uncompressed)
	}
}
