package common

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileReadOptions controls how files are read.
type FileReadOptions struct {
	MaxSize int64 // maximum file size in bytes, 0 means unlimited
}

// DefaultFileReadOptions returns sensible defaults for reading text inputs.
func DefaultFileReadOptions() FileReadOptions {
	return FileReadOptions{MaxSize: 10 * 1024 * 1024}
}

// FileWriteOptions controls how files are written.
type FileWriteOptions struct {
	CreateDirs bool
	Perm       fs.FileMode
}

// DefaultFileWriteOptions returns defaults for writing report artifacts.
func DefaultFileWriteOptions() FileWriteOptions {
	return FileWriteOptions{CreateDirs: true, Perm: 0644}
}

// FileManager provides high-level file operations with standardized error
// handling and logging.
type FileManager struct {
	logger zerolog.Logger
}

// NewFileManager creates a new FileManager instance
func NewFileManager(logger zerolog.Logger) *FileManager {
	return &FileManager{
		logger: logger.With().Str("component", "FileManager").Logger(),
	}
}

// FileExists checks if a file or directory exists
func (fm *FileManager) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// ReadFile reads a file with the given options
func (fm *FileManager) ReadFile(path string, opts FileReadOptions) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, WrapError(ErrNotFound, "file does not exist: "+path)
		}
		return nil, WrapError(err, "failed to stat file: "+path)
	}
	if info.IsDir() {
		return nil, NewValidationError("path", path, "is a directory, not a file")
	}
	if opts.MaxSize > 0 && info.Size() > opts.MaxSize {
		return nil, NewValidationError("path", path, "file exceeds maximum allowed size")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(err, "failed to read file: "+path)
	}

	fm.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Read file")
	return data, nil
}

// EnsureDirectory creates a directory and its parents if they don't exist
func (fm *FileManager) EnsureDirectory(path string, perm fs.FileMode) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return NewValidationError("path", path, "exists but is not a directory")
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return WrapError(err, "failed to check directory: "+path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return WrapError(err, "failed to create directory: "+path)
	}

	fm.logger.Debug().Str("path", path).Msg("Created directory")
	return nil
}

// WriteFile writes data to a file with the given options
func (fm *FileManager) WriteFile(path string, data []byte, opts FileWriteOptions) error {
	if opts.CreateDirs {
		if err := fm.EnsureDirectory(filepath.Dir(path), 0755); err != nil {
			return WrapError(err, "failed to create parent directories for: "+path)
		}
	}

	perm := opts.Perm
	if perm == 0 {
		perm = 0644
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return WrapError(err, "failed to write file: "+path)
	}

	fm.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Wrote file")
	return nil
}

// ListFilesWithExtension returns the sorted file names (not paths) in dir
// that carry the given extension.
func (fm *FileManager) ListFilesWithExtension(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, WrapError(err, "failed to list directory: "+dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ext {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
