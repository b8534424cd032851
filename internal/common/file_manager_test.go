package common

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManager_ReadFile(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	data, err := fm.ReadFile(path, DefaultFileReadOptions())
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestFileManager_ReadFile_NotFound(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())

	_, err := fm.ReadFile(filepath.Join(t.TempDir(), "missing.txt"), DefaultFileReadOptions())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileManager_ReadFile_TooLarge(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0644))

	_, err := fm.ReadFile(path, FileReadOptions{MaxSize: 5})
	require.Error(t, err)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestFileManager_WriteFile_CreatesDirs(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "nested", "deep", "out.txt")

	require.NoError(t, fm.WriteFile(path, []byte("content"), DefaultFileWriteOptions()))
	assert.FileExists(t, path)
}

func TestFileManager_ListFilesWithExtension(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0755))

	names, err := fm.ListFilesWithExtension(dir, ".txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")
	wrapped := WrapError(base, "context")

	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "context: boom", wrapped.Error())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("field", 42, "must be positive")
	assert.Contains(t, err.Error(), "field")
	assert.Contains(t, err.Error(), "must be positive")
}
