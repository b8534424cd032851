package reporter

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/ocrdiff/internal/compare"
)

func renderToString(t *testing.T, result *compare.Result, showList bool) string {
	t.Helper()
	var buf bytes.Buffer
	NewConsoleReporter(&buf, MonochromePalette()).Render(result, showList)
	return buf.String()
}

func TestConsoleReporter_Render(t *testing.T) {
	result := compare.CompareTexts("The quick brown fox", "The qucik brown fox", compare.CompareOptions{})

	out := renderToString(t, result, true)

	assert.Contains(t, out, "=== LEGEND ===")
	assert.Contains(t, out, "=== SOURCE TEXT (with errors marked) ===")
	assert.Contains(t, out, "=== OCR OUTPUT (with errors marked) ===")
	assert.Contains(t, out, "=== DIFFERENCES LIST ===")
	assert.Contains(t, out, "'quick' -> 'qucik'")
	assert.Contains(t, out, "Source words:      4")
	assert.Contains(t, out, "Exact matches:     3")
	assert.Contains(t, out, "Word accuracy:     75.0%")
}

func TestConsoleReporter_NoDifferences(t *testing.T) {
	result := compare.CompareTexts("same text", "same text", compare.CompareOptions{})

	out := renderToString(t, result, true)

	assert.Contains(t, out, "No differences found!")
	assert.NotContains(t, out, "=== DIFFERENCES LIST ===")
}

func TestConsoleReporter_DeletedAndInserted(t *testing.T) {
	result := compare.CompareTexts("keep gone keep", "keep keep extra", compare.CompareOptions{})

	out := renderToString(t, result, true)

	assert.Contains(t, out, "[gone]")
	assert.Contains(t, out, "[extra]")
	assert.Contains(t, out, "DELETED: 'gone'")
	assert.Contains(t, out, "INSERTED: 'extra'")
}

func TestConsoleReporter_MarkedLinesCoverAllWords(t *testing.T) {
	result := compare.CompareTexts("a b c", "a x y c", compare.CompareOptions{})

	out := renderToString(t, result, false)

	for _, word := range []string{"a", "b", "c", "x", "y"} {
		assert.Contains(t, out, word)
	}
	assert.NotContains(t, out, "DIFFERENCES LIST")
}

func TestConsoleReporter_ColoredOutput(t *testing.T) {
	result := compare.CompareTexts("one", "two", compare.CompareOptions{})

	var buf bytes.Buffer
	NewConsoleReporter(&buf, DefaultPalette()).Render(result, true)

	assert.Contains(t, buf.String(), "\033[0m")
}

func TestDetectColor(t *testing.T) {
	// Non-file writers never get color.
	assert.False(t, DetectColor(&bytes.Buffer{}))

	// NO_COLOR wins over everything.
	t.Setenv("NO_COLOR", "1")
	assert.False(t, DetectColor(os.Stdout))
}

func TestMonochromePaletteIsPlain(t *testing.T) {
	result := compare.CompareTexts("the quick fox", "the qucik fox", compare.CompareOptions{})

	out := renderToString(t, result, true)
	require.NotEmpty(t, out)
	assert.NotContains(t, out, "\033[")
}
