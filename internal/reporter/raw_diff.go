package reporter

import (
	"html/template"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RawDiffProcessor renders a whole-text character diff for the optional raw
// diff panel of a document report.
type RawDiffProcessor struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewRawDiffProcessor creates a new raw diff processor
func NewRawDiffProcessor() *RawDiffProcessor {
	return &RawDiffProcessor{dmp: diffmatchpatch.New()}
}

// RenderHTML diffs the two texts at character level, applies semantic
// cleanup and returns the rendered HTML fragment.
func (rdp *RawDiffProcessor) RenderHTML(sourceText, ocrText string) template.HTML {
	diffs := rdp.dmp.DiffMain(sourceText, ocrText, false)
	diffs = rdp.dmp.DiffCleanupSemantic(diffs)
	return template.HTML(rdp.dmp.DiffPrettyHtml(diffs))
}
