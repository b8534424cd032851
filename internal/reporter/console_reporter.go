package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aleister1102/ocrdiff/internal/compare"
	"github.com/aleister1102/ocrdiff/internal/compare/align"
)

// Palette holds the ANSI escape codes used by the console renderer. A zero
// value renders plain text.
type Palette struct {
	Red       string
	Green     string
	Yellow    string
	Magenta   string
	Cyan      string
	Bold      string
	Underline string
	Reset     string
	BgRed     string
	BgGreen   string
}

// DefaultPalette returns the colored palette.
func DefaultPalette() Palette {
	return Palette{
		Red:       "\033[91m",
		Green:     "\033[92m",
		Yellow:    "\033[93m",
		Magenta:   "\033[95m",
		Cyan:      "\033[96m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		BgRed:     "\033[41m",
		BgGreen:   "\033[42m",
	}
}

// MonochromePalette returns a palette that renders plain text.
func MonochromePalette() Palette { return Palette{} }

// DetectColor reports whether colored output is appropriate for w,
// honoring the NO_COLOR convention and falling back to plain text for
// non-terminal writers.
func DetectColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConsoleReporter renders a comparison result as an annotated terminal view:
// legend, both texts with differences marked, the numbered differences list
// and a statistics block.
type ConsoleReporter struct {
	w       io.Writer
	palette Palette
}

// NewConsoleReporter creates a console reporter writing to w.
func NewConsoleReporter(w io.Writer, palette Palette) *ConsoleReporter {
	return &ConsoleReporter{w: w, palette: palette}
}

// Render writes the full console view for one comparison result.
func (cr *ConsoleReporter) Render(result *compare.Result, showList bool) {
	cr.printLegend()

	sourceLine, ocrLine := cr.markedLines(result)
	cr.printHeader("SOURCE TEXT (with errors marked)")
	fmt.Fprintln(cr.w, sourceLine)
	fmt.Fprintln(cr.w)
	cr.printHeader("OCR OUTPUT (with errors marked)")
	fmt.Fprintln(cr.w, ocrLine)
	fmt.Fprintln(cr.w)

	if showList {
		cr.printDifferences(result.Differences)
	}
	cr.printStats(result.Stats)
}

func (cr *ConsoleReporter) printHeader(title string) {
	p := cr.palette
	fmt.Fprintf(cr.w, "%s%s=== %s ===%s\n", p.Bold, p.Cyan, title, p.Reset)
}

func (cr *ConsoleReporter) printLegend() {
	p := cr.palette
	cr.printHeader("LEGEND")
	fmt.Fprintf(cr.w, "  %stext%s = Characters in source but wrong/missing in OCR\n", p.BgRed, p.Reset)
	fmt.Fprintf(cr.w, "  %stext%s = Characters in OCR that differ from source\n", p.BgGreen, p.Reset)
	fmt.Fprintf(cr.w, "  %s[text]%s = Words deleted from source\n", p.Red, p.Reset)
	fmt.Fprintf(cr.w, "  %s[text]%s = Words inserted in OCR\n", p.Green, p.Reset)
	fmt.Fprintln(cr.w)
}

// markedLines rebuilds both texts with per-word styling by walking the
// alignment ops. The differences list is consumed in step, since it was
// emitted in the same order the ops are discovered.
func (cr *ConsoleReporter) markedLines(result *compare.Result) (string, string) {
	p := cr.palette
	var sourceParts, ocrParts []string

	next := differenceCursor(result.Differences)
	for _, op := range result.Ops {
		switch op.Tag {
		case align.OpEqual:
			sourceParts = append(sourceParts, result.SourceWords[op.I1:op.I2]...)
			ocrParts = append(ocrParts, result.OCRWords[op.J1:op.J2]...)

		case align.OpReplace:
			if op.I2-op.I1 == op.J2-op.J1 {
				for k := 0; k < op.I2-op.I1; k++ {
					diff := next()
					if diff.Kind == compare.KindSimilar {
						sourceParts = append(sourceParts, cr.renderSpans(diff.SourceSpans))
						ocrParts = append(ocrParts, cr.renderSpans(diff.OCRSpans))
						continue
					}
					sourceParts = append(sourceParts, p.Red+p.Underline+diff.SourceText+p.Reset)
					ocrParts = append(ocrParts, p.Green+p.Underline+diff.OCRText+p.Reset)
				}
				continue
			}
			for i := op.I1; i < op.I2; i++ {
				diff := next()
				sourceParts = append(sourceParts, p.Red+p.Underline+diff.SourceText+p.Reset)
			}
			for j := op.J1; j < op.J2; j++ {
				diff := next()
				ocrParts = append(ocrParts, p.Green+p.Underline+diff.OCRText+p.Reset)
			}

		case align.OpDelete:
			for i := op.I1; i < op.I2; i++ {
				diff := next()
				sourceParts = append(sourceParts, p.Red+p.Bold+"["+diff.SourceText+"]"+p.Reset)
			}

		case align.OpInsert:
			for j := op.J1; j < op.J2; j++ {
				diff := next()
				ocrParts = append(ocrParts, p.Green+p.Bold+"["+diff.OCRText+"]"+p.Reset)
			}
		}
	}
	return strings.Join(sourceParts, " "), strings.Join(ocrParts, " ")
}

// renderSpans colors the changed spans of a similar word pair.
func (cr *ConsoleReporter) renderSpans(spans []compare.Span) string {
	p := cr.palette
	var b strings.Builder
	for _, span := range spans {
		switch span.Kind {
		case compare.SpanRemoved:
			b.WriteString(p.BgRed + p.Bold + span.Text + p.Reset)
		case compare.SpanAdded:
			b.WriteString(p.BgGreen + p.Bold + span.Text + p.Reset)
		default:
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

func (cr *ConsoleReporter) printDifferences(differences []compare.Difference) {
	p := cr.palette
	if len(differences) == 0 {
		fmt.Fprintf(cr.w, "%sNo differences found!%s\n\n", p.Green, p.Reset)
		return
	}

	cr.printHeader("DIFFERENCES LIST")
	for i, diff := range differences {
		switch diff.Kind {
		case compare.KindSimilar:
			fmt.Fprintf(cr.w, "  %3d. %s'%s'%s -> %s'%s'%s\n", i+1, p.Yellow, diff.SourceText, p.Reset, p.Yellow, diff.OCRText, p.Reset)
		case compare.KindReplaced:
			fmt.Fprintf(cr.w, "  %3d. %s'%s'%s -> %s'%s'%s\n", i+1, p.Red, diff.SourceText, p.Reset, p.Green, diff.OCRText, p.Reset)
		case compare.KindDeleted:
			fmt.Fprintf(cr.w, "  %3d. %sDELETED: '%s'%s\n", i+1, p.Red, diff.SourceText, p.Reset)
		case compare.KindInserted:
			fmt.Fprintf(cr.w, "  %3d. %sINSERTED: '%s'%s\n", i+1, p.Green, diff.OCRText, p.Reset)
		}
	}
	fmt.Fprintln(cr.w)
}

func (cr *ConsoleReporter) printStats(stats compare.Stats) {
	p := cr.palette
	cr.printHeader("STATISTICS")
	fmt.Fprintf(cr.w, "  Source words:      %d\n", stats.TotalWordsSource)
	fmt.Fprintf(cr.w, "  OCR words:         %d\n", stats.TotalWordsOCR)
	fmt.Fprintf(cr.w, "  %sExact matches:     %d%s\n", p.Green, stats.Equal, p.Reset)
	fmt.Fprintf(cr.w, "  %sSimilar (OCR err): %d%s\n", p.Yellow, stats.Similar, p.Reset)
	fmt.Fprintf(cr.w, "  %sReplaced:          %d%s\n", p.Magenta, stats.Replaced, p.Reset)
	fmt.Fprintf(cr.w, "  %sDeleted:           %d%s\n", p.Red, stats.Deleted, p.Reset)
	fmt.Fprintf(cr.w, "  %sInserted:          %d%s\n", p.Green, stats.Inserted, p.Reset)
	fmt.Fprintf(cr.w, "  Total errors:      %d\n", stats.TotalErrors())
	fmt.Fprintf(cr.w, "  %sWord accuracy:     %.1f%%%s\n", p.Bold, stats.Accuracy, p.Reset)
}

// differenceCursor returns a function yielding the differences in order.
func differenceCursor(differences []compare.Difference) func() compare.Difference {
	index := 0
	return func() compare.Difference {
		diff := differences[index]
		index++
		return diff
	}
}
