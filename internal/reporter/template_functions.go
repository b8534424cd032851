package reporter

import (
	"fmt"
	"html/template"
	"strconv"
)

// GetReportTemplateFunctions returns the function map shared by the report
// templates.
func GetReportTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"formatAccuracy": formatAccuracy,
		"comma":          commaFormat,
	}
}

// formatAccuracy renders a percentage with one decimal place.
func formatAccuracy(accuracy float64) string {
	return fmt.Sprintf("%.1f%%", accuracy)
}

// commaFormat groups thousands with commas for the summary stat boxes.
func commaFormat(n int) string {
	s := strconv.Itoa(n)
	start := 0
	if len(s) > 0 && s[0] == '-' {
		start = 1
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	out = append(out, s[:start]...)
	digits := s[start:]
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
