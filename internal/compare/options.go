package compare

import "strings"

// CompareOptions controls how normalized comparison keys are derived from
// tokens. Both flags are independent and default to exact matching.
type CompareOptions struct {
	IgnoreCase        bool
	IgnorePunctuation bool
}

// Describe returns a human-readable description of the active options.
func (o CompareOptions) Describe() string {
	var opts []string
	if o.IgnoreCase {
		opts = append(opts, "case-insensitive")
	}
	if o.IgnorePunctuation {
		opts = append(opts, "ignoring punctuation")
	}
	if len(opts) == 0 {
		return "exact matching"
	}
	return strings.Join(opts, ", ")
}
