// Package descriptor emits the per-sprite placement table produced by a
// pack run, either as a fixed XML schema or via a user-supplied template
// with a small percent-specifier grammar.
package descriptor

// Template holds the four optional user-supplied strings that select and
// shape template mode. Body non-empty enables template mode; otherwise
// XML mode is used.
type Template struct {
	Header string
	Body   string
	Footer string
	Split  string

	// Warnf, if non-nil, is called once per unrecognized specifier
	// encountered while expanding Header, Body, Footer or Split.
	Warnf func(format string, args ...any)
}

// Enabled reports whether t selects template mode.
func (t Template) Enabled() bool {
	return t.Body != ""
}

func (t Template) warnf(format string, args ...any) {
	if t.Warnf != nil {
		t.Warnf(format, args...)
	}
}
