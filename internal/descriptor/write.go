package descriptor

import (
	"io"

	"github.com/woozymasta/spritesqueeze/internal/pack"
)

// Write emits result's descriptor to w: template mode if tmpl.Enabled(),
// otherwise the fixed XML schema.
func Write(w io.Writer, result *pack.Result, tmpl Template) error {
	if tmpl.Enabled() {
		return WriteTemplate(w, result, tmpl)
	}
	return WriteXML(w, result)
}
