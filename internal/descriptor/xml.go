package descriptor

import (
	"fmt"
	"io"
	"strings"

	"github.com/woozymasta/spritesqueeze/internal/pack"
)

// WriteXML writes the fixed <texture>/<sprite> schema for result, one
// <sprite> per entry in input order.
func WriteXML(w io.Writer, result *pack.Result) error {
	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if _, err := fmt.Fprintf(w, "<texture width=\"%d\" height=\"%d\">\n", result.Width, result.Height); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	for _, s := range result.Sprites {
		if _, err := fmt.Fprintf(w,
			"    <sprite name=%s left=\"%d\" top=\"%d\" rotated=\"%t\"\n"+
				"            width=\"%d\" height=\"%d\"\n"+
				"            trimOffsetLeft=\"%d\" trimOffsetTop=\"%d\"\n"+
				"            originWidth=\"%d\" originHeight=\"%d\"></sprite>\n",
			xmlAttrQuote(s.ShortName), s.Placement.Left, s.Placement.Top, s.Placement.Rotated,
			s.TrimmedSize.W, s.TrimmedSize.H,
			s.Trim.OffsetLeft, s.Trim.OffsetTop,
			s.Trim.OriginWidth, s.Trim.OriginHeight,
		); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}

	if _, err := fmt.Fprintf(w, "</texture>\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return nil
}

// xmlAttrQuote renders s as a double-quoted XML attribute value, escaping
// &, <, > and the double quote.
func xmlAttrQuote(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
	)
	return "\"" + r.Replace(s) + "\""
}
