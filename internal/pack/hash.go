package pack

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// contentHash computes a verbose-mode diagnostic fingerprint of the
// rendered atlas: pixel bytes plus every sprite's placement. It exists
// purely so a user can compare two runs by eye; nothing in the pipeline
// reads it back to decide whether to skip work.
func contentHash(r *Result) uint64 {
	h := xxhash.New()

	_, _ = h.Write(r.Atlas.Bytes())
	_, _ = h.Write([]byte{0})

	for _, s := range r.Sprites {
		_, _ = h.WriteString(s.ShortName)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(strconv.Itoa(s.Placement.Left))
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(strconv.Itoa(s.Placement.Top))
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(strconv.FormatBool(s.Placement.Rotated))
		_, _ = h.Write([]byte{'\n'})
	}

	return h.Sum64()
}
