// Package highlight tokenizes source code into styled spans for the
// markup package to lower into Style/Text node pairs. The split
// between a plain fallback (built without the chroma tag) and a
// chroma-backed implementation (built with it) is carried over from
// the reference highlight_*.go pair.
package highlight

import "termdoc/ansi"

// Span is one run of text sharing a single style.
type Span struct {
	Text   string
	Color  *ansi.Color
	Bright bool
}
