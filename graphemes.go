package skiprope

import (
	"iter"

	"github.com/npillmayer/uax/grapheme"
)

// Graphemes returns an iterator over the user-perceived characters (grapheme
// clusters, UAX #29) of the document. Code points that combine — accents,
// variation selectors, emoji ZWJ sequences — are yielded as one string.
//
// Grapheme boundaries are a presentation concern; all positioning in this
// package stays defined over code points and UTF-16 units. Cluster
// recognition works on a materialized copy of the document, so this is an
// O(n)-space convenience, not an editing primitive.
func (r *Rope) Graphemes() iter.Seq[string] {
	return func(yield func(string) bool) {
		grapheme.SetupGraphemeClasses()
		gstr := grapheme.StringFromString(r.String())
		for i := 0; i < gstr.Len(); i++ {
			if !yield(gstr.Nth(i)) {
				return
			}
		}
	}
}
