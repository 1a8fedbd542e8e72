package skiprope

import (
	"errors"

	"github.com/npillmayer/skiprope/gapbuf"
)

// metric selects the coordinate system of a descent.
type metric int

const (
	byChars metric = iota
	byUTF16
)

func (m metric) of(s gapbuf.Span) uint64 {
	if m == byUTF16 {
		return s.UTF16
	}
	return s.Chars
}

// pathEntry is one level of a cursor's update path.
//
// node is the leaf whose forward pointer at this level would have to change
// if an edit occurred at the cursor position; off is the extent of the text
// from that leaf's start up to the cursor position.
type pathEntry struct {
	node *node
	off  gapbuf.Span
}

// cursor is the result of a descent: the update path for all realized levels,
// plus the cursor position as an extent from the document start.
//
// A cursor is scratch state for a single operation. It is captured during
// descent and consumed by the edit algorithms; it does not survive mutations
// other than the ones that patch it along the way.
type cursor struct {
	path [maxHeight]pathEntry
	abs  gapbuf.Span
}

// locate descends from the head to the position target, measured in metric m,
// and captures the update path.
//
// Ties at leaf boundaries resolve to the end of the earlier leaf: the descent
// only advances past a forward pointer while the remaining offset is strictly
// larger than the pointer's span. The residual offset inside the landing leaf
// is resolved to a byte position (path[0].off.Bytes).
func (r *Rope) locate(target uint64, m metric) (cursor, error) {
	if target > m.of(r.total()) {
		return cursor{}, ErrIndexOutOfBounds
	}
	var c cursor
	var walked gapbuf.Span // extent from document start to n's start
	var starts [maxHeight]gapbuf.Span
	n := &r.head
	remaining := target
	for h := r.head.height - 1; h >= 0; h-- {
		for {
			entry := n.nexts[h]
			if entry.node == nil || remaining <= m.of(entry.span) {
				break
			}
			remaining -= m.of(entry.span)
			walked = walked.Add(entry.span)
			n = entry.node
		}
		c.path[h].node = n
		starts[h] = walked
	}
	residual, err := seekIn(&n.buf, remaining, m)
	if err != nil {
		return cursor{}, err
	}
	for h := 0; h < r.head.height; h++ {
		c.path[h].off = walked.Sub(starts[h]).Add(residual)
	}
	c.abs = walked.Add(residual)
	return c, nil
}

// seekIn resolves a residual offset (in metric m) inside a leaf's content to
// the span of the content before it.
func seekIn(buf *gapbuf.Buffer, residual uint64, m metric) (gapbuf.Span, error) {
	var span gapbuf.Span
	var err error
	if m == byUTF16 {
		_, span, err = buf.SeekUTF16(residual)
	} else {
		_, span, err = buf.SeekChars(residual)
	}
	if err != nil {
		if errors.Is(err, gapbuf.ErrNotCharBoundary) {
			return gapbuf.Span{}, ErrNotCharBoundary
		}
		return gapbuf.Span{}, ErrIndexOutOfBounds
	}
	return span, nil
}

// addToPath grows the forward spans along the update path by s. Every entry
// on the path covers the cursor position, so every enabled metric is bumped
// together.
func (r *Rope) addToPath(c *cursor, s gapbuf.Span) {
	for h := 0; h < r.head.height; h++ {
		entry := &c.path[h].node.nexts[h]
		entry.span = entry.span.Add(s)
	}
}

// subFromPath shrinks the forward spans along the update path by s.
func (r *Rope) subFromPath(c *cursor, s gapbuf.Span) {
	for h := 0; h < r.head.height; h++ {
		entry := &c.path[h].node.nexts[h]
		entry.span = entry.span.Sub(s)
	}
}
