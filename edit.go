package skiprope

import (
	"unicode/utf8"

	"github.com/npillmayer/skiprope/gapbuf"
)

// Insert inserts text at character position pos.
//
// pos may be at most CharCount(); larger positions are rejected with
// ErrIndexOutOfBounds before any mutation happens. text must be valid UTF-8.
func (r *Rope) Insert(pos uint64, text string) error {
	c, err := r.locate(pos, byChars)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	r.insertAtCursor(&c, text)
	return nil
}

// InsertUTF16 inserts text at a position given in UTF-16 code units.
//
// Positions inside a surrogate pair are rejected with ErrNotCharBoundary.
func (r *Rope) InsertUTF16(pos uint64, text string) error {
	c, err := r.locate(pos, byUTF16)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	r.insertAtCursor(&c, text)
	return nil
}

// Remove deletes the character range [from,to).
func (r *Rope) Remove(from, to uint64) error {
	if from > to {
		return ErrIllegalArguments
	}
	if to > r.CharCount() {
		return ErrIndexOutOfBounds
	}
	if from == to {
		return nil
	}
	c, err := r.locate(from, byChars)
	assert(err == nil, "validated char offset cannot fail to locate")
	r.deleteAtCursor(&c, to-from)
	return nil
}

// RemoveUTF16 deletes the range [from,to), given in UTF-16 code units.
//
// Both range ends must be character boundaries; offsets inside a surrogate
// pair are rejected with ErrNotCharBoundary before any mutation happens.
func (r *Rope) RemoveUTF16(from, to uint64) error {
	if from > to {
		return ErrIllegalArguments
	}
	if to > r.UTF16Count() {
		return ErrIndexOutOfBounds
	}
	c1, err := r.locate(from, byUTF16)
	if err != nil {
		return err
	}
	c2, err := r.locate(to, byUTF16)
	if err != nil {
		return err
	}
	if count := c2.abs.Chars - c1.abs.Chars; count > 0 {
		r.deleteAtCursor(&c1, count)
	}
	return nil
}

// Replace substitutes the character range [from,to) with text. It is
// equivalent to Remove(from, to) followed by Insert(from, text), but
// overwrites in place when the replacement fits byte-for-byte into the first
// affected leaf.
func (r *Rope) Replace(from, to uint64, text string) error {
	if from > to {
		return ErrIllegalArguments
	}
	if to > r.CharCount() {
		return ErrIndexOutOfBounds
	}
	if from < to && text != "" {
		c, err := r.locate(from, byChars)
		assert(err == nil, "validated char offset cannot fail to locate")
		leaf := c.path[0].node
		off := c.path[0].off
		if off.Chars+(to-from) <= leaf.span().Chars {
			// Range lies within a single leaf.
			_, endSpan, err := leaf.buf.SeekChars(off.Chars + (to - from))
			assert(err == nil, "char range inside leaf must resolve")
			removed := endSpan.Sub(off)
			if removed.Bytes == uint64(len(text)) {
				err = leaf.buf.Remove(int(off.Bytes), int(removed.Bytes))
				assert(err == nil, "in-leaf overwrite: remove must succeed")
				err = leaf.buf.InsertStringAt(int(off.Bytes), text)
				assert(err == nil, "in-leaf overwrite: insert must succeed")
				// Byte counts match, but char/UTF-16 counts may differ.
				r.subFromPath(&c, removed)
				r.addToPath(&c, gapbuf.MeasureString(text))
				return nil
			}
		}
	}
	if err := r.Remove(from, to); err != nil {
		return err
	}
	return r.Insert(from, text)
}

// ReplaceUTF16 substitutes the range [from,to), given in UTF-16 code units,
// with text.
func (r *Rope) ReplaceUTF16(from, to uint64, text string) error {
	if err := r.RemoveUTF16(from, to); err != nil {
		return err
	}
	return r.InsertUTF16(from, text)
}

// insertAtCursor inserts text at the cursor position. The fast path edits the
// landing leaf's gap buffer in place; if the text does not fit there, it is
// spilled into freshly allocated leaves.
func (r *Rope) insertAtCursor(c *cursor, text string) {
	leaf := c.path[0].node
	byteOff := int(c.path[0].off.Bytes)
	if leaf != &r.head && leaf.buf.Space() >= len(text) {
		err := leaf.buf.InsertStringAt(byteOff, text)
		assert(err == nil, "in-place insert within free space must succeed")
		r.addToPath(c, gapbuf.MeasureString(text))
		return
	}
	// When inserting at the very end of a full leaf, the successor's gap may
	// have room at its front; that keeps leaves packed without a split.
	if byteOff == leaf.buf.Len() {
		if nxt := leaf.next(); nxt != nil && nxt.buf.Space() >= len(text) {
			for i := 0; i < nxt.height; i++ {
				c.path[i] = pathEntry{node: nxt}
			}
			err := nxt.buf.InsertStringAt(0, text)
			assert(err == nil, "head-of-successor insert must succeed")
			r.addToPath(c, gapbuf.MeasureString(text))
			return
		}
	}
	r.insertSpill(c, leaf, byteOff, text)
}

// insertSpill distributes text over one or more new leaves, starting at the
// cursor. The landing leaf's suffix is detached first and re-attached after
// the new content, so that leaves stay contiguous in document order.
func (r *Rope) insertSpill(c *cursor, leaf *node, byteOff int, text string) {
	var tail gapbuf.Buffer
	var tailSpan gapbuf.Span
	if byteOff < leaf.buf.Len() {
		var err error
		tail, err = leaf.buf.SplitOff(byteOff)
		assert(err == nil, "split offset is a resolved char boundary")
		tailSpan = tail.Measure()
		r.subFromPath(c, tailSpan)
	}
	rest := text
	if leaf != &r.head {
		// Keep the landing leaf packed before allocating.
		if fill := boundaryPrefix(rest, leaf.buf.Space()); len(fill) > 0 {
			err := leaf.buf.InsertStringAt(byteOff, fill)
			assert(err == nil, "fill prefix was sized to the leaf's space")
			fillSpan := gapbuf.MeasureString(fill)
			r.addToPath(c, fillSpan)
			for h := 0; h < r.head.height; h++ {
				c.path[h].off = c.path[h].off.Add(fillSpan)
			}
			c.abs = c.abs.Add(fillSpan)
			rest = rest[len(fill):]
		}
	}
	for len(rest) > 0 {
		piece := boundaryPrefix(rest, gapbuf.Cap)
		r.insertNodeAt(c, piece)
		rest = rest[len(piece):]
	}
	if tailSpan.IsZero() {
		return
	}
	// SplitOff leaves the detached buffer's gap at its end, so the whole
	// suffix is in the before-gap segment.
	suffix := string(tail.Before())
	last := c.path[0].node
	if last != &r.head && last.buf.Space() >= len(suffix) {
		err := last.buf.InsertStringAt(last.buf.Len(), suffix)
		assert(err == nil, "suffix re-attach within free space must succeed")
		// The suffix sits after the cursor position: spans grow, the cursor
		// offsets do not.
		r.addToPath(c, tailSpan)
		return
	}
	r.insertNodeAt(c, suffix)
}

// insertNodeAt links a fresh leaf holding content at the cursor, and moves
// the cursor past it. The leaf's height is drawn from the height source; the
// head is raised when the new leaf would reach its level.
func (r *Rope) insertNodeAt(c *cursor, content string) {
	span := gapbuf.MeasureString(content)
	nn := newNode(r.rnd.draw())
	err := nn.buf.InsertStringAt(0, content)
	assert(err == nil, "piece was sized to leaf capacity")
	for r.head.height <= nn.height {
		h := r.head.height
		r.head.nexts[h] = skipEntry{span: r.total()}
		c.path[h] = pathEntry{node: &r.head, off: c.abs}
		r.head.height++
	}
	for i := 0; i < nn.height; i++ {
		prev := &c.path[i].node.nexts[i]
		nn.nexts[i] = skipEntry{
			node: prev.node,
			span: span.Add(prev.span).Sub(c.path[i].off),
		}
		prev.node = nn
		prev.span = c.path[i].off
		c.path[i] = pathEntry{node: nn, off: span}
	}
	for i := nn.height; i < r.head.height; i++ {
		entry := &c.path[i].node.nexts[i]
		entry.span = entry.span.Add(span)
		c.path[i].off = c.path[i].off.Add(span)
	}
	c.abs = c.abs.Add(span)
}

// deleteAtCursor removes count characters starting at the cursor position.
// Partially covered leaves are trimmed through their gap buffer; fully
// covered leaves are unlinked from every level they participate in.
func (r *Rope) deleteAtCursor(c *cursor, count uint64) {
	e := c.path[0].node
	off := c.path[0].off
	for count > 0 {
		if off.Chars == e.span().Chars {
			// End of this leaf's content; removal continues in the next one.
			e = e.next()
			off = gapbuf.Span{}
			assert(e != nil, "removal ran past the end of the rope")
			continue
		}
		take := min(count, e.span().Chars-off.Chars)
		_, endSpan, err := e.buf.SeekChars(off.Chars + take)
		assert(err == nil, "char range inside leaf must resolve")
		removed := endSpan.Sub(off)
		if take < e.span().Chars {
			err = e.buf.Remove(int(off.Bytes), int(removed.Bytes))
			assert(err == nil, "in-leaf removal on resolved boundaries")
			for i := 0; i < e.height; i++ {
				e.nexts[i].span = e.nexts[i].span.Sub(removed)
			}
			for i := e.height; i < r.head.height; i++ {
				entry := &c.path[i].node.nexts[i]
				entry.span = entry.span.Sub(removed)
			}
		} else {
			assert(off.IsZero(), "full-leaf removal starts at the leaf front")
			nxt := e.next()
			for i := 0; i < e.height; i++ {
				entry := &c.path[i].node.nexts[i]
				entry.node = e.nexts[i].node
				entry.span = entry.span.Add(e.nexts[i].span).Sub(removed)
			}
			for i := e.height; i < r.head.height; i++ {
				entry := &c.path[i].node.nexts[i]
				entry.span = entry.span.Sub(removed)
			}
			e = nxt
		}
		count -= take
	}
}

// boundaryPrefix returns the longest prefix of s of at most max bytes that
// ends on a UTF-8 rune boundary.
func boundaryPrefix(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
