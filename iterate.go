package skiprope

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/skiprope/gapbuf"
)

// Substrings returns an iterator over successive contiguous fragments of the
// document, in order. Fragments follow leaf storage: every fragment is a
// contiguous run of UTF-8 of at most gapbuf.Cap bytes, and a leaf whose gap
// sits mid-content contributes two fragments.
//
// Iterators are read-only snapshots; mutating the rope invalidates any
// outstanding iterator. Continuing an invalidated iterator yields unspecified
// (but memory-safe) fragments.
func (r *Rope) Substrings() iter.Seq[string] {
	return func(yield func(string) bool) {
		for chunk := range r.chunks() {
			if !yield(string(chunk)) {
				return
			}
		}
	}
}

// SubstringsWithLen returns an iterator like Substrings, yielding each
// fragment together with its character count. The yielded counts sum up to
// CharCount().
func (r *Rope) SubstringsWithLen() iter.Seq2[string, uint64] {
	return func(yield func(string, uint64) bool) {
		for chunk := range r.chunks() {
			if !yield(string(chunk), uint64(utf8.RuneCount(chunk))) {
				return
			}
		}
	}
}

// Chars returns an iterator over the code points of the document.
func (r *Rope) Chars() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for chunk := range r.chunks() {
			for i := 0; i < len(chunk); {
				cp, w := utf8.DecodeRune(chunk[i:])
				if !yield(cp) {
					return
				}
				i += w
			}
		}
	}
}

// chunks yields the raw content segments of every leaf, avoiding string
// allocation for internal consumers. Yielded slices alias leaf storage.
func (r *Rope) chunks() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for n := r.head.next(); n != nil; n = n.next() {
			if b := n.buf.Before(); len(b) > 0 && !yield(b) {
				return
			}
			if a := n.buf.After(); len(a) > 0 && !yield(a) {
				return
			}
		}
	}
}

// sliceChunks yields the raw content segments of the character range
// [from,to). The range must have been validated by the caller.
func (r *Rope) sliceChunks(from, to uint64) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		remaining := to - from
		if remaining == 0 {
			return
		}
		c, err := r.locate(from, byChars)
		assert(err == nil, "validated char offset cannot fail to locate")
		n := c.path[0].node
		off := c.path[0].off
		for remaining > 0 && n != nil {
			avail := n.span().Chars - off.Chars
			if avail == 0 {
				n = n.next()
				off = gapbuf.Span{}
				continue
			}
			take := min(remaining, avail)
			endByte, _, err := n.buf.SeekChars(off.Chars + take)
			assert(err == nil, "char range inside leaf must resolve")
			left, right := n.buf.Slice(int(off.Bytes), endByte)
			if len(left) > 0 && !yield(left) {
				return
			}
			if len(right) > 0 && !yield(right) {
				return
			}
			remaining -= take
			n = n.next()
			off = gapbuf.Span{}
		}
	}
}

// SliceSubstrings returns an iterator over the contiguous fragments of the
// character range [from,to). The first and last fragment may be truncated to
// sub-slices of their leaves.
func (r *Rope) SliceSubstrings(from, to uint64) (iter.Seq[string], error) {
	if from > to {
		return nil, ErrIllegalArguments
	}
	if to > r.CharCount() {
		return nil, ErrIndexOutOfBounds
	}
	return func(yield func(string) bool) {
		for chunk := range r.sliceChunks(from, to) {
			if !yield(string(chunk)) {
				return
			}
		}
	}, nil
}

// SliceChars returns an iterator over the code points of the character range
// [from,to).
func (r *Rope) SliceChars(from, to uint64) (iter.Seq[rune], error) {
	if from > to {
		return nil, ErrIllegalArguments
	}
	if to > r.CharCount() {
		return nil, ErrIndexOutOfBounds
	}
	return func(yield func(rune) bool) {
		for chunk := range r.sliceChunks(from, to) {
			for i := 0; i < len(chunk); {
				cp, w := utf8.DecodeRune(chunk[i:])
				if !yield(cp) {
					return
				}
				i += w
			}
		}
	}, nil
}

// Slice materializes the character range [from,to) as a Go string.
func (r *Rope) Slice(from, to uint64) (string, error) {
	if from > to {
		return "", ErrIllegalArguments
	}
	if to > r.CharCount() {
		return "", ErrIndexOutOfBounds
	}
	var sb strings.Builder
	for chunk := range r.sliceChunks(from, to) {
		sb.Write(chunk)
	}
	return sb.String(), nil
}
