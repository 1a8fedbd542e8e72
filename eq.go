package skiprope

import (
	"bytes"
	"iter"
)

// Equal reports whether two ropes hold the same character sequence. Leaf
// boundaries and gap positions do not influence the result; fragments are
// compared window-wise without materializing either document.
func (r *Rope) Equal(other *Rope) bool {
	if r == other {
		return true
	}
	if other == nil || r.total() != other.total() {
		return false
	}
	next, stop := iter.Pull(other.chunks())
	defer stop()
	ochunk, ok := next()
	for chunk := range r.chunks() {
		pos := 0
		for pos < len(chunk) {
			if !ok {
				return false
			}
			amt := min(len(chunk)-pos, len(ochunk))
			if !bytes.Equal(chunk[pos:pos+amt], ochunk[:amt]) {
				return false
			}
			pos += amt
			ochunk = ochunk[amt:]
			if len(ochunk) == 0 {
				ochunk, ok = next()
			}
		}
	}
	return true
}

// EqualString reports whether the rope's byte sequence matches s.
func (r *Rope) EqualString(s string) bool {
	if r.Len() != uint64(len(s)) {
		return false
	}
	pos := 0
	for chunk := range r.chunks() {
		if string(chunk) != s[pos:pos+len(chunk)] {
			return false
		}
		pos += len(chunk)
	}
	return pos == len(s)
}
