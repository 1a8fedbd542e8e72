package skiprope

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/skiprope/gapbuf"
)

// checkInvariants validates the complete skip structure and returns the first
// violation found. It walks every level, so it is O(n · levels) and intended
// for tests and debugging, not for production paths.
//
// Checked invariants:
//  1. the level-0 chain visits every leaf once, and the concatenated leaf
//     contents measure up to the head's topmost span (the document totals);
//  2. every leaf's level-0 span equals the measured extent of its content;
//  3. at every level, accumulating spans from the head reaches each
//     pointed-at leaf at exactly its document position, and the chain's end
//     span reaches the document total;
//  4. leaves are non-empty, respect capacity, and their gap lies on a UTF-8
//     boundary (both gap segments are self-contained valid UTF-8);
//  5. the head is strictly taller than every leaf.
func (r *Rope) checkInvariants() error {
	if r.head.height < 1 || r.head.height > maxHeight {
		return fmt.Errorf("head height %d out of range", r.head.height)
	}
	if top := r.head.nexts[r.head.height-1]; top.node != nil {
		return fmt.Errorf("head's topmost entry must point past the end")
	}
	total := r.total()

	// Level-0 walk: positions, per-leaf checks.
	position := make(map[*node]gapbuf.Span)
	var walked gapbuf.Span
	for n := r.head.next(); n != nil; n = n.next() {
		position[n] = walked
		if n.height < 1 || n.height >= r.head.height {
			return fmt.Errorf("leaf at %d: height %d vs head height %d",
				walked.Bytes, n.height, r.head.height)
		}
		if n.buf.IsEmpty() {
			return fmt.Errorf("empty leaf linked at byte %d", walked.Bytes)
		}
		if n.buf.Len() > gapbuf.Cap {
			return fmt.Errorf("leaf at %d exceeds capacity: %d", walked.Bytes, n.buf.Len())
		}
		if !utf8.Valid(n.buf.Before()) || !utf8.Valid(n.buf.After()) {
			return fmt.Errorf("leaf at %d: gap not on a UTF-8 boundary", walked.Bytes)
		}
		if measured := n.buf.Measure(); measured != n.span() {
			return fmt.Errorf("leaf at %d: level-0 span %v != measured %v",
				walked.Bytes, n.span(), measured)
		}
		walked = walked.Add(n.span())
	}
	if walked != total {
		return fmt.Errorf("level-0 walk yields %v, head top span %v", walked, total)
	}

	// Per-level walks: span accumulation must hit leaf positions exactly.
	for h := 0; h < r.head.height; h++ {
		n := &r.head
		var acc gapbuf.Span
		for {
			entry := n.nexts[h]
			if entry.node == nil {
				if reach := acc.Add(entry.span); reach != total {
					return fmt.Errorf("level %d: end span reaches %v, want %v", h, reach, total)
				}
				break
			}
			acc = acc.Add(entry.span)
			want, ok := position[entry.node]
			if !ok {
				return fmt.Errorf("level %d: pointer to leaf not on level-0 chain", h)
			}
			if acc != want {
				return fmt.Errorf("level %d: accumulated span %v, leaf position %v", h, acc, want)
			}
			if entry.node.height <= h {
				return fmt.Errorf("level %d: pointer to leaf of height %d", h, entry.node.height)
			}
			n = entry.node
		}
	}
	return nil
}
