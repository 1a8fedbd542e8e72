package skiprope

import (
	"io"
	"iter"
)

// Reader returns a reader for the bytes of the rope.
//
// The reader is a read-only snapshot with the same invalidation contract as
// the iterators: mutating the rope while a reader is outstanding makes
// further reads yield unspecified (but memory-safe) content.
func (r *Rope) Reader() io.Reader {
	next, stop := iter.Pull(r.Substrings())
	return &ropeReader{next: next, stop: stop}
}

type ropeReader struct {
	next func() (string, bool)
	stop func()
	rest string
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	for rr.rest == "" {
		frag, ok := rr.next()
		if !ok {
			rr.stop()
			return 0, io.EOF
		}
		rr.rest = frag
	}
	n = copy(p, rr.rest)
	rr.rest = rr.rest[n:]
	return n, nil
}
