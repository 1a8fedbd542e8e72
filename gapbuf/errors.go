package gapbuf

import "errors"

var (
	// ErrNoSpace signals that an insertion does not fit into the gap.
	ErrNoSpace = errors.New("gapbuf: no space left in buffer")
	// ErrIndexOutOfBounds signals invalid byte offsets.
	ErrIndexOutOfBounds = errors.New("gapbuf: index out of bounds")
	// ErrNotCharBoundary signals non-UTF-8-boundary offsets.
	ErrNotCharBoundary = errors.New("gapbuf: offset is not a char boundary")
)
