package skiprope

import (
	"bytes"
	"unsafe"

	"github.com/npillmayer/skiprope/gapbuf"
)

// Rope is a mutable Unicode text document.
//
// A rope must be created with New or FromString. It addresses content by
// character offset (Unicode scalar values); a parallel UTF-16 metric is
// maintained alongside and is served by the *UTF16 method variants.
//
// A rope exclusively owns all of its leaves. It is single-writer; see the
// package documentation for the concurrency contract.
type Rope struct {
	head node
	rnd  heightSource
	seed uint32
}

// Option configures a rope at construction time.
type Option func(*Rope)

// WithSeed pins the seed of the leaf-height generator. Ropes built with the
// same seed and the same edit sequence have identical internal geometry.
func WithSeed(seed uint32) Option {
	return func(r *Rope) {
		r.seed = seed
	}
}

// WithEntropy seeds the leaf-height generator from the platform entropy
// source. Height choices then vary between runs, which hardens the structure
// against adversarially crafted edit sequences at the cost of reproducible
// geometry.
func WithEntropy() Option {
	return func(r *Rope) {
		r.seed = entropySeed()
	}
}

// New creates an empty rope.
func New(opts ...Option) *Rope {
	r := &Rope{seed: defaultSeed}
	for _, opt := range opts {
		opt(r)
	}
	r.head.height = 1
	r.head.nexts = make([]skipEntry, maxHeight)
	r.rnd = newHeightSource(r.seed)
	return r
}

// FromString builds a rope from a UTF-8 string, bulk-filling leaves.
//
// The input must be valid UTF-8; this is a typed-interface contract and is
// not re-validated here.
func FromString(text string, opts ...Option) *Rope {
	r := New(opts...)
	if text != "" {
		err := r.Insert(0, text)
		assert(err == nil, "FromString: insert at 0 cannot be out of bounds")
	}
	return r
}

// total returns the extent of the whole document. The head is strictly
// taller than every leaf, so its topmost forward entry spans everything.
func (r *Rope) total() gapbuf.Span {
	return r.head.nexts[r.head.height-1].span
}

// Len returns the document length in bytes.
func (r *Rope) Len() uint64 {
	return r.total().Bytes
}

// CharCount returns the document length in Unicode scalar values.
func (r *Rope) CharCount() uint64 {
	return r.total().Chars
}

// UTF16Count returns the document length in UTF-16 code units.
func (r *Rope) UTF16Count() uint64 {
	return r.total().UTF16
}

// IsVoid reports whether the rope has no bytes.
func (r *Rope) IsVoid() bool {
	return r.Len() == 0
}

// String returns the complete rope as a Go string. This may be an expensive
// operation, as it will allocate a buffer for all the bytes of the rope and
// collect all fragments to a single continuous string.
func (r *Rope) String() string {
	var bf bytes.Buffer
	bf.Grow(int(r.Len()))
	for n := r.head.next(); n != nil; n = n.next() {
		bf.Write(n.buf.Before())
		bf.Write(n.buf.After())
	}
	return bf.String()
}

// FragmentCount returns the number of leaves the rope is internally split into.
func (r *Rope) FragmentCount() int {
	cnt := 0
	for n := r.head.next(); n != nil; n = n.next() {
		cnt++
	}
	return cnt
}

// MemSize returns the number of bytes of heap owned by the rope, for
// diagnostics. Leaves are the only source of heap allocation after
// construction, so this returns to its baseline once all content is removed.
func (r *Rope) MemSize() uint64 {
	size := uint64(unsafe.Sizeof(*r))
	size += uint64(cap(r.head.nexts)) * uint64(unsafe.Sizeof(skipEntry{}))
	for n := r.head.next(); n != nil; n = n.next() {
		size += uint64(unsafe.Sizeof(*n))
		size += uint64(cap(n.nexts)) * uint64(unsafe.Sizeof(skipEntry{}))
	}
	return size
}

// Clone returns a deep copy of the rope. All leaves are copied; the clone
// preserves the original's internal geometry.
func (r *Rope) Clone() *Rope {
	clone := New(WithSeed(r.seed))
	clone.head.height = r.head.height
	for i := 0; i < r.head.height; i++ {
		clone.head.nexts[i].span = r.head.nexts[i].span
	}
	// Last-seen node per level, to hook up forward pointers while walking
	// the level-0 chain once.
	var last [maxHeight]*node
	for i := range last {
		last[i] = &clone.head
	}
	for n := r.head.next(); n != nil; n = n.next() {
		cp := newNode(n.height)
		cp.buf = n.buf
		for i := 0; i < n.height; i++ {
			cp.nexts[i].span = n.nexts[i].span
			last[i].nexts[i].node = cp
			last[i] = cp
		}
	}
	return clone
}
