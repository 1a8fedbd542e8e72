package skiprope

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/npillmayer/skiprope/gapbuf"
	"github.com/taylorza/go-lfsr"
)

const (
	// maxHeight is the size of the head's forward-pointer array. The rope
	// degrades gracefully once it outgrows about 4^maxNodeHeight leaves.
	maxHeight = 12

	// maxNodeHeight caps the height drawn for leaves. The head is kept
	// strictly taller than every leaf, so its topmost forward entry always
	// spans the complete document.
	maxNodeHeight = maxHeight - 1

	// defaultSeed seeds the height generator when no entropy is requested.
	// Identical edit sequences then produce identical list geometries.
	defaultSeed = 0x9e3779b9
)

// skipEntry is one forward pointer of a leaf (or of the head).
//
// span is the extent of the text from the start of the entry's owning leaf up
// to the start of the referenced leaf. A nil node means the entry points past
// the end of the rope; its span then reaches to the end of the document.
type skipEntry struct {
	node *node
	span gapbuf.Span
}

// node is a leaf of the skip index, owning one gap buffer of text.
//
// The head sentinel is a node as well; it never carries content and its
// height is the realized maximum height of the rope.
type node struct {
	buf    gapbuf.Buffer
	height int
	nexts  []skipEntry
}

func newNode(height int) *node {
	assert(height >= 1 && height <= maxNodeHeight, "leaf height out of range")
	return &node{
		height: height,
		nexts:  make([]skipEntry, height),
	}
}

// next returns the successor leaf in document order.
func (n *node) next() *node {
	return n.nexts[0].node
}

// span returns the extent of this leaf's own content. The level-0 forward
// entry always measures exactly that, because the successor starts right
// after this leaf.
func (n *node) span() gapbuf.Span {
	return n.nexts[0].span
}

// heightSource draws leaf heights from a geometric distribution, backed by a
// 32-bit LFSR. A leaf grows one level with probability 1/4 per step.
type heightSource struct {
	gen *lfsr.Lfsr32
}

func newHeightSource(seed uint32) heightSource {
	if seed == 0 {
		seed = defaultSeed
	}
	return heightSource{gen: lfsr.NewLfsr32(seed)}
}

// entropySeed returns a non-deterministic seed for hardened height choices.
func entropySeed() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// The platform entropy source failing is not survivable in any
		// meaningful way for the caller; keep going deterministically.
		T().Errorf("skiprope: entropy source unavailable: %v", err)
		return defaultSeed
	}
	return binary.LittleEndian.Uint32(b[:])
}

// draw returns a height in [1, maxNodeHeight].
func (hs *heightSource) draw() int {
	h := 1
	for h < maxNodeHeight {
		v, _ := hs.gen.Next()
		if v&0x3 != 0 {
			break
		}
		h++
	}
	return h
}
