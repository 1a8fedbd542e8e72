package skiprope

import (
	"strings"

	"github.com/npillmayer/skiprope/gapbuf"
)

// Buf is a write-coalescing wrapper around a rope.
//
// Interactive editing traces are dominated by runs of adjacent
// one-character edits: typing appends to the previous insert, pressing
// backspace repeatedly extends the previous delete. Buf keeps a single
// pending edit and merges such runs in O(|delta|), so that the rope below
// sees one descent per run instead of one per keystroke. Any operation that
// cannot be merged flushes the pending edit first.
//
// After every flush the wrapper's content equals the underlying rope's
// content. Like the rope itself, Buf is single-writer.
type Buf struct {
	rope *Rope
	op   pendingOp
}

type pendingTag int

const (
	pendingNone pendingTag = iota
	pendingInsert
	pendingDelete
)

// pendingOp is the one coalesced edit not yet applied to the rope. For an
// insert, text holds the accumulated content and [from,to) its character
// range in the post-insert document. For a delete, [from,to) is the removed
// character range of the pre-delete document.
type pendingOp struct {
	tag  pendingTag
	text strings.Builder
	from uint64
	to   uint64
}

// NewBuf wraps an empty rope.
func NewBuf(opts ...Option) *Buf {
	return &Buf{rope: New(opts...)}
}

// Wrap wraps an existing rope. The wrapper takes over the writer role; the
// caller must not mutate the rope directly while the wrapper is in use.
func Wrap(rope *Rope) *Buf {
	return &Buf{rope: rope}
}

// Insert inserts text at character position pos, merging with the pending
// edit when pos extends it.
func (b *Buf) Insert(pos uint64, text string) error {
	if pos > b.CharCount() {
		return ErrIndexOutOfBounds
	}
	if text == "" {
		return nil
	}
	if !b.tryMergeInsert(pos, text) {
		if err := b.Flush(); err != nil {
			return err
		}
		b.op.tag = pendingInsert
		b.op.text.WriteString(text)
		b.op.from = pos
		b.op.to = pos + gapbuf.MeasureString(text).Chars
	}
	return nil
}

// Remove deletes the character range [from,to), merging with the pending
// edit when the range extends it.
func (b *Buf) Remove(from, to uint64) error {
	if from > to {
		return ErrIllegalArguments
	}
	if to > b.CharCount() {
		return ErrIndexOutOfBounds
	}
	if from == to {
		return nil
	}
	if !b.tryMergeRemove(from, to) {
		if err := b.Flush(); err != nil {
			return err
		}
		b.op.tag = pendingDelete
		b.op.from = from
		b.op.to = to
	}
	return nil
}

func (b *Buf) tryMergeInsert(pos uint64, text string) bool {
	if b.op.tag != pendingInsert {
		return false
	}
	if pos != b.op.to {
		return false
	}
	b.op.text.WriteString(text)
	b.op.to += gapbuf.MeasureString(text).Chars
	return true
}

func (b *Buf) tryMergeRemove(from, to uint64) bool {
	if b.op.tag != pendingDelete {
		return false
	}
	// Mergeable if the new range ends where the pending one starts (or
	// overlaps it): repeated backspace, or forward-delete at the same spot.
	if from > b.op.from || to < b.op.from {
		return false
	}
	b.op.to += to - b.op.from
	b.op.from = from
	return true
}

// Flush applies the pending edit to the underlying rope.
func (b *Buf) Flush() error {
	switch b.op.tag {
	case pendingInsert:
		if err := b.rope.Insert(b.op.from, b.op.text.String()); err != nil {
			return err
		}
	case pendingDelete:
		if err := b.rope.Remove(b.op.from, b.op.to); err != nil {
			return err
		}
	}
	b.op.tag = pendingNone
	b.op.text.Reset()
	b.op.from, b.op.to = 0, 0
	return nil
}

// CharCount returns the document length in characters, including the pending
// edit, without flushing.
func (b *Buf) CharCount() uint64 {
	switch b.op.tag {
	case pendingInsert:
		return b.rope.CharCount() + (b.op.to - b.op.from)
	case pendingDelete:
		return b.rope.CharCount() - (b.op.to - b.op.from)
	}
	return b.rope.CharCount()
}

// Len returns the document length in bytes. A pending delete has to be
// flushed to answer this.
func (b *Buf) Len() (uint64, error) {
	switch b.op.tag {
	case pendingInsert:
		return b.rope.Len() + uint64(b.op.text.Len()), nil
	case pendingDelete:
		if err := b.Flush(); err != nil {
			return 0, err
		}
	}
	return b.rope.Len(), nil
}

// String flushes and returns the complete document.
func (b *Buf) String() (string, error) {
	if err := b.Flush(); err != nil {
		return "", err
	}
	return b.rope.String(), nil
}

// Rope flushes and returns the underlying rope, handing the writer role back
// to the caller.
func (b *Buf) Rope() (*Rope, error) {
	if err := b.Flush(); err != nil {
		return nil, err
	}
	return b.rope, nil
}
