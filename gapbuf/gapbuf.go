package gapbuf

import (
	"unicode/utf8"
)

const (
	// Cap is the fixed leaf payload capacity in bytes.
	//
	// The value is performance-sensitive but not correctness-sensitive: it
	// must be large enough that an average leaf absorbs many edits in place
	// and small enough that moving the gap stays a short memmove.
	Cap = 368
)

// Buffer is a fixed-capacity gap buffer holding UTF-8 text.
//
// The logical content is the bytes before the gap concatenated with the bytes
// after the gap. The gap itself is unused storage; moving it is a single byte
// copy. The zero value is an empty buffer whose gap covers the whole array.
//
// All byte offsets taken and returned by Buffer methods are logical offsets
// (gap excluded). The gap is kept on a UTF-8 rune boundary at all times, so
// the segments before and after the gap are each valid UTF-8 on their own.
type Buffer struct {
	data     [Cap]byte
	gapStart uint16
	used     uint16
}

// FromString creates a buffer holding s, with the gap at the end.
//
// Returns an error if s exceeds Cap bytes. The input must be valid UTF-8;
// this is a caller contract, not re-validated here.
func FromString(s string) (Buffer, error) {
	var b Buffer
	if err := b.InsertAt(0, []byte(s)); err != nil {
		return Buffer{}, err
	}
	return b, nil
}

// Len returns the logical content length in bytes.
func (b *Buffer) Len() int {
	return int(b.used)
}

// Space returns the number of free bytes (the gap length).
func (b *Buffer) Space() int {
	return Cap - int(b.used)
}

// IsEmpty reports whether the buffer has no content bytes.
func (b *Buffer) IsEmpty() bool {
	return b.used == 0
}

// Before returns the content bytes located before the gap.
//
// The returned slice aliases buffer storage and is invalidated by any
// mutating call.
func (b *Buffer) Before() []byte {
	return b.data[:b.gapStart]
}

// After returns the content bytes located after the gap.
//
// The returned slice aliases buffer storage and is invalidated by any
// mutating call.
func (b *Buffer) After() []byte {
	return b.data[int(b.gapStart)+b.Space() : Cap]
}

// String returns the logical content as a Go string.
func (b *Buffer) String() string {
	return string(b.Before()) + string(b.After())
}

// At returns the content byte at logical offset i.
func (b *Buffer) At(i int) byte {
	if i < int(b.gapStart) {
		return b.data[i]
	}
	return b.data[i+b.Space()]
}

// IsCharBoundary reports whether logical offset pos is a UTF-8 rune boundary.
func (b *Buffer) IsCharBoundary(pos int) bool {
	if pos == b.Len() {
		return true
	}
	if pos < 0 || pos > b.Len() {
		return false
	}
	return utf8.RuneStart(b.At(pos))
}

// MoveGap moves the gap so that it starts at logical offset to.
//
// to must be a rune boundary; the intervening region is moved with a single
// byte copy.
func (b *Buffer) MoveGap(to int) error {
	if to < 0 || to > b.Len() {
		return ErrIndexOutOfBounds
	}
	if !b.IsCharBoundary(to) {
		return ErrNotCharBoundary
	}
	cur := int(b.gapStart)
	if to == cur {
		return nil
	}
	gap := b.Space()
	if to < cur {
		// Shift the region [to,cur) rightward across the gap.
		copy(b.data[to+gap:cur+gap], b.data[to:cur])
	} else {
		// Shift the region [cur,to) leftward across the gap.
		copy(b.data[cur:], b.data[cur+gap:to+gap])
	}
	b.gapStart = uint16(to)
	return nil
}

// InsertAt inserts s at logical byte offset pos.
//
// Returns ErrNoSpace if s does not fit into the gap; the buffer is left
// unchanged in that case. pos must be a rune boundary and s valid UTF-8.
func (b *Buffer) InsertAt(pos int, s []byte) error {
	if len(s) == 0 {
		return nil
	}
	if len(s) > b.Space() {
		return ErrNoSpace
	}
	if err := b.MoveGap(pos); err != nil {
		return err
	}
	copy(b.data[b.gapStart:], s)
	b.gapStart += uint16(len(s))
	b.used += uint16(len(s))
	return nil
}

// InsertStringAt inserts s at logical byte offset pos.
//
// Identical to InsertAt, without forcing the caller through a byte-slice
// conversion.
func (b *Buffer) InsertStringAt(pos int, s string) error {
	if len(s) == 0 {
		return nil
	}
	if len(s) > b.Space() {
		return ErrNoSpace
	}
	if err := b.MoveGap(pos); err != nil {
		return err
	}
	copy(b.data[b.gapStart:], s)
	b.gapStart += uint16(len(s))
	b.used += uint16(len(s))
	return nil
}

// Remove deletes n bytes starting at logical offset pos by extending the gap.
//
// The removed range must cover whole runes.
func (b *Buffer) Remove(pos, n int) error {
	if pos < 0 || n < 0 || pos+n > b.Len() {
		return ErrIndexOutOfBounds
	}
	if !b.IsCharBoundary(pos) || !b.IsCharBoundary(pos+n) {
		return ErrNotCharBoundary
	}
	if n == 0 {
		return nil
	}
	if err := b.MoveGap(pos); err != nil {
		return err
	}
	b.used -= uint16(n)
	return nil
}

// Slice returns the content range [start,end) as up to two byte segments,
// split where the gap interrupts the storage. Both segments alias buffer
// storage and are invalidated by any mutating call.
//
// Offsets must be in range; rune boundaries are the caller's concern.
func (b *Buffer) Slice(start, end int) (left, right []byte) {
	before := b.Before()
	if end <= len(before) {
		return before[start:end], nil
	}
	if start >= len(before) {
		return b.After()[start-len(before) : end-len(before)], nil
	}
	return before[start:], b.After()[:end-len(before)]
}

// SplitOff removes the content after logical offset pos and returns it as a
// new buffer. The receiver is truncated at pos.
func (b *Buffer) SplitOff(pos int) (Buffer, error) {
	if pos < 0 || pos > b.Len() {
		return Buffer{}, ErrIndexOutOfBounds
	}
	if !b.IsCharBoundary(pos) {
		return Buffer{}, ErrNotCharBoundary
	}
	if err := b.MoveGap(pos); err != nil {
		return Buffer{}, err
	}
	var tail Buffer
	rest := b.After()
	copy(tail.data[:], rest)
	tail.gapStart = uint16(len(rest))
	tail.used = uint16(len(rest))
	b.used = uint16(pos)
	return tail, nil
}
