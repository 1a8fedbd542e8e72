package gapbuf

import (
	"unicode/utf8"
)

// Span aggregates text extents in every tracked metric.
//
// Rope-level code navigates and patches skip pointers with spans, while the
// gapbuf package keeps ownership of local byte/rune coordinate math. All
// pointer arithmetic on spans must go through Add/Sub so that the metrics
// cannot drift apart.
type Span struct {
	Bytes uint64
	Chars uint64
	UTF16 uint64
}

// Add combines two spans.
func (s Span) Add(o Span) Span {
	return Span{
		Bytes: s.Bytes + o.Bytes,
		Chars: s.Chars + o.Chars,
		UTF16: s.UTF16 + o.UTF16,
	}
}

// Sub removes o from s. o must not exceed s in any metric.
func (s Span) Sub(o Span) Span {
	return Span{
		Bytes: s.Bytes - o.Bytes,
		Chars: s.Chars - o.Chars,
		UTF16: s.UTF16 - o.UTF16,
	}
}

// IsZero reports whether all metrics are zero.
func (s Span) IsZero() bool {
	return s == Span{}
}

// utf16Width is the number of UTF-16 code units needed for rune r.
func utf16Width(r rune) uint64 {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

// Measure returns the span of a UTF-8 byte slice.
func Measure(text []byte) Span {
	span := Span{Bytes: uint64(len(text))}
	for i := 0; i < len(text); {
		r, n := utf8.DecodeRune(text[i:])
		span.Chars++
		span.UTF16 += utf16Width(r)
		i += n
	}
	return span
}

// MeasureString returns the span of a UTF-8 string.
func MeasureString(text string) Span {
	span := Span{Bytes: uint64(len(text))}
	for _, r := range text {
		span.Chars++
		span.UTF16 += utf16Width(r)
	}
	return span
}

// Measure returns the span of the buffer's logical content.
func (b *Buffer) Measure() Span {
	return Measure(b.Before()).Add(Measure(b.After()))
}

// MeasurePrefix returns the span of the content up to logical byte offset end.
//
// end must be a rune boundary.
func (b *Buffer) MeasurePrefix(end int) (Span, error) {
	if end < 0 || end > b.Len() {
		return Span{}, ErrIndexOutOfBounds
	}
	if !b.IsCharBoundary(end) {
		return Span{}, ErrNotCharBoundary
	}
	before := b.Before()
	if end <= len(before) {
		return Measure(before[:end]), nil
	}
	after := b.After()
	return Measure(before).Add(Measure(after[:end-len(before)])), nil
}

// SeekChars returns the byte offset of the n-th rune of the content, together
// with the span of the content before it.
func (b *Buffer) SeekChars(n uint64) (int, Span, error) {
	return b.seek(n, func(s Span) uint64 { return s.Chars })
}

// SeekUTF16 returns the byte offset of the rune boundary at n UTF-16 code
// units into the content, together with the span of the content before it.
//
// Returns ErrNotCharBoundary if n points between the two code units of a
// surrogate pair.
func (b *Buffer) SeekUTF16(n uint64) (int, Span, error) {
	return b.seek(n, func(s Span) uint64 { return s.UTF16 })
}

// seek scans runes until the chosen metric reaches target n.
func (b *Buffer) seek(n uint64, metric func(Span) uint64) (int, Span, error) {
	var acc Span
	if n == 0 {
		return 0, acc, nil
	}
	for _, seg := range [2][]byte{b.Before(), b.After()} {
		base := int(acc.Bytes)
		for i := 0; i < len(seg); {
			if metric(acc) == n {
				return base + i, acc, nil
			}
			r, w := utf8.DecodeRune(seg[i:])
			step := Span{Bytes: uint64(w), Chars: 1, UTF16: utf16Width(r)}
			if metric(acc)+metric(step) > n {
				// n points into the middle of this rune. Only possible for
				// the UTF-16 metric (inside a surrogate pair).
				return 0, Span{}, ErrNotCharBoundary
			}
			acc = acc.Add(step)
			i += w
		}
	}
	if metric(acc) == n {
		return b.Len(), acc, nil
	}
	return 0, Span{}, ErrIndexOutOfBounds
}
