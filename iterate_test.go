package skiprope

import (
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSubstringsConcatenate(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	doc := strings.Repeat("Hello, wörld! ", 100)
	r := FromString(doc)
	var sb strings.Builder
	for frag := range r.Substrings() {
		if len(frag) == 0 {
			t.Errorf("iterator yielded an empty fragment")
		}
		sb.WriteString(frag)
	}
	if sb.String() != doc {
		t.Errorf("concatenated fragments differ from document")
	}
}

func TestSubstringsWithLenSumsToCharCount(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	doc := strings.Repeat("aé😀", 300)
	r := FromString(doc)
	var sum uint64
	for frag, cnt := range r.SubstringsWithLen() {
		if uint64(utf8.RuneCountInString(frag)) != cnt {
			t.Errorf("fragment %q reported %d chars", frag, cnt)
		}
		sum += cnt
	}
	if sum != r.CharCount() {
		t.Errorf("fragment char counts sum to %d, CharCount is %d", sum, r.CharCount())
	}
}

func TestCharsIterator(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	doc := "añ😀b"
	r := FromString(doc)
	got := make([]rune, 0, 4)
	for cp := range r.Chars() {
		got = append(got, cp)
	}
	if string(got) != doc {
		t.Errorf("Chars yields %q, want %q", string(got), doc)
	}
}

func TestSliceSubstrings(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	doc := strings.Repeat("0123456789", 200)
	r := FromString(doc)
	seq, err := r.SliceSubstrings(995, 1005)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	for frag := range seq {
		sb.WriteString(frag)
	}
	if sb.String() != doc[995:1005] {
		t.Errorf("slice = %q, want %q", sb.String(), doc[995:1005])
	}
	if _, err := r.SliceSubstrings(5, 99999); err != ErrIndexOutOfBounds {
		t.Errorf("out-of-range slice: err = %v", err)
	}
	if _, err := r.SliceSubstrings(7, 5); err != ErrIllegalArguments {
		t.Errorf("reversed slice: err = %v", err)
	}
}

func TestSliceChars(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r := FromString("xxxGreetings!xxx")
	seq, err := r.SliceChars(3, 13)
	if err != nil {
		t.Fatal(err)
	}
	var got []rune
	for cp := range seq {
		got = append(got, cp)
	}
	if string(got) != "Greetings!" {
		t.Errorf("SliceChars = %q", string(got))
	}
}

func TestEmptySlice(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r := FromString("abc")
	s, err := r.Slice(2, 2)
	if err != nil || s != "" {
		t.Errorf("empty slice = %q, %v", s, err)
	}
}

func TestReaderStreamsDocument(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	doc := strings.Repeat("streaming content – ", 128)
	r := FromString(doc)
	got, err := io.ReadAll(r.Reader())
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != doc {
		t.Errorf("Reader streamed %d bytes, document has %d", len(got), len(doc))
	}
}

func TestGraphemesCombine(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	// "e" followed by a combining acute accent is one grapheme, two chars.
	r := FromString("xe\u0301y")
	if r.CharCount() != 4 {
		t.Fatalf("char count = %d, want 4", r.CharCount())
	}
	var clusters []string
	for g := range r.Graphemes() {
		clusters = append(clusters, g)
	}
	if len(clusters) != 3 {
		t.Fatalf("graphemes = %q, want 3 clusters", clusters)
	}
	if clusters[1] != "e\u0301" {
		t.Errorf("middle cluster = %q", clusters[1])
	}
}
