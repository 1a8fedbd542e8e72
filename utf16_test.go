package skiprope

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestUTF16Scenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r := FromString("a😀b")
	if r.CharCount() != 3 || r.UTF16Count() != 4 {
		t.Fatalf("chars = %d, utf16 = %d, want 3 and 4", r.CharCount(), r.UTF16Count())
	}
	w, err := r.CharsToUTF16(2)
	if err != nil || w != 3 {
		t.Errorf("CharsToUTF16(2) = %d, %v, want 3", w, err)
	}
	c, err := r.UTF16ToChars(3)
	if err != nil || c != 2 {
		t.Errorf("UTF16ToChars(3) = %d, %v, want 2", c, err)
	}
	if err := r.InsertUTF16(1, "X"); err != nil {
		t.Fatal(err)
	}
	checkRope(t, r, "aX😀b")
}

func TestUTF16ConversionIdentity(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r := FromString("aé😀b🎉cß")
	for pos := uint64(0); pos <= r.CharCount(); pos++ {
		w, err := r.CharsToUTF16(pos)
		if err != nil {
			t.Fatalf("CharsToUTF16(%d): %v", pos, err)
		}
		back, err := r.UTF16ToChars(w)
		if err != nil {
			t.Fatalf("UTF16ToChars(%d): %v", w, err)
		}
		if back != pos {
			t.Errorf("round-trip of char offset %d via %d = %d", pos, w, back)
		}
	}
}

func TestUTF16SurrogateBoundaryRejected(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r := FromString("a😀b")
	// Unit 2 splits the emoji's surrogate pair.
	if _, err := r.UTF16ToChars(2); err != ErrNotCharBoundary {
		t.Errorf("UTF16ToChars(2): err = %v, want ErrNotCharBoundary", err)
	}
	if err := r.InsertUTF16(2, "X"); err != ErrNotCharBoundary {
		t.Errorf("InsertUTF16(2): err = %v, want ErrNotCharBoundary", err)
	}
	if err := r.RemoveUTF16(2, 4); err != ErrNotCharBoundary {
		t.Errorf("RemoveUTF16(2,4): err = %v, want ErrNotCharBoundary", err)
	}
	if _, err := r.UTF16ToChars(9); err != ErrIndexOutOfBounds {
		t.Errorf("UTF16ToChars(9): err = %v, want ErrIndexOutOfBounds", err)
	}
	checkRope(t, r, "a😀b")
}

func TestRemoveUTF16(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r := FromString("a😀b")
	if err := r.RemoveUTF16(1, 3); err != nil {
		t.Fatal(err)
	}
	checkRope(t, r, "ab")
	r2 := FromString("a😀b")
	if err := r2.ReplaceUTF16(1, 3, "ZZ"); err != nil {
		t.Fatal(err)
	}
	checkRope(t, r2, "aZZb")
}
