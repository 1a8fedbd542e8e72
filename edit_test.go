package skiprope

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsertSplitsLeaves(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	long := strings.Repeat("0123456789", 200) // 2000 bytes, several leaves
	r := New()
	if err := r.Insert(0, long); err != nil {
		t.Fatal(err)
	}
	checkRope(t, r, long)
	if r.FragmentCount() < 2 {
		t.Errorf("expected a split, got %d fragment(s)", r.FragmentCount())
	}
	// Insert mid-document, forcing a split with a re-attached suffix.
	if err := r.Insert(1000, long); err != nil {
		t.Fatal(err)
	}
	want := long[:1000] + long + long[1000:]
	checkRope(t, r, want)
}

func TestInsertMidLeafMultibyte(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r := FromString(strings.Repeat("é", 300)) // 600 bytes
	if err := r.Insert(150, strings.Repeat("😀", 100)); err != nil {
		t.Fatal(err)
	}
	want := strings.Repeat("é", 150) + strings.Repeat("😀", 100) + strings.Repeat("é", 150)
	checkRope(t, r, want)
}

func TestRemoveWithinLeaf(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r := FromString("Some really large text document")
	if err := r.Remove(5, 12); err != nil {
		t.Fatal(err)
	}
	checkRope(t, r, "Some large text document")
}

func TestRemoveAcrossLeaves(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	long := strings.Repeat("abcdefghij", 300)
	r := FromString(long)
	if r.FragmentCount() < 3 {
		t.Skipf("need several leaves for this test, got %d", r.FragmentCount())
	}
	if err := r.Remove(100, 2900); err != nil {
		t.Fatal(err)
	}
	checkRope(t, r, long[:100]+long[2900:])
}

func TestRemoveEverything(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r := New()
	baseline := r.MemSize()
	big := strings.Repeat("fifty kilobytes of text, give or take some. ", 1150)
	if err := r.Insert(0, big); err != nil {
		t.Fatal(err)
	}
	if err := r.Remove(0, r.CharCount()); err != nil {
		t.Fatal(err)
	}
	checkRope(t, r, "")
	if r.FragmentCount() != 0 {
		t.Errorf("leaves still linked after full removal: %d", r.FragmentCount())
	}
	if got := r.MemSize(); got != baseline {
		t.Errorf("MemSize after drain = %d, baseline %d", got, baseline)
	}
}

func TestReplaceProperty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	doc := "Lorem ipsum dolor sit amet, cönsectetur 😀 adipiscing elit"
	runes := []rune(doc)
	for _, tc := range []struct {
		from, to uint64
		insert   string
	}{
		{0, 5, "My rad"},
		{3, 3, "zero-width"},
		{10, 20, ""},
		{5, uint64(len(runes)), "short"},
	} {
		r := FromString(doc)
		if err := r.Replace(tc.from, tc.to, tc.insert); err != nil {
			t.Fatalf("Replace(%d,%d,%q): %v", tc.from, tc.to, tc.insert, err)
		}
		want := string(runes[:tc.from]) + tc.insert + string(runes[tc.to:])
		checkRope(t, r, want)
	}
}

func TestAppendTypingPattern(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	// Single-character appends, the hot path of editing traces.
	r := New()
	var sb strings.Builder
	for i := 0; i < 3000; i++ {
		ch := string(rune('a' + i%26))
		if err := r.Insert(r.CharCount(), ch); err != nil {
			t.Fatal(err)
		}
		sb.WriteString(ch)
	}
	checkRope(t, r, sb.String())
}

func TestPrependPattern(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r := New()
	var doc string
	for i := 0; i < 1200; i++ {
		ch := string(rune('A' + i%26))
		if err := r.Insert(0, ch); err != nil {
			t.Fatal(err)
		}
		doc = ch + doc
	}
	checkRope(t, r, doc)
}
