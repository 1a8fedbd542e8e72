package skiprope

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEqualIgnoresGeometry(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	doc := strings.Repeat("equality is about content, not leaves. ", 60)
	r1 := FromString(doc, WithSeed(7))
	// Build the same content with a different seed and different edit order,
	// so that leaf boundaries and heights differ.
	r2 := New(WithSeed(1234))
	half := uint64(len(doc) / 2)
	if err := r2.Insert(0, doc[half:]); err != nil {
		t.Fatal(err)
	}
	if err := r2.Insert(0, doc[:half]); err != nil {
		t.Fatal(err)
	}
	if !r1.Equal(r2) || !r2.Equal(r1) {
		t.Errorf("ropes with equal content compare unequal")
	}
	if !r1.Equal(r1) {
		t.Errorf("equality not reflexive")
	}
	if !r1.EqualString(doc) {
		t.Errorf("rope does not equal its source string")
	}
}

func TestUnequalContent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	r1 := FromString("abcd")
	r2 := FromString("abce")
	if r1.Equal(r2) {
		t.Errorf("different content compares equal")
	}
	if r1.Equal(FromString("abc")) {
		t.Errorf("different length compares equal")
	}
	if r1.EqualString("abce") || r1.EqualString("abc") {
		t.Errorf("EqualString misreports")
	}
	if r1.Equal(nil) {
		t.Errorf("rope equals nil")
	}
}
