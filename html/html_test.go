package html

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTextFromHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := `<p>Hello <b>World</b>, the <i>body</i> of text</p>`
	rope, err := TextFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if rope.String() != "Hello World, the body of text" {
		t.Errorf("extracted text = %q", rope.String())
	}
}

func TestInnerTextRejectsNil(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	if _, err := InnerText(nil); err == nil {
		t.Errorf("expected an error for a nil node")
	}
}
