package skiprope

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Inspect prints a human-readable table of the skip structure to w: one row
// per leaf, with its height, its per-level spans (in characters) and a
// preview of its content. When w is a terminal, rows are colorized and
// previews are truncated to the terminal width.
//
// Inspect is a debugging aid; its exact output format is not part of the API
// contract.
func (r *Rope) Inspect(w io.Writer) {
	width := 80
	headline := fmt.Sprintf
	levels := fmt.Sprintf
	content := fmt.Sprintf
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 20 {
			width = tw
		}
		headline = color.New(color.FgCyan, color.Bold).Sprintf
		levels = color.New(color.FgYellow).Sprintf
		content = color.New(color.FgGreen).Sprintf
	}
	fmt.Fprintln(w, headline("rope: %d bytes, %d chars, %d utf16, height %d",
		r.Len(), r.CharCount(), r.UTF16Count(), r.head.height))
	row := func(name string, n *node) {
		spans := ""
		for h := 0; h < n.heightOrHead(r); h++ {
			spans += fmt.Sprintf(" |%d", n.nexts[h].span.Chars)
		}
		fmt.Fprintf(w, "%-6s%s\n", name, levels("%s", spans))
	}
	row("HEAD", &r.head)
	i := 0
	for n := r.head.next(); n != nil; n = n.next() {
		row(fmt.Sprintf("%d:", i), n)
		max := width - 10
		if max < 8 {
			max = 8
		}
		fmt.Fprintf(w, "      %s\n", content("“%s”", preview(n, max)))
		i++
	}
}
