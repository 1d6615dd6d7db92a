package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders catalog markdown (tier descriptions) to ANSI.
// Falls back to the raw text if the renderer cannot be built; marketing
// copy must never take the UI down.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
