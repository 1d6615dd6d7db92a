package ui

import (
	"strings"

	"fraudlens/internal/catalog"
)

// renderHero renders a variant's headline block with its CTA hints.
// The CTAs only emit intents; checkout and sign-up live outside this app.
func renderHero(h catalog.Hero, width int) string {
	w := max(20, width-2)
	var b strings.Builder
	b.WriteString(Styles.Eyebrow.Render(strings.ToUpper(h.Eyebrow)) + "\n")
	b.WriteString(Styles.Headline.Width(w).Render(h.Headline) + "\n")
	b.WriteString(Styles.Subhead.Width(w).Render(h.Subheadline) + "\n")
	b.WriteString(Styles.Hint.Render("[s] " + h.PrimaryCTA + "    [c] " + h.SecondaryCTA))
	return b.String()
}
