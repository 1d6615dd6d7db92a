package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fraudlens/internal/catalog"
	"fraudlens/internal/selection"
)

// PricingPanel is the tier selector shared by both landing variants.
// It renders the catalog's tiers as cards and moves the active-tier
// selection; it never mutates the catalog.
type PricingPanel struct {
	Catalog   *catalog.Catalog
	Selection *selection.State
}

// ActiveIndex returns the index of the selected tier, or -1 when no tier
// has been picked yet.
func (p *PricingPanel) ActiveIndex() int {
	if p.Selection.ActiveTierID == "" {
		return -1
	}
	for i, t := range p.Catalog.Tiers {
		if t.ID == p.Selection.ActiveTierID {
			return i
		}
	}
	// Selection only ever holds IDs validated against this catalog.
	panic(fmt.Sprintf("ui: selected tier %q not in catalog", p.Selection.ActiveTierID))
}

// Move shifts the tier selection by delta with wraparound. From the
// no-selection state it enters at the first tier (moving right) or the
// last (moving left).
func (p *PricingPanel) Move(delta int) {
	n := len(p.Catalog.Tiers)
	if n == 0 {
		return
	}
	idx := p.ActiveIndex()
	if idx < 0 {
		if delta >= 0 {
			idx = 0
		} else {
			idx = n - 1
		}
	} else {
		idx = ((idx+delta)%n + n) % n
	}
	p.Selection.SelectTier(p.Catalog.Tiers[idx].ID)
}

// View renders the tier cards side by side.
func (p *PricingPanel) View(width int, focused bool) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Pricing", focused) + "\n")

	active := p.ActiveIndex()
	cards := make([]string, 0, len(p.Catalog.Tiers))
	cardWidth := max(18, width/max(1, len(p.Catalog.Tiers))-4)
	for i, t := range p.Catalog.Tiers {
		cards = append(cards, p.renderCard(t, cardWidth, i == active))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	return b.String()
}

func (p *PricingPanel) renderCard(t catalog.Tier, width int, selected bool) string {
	style := Styles.Card
	if t.Highlighted {
		style = Styles.CardHighlighted
	}
	if selected {
		style = Styles.CardSelected
	}

	var b strings.Builder
	name := t.Name
	if t.Highlighted {
		name += " ★"
	}
	if selected {
		b.WriteString(Styles.Selected.Render(name) + "\n")
	} else {
		b.WriteString(Styles.Normal.Bold(true).Render(name) + "\n")
	}
	b.WriteString(Styles.Price.Render(FormatPrice(t)) + "\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("%d credits included", t.IncludedCredits)) + "\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("then $%s/credit", t.MarginalCreditPrice.StringFixed(2))) + "\n")
	for _, f := range t.Features {
		b.WriteString(Styles.Normal.Render("• "+f) + "\n")
	}
	return style.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// FormatPrice renders a tier's price line: "Free", "$49/mo", "$999/mo".
func FormatPrice(t catalog.Tier) string {
	if t.Price.IsZero() {
		return "Free"
	}
	return "$" + t.Price.String() + "/" + shortPeriod(t.BillingPeriod)
}

func shortPeriod(period string) string {
	switch period {
	case "month":
		return "mo"
	case "year":
		return "yr"
	default:
		return period
	}
}

// sectionTitle renders a section header, marking the focused section.
func sectionTitle(title string, focused bool) string {
	if focused {
		return Styles.SectionFocus.Render("▸ " + title)
	}
	return Styles.Section.Render("  " + title)
}
