package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fraudlens/internal/catalog"
	"fraudlens/internal/rotation"
	"fraudlens/internal/selection"
)

// PremiumView is the alternate landing variant. It swaps the feature tab
// switcher for a region-based statistics switcher; pricing and the
// testimonial carousel are the same components the primary variant uses.
//
// The region switcher is a plain selection state machine: global is the
// initial state, transitions happen only on explicit user input, and there
// is no terminal state.
type PremiumView struct {
	Catalog   *catalog.Catalog
	Selection *selection.State
	Pricing   *PricingPanel
	Carousel  *Carousel
	Focus     *FocusManager

	width  int
	height int
}

// Ensure PremiumView implements View.
var _ View = (*PremiumView)(nil)

// NewPremiumView builds the premium variant over the given catalog.
func NewPremiumView(c *catalog.Catalog, interval time.Duration) *PremiumView {
	sel := selection.New(c)
	return &PremiumView{
		Catalog:   c,
		Selection: sel,
		Pricing:   &PricingPanel{Catalog: c, Selection: sel},
		Carousel:  NewCarousel(c.Testimonials, interval),
		Focus: &FocusManager{
			Current: sectionStats,
			Order:   []string{sectionStats, sectionPricing, sectionReviews},
		},
	}
}

// Init implements View; mounting starts the carousel.
func (v *PremiumView) Init() tea.Cmd {
	return v.Carousel.Init()
}

// Close stops the carousel on unmount.
func (v *PremiumView) Close() {
	v.Carousel.Stop()
}

// Update implements View.
func (v *PremiumView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		return v, nil
	case rotation.TickMsg:
		return v, v.Carousel.Update(msg)
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *PremiumView) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	switch s {
	case "tab":
		v.Focus.Next()
		return nil
	case "shift+tab":
		v.Focus.Prev()
		return nil
	}

	switch v.Focus.Current {
	case sectionStats:
		switch s {
		case "l", "right":
			v.Selection.SelectRegion(v.adjacentRegion(1))
		case "h", "left":
			v.Selection.SelectRegion(v.adjacentRegion(-1))
		}
	case sectionPricing:
		switch s {
		case "l", "right":
			v.Pricing.Move(1)
		case "h", "left":
			v.Pricing.Move(-1)
		case "enter":
			if id := v.Selection.ActiveTierID; id != "" {
				return showTierDetailCmd(id)
			}
		}
	case sectionReviews:
		switch s {
		case "l", "right":
			return v.Carousel.JumpBy(1)
		case "h", "left":
			return v.Carousel.JumpBy(-1)
		default:
			if i, ok := markerIndex(s, len(v.Carousel.Testimonials)); ok {
				return v.Carousel.JumpTo(i)
			}
		}
	}
	return nil
}

// adjacentRegion returns the region delta steps away from the active one
// in display order, with wraparound.
func (v *PremiumView) adjacentRegion(delta int) catalog.Region {
	regions := catalog.Regions()
	n := len(regions)
	idx := 0
	for i, r := range regions {
		if r == v.Selection.ActiveRegion {
			idx = i
			break
		}
	}
	return regions[((idx+delta)%n+n)%n]
}

// View implements View.
func (v *PremiumView) View() string {
	width := v.width
	if width == 0 {
		width = 100 // default for tests
	}

	sections := []string{
		renderHero(v.Catalog.PremiumHero, width),
		v.renderStats(width),
		v.Pricing.View(width, v.Focus.Current == sectionPricing),
		v.Carousel.View(width, v.Focus.Current == sectionReviews),
		Styles.Hint.Render("tab: next section • h/l: navigate • enter: tier details • SPC: commands"),
	}
	return strings.Join(sections, "\n\n")
}

// renderStats renders the region switcher and the active region's
// statistics. Only the active region's set is ever rendered; switching
// regions replaces the cards wholesale.
func (v *PremiumView) renderStats(width int) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Fraud by the numbers", v.Focus.Current == sectionStats) + "\n")

	regions := catalog.Regions()
	titles := make([]string, len(regions))
	for i, r := range regions {
		if r == v.Selection.ActiveRegion {
			titles[i] = Styles.TabActive.Render(r.DisplayName())
		} else {
			titles[i] = Styles.TabInactive.Render(r.DisplayName())
		}
	}
	b.WriteString(strings.Join(titles, Styles.Muted.Render("  │  ")) + "\n\n")

	stats := v.Catalog.RegionalStats[v.Selection.ActiveRegion]
	cards := make([]string, 0, len(stats))
	cardWidth := max(18, width/max(1, len(stats))-4)
	for _, s := range stats {
		var card strings.Builder
		card.WriteString(Styles.Price.Render(s.Number) + "\n")
		card.WriteString(Styles.Normal.Render(s.Label) + "\n")
		card.WriteString(Styles.Trend.Render(s.Trend))
		cards = append(cards, Styles.Card.Width(cardWidth).Render(card.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	return b.String()
}
