package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fraudlens/internal/catalog"
	"fraudlens/internal/rotation"
	"fraudlens/internal/selection"
)

// Section IDs for focus rotation.
const (
	sectionFeatures = "features"
	sectionPricing  = "pricing"
	sectionReviews  = "reviews"
	sectionStats    = "stats"
)

// LandingView is the primary landing variant: hero, feature tab switcher,
// pricing tiers, and the rotating testimonial carousel.
type LandingView struct {
	Catalog   *catalog.Catalog
	Selection *selection.State
	Pricing   *PricingPanel
	Carousel  *Carousel
	Focus     *FocusManager

	width  int
	height int
}

// Ensure LandingView implements View.
var _ View = (*LandingView)(nil)

// NewLandingView builds the primary variant over the given catalog.
func NewLandingView(c *catalog.Catalog, interval time.Duration) *LandingView {
	sel := selection.New(c)
	return &LandingView{
		Catalog:   c,
		Selection: sel,
		Pricing:   &PricingPanel{Catalog: c, Selection: sel},
		Carousel:  NewCarousel(c.Testimonials, interval),
		Focus: &FocusManager{
			Current: sectionFeatures,
			Order:   []string{sectionFeatures, sectionPricing, sectionReviews},
		},
	}
}

// Init implements View; mounting starts the carousel.
func (v *LandingView) Init() tea.Cmd {
	return v.Carousel.Init()
}

// Close stops the carousel. Must be called when the view is switched away;
// afterwards any in-flight tick is stale and changes nothing.
func (v *LandingView) Close() {
	v.Carousel.Stop()
}

// Update implements View.
func (v *LandingView) Update(msg tea.Msg) (View, tea.Cmd) {
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

func (v *LandingView) handleKey(msg tea.KeyMsg) tea.Cmd {
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
	case sectionFeatures:
		n := len(v.Catalog.FeatureTabs)
		switch s {
		case "l", "right":
			v.Selection.SelectTab((v.Selection.ActiveTab + 1) % n)
		case "h", "left":
			v.Selection.SelectTab((v.Selection.ActiveTab - 1 + n) % n)
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

// View implements View.
func (v *LandingView) View() string {
	width := v.width
	if width == 0 {
		width = 100 // default for tests
	}

	sections := []string{
		renderHero(v.Catalog.Hero, width),
		v.renderFeatureTabs(width),
		v.renderModels(width),
		v.Pricing.View(width, v.Focus.Current == sectionPricing),
		v.Carousel.View(width, v.Focus.Current == sectionReviews),
		Styles.Hint.Render("tab: next section • h/l: navigate • enter: tier details • SPC: commands"),
	}
	return strings.Join(sections, "\n\n")
}

func (v *LandingView) renderFeatureTabs(width int) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Platform", v.Focus.Current == sectionFeatures) + "\n")

	titles := make([]string, len(v.Catalog.FeatureTabs))
	for i, tab := range v.Catalog.FeatureTabs {
		if i == v.Selection.ActiveTab {
			titles[i] = Styles.TabActive.Render(tab.Title)
		} else {
			titles[i] = Styles.TabInactive.Render(tab.Title)
		}
	}
	b.WriteString(strings.Join(titles, Styles.Muted.Render("  │  ")) + "\n\n")

	active := v.Catalog.FeatureTabs[v.Selection.ActiveTab]
	for _, f := range active.Features {
		b.WriteString(Styles.Normal.Bold(true).Render(f.Name) + "  ")
		b.WriteString(Styles.Muted.Width(max(20, width-len(f.Name)-4)).Render(f.Blurb) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *LandingView) renderModels(width int) string {
	if len(v.Catalog.Models) == 0 {
		return ""
	}
	parts := make([]string, len(v.Catalog.Models))
	for i, m := range v.Catalog.Models {
		parts[i] = Styles.Normal.Bold(true).Render(m.Name) + Styles.Muted.Render(" · "+m.Tagline)
	}
	return Styles.Section.Render("  Detection models") + "\n" +
		strings.Join(parts, Styles.Muted.Render("   "))
}

// markerIndex maps a digit key to a carousel marker index, if valid.
func markerIndex(key string, count int) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	i := int(key[0] - '1')
	if i >= count {
		return 0, false
	}
	return i, true
}
