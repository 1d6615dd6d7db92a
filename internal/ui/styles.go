package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - headlines, section markers
	ColorHighlight = "205" // Magenta - selected items, focused borders
	ColorGold      = "220" // Gold - recommended tier, star ratings
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorTrend     = "114" // Green - stat trend lines
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Hero styles
	Eyebrow  lipgloss.Style // Uppercase kicker above the headline
	Headline lipgloss.Style // Bold accent - the main claim
	Subhead  lipgloss.Style // Supporting sentence under the headline

	// Section styles
	Section      lipgloss.Style // Section headers (highlight color)
	SectionFocus lipgloss.Style // Section header of the focused section

	// Card styles
	Card            lipgloss.Style // Tier/stat card, unselected
	CardSelected    lipgloss.Style // Tier card, currently selected
	CardHighlighted lipgloss.Style // Tier card marked as recommended

	// Tab styles
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Text styles
	Selected lipgloss.Style // Highlighted items (bold highlight color)
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style // Normal text
	Hint     lipgloss.Style // Help/hint text
	Price    lipgloss.Style // Tier price figure
	Star     lipgloss.Style // Testimonial rating stars
	Trend    lipgloss.Style // Stat trend line
	Quote    lipgloss.Style // Testimonial quote body

	// Box styles
	Box lipgloss.Style // Standard box with rounded border
}{
	Eyebrow: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Headline: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subhead: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Bold(true),
	SectionFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1).
		Margin(0, 1, 0, 0),
	CardSelected: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Margin(0, 1, 0, 0),
	CardHighlighted: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorGold)).
		Padding(0, 1).
		Margin(0, 1, 0, 0),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Price: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Star: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorGold)),
	Trend: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorTrend)),
	Quote: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Italic(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
}
