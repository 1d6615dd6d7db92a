package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"fraudlens/internal/catalog"
	"fraudlens/internal/intent"
)

// TierDetailModal shows one tier's full description and feature list.
// Enter emits the upgrade intent and closes the modal; esc (the overlay
// dismiss key) closes it without emitting anything.
type TierDetailModal struct {
	Tier catalog.Tier
	vp   viewport.Model
}

// Ensure TierDetailModal implements View.
var _ View = (*TierDetailModal)(nil)

// NewTierDetailModal builds the modal sized to the current window.
func NewTierDetailModal(t catalog.Tier, width, height int) *TierDetailModal {
	w := max(40, min(width-12, 80))
	h := max(8, min(height-10, 20))

	vp := viewport.New(w, h)
	var content strings.Builder
	content.WriteString(renderMarkdown(t.Description, w) + "\n")
	for _, f := range t.Features {
		content.WriteString(Styles.Normal.Render("• "+f) + "\n")
	}
	vp.SetContent(content.String())

	return &TierDetailModal{Tier: t, vp: vp}
}

// Init implements View.
func (m *TierDetailModal) Init() tea.Cmd {
	return nil
}

// Update implements View. j/k and the arrow keys scroll; enter confirms.
func (m *TierDetailModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		id := m.Tier.ID
		return m, tea.Batch(
			func() tea.Msg { return IntentMsg{Intent: intent.UpgradeTier(id)} },
			func() tea.Msg { return DismissModalMsg{} },
		)
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View implements View.
func (m *TierDetailModal) View() string {
	var b strings.Builder
	title := fmt.Sprintf("%s — %s", m.Tier.Name, FormatPrice(m.Tier))
	b.WriteString(Styles.Selected.Render(title) + "\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("%d credits included, then $%s/credit",
		m.Tier.IncludedCredits, m.Tier.MarginalCreditPrice.StringFixed(2))) + "\n\n")
	b.WriteString(m.vp.View() + "\n")
	b.WriteString(Styles.Hint.Render("[enter] Upgrade • [j/k] scroll • [esc] close"))
	return Styles.Box.Render(b.String())
}
