package ui

import (
	"strings"
	"testing"

	"fraudlens/internal/catalog"
	"fraudlens/internal/selection"
)

func newPricingPanel() *PricingPanel {
	c := catalog.Default()
	return &PricingPanel{Catalog: c, Selection: selection.New(c)}
}

func TestPricingPanel_ActiveIndex(t *testing.T) {
	p := newPricingPanel()
	if p.ActiveIndex() != -1 {
		t.Errorf("no selection: ActiveIndex = %d, want -1", p.ActiveIndex())
	}

	p.Selection.SelectTier("team")
	if p.ActiveIndex() != 2 {
		t.Errorf("ActiveIndex = %d, want 2", p.ActiveIndex())
	}
}

func TestPricingPanel_MoveEntersAndWraps(t *testing.T) {
	p := newPricingPanel()

	p.Move(1)
	if p.Selection.ActiveTierID != "free" {
		t.Errorf("first move right selects %q, want free", p.Selection.ActiveTierID)
	}

	p.Move(-1)
	if p.Selection.ActiveTierID != "enterprise" {
		t.Errorf("wrap left selects %q, want enterprise", p.Selection.ActiveTierID)
	}

	p.Move(1)
	if p.Selection.ActiveTierID != "free" {
		t.Errorf("wrap right selects %q, want free", p.Selection.ActiveTierID)
	}
}

func TestPricingPanel_MoveLeftFromNoneEntersAtLast(t *testing.T) {
	p := newPricingPanel()
	p.Move(-1)
	if p.Selection.ActiveTierID != "enterprise" {
		t.Errorf("first move left selects %q, want enterprise", p.Selection.ActiveTierID)
	}
}

func TestPricingPanel_View(t *testing.T) {
	p := newPricingPanel()
	out := p.View(120, false)

	for _, want := range []string{"Free", "Analyst ★", "Team", "Enterprise", "$49/mo", "$999/mo"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in pricing view", want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	c := catalog.Default()

	free, _ := c.TierByID("free")
	if got := FormatPrice(free); got != "Free" {
		t.Errorf("FormatPrice(free) = %q", got)
	}

	analyst, _ := c.TierByID("analyst")
	if got := FormatPrice(analyst); got != "$49/mo" {
		t.Errorf("FormatPrice(analyst) = %q", got)
	}
}
