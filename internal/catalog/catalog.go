// Package catalog holds the static marketing content that drives the
// FraudLens landing views: pricing tiers, feature groups, testimonials,
// regional fraud statistics, and detection-model descriptors.
//
// A Catalog is immutable after load. Nothing in this package computes
// prices or credits; every value is display-only.
package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Region keys the regional statistics sets. The UI's region switcher only
// ever offers the values returned by Regions, so a selected region that is
// missing from a catalog is a catalog defect, not a runtime condition.
type Region string

const (
	RegionGlobal       Region = "global"
	RegionNorthAmerica Region = "northAmerica"
	RegionEurope       Region = "europe"
	RegionAsia         Region = "asia"
)

// Regions returns all selectable regions in display order.
// RegionGlobal is first and is the default selection.
func Regions() []Region {
	return []Region{RegionGlobal, RegionNorthAmerica, RegionEurope, RegionAsia}
}

// DisplayName returns the human-readable label for the region switcher.
func (r Region) DisplayName() string {
	switch r {
	case RegionGlobal:
		return "Global"
	case RegionNorthAmerica:
		return "North America"
	case RegionEurope:
		return "Europe"
	case RegionAsia:
		return "Asia"
	default:
		return string(r)
	}
}

// Tier is one pricing/feature bundle option.
type Tier struct {
	ID                  string
	Name                string
	Price               decimal.Decimal // per BillingPeriod; zero means free
	BillingPeriod       string          // "month", "year", "forever", ...
	IncludedCredits     int             // investigation credits bundled in
	MarginalCreditPrice decimal.Decimal // price per credit beyond the bundle
	Description         string          // markdown, shown in the detail modal
	Features            []string        // display order, not ranked
	Highlighted         bool            // rendered as the recommended plan
}

// Testimonial is a customer quote shown in the rotating carousel.
type Testimonial struct {
	Name    string
	Role    string
	Company string
	Content string
	Rating  int // 1..5
}

// Stat is one pre-formatted figure in a regional statistics set.
// Number is a string on purpose: formatting ("$5.1T", "93%") is editorial,
// not computed.
type Stat struct {
	Number string
	Label  string
	Trend  string
}

// Model describes one of the detection models marketed on the landing page.
type Model struct {
	Name     string
	Tagline  string
	Strength string
}

// Feature is a single capability inside a feature tab.
type Feature struct {
	Name  string
	Blurb string
}

// FeatureTab groups features under one tab of the feature showcase.
type FeatureTab struct {
	Title    string
	Features []Feature
}

// Hero is the headline block at the top of a landing variant.
type Hero struct {
	Eyebrow      string
	Headline     string
	Subheadline  string
	PrimaryCTA   string
	SecondaryCTA string
}

// Catalog is the complete content set for both landing variants.
type Catalog struct {
	Hero          Hero
	PremiumHero   Hero
	FeatureTabs   []FeatureTab
	Tiers         []Tier
	Testimonials  []Testimonial
	RegionalStats map[Region][]Stat
	Models        []Model
}

// TierByID looks up a tier by its ID.
func (c *Catalog) TierByID(id string) (Tier, bool) {
	for _, t := range c.Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

// HasRegion reports whether the catalog carries statistics for r.
func (c *Catalog) HasRegion(r Region) bool {
	stats, ok := c.RegionalStats[r]
	return ok && len(stats) > 0
}

// Validate checks the catalog invariants. A catalog that fails validation
// is a configuration defect: the producing side (build step or CMS export)
// must be fixed, the UI never repairs content at runtime.
func (c *Catalog) Validate() error {
	var errs []error

	if len(c.Tiers) == 0 {
		errs = append(errs, errors.New("catalog has no tiers"))
	}
	seen := make(map[string]struct{}, len(c.Tiers))
	for i, t := range c.Tiers {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("tier %d has empty id", i))
			continue
		}
		if _, dup := seen[t.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate tier id %q", t.ID))
		}
		seen[t.ID] = struct{}{}
		if t.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("tier %q has negative price", t.ID))
		}
	}

	for i, ts := range c.Testimonials {
		if ts.Rating < 1 || ts.Rating > 5 {
			errs = append(errs, fmt.Errorf("testimonial %d (%s): rating %d out of range 1..5", i, ts.Name, ts.Rating))
		}
	}

	for _, r := range Regions() {
		if !c.HasRegion(r) {
			errs = append(errs, fmt.Errorf("missing statistics for region %q", r))
		}
	}

	if len(c.FeatureTabs) == 0 {
		errs = append(errs, errors.New("catalog has no feature tabs"))
	}

	return errors.Join(errs...)
}
