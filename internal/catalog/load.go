package catalog

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// The file schema mirrors Catalog but keeps prices as strings so the
// producing side controls precision; they are parsed with decimal, never
// float64.

type fileCatalog struct {
	Hero          fileHero                `yaml:"hero"`
	PremiumHero   fileHero                `yaml:"premiumHero"`
	FeatureTabs   []fileFeatureTab        `yaml:"featureTabs"`
	Tiers         []fileTier              `yaml:"tiers"`
	Testimonials  []fileTestimonial       `yaml:"testimonials"`
	RegionalStats map[string][]fileStat   `yaml:"regionalStats"`
	Models        []fileModel             `yaml:"models"`
}

type fileHero struct {
	Eyebrow      string `yaml:"eyebrow"`
	Headline     string `yaml:"headline"`
	Subheadline  string `yaml:"subheadline"`
	PrimaryCTA   string `yaml:"primaryCta"`
	SecondaryCTA string `yaml:"secondaryCta"`
}

type fileFeatureTab struct {
	Title    string `yaml:"title"`
	Features []struct {
		Name  string `yaml:"name"`
		Blurb string `yaml:"blurb"`
	} `yaml:"features"`
}

type fileTier struct {
	ID                  string   `yaml:"id"`
	Name                string   `yaml:"name"`
	Price               string   `yaml:"price"`
	BillingPeriod       string   `yaml:"billingPeriod"`
	IncludedCredits     int      `yaml:"includedCredits"`
	MarginalCreditPrice string   `yaml:"marginalCreditPrice"`
	Description         string   `yaml:"description"`
	Features            []string `yaml:"features"`
	Highlighted         bool     `yaml:"highlighted"`
}

type fileTestimonial struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Company string `yaml:"company"`
	Content string `yaml:"content"`
	Rating  int    `yaml:"rating"`
}

type fileStat struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
	Trend  string `yaml:"trend"`
}

type fileModel struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	Strength string `yaml:"strength"`
}

// Load reads a catalog from a YAML file produced by the content pipeline
// and validates it. The returned catalog is ready for rendering.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		Hero:          heroFromFile(fc.Hero),
		PremiumHero:   heroFromFile(fc.PremiumHero),
		RegionalStats: make(map[Region][]Stat, len(fc.RegionalStats)),
	}

	for _, ft := range fc.FeatureTabs {
		tab := FeatureTab{Title: ft.Title}
		for _, f := range ft.Features {
			tab.Features = append(tab.Features, Feature{Name: f.Name, Blurb: f.Blurb})
		}
		c.FeatureTabs = append(c.FeatureTabs, tab)
	}

	for _, ft := range fc.Tiers {
		price, err := parsePrice(ft.Price, ft.ID, "price")
		if err != nil {
			return nil, err
		}
		marginal, err := parsePrice(ft.MarginalCreditPrice, ft.ID, "marginalCreditPrice")
		if err != nil {
			return nil, err
		}
		c.Tiers = append(c.Tiers, Tier{
			ID:                  ft.ID,
			Name:                ft.Name,
			Price:               price,
			BillingPeriod:       ft.BillingPeriod,
			IncludedCredits:     ft.IncludedCredits,
			MarginalCreditPrice: marginal,
			Description:         ft.Description,
			Features:            ft.Features,
			Highlighted:         ft.Highlighted,
		})
	}

	for _, t := range fc.Testimonials {
		c.Testimonials = append(c.Testimonials, Testimonial(t))
	}

	for key, stats := range fc.RegionalStats {
		var out []Stat
		for _, s := range stats {
			out = append(out, Stat(s))
		}
		c.RegionalStats[Region(key)] = out
	}

	for _, m := range fc.Models {
		c.Models = append(c.Models, Model(m))
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

func heroFromFile(h fileHero) Hero {
	return Hero{
		Eyebrow:      h.Eyebrow,
		Headline:     h.Headline,
		Subheadline:  h.Subheadline,
		PrimaryCTA:   h.PrimaryCTA,
		SecondaryCTA: h.SecondaryCTA,
	}
}

func parsePrice(raw, tierID, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("tier %q: %s %q: %w", tierID, field, raw, err)
	}
	return d, nil
}
