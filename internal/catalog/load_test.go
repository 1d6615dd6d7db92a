package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
hero:
  eyebrow: TRUSTED WORLDWIDE
  headline: Catch fraud earlier
  subheadline: One sentence of copy.
  primaryCta: Start free
  secondaryCta: Talk to sales
premiumHero:
  headline: Premium headline
featureTabs:
  - title: Detect
    features:
      - name: Anomaly scoring
        blurb: Scores every transaction.
tiers:
  - id: free
    name: Free
    billingPeriod: forever
    includedCredits: 25
  - id: pro
    name: Pro
    price: "49.00"
    billingPeriod: month
    includedCredits: 500
    marginalCreditPrice: "0.12"
    highlighted: true
testimonials:
  - name: A. Tester
    role: Analyst
    company: Acme
    content: It works.
    rating: 5
regionalStats:
  global:
    - number: $5.1T
      label: Lost to fraud annually
      trend: "+8% YoY"
  northAmerica:
    - number: $389B
      label: Regional exposure
  europe:
    - number: "€790B"
      label: Regional exposure
  asia:
    - number: $2.2T
      label: Regional exposure
models:
  - name: Sentinel
    tagline: Realtime scoring
    strength: Latency
`

func TestParse_MinimalCatalog(t *testing.T) {
	c, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	require.Equal(t, "Catch fraud earlier", c.Hero.Headline)
	require.Equal(t, "Premium headline", c.PremiumHero.Headline)

	pro, ok := c.TierByID("pro")
	require.True(t, ok)
	require.True(t, pro.Price.Equal(decimal.RequireFromString("49.00")), "got %s", pro.Price)
	require.True(t, pro.MarginalCreditPrice.Equal(decimal.RequireFromString("0.12")))
	require.True(t, pro.Highlighted)

	free, ok := c.TierByID("free")
	require.True(t, ok)
	require.True(t, free.Price.IsZero(), "omitted price parses as zero")

	require.True(t, c.HasRegion(RegionEurope))
	require.Equal(t, "€790B", c.RegionalStats[RegionEurope][0].Number)
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Tiers, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read catalog")
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("tiers: [un{closed"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse catalog")
}

func TestParse_BadPrice(t *testing.T) {
	bad := []byte(`
tiers:
  - id: pro
    name: Pro
    price: "forty-nine"
`)
	_, err := Parse(bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), `tier "pro"`)
}

func TestParse_InvalidCatalogRejected(t *testing.T) {
	// Structurally fine YAML that breaks the catalog invariants: duplicate
	// tier ids and no regional statistics at all.
	bad := []byte(`
featureTabs:
  - title: Detect
tiers:
  - id: free
    name: Free
  - id: free
    name: Also Free
`)
	_, err := Parse(bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid catalog")
	require.Contains(t, err.Error(), "duplicate tier id")
}
