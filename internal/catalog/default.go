package catalog

import "github.com/shopspring/decimal"

// Default returns the built-in FraudLens marketing catalog. A build step or
// CMS export may replace it via Load; the shapes are identical.
func Default() *Catalog {
	return &Catalog{
		Hero: Hero{
			Eyebrow:      "AI-powered fraud investigation",
			Headline:     "Uncover fraud before it spreads.",
			Subheadline:  "FraudLens traces money flows, documents, and identities across millions of signals and hands your analysts a court-ready case file in minutes.",
			PrimaryCTA:   "Start free investigation",
			SecondaryCTA: "Contact sales",
		},
		PremiumHero: Hero{
			Eyebrow:      "FraudLens Premium",
			Headline:     "Your fraud desk, everywhere money moves.",
			Subheadline:  "Regional threat intelligence, dedicated detection models, and analyst workflows built for teams that investigate at scale.",
			PrimaryCTA:   "Start free investigation",
			SecondaryCTA: "Talk to an expert",
		},
		FeatureTabs: []FeatureTab{
			{
				Title: "Detect",
				Features: []Feature{
					{Name: "Anomaly scoring", Blurb: "Every transaction, document, and login scored against behavioral baselines in real time."},
					{Name: "Network graphs", Blurb: "Shell companies, mule accounts, and shared devices surface as connected clusters, not rows."},
					{Name: "Watchlist sweeps", Blurb: "Continuous screening against sanctions, PEP, and adverse-media sources."},
				},
			},
			{
				Title: "Investigate",
				Features: []Feature{
					{Name: "Case timelines", Blurb: "One chronological view of every signal tied to a subject, assembled automatically."},
					{Name: "Document forensics", Blurb: "Tampered invoices, cloned IDs, and synthetic statements flagged with pixel-level evidence."},
					{Name: "Entity resolution", Blurb: "Aliases, typos, and transliterations collapse into a single subject profile."},
				},
			},
			{
				Title: "Report",
				Features: []Feature{
					{Name: "Court-ready exports", Blurb: "SAR, STR, and evidence bundles generated in the format your regulator expects."},
					{Name: "Audit trail", Blurb: "Every analyst action and model decision recorded and replayable."},
					{Name: "Team review", Blurb: "Four-eyes sign-off built into the case lifecycle."},
				},
			},
		},
		Tiers: []Tier{
			{
				ID:                  "free",
				Name:                "Free",
				Price:               decimal.Zero,
				BillingPeriod:       "forever",
				IncludedCredits:     3,
				MarginalCreditPrice: decimal.RequireFromString("4.99"),
				Description: "Run your first investigations on the full detection stack.\n\n" +
					"The Free tier is the real product, not a demo: the same models, " +
					"the same graph engine, capped only by monthly credits.",
				Features: []string{
					"3 investigation credits / month",
					"Anomaly scoring on all signal types",
					"Single analyst seat",
					"Community support",
				},
			},
			{
				ID:                  "analyst",
				Name:                "Analyst",
				Price:               decimal.RequireFromString("49"),
				BillingPeriod:       "month",
				IncludedCredits:     25,
				MarginalCreditPrice: decimal.RequireFromString("2.49"),
				Description: "For the investigator who owns a caseload.\n\n" +
					"Everything in Free, plus document forensics, watchlist sweeps, " +
					"and exports your compliance team will actually accept.",
				Features: []string{
					"25 investigation credits / month",
					"Document forensics",
					"Watchlist sweeps",
					"Court-ready exports",
					"Priority support",
				},
				Highlighted: true,
			},
			{
				ID:                  "team",
				Name:                "Team",
				Price:               decimal.RequireFromString("199"),
				BillingPeriod:       "month",
				IncludedCredits:     120,
				MarginalCreditPrice: decimal.RequireFromString("1.99"),
				Description: "Shared caseloads, shared context.\n\n" +
					"Cases move between analysts without losing the timeline, and " +
					"review gates keep sign-off inside the tool.",
				Features: []string{
					"120 pooled credits / month",
					"Up to 10 analyst seats",
					"Case assignment and review gates",
					"Shared entity library",
					"SAML SSO",
				},
			},
			{
				ID:                  "enterprise",
				Name:                "Enterprise",
				Price:               decimal.RequireFromString("999"),
				BillingPeriod:       "month",
				IncludedCredits:     1000,
				MarginalCreditPrice: decimal.RequireFromString("0.99"),
				Description: "For fraud desks that never close.\n\n" +
					"Dedicated model capacity, regional data residency, and an " +
					"investigations engineer on your Slack.",
				Features: []string{
					"1,000 pooled credits / month",
					"Unlimited seats",
					"Dedicated model capacity",
					"Regional data residency",
					"24/7 incident line",
				},
			},
		},
		Testimonials: []Testimonial{
			{
				Name:    "Mariana Costa",
				Role:    "Head of Financial Crime",
				Company: "Arcadia Bank",
				Content: "FraudLens collapsed a three-week mule-network investigation into an afternoon. The graph view alone paid for the year.",
				Rating:  5,
			},
			{
				Name:    "Tom Okafor",
				Role:    "Fraud Operations Lead",
				Company: "Paylane",
				Content: "We cut false positives by half and our analysts stopped living in spreadsheets. Exports go straight to the regulator.",
				Rating:  5,
			},
			{
				Name:    "Ingrid Sørensen",
				Role:    "Compliance Director",
				Company: "Nordhav Insurance",
				Content: "Document forensics caught a forged invoice ring our previous vendor had scored as clean for two years.",
				Rating:  4,
			},
		},
		RegionalStats: map[Region][]Stat{
			RegionGlobal: {
				{Number: "$5.1T", Label: "lost to fraud worldwide each year", Trend: "+8% YoY"},
				{Number: "93%", Label: "of mule networks detected before payout", Trend: "+6 pts"},
				{Number: "11 min", Label: "median time to a court-ready case file", Trend: "-42%"},
			},
			RegionNorthAmerica: {
				{Number: "$1.4T", Label: "annual fraud exposure across US & Canada", Trend: "+7% YoY"},
				{Number: "4.2x", Label: "more synthetic identities caught vs. rules engines", Trend: "+0.8x"},
				{Number: "38%", Label: "drop in chargeback losses for FraudLens customers", Trend: "-5 pts cost"},
			},
			RegionEurope: {
				{Number: "€790B", Label: "annual fraud exposure across the EEA", Trend: "+5% YoY"},
				{Number: "97%", Label: "SEPA instant-payment scams flagged pre-settlement", Trend: "+9 pts"},
				{Number: "100%", Label: "exports aligned with EBA reporting templates", Trend: "stable"},
			},
			RegionAsia: {
				{Number: "$2.2T", Label: "annual fraud exposure across APAC corridors", Trend: "+11% YoY"},
				{Number: "86%", Label: "of cross-border mule chains traced end to end", Trend: "+12 pts"},
				{Number: "19 ms", Label: "scoring latency at peak festival traffic", Trend: "stable"},
			},
		},
		Models: []Model{
			{
				Name:     "Sentinel",
				Tagline:  "Transaction anomaly model",
				Strength: "Behavioral baselines over 400+ signal features, retrained nightly.",
			},
			{
				Name:     "LedgerGraph",
				Tagline:  "Network analysis model",
				Strength: "Entity-linking across accounts, devices, and counterparties at billion-edge scale.",
			},
			{
				Name:     "DocTrace",
				Tagline:  "Document forensics model",
				Strength: "Pixel- and metadata-level tamper detection for statements, invoices, and IDs.",
			},
		},
	}
}
