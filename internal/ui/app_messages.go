package ui

import "fraudlens/internal/intent"

// SwitchVariantMsg switches the active landing variant (SPC v l / SPC v p).
type SwitchVariantMsg struct {
	Mode AppMode
}

// IntentMsg carries a user CTA out of a view. The root model forwards it
// to the intent sink; nothing in the UI acts on it further.
type IntentMsg struct {
	Intent intent.Intent
}

// ShowTierDetailMsg opens the tier detail modal for a tier id.
type ShowTierDetailMsg struct {
	TierID string
}

// DismissModalMsg is sent when a modal closes itself.
type DismissModalMsg struct{}
