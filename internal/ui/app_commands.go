package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"fraudlens/internal/intent"
)

// emitIntentCmd hands an intent to the sink. Fire and forget; the UI never
// waits on downstream collaborators.
func emitIntentCmd(sink *intent.Sink, in intent.Intent) tea.Cmd {
	return func() tea.Msg {
		if sink != nil {
			sink.Emit(context.Background(), in)
		}
		return nil
	}
}

// intentCmd returns a command that surfaces an IntentMsg to the root model.
func intentCmd(in intent.Intent) tea.Cmd {
	return func() tea.Msg {
		return IntentMsg{Intent: in}
	}
}

// switchVariantCmd returns a command that switches the landing variant.
func switchVariantCmd(mode AppMode) tea.Cmd {
	return func() tea.Msg {
		return SwitchVariantMsg{Mode: mode}
	}
}

// showTierDetailCmd returns a command that opens the tier detail modal.
func showTierDetailCmd(tierID string) tea.Cmd {
	return func() tea.Msg {
		return ShowTierDetailMsg{TierID: tierID}
	}
}
