package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// stubModal records the last key it received.
type stubModal struct {
	lastKey string
}

func (s *stubModal) Init() tea.Cmd { return nil }

func (s *stubModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		s.lastKey = k.String()
	}
	return s, nil
}

func (s *stubModal) View() string { return "stub" }

func TestOverlayStack_HandleKeyWithoutModal(t *testing.T) {
	var s OverlayStack

	_, handled := s.HandleKey(keyMsg("q"))
	if handled {
		t.Error("keys must reach the variant when no modal is open")
	}
}

func TestOverlayStack_DismissKeyClosesModal(t *testing.T) {
	var s OverlayStack
	modal := &stubModal{}
	s.Push(Overlay{View: modal, Dismiss: "esc"})

	_, handled := s.HandleKey(keyMsg("esc"))
	if !handled {
		t.Fatal("dismiss key must be handled")
	}
	if s.Len() != 0 {
		t.Error("dismiss key must close the modal")
	}
	if modal.lastKey != "" {
		t.Error("dismiss key must not reach the modal's Update")
	}
}

func TestOverlayStack_OtherKeysReachModal(t *testing.T) {
	var s OverlayStack
	modal := &stubModal{}
	s.Push(Overlay{View: modal, Dismiss: "esc"})

	_, handled := s.HandleKey(keyMsg("j"))
	if !handled {
		t.Fatal("modal input must be handled while a modal is open")
	}
	if modal.lastKey != "j" {
		t.Errorf("modal saw %q, want j", modal.lastKey)
	}
	if s.Len() != 1 {
		t.Error("non-dismiss keys must keep the modal open")
	}
}

func TestOverlayStack_TopModalWins(t *testing.T) {
	var s OverlayStack
	bottom := &stubModal{}
	top := &stubModal{}
	s.Push(Overlay{View: bottom, Dismiss: "esc"})
	s.Push(Overlay{View: top, Dismiss: "esc"})

	s.HandleKey(keyMsg("j"))
	if top.lastKey != "j" || bottom.lastKey != "" {
		t.Errorf("keys went to top=%q bottom=%q, want top only", top.lastKey, bottom.lastKey)
	}

	s.HandleKey(keyMsg("esc"))
	if s.Len() != 1 {
		t.Error("dismiss must close only the top modal")
	}
}
