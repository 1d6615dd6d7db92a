package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal layered over the active landing variant, such as the
// tier detail view. Dismiss names the key that closes it without running
// any of the modal's own bindings.
type Overlay struct {
	View    View
	Dismiss string // key that closes the modal (e.g. "esc")
}

// IsDismissKey reports whether the given key string closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlayStack manages the open modals. While any modal is open it owns
// all key input; the landing variant underneath sees nothing.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens a modal on top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes and returns the top modal.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top modal without closing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open modals.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// HandleKey routes a key press to the top modal: the dismiss key closes
// it, anything else goes to the modal's Update. handled is false only
// when no modal is open, in which case the key belongs to the active
// landing variant.
func (s *OverlayStack) HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	top, ok := s.Peek()
	if !ok {
		return nil, false
	}
	if top.IsDismissKey(msg.String()) {
		s.Pop()
		return nil, true
	}
	cmd, _ = s.UpdateTop(msg)
	return cmd, true
}

// UpdateTop passes msg to the top modal's Update and replaces its View
// with the result. Returns the cmd from the modal's Update.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
