package ui

import "testing"

func TestFocusManager_NextPrevWrap(t *testing.T) {
	f := &FocusManager{Current: "a", Order: []string{"a", "b", "c"}}

	f.Next()
	if f.Current != "b" {
		t.Errorf("Current = %q, want b", f.Current)
	}
	f.Next()
	f.Next()
	if f.Current != "a" {
		t.Errorf("Current = %q, want a (wrap)", f.Current)
	}
	f.Prev()
	if f.Current != "c" {
		t.Errorf("Current = %q, want c (wrap back)", f.Current)
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := &FocusManager{Current: "a", Order: []string{"a", "b"}}
	f.SetFocus("b")
	if f.Current != "b" {
		t.Errorf("Current = %q, want b", f.Current)
	}
}
