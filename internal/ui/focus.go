package ui

// FocusManager tracks which section of a landing variant owns the
// navigation keys (h/l, enter). Tab rotates focus through Order.
type FocusManager struct {
	Current string   // ID of the currently focused section
	Order   []string // Tab order for focus rotation
}

// Next advances focus to the next section in order and returns it.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev advances focus to the previous section in order and returns it.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

func (f *FocusManager) move(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := 0
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	n := len(f.Order)
	f.Current = f.Order[((idx+delta)%n+n)%n]
	return f.Current
}

// SetFocus sets focus to the given section ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.Current = id
			return true
		}
	}
	return false
}
