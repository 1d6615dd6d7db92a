package ui

// AppMode is the active landing variant. Both variants render the same
// catalog; they differ in which interactive dimensions they expose.
type AppMode int

const (
	ModeLanding AppMode = iota // primary variant: feature tabs + pricing + reviews
	ModePremium                // alternate variant: regional statistics switcher
)

func (m AppMode) String() string {
	switch m {
	case ModeLanding:
		return "Landing"
	case ModePremium:
		return "Premium"
	default:
		return "Unknown"
	}
}
