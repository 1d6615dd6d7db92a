package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fraudlens/internal/catalog"
	"fraudlens/internal/intent"
)

// DefaultRotationInterval is the testimonial carousel period.
const DefaultRotationInterval = 5 * time.Second

// Options configures the root model.
type Options struct {
	StartMode        AppMode
	StartRegion      catalog.Region // "" keeps the global default
	RotationInterval time.Duration  // <= 0 uses DefaultRotationInterval
}

// AppModel is the root model. It owns both landing variants and switches
// between them; only the active variant's carousel is running.
type AppModel struct {
	Mode       AppMode
	Landing    *LandingView
	Premium    *PremiumView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Catalog    *catalog.Catalog
	Sink       *intent.Sink

	width  int
	height int
}

// NewAppModel creates the root application model.
func NewAppModel(c *catalog.Catalog, sink *intent.Sink, opts Options) *AppModel {
	if opts.RotationInterval <= 0 {
		opts.RotationInterval = DefaultRotationInterval
	}

	landing := NewLandingView(c, opts.RotationInterval)
	premium := NewPremiumView(c, opts.RotationInterval)
	if opts.StartRegion != "" {
		premium.Selection.SelectRegion(opts.StartRegion)
	}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("s", intentCmd(intent.StartInvestigation()), "Start free investigation")
	reg.BindWithDesc("c", intentCmd(intent.ContactSales()), "Contact sales")
	reg.BindWithDescForMode("SPC v l", switchVariantCmd(ModeLanding), "Landing variant", []AppMode{ModePremium})
	reg.BindWithDescForMode("SPC v p", switchVariantCmd(ModePremium), "Premium variant", []AppMode{ModeLanding})

	return &AppModel{
		Mode:       opts.StartMode,
		Landing:    landing,
		Premium:    premium,
		KeyHandler: NewKeyHandler(reg),
		Catalog:    c,
		Sink:       sink,
	}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// Both variants track the size so a switch renders correctly.
		v, _ := a.Landing.Update(msg)
		a.Landing = v.(*LandingView)
		v, _ = a.Premium.Update(msg)
		a.Premium = v.(*PremiumView)
		return a, nil

	case IntentMsg:
		return a, emitIntentCmd(a.Sink, msg.Intent)

	case SwitchVariantMsg:
		if msg.Mode == a.Mode {
			return a, nil
		}
		// Unmount semantics: the outgoing variant's carousel must stop
		// before the incoming one starts.
		if c, ok := a.currentView().(interface{ Close() }); ok {
			c.Close()
		}
		a.Mode = msg.Mode
		return a, a.currentView().Init()

	case ShowTierDetailMsg:
		tier, ok := a.Catalog.TierByID(msg.TierID)
		if !ok {
			// Detail requests originate from the same catalog we render.
			panic(fmt.Sprintf("ui: tier %q not in catalog", msg.TierID))
		}
		a.Overlays.Push(Overlay{
			View:    NewTierDetailModal(tier, a.width, a.height),
			Dismiss: "esc",
		})
		return a, nil

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case tea.KeyMsg:
		// Modal input wins over everything else.
		if cmd, handled := a.Overlays.HandleKey(msg); handled {
			return a, cmd
		}
		// Keybind system (leader key, SPC-prefixed commands)
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}

	base := a.currentView().View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode {
	case ModePremium:
		return a.Premium
	default:
		return a.Landing
	}
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModePremium:
		if p, ok := v.(*PremiumView); ok {
			a.Premium = p
		}
	default:
		if l, ok := v.(*LandingView); ok {
			a.Landing = l
		}
	}
}
