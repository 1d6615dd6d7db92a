package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fraudlens/internal/catalog"
	"fraudlens/internal/rotation"
)

// Carousel is the auto-rotating testimonial panel shared by both landing
// variants. It owns a rotation.Rotator; the testimonial slice itself is
// never mutated.
type Carousel struct {
	Testimonials []catalog.Testimonial
	Rot          *rotation.Rotator
}

// NewCarousel builds a stopped carousel over the catalog's testimonials.
func NewCarousel(ts []catalog.Testimonial, interval time.Duration) *Carousel {
	return &Carousel{
		Testimonials: ts,
		Rot:          rotation.New(len(ts), interval),
	}
}

// Init starts auto-rotation. Call on view mount.
func (c *Carousel) Init() tea.Cmd {
	return c.Rot.Start()
}

// Stop halts auto-rotation. Call on view unmount; a tick that is already
// in flight becomes stale and is dropped by Update.
func (c *Carousel) Stop() {
	c.Rot.Stop()
}

// Update advances the carousel on a live tick and schedules the next one.
// Stale ticks (stopped carousel, superseded schedule, other rotator)
// produce no change.
func (c *Carousel) Update(msg rotation.TickMsg) tea.Cmd {
	if c.Rot.Stale(msg) {
		return nil
	}
	return c.Rot.Advance()
}

// JumpBy moves delta positions with wraparound. A manual jump resets the
// rotation phase: the next automatic advance is a full period away.
func (c *Carousel) JumpBy(delta int) tea.Cmd {
	n := c.Rot.Size()
	if n == 0 {
		return nil
	}
	return c.Rot.Jump(((c.Rot.Index()+delta)%n + n) % n)
}

// JumpTo selects marker i directly. i must be a valid index.
func (c *Carousel) JumpTo(i int) tea.Cmd {
	return c.Rot.Jump(i)
}

// Index returns the currently displayed testimonial index.
func (c *Carousel) Index() int {
	return c.Rot.Index()
}

// View renders the current testimonial with rating stars and position
// markers.
func (c *Carousel) View(width int, focused bool) string {
	var b strings.Builder
	b.WriteString(sectionTitle("What investigators say", focused) + "\n")

	if len(c.Testimonials) == 0 {
		b.WriteString(Styles.Muted.Render("No testimonials yet."))
		return b.String()
	}

	t := c.Testimonials[c.Rot.Index()]
	stars := strings.Repeat("★", t.Rating) + strings.Repeat("☆", 5-t.Rating)
	b.WriteString(Styles.Star.Render(stars) + "\n")
	b.WriteString(Styles.Quote.Width(max(20, width-4)).Render("“"+t.Content+"”") + "\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("— %s, %s, %s", t.Name, t.Role, t.Company)) + "\n")
	b.WriteString(c.markers())
	return b.String()
}

// markers renders one dot per testimonial, the active one filled.
func (c *Carousel) markers() string {
	parts := make([]string, len(c.Testimonials))
	for i := range c.Testimonials {
		if i == c.Rot.Index() {
			parts[i] = Styles.Selected.Render("●")
		} else {
			parts[i] = Styles.Muted.Render("○")
		}
	}
	return strings.Join(parts, " ")
}
