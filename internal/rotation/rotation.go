// Package rotation drives the auto-advancing carousels on the landing
// views. A Rotator owns an index into a fixed-size collection and advances
// it one position per tick, wrapping at the end.
//
// Bubble Tea's tea.Tick cannot be cancelled once scheduled, so the Rotator
// stamps each scheduled tick with a generation number, the same way
// bubbles/spinner tags its ticks. Stop and Jump bump the generation; a
// TickMsg carrying a stale generation must be dropped by the caller (see
// Stale). That makes unmount cancellation exact: after Stop, no pending
// tick can mutate the index.
package rotation

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is delivered when a scheduled rotation period elapses. ID names
// the Rotator that scheduled it, so ticks from one carousel never advance
// another.
type TickMsg struct {
	ID   int
	Gen  int
	Time time.Time
}

// Rotator advances an index through [0, size) at a fixed interval.
// Collections of size 0 or 1 degrade to a no-op: the index never moves and
// nothing is scheduled.
type Rotator struct {
	id       int
	size     int
	interval time.Duration
	index    int
	gen      int
	running  bool
}

var lastID atomic.Int64

// New creates a stopped Rotator over a collection of the given size.
func New(size int, interval time.Duration) *Rotator {
	if size < 0 {
		panic(fmt.Sprintf("rotation: negative size %d", size))
	}
	return &Rotator{id: int(lastID.Add(1)), size: size, interval: interval}
}

// ID returns the rotator's unique identity, stamped into its ticks.
func (r *Rotator) ID() int { return r.id }

// Index returns the current rotation index.
func (r *Rotator) Index() int { return r.index }

// Size returns the collection size.
func (r *Rotator) Size() int { return r.size }

// Running reports whether the rotator is started.
func (r *Rotator) Running() bool { return r.running }

// Gen returns the current schedule generation. Ticks carrying an older
// generation are stale.
func (r *Rotator) Gen() int { return r.gen }

// Interval returns the rotation period.
func (r *Rotator) Interval() time.Duration { return r.interval }

// Start marks the rotator running and schedules the first tick. It returns
// nil when rotation is a no-op (size < 2) or the rotator is already
// running.
func (r *Rotator) Start() tea.Cmd {
	if r.running {
		return nil
	}
	r.running = true
	if r.size < 2 {
		return nil
	}
	return r.tick()
}

// Stop halts rotation and invalidates any pending scheduled tick. It must
// be called when the owning view unmounts; a tick that arrives afterwards
// is stale and produces no state change.
func (r *Rotator) Stop() {
	r.running = false
	r.gen++
}

// Stale reports whether msg belongs to another rotator, to a superseded
// schedule, or to a stopped rotator, and must be discarded without
// advancing.
func (r *Rotator) Stale(msg TickMsg) bool {
	return !r.running || msg.ID != r.id || msg.Gen != r.gen
}

// Advance moves the index one position forward, wrapping from size-1 back
// to 0, and schedules the next tick. With size < 2 it does nothing and
// returns nil.
func (r *Rotator) Advance() tea.Cmd {
	if r.size < 2 {
		return nil
	}
	r.index = (r.index + 1) % r.size
	if !r.running {
		return nil
	}
	return r.tick()
}

// Jump sets the index directly (a user clicking a carousel marker) and
// resets the rotation phase: the pending tick is invalidated and, while
// running, a fresh full period is scheduled from now.
//
// i must be a valid index; carousel markers are rendered from the same
// collection, so an out-of-range jump is a programming error. Jumping on an
// empty collection is a no-op.
func (r *Rotator) Jump(i int) tea.Cmd {
	if r.size == 0 {
		return nil
	}
	if i < 0 || i >= r.size {
		panic(fmt.Sprintf("rotation: jump index %d out of range [0,%d)", i, r.size))
	}
	r.index = i
	r.gen++
	if !r.running || r.size < 2 {
		return nil
	}
	return r.tick()
}

func (r *Rotator) tick() tea.Cmd {
	id, gen := r.id, r.gen
	return tea.Tick(r.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Gen: gen, Time: t}
	})
}
