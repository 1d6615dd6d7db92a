package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func freshTick(r *Rotator) TickMsg {
	return TickMsg{ID: r.ID(), Gen: r.Gen(), Time: time.Now()}
}

func TestAdvance_WrapsModulo(t *testing.T) {
	const n = 5
	r := New(n, time.Minute)
	r.Start()

	for k := 1; k <= 3*n; k++ {
		r.Advance()
		require.Equal(t, k%n, r.Index(), "after %d ticks", k)
	}
}

func TestAdvance_Scenario(t *testing.T) {
	// Testimonials [A, B, C], starting index 0: two ticks show C,
	// a third wraps back to A.
	r := New(3, 5*time.Second)
	r.Start()

	r.Advance()
	r.Advance()
	require.Equal(t, 2, r.Index())

	r.Advance()
	require.Equal(t, 0, r.Index())
}

func TestSingleElement_IsNoOp(t *testing.T) {
	r := New(1, time.Minute)
	require.Nil(t, r.Start(), "size 1 must not schedule")

	for i := 0; i < 10; i++ {
		require.Nil(t, r.Advance())
		require.Equal(t, 0, r.Index())
	}
}

func TestEmpty_IsNoOp(t *testing.T) {
	r := New(0, time.Minute)
	require.Nil(t, r.Start())
	require.Nil(t, r.Advance())
	require.Nil(t, r.Jump(0))
	require.Equal(t, 0, r.Index())
}

func TestNew_NegativeSizePanics(t *testing.T) {
	require.Panics(t, func() { New(-1, time.Minute) })
}

func TestStop_InvalidatesPendingTick(t *testing.T) {
	r := New(3, time.Minute)
	r.Start()
	pending := freshTick(r)
	require.False(t, r.Stale(pending))

	r.Stop()
	require.True(t, r.Stale(pending), "tick scheduled before Stop must be stale")
	require.Equal(t, 0, r.Index())
}

func TestJump_ResetsPhase(t *testing.T) {
	r := New(3, time.Minute)
	r.Start()
	pending := freshTick(r)

	cmd := r.Jump(2)
	require.Equal(t, 2, r.Index())
	require.True(t, r.Stale(pending), "jump must supersede the pending schedule")
	require.NotNil(t, cmd, "running rotator reschedules a full period after a jump")
	require.False(t, r.Stale(freshTick(r)))
}

func TestJump_WhileStopped(t *testing.T) {
	r := New(3, time.Minute)
	require.Nil(t, r.Jump(1), "stopped rotator must not schedule")
	require.Equal(t, 1, r.Index())
}

func TestJump_OutOfRangePanics(t *testing.T) {
	r := New(3, time.Minute)
	require.Panics(t, func() { r.Jump(3) })
	require.Panics(t, func() { r.Jump(-1) })
}

func TestStart_IsIdempotent(t *testing.T) {
	r := New(3, time.Minute)
	require.NotNil(t, r.Start())
	gen := r.Gen()
	require.Nil(t, r.Start(), "second Start must not reschedule")
	require.Equal(t, gen, r.Gen())
}

func TestTickCmd_CarriesIdentity(t *testing.T) {
	r := New(3, time.Millisecond)
	cmd := r.Start()
	require.NotNil(t, cmd)

	msg, ok := cmd().(TickMsg)
	require.True(t, ok)
	require.Equal(t, r.ID(), msg.ID)
	require.Equal(t, r.Gen(), msg.Gen)
	require.False(t, r.Stale(msg))
}

func TestStale_OtherRotator(t *testing.T) {
	a := New(3, time.Minute)
	b := New(3, time.Minute)
	a.Start()
	b.Start()

	require.True(t, b.Stale(freshTick(a)), "ticks must not cross rotators")
	require.True(t, a.Stale(freshTick(b)))
}
