package bigpicture

import (
	"time"

	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/style"
	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/types"
)

// Default deadzones, overridable from the input config. Comparisons are
// strict: a value exactly at the boundary is inactive, just above it is
// active.
const (
	// StickDeadzone applies to the left stick's directional contribution.
	StickDeadzone = 0.3
	// TriggerDeadzone applies to analog trigger values (LT/RT).
	TriggerDeadzone = 0.1
	// RightStickDeadzone applies per axis to the right stick, which drives
	// the virtual pointer. Values inside it are snapped to exactly 0.
	RightStickDeadzone = 0.15
)

// Edge identifies a logical edge-tracked input.
type Edge int

const (
	EdgeUp Edge = iota
	EdgeDown
	EdgeLeft
	EdgeRight
	EdgeA
	EdgeB
	EdgeX
	EdgeY
	EdgeLB
	EdgeRB
	EdgeStart
	EdgeRT
	EdgeLT
	EdgeRSClick
	EdgeLSClick
	edgeCount
)

// Snapshot is the derived input state for one tick: deadzone-filtered
// levels plus the right stick vector used for pointer motion.
type Snapshot struct {
	Up, Down, Left, Right bool

	A, B, X, Y       bool
	LB, RB, Start    bool
	RT, LT           bool
	RSClick, LSClick bool

	// Right stick in [-1, 1] after per-axis deadzone snapping.
	RightStickX, RightStickY float64
}

// Events reports what fired this tick. Pressed holds one-shot edges:
// exactly one per press-release cycle, never repeated while held.
// Direction additionally carries held-direction auto-repeat for focus
// movement (initial delay, then an accelerating interval).
type Events struct {
	Pressed   [edgeCount]bool
	Direction int // types.DirNone when no focus move should happen this tick
}

// Press reports whether the given edge fired this tick.
func (e *Events) Press(edge Edge) bool {
	return e.Pressed[edge]
}

// Sampler converts raw controller polls into deadzone-filtered snapshots
// and edge events. It holds no UI state; one instance is sampled once per
// display frame by the coordinator.
type Sampler struct {
	source types.InputSource
	was    [edgeCount]bool

	// Held-direction repeat state
	direction   int
	startTime   time.Time
	lastMove    time.Time
	repeatDelay time.Duration

	// Repeat tuning, defaulted from style constants
	initialDelay  time.Duration
	startInterval time.Duration
	minInterval   time.Duration
	acceleration  time.Duration

	// Deadzones, defaulted from the package constants
	stickDeadzone      float64
	rightStickDeadzone float64

	// now is replaceable for deterministic tests
	now func() time.Time
}

// NewSampler creates a sampler reading from the given source.
func NewSampler(source types.InputSource) *Sampler {
	return &Sampler{
		source:             source,
		repeatDelay:        style.NavStartInterval,
		initialDelay:       style.NavInitialDelay,
		startInterval:      style.NavStartInterval,
		minInterval:        style.NavMinInterval,
		acceleration:       style.NavAcceleration,
		stickDeadzone:      StickDeadzone,
		rightStickDeadzone: RightStickDeadzone,
		now:                time.Now,
	}
}

// SetDeadzones overrides the stick deadzones. Zero values keep the
// defaults so a sparse config leaves the built-in tuning alone.
func (s *Sampler) SetDeadzones(stick, rightStick float64) {
	if stick > 0 {
		s.stickDeadzone = stick
	}
	if rightStick > 0 {
		s.rightStickDeadzone = rightStick
	}
}

// SetRepeat overrides the held-direction repeat tuning.
func (s *Sampler) SetRepeat(initialDelay, startInterval, minInterval, acceleration time.Duration) {
	s.initialDelay = initialDelay
	s.startInterval = startInterval
	s.minInterval = minInterval
	s.acceleration = acceleration
	s.repeatDelay = startInterval
}

// StickActive reports whether a left-stick axis value exceeds the given
// deadzone in the positive direction. Callers negate the value for the
// opposite sign.
func StickActive(v, deadzone float64) bool {
	return v > deadzone
}

// TriggerActive reports whether an analog trigger value exceeds the
// given deadzone.
func TriggerActive(v, deadzone float64) bool {
	return v > deadzone
}

// RightStickValue applies a deadzone to a single right-stick axis,
// snapping values at or inside it to exactly 0. Only a magnitude
// strictly above the deadzone passes through.
func RightStickValue(v, deadzone float64) float64 {
	if v >= -deadzone && v <= deadzone {
		return 0
	}
	return v
}

// Sample polls the source once and derives the snapshot and events for
// this tick. A disconnected or unreadable controller yields no events and
// resets all edge state, so reconnection starts from a clean slate.
func (s *Sampler) Sample() (Snapshot, Events) {
	state, ok := s.source.Sample()
	if !ok {
		s.reset()
		return Snapshot{}, Events{Direction: types.DirNone}
	}
	return s.derive(state)
}

// reset clears edge and repeat state.
func (s *Sampler) reset() {
	s.was = [edgeCount]bool{}
	s.direction = types.DirNone
	s.repeatDelay = s.startInterval
}

// derive computes the snapshot from a raw poll and runs edge detection.
func (s *Sampler) derive(state types.ControllerState) (Snapshot, Events) {
	snap := Snapshot{
		Up:    state.Buttons[types.ButtonDPadUp] || StickActive(-state.Axes[types.AxisLeftY], s.stickDeadzone),
		Down:  state.Buttons[types.ButtonDPadDown] || StickActive(state.Axes[types.AxisLeftY], s.stickDeadzone),
		Left:  state.Buttons[types.ButtonDPadLeft] || StickActive(-state.Axes[types.AxisLeftX], s.stickDeadzone),
		Right: state.Buttons[types.ButtonDPadRight] || StickActive(state.Axes[types.AxisLeftX], s.stickDeadzone),

		A:       state.Buttons[types.ButtonA],
		B:       state.Buttons[types.ButtonB],
		X:       state.Buttons[types.ButtonX],
		Y:       state.Buttons[types.ButtonY],
		LB:      state.Buttons[types.ButtonLB],
		RB:      state.Buttons[types.ButtonRB],
		Start:   state.Buttons[types.ButtonStart],
		RT:      state.Buttons[types.ButtonRT],
		LT:      state.Buttons[types.ButtonLT],
		RSClick: state.Buttons[types.ButtonRSClick],
		LSClick: state.Buttons[types.ButtonLSClick],

		RightStickX: RightStickValue(state.Axes[types.AxisRightX], s.rightStickDeadzone),
		RightStickY: RightStickValue(state.Axes[types.AxisRightY], s.rightStickDeadzone),
	}

	events := Events{Direction: types.DirNone}

	levels := [edgeCount]bool{
		EdgeUp:      snap.Up,
		EdgeDown:    snap.Down,
		EdgeLeft:    snap.Left,
		EdgeRight:   snap.Right,
		EdgeA:       snap.A,
		EdgeB:       snap.B,
		EdgeX:       snap.X,
		EdgeY:       snap.Y,
		EdgeLB:      snap.LB,
		EdgeRB:      snap.RB,
		EdgeStart:   snap.Start,
		EdgeRT:      snap.RT,
		EdgeLT:      snap.LT,
		EdgeRSClick: snap.RSClick,
		EdgeLSClick: snap.LSClick,
	}

	// false->true transition emits exactly one event; transition to false
	// clears the stored flag with no event.
	for i := Edge(0); i < edgeCount; i++ {
		if levels[i] && !s.was[i] {
			events.Pressed[i] = true
		}
		s.was[i] = levels[i]
	}

	events.Direction = s.repeatDirection(snap)
	return snap, events
}

// repeatDirection implements held-direction auto-repeat on top of the
// directional levels. Vertical takes priority for menu-like behavior.
func (s *Sampler) repeatDirection(snap Snapshot) int {
	desired := types.DirNone
	switch {
	case snap.Up:
		desired = types.DirUp
	case snap.Down:
		desired = types.DirDown
	case snap.Left:
		desired = types.DirLeft
	case snap.Right:
		desired = types.DirRight
	}

	now := s.now()

	switch {
	case desired == types.DirNone:
		s.direction = types.DirNone
		s.repeatDelay = s.startInterval
	case desired != s.direction:
		// Direction changed: move immediately and start tracking
		s.direction = desired
		s.startTime = now
		s.lastMove = now
		s.repeatDelay = s.startInterval
		return desired
	default:
		// Same direction held: repeat after the initial delay, then
		// accelerate down to the interval floor
		if now.Sub(s.startTime) >= s.initialDelay && now.Sub(s.lastMove) >= s.repeatDelay {
			s.lastMove = now
			s.repeatDelay -= s.acceleration
			if s.repeatDelay < s.minInterval {
				s.repeatDelay = s.minInterval
			}
			return desired
		}
	}
	return types.DirNone
}
