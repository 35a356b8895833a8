// Package types provides shared interfaces and constants used across the
// big picture UI packages. This package exists to avoid import cycles
// between the root package and its sub-packages.
package types

import "image"

// Direction constants for navigation
const (
	DirNone  = 0
	DirUp    = 1
	DirDown  = 2
	DirLeft  = 3
	DirRight = 4
)

// Mode identifies which focusable scope is active
type Mode int

const (
	// ModeMain navigates the chrome plus the active section's elements
	ModeMain Mode = iota
	// ModeKeyboard navigates only the on-screen keyboard's keys
	ModeKeyboard
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeKeyboard:
		return "Keyboard"
	default:
		return "Unknown"
	}
}

// SectionID identifies a top-level content section of the overlay.
type SectionID string

const (
	// SectionHome is the landing section with quick-access tiles.
	SectionHome SectionID = "home"
	// SectionBrowse hosts the embedded content surface.
	SectionBrowse SectionID = "browse"
	// SectionBookmarks lists saved bookmarks.
	SectionBookmarks SectionID = "bookmarks"
	// SectionHistory lists browsing history.
	SectionHistory SectionID = "history"
	// SectionSettings holds overlay settings.
	SectionSettings SectionID = "settings"
)

// Raw controller layout, following the standard (web) gamepad mapping.
// Axis 0/1 are the left stick, 2/3 the right stick. Button indices are
// fixed: 0-3 = A/B/X/Y, 4/5 = LB/RB, 6/7 = LT/RT, 9 = Start,
// 10/11 = stick clicks, 12-15 = d-pad up/down/left/right.
const (
	AxisLeftX  = 0
	AxisLeftY  = 1
	AxisRightX = 2
	AxisRightY = 3

	ButtonA         = 0
	ButtonB         = 1
	ButtonX         = 2
	ButtonY         = 3
	ButtonLB        = 4
	ButtonRB        = 5
	ButtonLT        = 6
	ButtonRT        = 7
	ButtonStart     = 9
	ButtonLSClick   = 10
	ButtonRSClick   = 11
	ButtonDPadUp    = 12
	ButtonDPadDown  = 13
	ButtonDPadLeft  = 14
	ButtonDPadRight = 15

	// ButtonCount is the size of the raw button array providers must fill.
	ButtonCount = 16
	// AxisCount is the size of the raw axis array providers must fill.
	AxisCount = 4
)

// ControllerState is one raw poll of the controller hardware.
// Axes are in [-1, 1]; Buttons holds pressed booleans at the fixed
// indices above. A provider with no connected controller returns
// ok=false from Sample and the tick is skipped.
type ControllerState struct {
	Axes    [AxisCount]float64
	Buttons [ButtonCount]bool
}

// InputSource provides raw controller state once per tick.
// Implementations poll real hardware; tests feed synthetic states.
type InputSource interface {
	// Sample reads the controller. ok is false when no controller is
	// connected or it cannot be read this tick.
	Sample() (state ControllerState, ok bool)
}

// FocusableNode is a navigable UI element. The node is owned by the UI
// tree; this subsystem only holds references. Bounds is resolved at query
// time, never cached, because layout may change between navigations.
type FocusableNode interface {
	Bounds() image.Rectangle
	Activate()
	MarkFocused(focused bool)
	ScrollIntoView()
}

// UITree answers focusable queries for a scope. For ModeKeyboard only the
// on-screen keyboard's keys are returned; for ModeMain the always-visible
// chrome elements plus the active section's elements are returned, in order.
type UITree interface {
	QueryFocusable(mode Mode, section SectionID) []FocusableNode
	// ChromeCount reports how many always-visible chrome elements sit at
	// the head of a ModeMain query result. Section elements follow them.
	ChromeCount() int
}

// ContentSurface is an embedded content view the host cannot drive
// directly. The only input channel into it is asynchronous script
// evaluation inside its own execution context.
type ContentSurface interface {
	// Bounds returns the surface's current on-screen rectangle.
	Bounds() image.Rectangle

	Show()
	Hide()
	IsShown() bool
	// Destroy tears the surface down, discarding navigation history.
	Destroy()

	CanGoBack() bool
	GoBack()
	Navigate(url string)

	// Eval asynchronously evaluates script in the surface's context and
	// invokes done (possibly from another goroutine) with the result.
	// Calls carry no ordering guarantee relative to later calls.
	Eval(script string, done func(error))
}

// Host receives the actions this core exposes to its collaborators.
type Host interface {
	// Navigate is invoked with a URL or search term chosen by the user.
	Navigate(urlOrQuery string)
	// Exit signals the host process to quit.
	Exit()
}
