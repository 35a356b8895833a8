package style

import "time"

// Base constants (unexported): the logical-pixel reference values.
// The corresponding exported vars are recalculated by SetDPIScale.
const (
	baseDefaultPadding     = 16
	baseDefaultSpacing     = 16
	baseSmallSpacing       = 8
	baseButtonPaddingSmall = 8

	// Overlay (notification/keyboard shared)
	baseOverlayPadding = 12
	baseOverlayMargin  = 8

	// On-screen keyboard
	baseOSKKeyWidth     = 48
	baseOSKKeyHeight    = 44
	baseOSKWideKeyWidth = 96
	baseOSKKeySpacing   = 6
	baseOSKPanelPadding = 14

	// Virtual pointer
	baseCursorSize   = 14
	baseCursorMargin = 4
)

// Layout vars, DPI-scaled at runtime via SetDPIScale.
var (
	DefaultPadding     = baseDefaultPadding
	DefaultSpacing     = baseDefaultSpacing
	SmallSpacing       = baseSmallSpacing
	ButtonPaddingSmall = baseButtonPaddingSmall
)

// Overlay vars (shared by notification and the OSK panel)
var (
	OverlayPadding = baseOverlayPadding
	OverlayMargin  = baseOverlayMargin
)

// On-screen keyboard vars
var (
	OSKKeyWidth     = baseOSKKeyWidth
	OSKKeyHeight    = baseOSKKeyHeight
	OSKWideKeyWidth = baseOSKWideKeyWidth
	OSKKeySpacing   = baseOSKKeySpacing
	OSKPanelPadding = baseOSKPanelPadding
)

// Virtual pointer vars
var (
	// CursorSize is the drawn cursor's square edge length.
	CursorSize = baseCursorSize
	// CursorMargin keeps the cursor from visually escaping the content
	// surface when clamped to its bounds.
	CursorMargin = baseCursorMargin
)

// Gamepad navigation timing constants
const (
	NavInitialDelay  = 400 * time.Millisecond // Delay before repeat starts
	NavStartInterval = 200 * time.Millisecond // Initial repeat interval
	NavMinInterval   = 25 * time.Millisecond  // Fastest repeat (cap)
	NavAcceleration  = 20 * time.Millisecond  // Speed increase per repeat
)

// Cursor speed tiers, in pixels of displacement per tick at full stick
// deflection.
const (
	CursorSpeedSlow   = 8
	CursorSpeedNormal = 15
	CursorSpeedFast   = 25
)

// Toast display duration for transient notices (speed tier changes etc.)
const (
	NoticeDuration = 3 * time.Second
)
