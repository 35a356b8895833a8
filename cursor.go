package bigpicture

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/style"
	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/types"
)

// SpeedTier selects how far the cursor travels per tick at full stick
// deflection.
type SpeedTier int

const (
	SpeedSlow SpeedTier = iota
	SpeedNormal
	SpeedFast
	speedTierCount
)

// String returns the string representation of the tier
func (t SpeedTier) String() string {
	switch t {
	case SpeedSlow:
		return "Slow"
	case SpeedNormal:
		return "Normal"
	case SpeedFast:
		return "Fast"
	default:
		return "Unknown"
	}
}

// CursorEmulator tracks a synthetic pointer over the embedded content
// surface and translates motion and clicks into injected pointer events,
// since the host has no native pointer channel into that surface.
//
// Injected calls are fire-and-forget: the emulator never waits for one
// evaluation before accepting the next input, so an earlier click may
// complete after the cursor has moved for a later one. That race is
// accepted; injected calls carry no ordering guarantee.
type CursorEmulator struct {
	surface types.ContentSurface
	notify  *Notification

	x, y    float64
	enabled bool
	tier    SpeedTier

	// Per-tier displacement in pixels per tick, and the clamp margin
	speeds [speedTierCount]int
	margin int

	// Viewport size, the centering fallback while the surface has no
	// layout yet
	viewportW, viewportH int
}

// NewCursorEmulator creates a pointer emulator over the given surface.
func NewCursorEmulator(surface types.ContentSurface, notify *Notification) *CursorEmulator {
	return &CursorEmulator{
		surface: surface,
		notify:  notify,
		tier:    SpeedNormal,
		speeds:  [speedTierCount]int{style.CursorSpeedSlow, style.CursorSpeedNormal, style.CursorSpeedFast},
		margin:  style.CursorMargin,
	}
}

// SetSpeeds overrides the per-tier displacements and clamp margin.
func (c *CursorEmulator) SetSpeeds(slow, normal, fast, margin int) {
	c.speeds = [speedTierCount]int{slow, normal, fast}
	c.margin = margin
}

// SetViewport records the window size used to center the cursor when the
// surface has not reported its bounds yet.
func (c *CursorEmulator) SetViewport(width, height int) {
	c.viewportW = width
	c.viewportH = height
}

// Enable positions the cursor at the center of the surface's bounding box
// and makes it visible. A degenerate (empty) box centers on the viewport
// instead; the first Move clamps into the real bounds once they exist.
func (c *CursorEmulator) Enable() {
	bounds := c.surface.Bounds()
	switch {
	case !bounds.Empty():
		c.x = float64(bounds.Min.X+bounds.Max.X) / 2
		c.y = float64(bounds.Min.Y+bounds.Max.Y) / 2
	case c.viewportW > 0 && c.viewportH > 0:
		c.x = float64(c.viewportW) / 2
		c.y = float64(c.viewportH) / 2
	}
	c.enabled = true
}

// Disable hides the cursor. Position is retained but inert.
func (c *CursorEmulator) Disable() {
	c.enabled = false
}

// IsEnabled reports whether the cursor is active.
func (c *CursorEmulator) IsEnabled() bool {
	return c.enabled
}

// Position returns the cursor's screen coordinates.
func (c *CursorEmulator) Position() (x, y float64) {
	return c.x, c.y
}

// Tier returns the active speed tier.
func (c *CursorEmulator) Tier() SpeedTier {
	return c.tier
}

// Move adds a displacement derived from the right-stick vector (each
// component in [-1, 1]) scaled by the active speed tier, then clamps the
// position to the surface bounds minus the margin so the cursor never
// visually escapes the surface. No-op while disabled or when both
// components are 0.
func (c *CursorEmulator) Move(stickX, stickY float64) {
	if !c.enabled || (stickX == 0 && stickY == 0) {
		return
	}

	speed := float64(c.speeds[c.tier])
	c.x += stickX * speed
	c.y += stickY * speed

	bounds := c.surface.Bounds()
	if bounds.Empty() {
		return
	}
	c.x = clamp(c.x, float64(bounds.Min.X), float64(bounds.Max.X-c.margin))
	c.y = clamp(c.y, float64(bounds.Min.Y), float64(bounds.Max.Y-c.margin))
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Click injects a pointer event at the cursor position, translated into
// the surface's own coordinate space. A primary click focuses text-like
// elements, dispatches press and release, and activates the element once;
// a secondary click dispatches a context-menu event. Injection failures
// are logged and never block later pointer operations.
func (c *CursorEmulator) Click(rightClick bool) {
	if !c.enabled {
		return
	}

	bounds := c.surface.Bounds()
	relX := int(c.x) - bounds.Min.X
	relY := int(c.y) - bounds.Min.Y

	c.surface.Eval(pointerClickScript(relX, relY, rightClick), func(err error) {
		if err != nil {
			log.Printf("Pointer click injection failed: %v", err)
		}
	})
}

// Scroll injects a vertical viewport scroll by the given signed amount.
func (c *CursorEmulator) Scroll(amount int) {
	if !c.enabled {
		return
	}
	c.surface.Eval(scrollScript(amount), func(err error) {
		if err != nil {
			log.Printf("Scroll injection failed: %v", err)
		}
	})
}

// CycleSpeed advances slow -> normal -> fast -> slow and surfaces a
// transient notice of the new tier.
func (c *CursorEmulator) CycleSpeed() {
	c.tier = (c.tier + 1) % speedTierCount
	if c.notify != nil {
		c.notify.ShowDefault(fmt.Sprintf("Cursor speed: %s", c.tier))
	}
}

// Draw renders the cursor as a filled circle with an outline.
func (c *CursorEmulator) Draw(screen *ebiten.Image) {
	if !c.enabled {
		return
	}
	r := float32(style.CursorSize) / 2
	vector.DrawFilledCircle(screen, float32(c.x), float32(c.y), r, style.CursorFill, true)
	vector.StrokeCircle(screen, float32(c.x), float32(c.y), r, 1.5, style.CursorOutline, true)
}

// pointerClickScript builds the script injected for a click at the given
// surface-relative point. The surface identifies the topmost element at
// that point in its own coordinate space; primary clicks focus
// text-input-like elements, dispatch mousedown/mouseup, then activate
// exactly once (el.click when available, a dispatched click event
// otherwise), secondary clicks dispatch contextmenu.
func pointerClickScript(x, y int, rightClick bool) string {
	if rightClick {
		return fmt.Sprintf(`(function() {
	var el = document.elementFromPoint(%d, %d);
	if (!el) return;
	el.dispatchEvent(new MouseEvent('contextmenu', {
		bubbles: true, cancelable: true, view: window,
		clientX: %d, clientY: %d, button: 2
	}));
})();`, x, y, x, y)
	}

	return fmt.Sprintf(`(function() {
	var el = document.elementFromPoint(%d, %d);
	if (!el) return;
	var tag = el.tagName;
	if (tag === 'INPUT' || tag === 'TEXTAREA' || el.isContentEditable) {
		el.focus();
	}
	var opts = {
		bubbles: true, cancelable: true, view: window,
		clientX: %d, clientY: %d, button: 0
	};
	el.dispatchEvent(new MouseEvent('mousedown', opts));
	el.dispatchEvent(new MouseEvent('mouseup', opts));
	if (typeof el.click === 'function') {
		el.click();
	} else {
		el.dispatchEvent(new MouseEvent('click', opts));
	}
})();`, x, y, x, y)
}

// scrollScript builds the script injected for a vertical scroll.
func scrollScript(amount int) string {
	return fmt.Sprintf("window.scrollBy(0, %d);", amount)
}

// cursorBounds is a convenience for tests and callers needing the
// clamping region for a surface box.
func cursorBounds(surface image.Rectangle, margin int) image.Rectangle {
	return image.Rect(surface.Min.X, surface.Min.Y, surface.Max.X-margin, surface.Max.Y-margin)
}
