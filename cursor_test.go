package bigpicture

import (
	"errors"
	"image"
	"strings"
	"testing"
)

// fakeSurface records navigation and injected scripts.
type fakeSurface struct {
	bounds  image.Rectangle
	shown   bool
	history int

	navigated []string
	destroyed bool

	scripts []string
	evalErr error
}

func (s *fakeSurface) Bounds() image.Rectangle { return s.bounds }
func (s *fakeSurface) Show()                   { s.shown = true }
func (s *fakeSurface) Hide()                   { s.shown = false }
func (s *fakeSurface) IsShown() bool           { return s.shown }
func (s *fakeSurface) Destroy()                { s.destroyed = true; s.history = 0 }
func (s *fakeSurface) CanGoBack() bool         { return s.history > 0 }
func (s *fakeSurface) GoBack()                 { s.history-- }

func (s *fakeSurface) Navigate(url string) {
	s.navigated = append(s.navigated, url)
	s.history++
}

func (s *fakeSurface) Eval(script string, done func(error)) {
	s.scripts = append(s.scripts, script)
	if done != nil {
		done(s.evalErr)
	}
}

func testSurface() *fakeSurface {
	return &fakeSurface{bounds: image.Rect(100, 50, 900, 650), shown: true}
}

func TestEnableCentersCursor(t *testing.T) {
	surface := testSurface()
	c := NewCursorEmulator(surface, nil)

	c.Enable()

	x, y := c.Position()
	if x != 500 || y != 350 {
		t.Errorf("cursor should start at surface center, got (%v, %v)", x, y)
	}
	if !c.IsEnabled() {
		t.Error("cursor should be enabled")
	}
}

func TestEnableEmptyBoundsCentersOnViewport(t *testing.T) {
	surface := &fakeSurface{}
	c := NewCursorEmulator(surface, nil)
	c.SetViewport(800, 600)

	c.Enable()

	x, y := c.Position()
	if x != 400 || y != 300 {
		t.Errorf("degenerate bounds should center on the viewport, got (%v, %v)", x, y)
	}
}

func TestEnableEmptyBoundsNoViewportRetainsPosition(t *testing.T) {
	surface := &fakeSurface{}
	c := NewCursorEmulator(surface, nil)
	c.x, c.y = 33, 44

	c.Enable()

	x, y := c.Position()
	if x != 33 || y != 44 {
		t.Errorf("with no viewport known the position should be retained, got (%v, %v)", x, y)
	}
}

func TestMoveScalesByTier(t *testing.T) {
	surface := testSurface()
	c := NewCursorEmulator(surface, nil)
	c.SetSpeeds(8, 15, 25, 4)
	c.Enable()

	c.Move(1, 0)
	x, _ := c.Position()
	if x != 515 {
		t.Errorf("normal tier full deflection should move 15px, got x=%v", x)
	}

	c.tier = SpeedFast
	c.Move(0, -0.5)
	_, y := c.Position()
	if y != 337.5 {
		t.Errorf("fast tier half deflection should move 12.5px, got y=%v", y)
	}
}

func TestMoveDisabledOrIdleIsNoop(t *testing.T) {
	surface := testSurface()
	c := NewCursorEmulator(surface, nil)
	c.Enable()
	startX, startY := c.Position()

	c.Move(0, 0)
	if x, y := c.Position(); x != startX || y != startY {
		t.Error("zero vector should not move the cursor")
	}

	c.Disable()
	c.Move(1, 1)
	if x, y := c.Position(); x != startX || y != startY {
		t.Error("disabled cursor should not move")
	}
}

func TestMoveClampsToSurfaceBounds(t *testing.T) {
	surface := testSurface()
	c := NewCursorEmulator(surface, nil)
	c.SetSpeeds(8, 15, 25, 4)
	c.Enable()

	limit := cursorBounds(surface.bounds, 4)

	// Drive hard into every corner; position must stay inside the
	// margin-shrunk box after every step.
	vectors := [][2]float64{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}, {1, 0}, {0, 1}}
	for _, v := range vectors {
		for i := 0; i < 200; i++ {
			c.Move(v[0], v[1])
			x, y := c.Position()
			if x < float64(limit.Min.X) || x > float64(limit.Max.X) ||
				y < float64(limit.Min.Y) || y > float64(limit.Max.Y) {
				t.Fatalf("cursor escaped bounds: (%v, %v) not within %v", x, y, limit)
			}
		}
	}

	x, y := c.Position()
	if x != float64(limit.Max.X) || y != float64(limit.Max.Y) {
		t.Errorf("sustained down-right drive should rest at the clamp corner, got (%v, %v)", x, y)
	}
}

func TestClickInjectsSurfaceRelativeCoordinates(t *testing.T) {
	surface := testSurface()
	c := NewCursorEmulator(surface, nil)
	c.Enable() // center (500, 350), surface origin (100, 50)

	c.Click(false)

	if len(surface.scripts) != 1 {
		t.Fatalf("expected one injected script, got %d", len(surface.scripts))
	}
	script := surface.scripts[0]
	if !strings.Contains(script, "elementFromPoint(400, 300)") {
		t.Errorf("click should use surface-relative coordinates, got:\n%s", script)
	}
	if !strings.Contains(script, "'mousedown'") || !strings.Contains(script, "'mouseup'") {
		t.Error("primary click should dispatch press and release")
	}
	if strings.Contains(script, "contextmenu") {
		t.Error("primary click should not dispatch contextmenu")
	}
}

func TestClickActivatesElementExactlyOnce(t *testing.T) {
	surface := testSurface()
	c := NewCursorEmulator(surface, nil)
	c.Enable()

	c.Click(false)

	script := surface.scripts[0]
	// el.click() and the dispatched click event must be alternatives, or
	// elements with default click behavior would activate twice per press.
	if !strings.Contains(script, "el.click();") {
		t.Error("primary click should use direct activation when available")
	}
	if got := strings.Count(script, "MouseEvent('click'"); got != 1 {
		t.Errorf("dispatched click event should appear once as the fallback, got %d", got)
	}
	if !strings.Contains(script, "} else {") {
		t.Error("dispatched click should be the fallback branch, not an addition")
	}
}

func TestRightClickInjectsContextMenu(t *testing.T) {
	surface := testSurface()
	c := NewCursorEmulator(surface, nil)
	c.Enable()

	c.Click(true)

	if len(surface.scripts) != 1 {
		t.Fatalf("expected one injected script, got %d", len(surface.scripts))
	}
	if !strings.Contains(surface.scripts[0], "contextmenu") {
		t.Error("secondary click should dispatch contextmenu")
	}
}

func TestClickDisabledIsNoop(t *testing.T) {
	surface := testSurface()
	c := NewCursorEmulator(surface, nil)

	c.Click(false)

	if len(surface.scripts) != 0 {
		t.Error("disabled cursor should not inject clicks")
	}
}

func TestFailedInjectionDoesNotBlockNext(t *testing.T) {
	surface := testSurface()
	surface.evalErr = errors.New("surface not ready")
	c := NewCursorEmulator(surface, nil)
	c.Enable()

	c.Click(false)
	c.Click(false)
	c.Scroll(120)

	if len(surface.scripts) != 3 {
		t.Errorf("failed injections must not block later ones, got %d scripts", len(surface.scripts))
	}
}

func TestScrollInjectsScrollBy(t *testing.T) {
	surface := testSurface()
	c := NewCursorEmulator(surface, nil)
	c.Enable()

	c.Scroll(-120)

	if len(surface.scripts) != 1 {
		t.Fatalf("expected one injected script, got %d", len(surface.scripts))
	}
	if surface.scripts[0] != "window.scrollBy(0, -120);" {
		t.Errorf("unexpected scroll script: %s", surface.scripts[0])
	}
}

func TestCycleSpeedWraps(t *testing.T) {
	surface := testSurface()
	c := NewCursorEmulator(surface, nil)

	if c.Tier() != SpeedNormal {
		t.Errorf("default tier should be normal, got %s", c.Tier())
	}

	want := []SpeedTier{SpeedFast, SpeedSlow, SpeedNormal}
	for _, tier := range want {
		c.CycleSpeed()
		if c.Tier() != tier {
			t.Errorf("cycle should reach %s, got %s", tier, c.Tier())
		}
	}
}
