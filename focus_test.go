package bigpicture

import (
	"image"
	"testing"

	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/types"
)

// fakeNode is a synthetic focusable target for registry tests.
type fakeNode struct {
	rect      image.Rectangle
	focused   bool
	activated int
	scrolled  int
}

func (n *fakeNode) Bounds() image.Rectangle { return n.rect }
func (n *fakeNode) Activate()               { n.activated++ }
func (n *fakeNode) MarkFocused(f bool)      { n.focused = f }
func (n *fakeNode) ScrollIntoView()         { n.scrolled++ }

// fakeTree serves fixed node sets per mode.
type fakeTree struct {
	chrome   []*fakeNode
	section  []*fakeNode
	keyboard []*fakeNode
}

func (t *fakeTree) QueryFocusable(mode types.Mode, section types.SectionID) []types.FocusableNode {
	var src []*fakeNode
	if mode == types.ModeKeyboard {
		src = t.keyboard
	} else {
		src = append(append([]*fakeNode{}, t.chrome...), t.section...)
	}
	out := make([]types.FocusableNode, len(src))
	for i, n := range src {
		out[i] = n
	}
	return out
}

func (t *fakeTree) ChromeCount() int { return len(t.chrome) }

func (t *fakeTree) focusedCount() int {
	count := 0
	for _, n := range append(append(append([]*fakeNode{}, t.chrome...), t.section...), t.keyboard...) {
		if n.focused {
			count++
		}
	}
	return count
}

func gridTree() *fakeTree {
	// Two rows of three tiles.
	return &fakeTree{
		section: []*fakeNode{
			{rect: image.Rect(0, 0, 100, 60)},
			{rect: image.Rect(120, 0, 220, 60)},
			{rect: image.Rect(240, 0, 340, 60)},
			{rect: image.Rect(0, 80, 100, 140)},
			{rect: image.Rect(120, 80, 220, 140)},
			{rect: image.Rect(240, 80, 340, 140)},
		},
	}
}

func TestRebuildFocusesFirst(t *testing.T) {
	tree := gridTree()
	f := NewFocusRegistry(tree)

	f.Rebuild(types.ModeMain, types.SectionHome)

	if f.FocusedIndex() != 0 {
		t.Errorf("rebuild should focus index 0, got %d", f.FocusedIndex())
	}
	if !tree.section[0].focused {
		t.Error("first node should be marked focused")
	}
	if tree.section[0].scrolled == 0 {
		t.Error("first node should be scrolled into view")
	}
}

func TestRebuildEmptySet(t *testing.T) {
	f := NewFocusRegistry(&fakeTree{})

	f.Rebuild(types.ModeMain, types.SectionHome)

	if f.FocusedIndex() != -1 {
		t.Errorf("empty set should focus -1, got %d", f.FocusedIndex())
	}
	if f.Focused() != nil {
		t.Error("Focused should be nil for an empty set")
	}

	// Every operation degrades silently on an empty set
	f.Move(types.DirDown)
	f.ActivateFocused()
	f.SetFocus(3)
	if f.FocusedIndex() != -1 {
		t.Error("operations on an empty set should not change focus")
	}
}

func TestRebuildUnmarksPreviousSet(t *testing.T) {
	tree := gridTree()
	f := NewFocusRegistry(tree)

	f.Rebuild(types.ModeMain, types.SectionHome)
	f.SetFocus(3)

	keyboard := &fakeNode{rect: image.Rect(0, 200, 40, 240)}
	tree.keyboard = []*fakeNode{keyboard}
	f.Rebuild(types.ModeKeyboard, types.SectionHome)

	if tree.section[3].focused {
		t.Error("node from the previous set should be unmarked")
	}
	if !keyboard.focused {
		t.Error("first node of the new set should be focused")
	}
	if tree.focusedCount() != 1 {
		t.Errorf("exactly one node should be focused, got %d", tree.focusedCount())
	}
}

func TestSetFocusSingleFocusInvariant(t *testing.T) {
	tree := gridTree()
	f := NewFocusRegistry(tree)
	f.Rebuild(types.ModeMain, types.SectionHome)

	for _, idx := range []int{3, 1, 5, 5, 0} {
		f.SetFocus(idx)
		if tree.focusedCount() != 1 {
			t.Fatalf("after SetFocus(%d): %d nodes focused, want 1", idx, tree.focusedCount())
		}
		if f.FocusedIndex() != idx {
			t.Fatalf("after SetFocus(%d): index %d", idx, f.FocusedIndex())
		}
	}

	// Out-of-range indexes are ignored
	f.SetFocus(99)
	f.SetFocus(-2)
	if f.FocusedIndex() != 0 {
		t.Errorf("out-of-range SetFocus should be ignored, got %d", f.FocusedIndex())
	}
}

func TestFocusFirstInActiveSectionSkipsChrome(t *testing.T) {
	tree := gridTree()
	tree.chrome = []*fakeNode{
		{rect: image.Rect(0, -60, 100, -20)},
		{rect: image.Rect(120, -60, 220, -20)},
	}
	f := NewFocusRegistry(tree)
	f.Rebuild(types.ModeMain, types.SectionHome)

	f.FocusFirstInActiveSection()

	if f.FocusedIndex() != 2 {
		t.Errorf("should focus first section element after %d chrome nodes, got %d",
			tree.ChromeCount(), f.FocusedIndex())
	}
	if !tree.section[0].focused {
		t.Error("first section node should be marked focused")
	}
}

func TestFocusFirstInActiveSectionChromeOnly(t *testing.T) {
	tree := &fakeTree{chrome: []*fakeNode{{rect: image.Rect(0, 0, 100, 40)}}}
	f := NewFocusRegistry(tree)
	f.Rebuild(types.ModeMain, types.SectionHome)

	f.FocusFirstInActiveSection()

	if f.FocusedIndex() != 0 {
		t.Errorf("empty section should fall back to index 0, got %d", f.FocusedIndex())
	}
}

func TestMoveResolvesBoundsAtCallTime(t *testing.T) {
	tree := gridTree()
	f := NewFocusRegistry(tree)
	f.Rebuild(types.ModeMain, types.SectionHome)

	// Layout shifts after the rebuild: tile 1 moves below tile 0.
	tree.section[1].rect = image.Rect(0, 80, 100, 140)
	tree.section[3].rect = image.Rect(500, 0, 600, 60)

	f.Move(types.DirDown)

	if f.FocusedIndex() != 1 {
		t.Errorf("move should use current bounds, got %d", f.FocusedIndex())
	}
}

func TestActivateFocused(t *testing.T) {
	tree := gridTree()
	f := NewFocusRegistry(tree)
	f.Rebuild(types.ModeMain, types.SectionHome)
	f.SetFocus(4)

	f.ActivateFocused()

	if tree.section[4].activated != 1 {
		t.Errorf("node 4 should be activated once, got %d", tree.section[4].activated)
	}
}

func TestGridNavigationEndToEnd(t *testing.T) {
	// Six tiles in a 3x2 grid. Four right presses walk to the end of the
	// top row and stick there; down lands on the tile directly below.
	tree := gridTree()
	f := NewFocusRegistry(tree)
	f.Rebuild(types.ModeMain, types.SectionHome)

	for i := 0; i < 4; i++ {
		f.Move(types.DirRight)
	}
	if f.FocusedIndex() != 2 {
		t.Fatalf("after four right presses focus should rest at 2, got %d", f.FocusedIndex())
	}

	f.Move(types.DirDown)
	if f.FocusedIndex() != 5 {
		t.Errorf("down from the top-right tile should land on 5, got %d", f.FocusedIndex())
	}
	if tree.focusedCount() != 1 {
		t.Errorf("exactly one node should be focused, got %d", tree.focusedCount())
	}
}
