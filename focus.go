package bigpicture

import (
	"image"

	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/types"
)

// FocusRegistry maintains the ordered set of currently navigable targets
// for the active UI mode and the current selection index. The set is
// rebuilt wholesale on mode or section changes, never patched, so stale
// references from a previous layout can never be focused. At most one
// element of the set is marked focused at any time; -1 means no focus
// (empty set).
type FocusRegistry struct {
	tree types.UITree

	mode         types.Mode
	set          []types.FocusableNode
	focusedIndex int
}

// NewFocusRegistry creates a registry over the given UI tree.
func NewFocusRegistry(tree types.UITree) *FocusRegistry {
	return &FocusRegistry{
		tree:         tree,
		mode:         types.ModeMain,
		focusedIndex: -1,
	}
}

// Rebuild replaces the focusable set with a fresh query for the given
// mode and section. The previously focused element is unmarked first;
// focus resets to index 0, or -1 when the new set is empty.
func (f *FocusRegistry) Rebuild(mode types.Mode, section types.SectionID) {
	f.unmarkFocused()

	f.mode = mode
	f.set = f.tree.QueryFocusable(mode, section)

	if len(f.set) == 0 {
		f.focusedIndex = -1
		return
	}
	f.focusedIndex = 0
	f.set[0].MarkFocused(true)
	f.set[0].ScrollIntoView()
}

// Mode returns the mode the current set was built for.
func (f *FocusRegistry) Mode() types.Mode {
	return f.mode
}

// Len returns the size of the current focusable set.
func (f *FocusRegistry) Len() int {
	return len(f.set)
}

// FocusedIndex returns the current selection index, -1 for no focus.
func (f *FocusRegistry) FocusedIndex() int {
	return f.focusedIndex
}

// Focused returns the currently focused node, nil for no focus.
func (f *FocusRegistry) Focused() types.FocusableNode {
	if f.focusedIndex < 0 || f.focusedIndex >= len(f.set) {
		return nil
	}
	return f.set[f.focusedIndex]
}

// FocusFirst focuses the very first element of the set.
func (f *FocusRegistry) FocusFirst() {
	f.SetFocus(0)
}

// FocusFirstInActiveSection focuses the first element strictly inside the
// active section, skipping the chrome elements at the head of a ModeMain
// set. Falls back to the first element when the section contributed none.
func (f *FocusRegistry) FocusFirstInActiveSection() {
	idx := 0
	if f.mode == types.ModeMain {
		idx = f.tree.ChromeCount()
		if idx >= len(f.set) {
			idx = 0
		}
	}
	f.SetFocus(idx)
}

// SetFocus validates the index, unmarks the previous target, marks the
// new one, and requests it be scrolled into view. Out-of-range indexes
// are ignored so the single-focus invariant always holds.
func (f *FocusRegistry) SetFocus(index int) {
	if index < 0 || index >= len(f.set) {
		return
	}
	if index == f.focusedIndex {
		// Re-marking is harmless but scroll-into-view is still wanted
		f.set[index].ScrollIntoView()
		return
	}
	f.unmarkFocused()
	f.focusedIndex = index
	f.set[index].MarkFocused(true)
	f.set[index].ScrollIntoView()
}

// Move applies a directional focus change using the spatial resolver.
// Bounds are resolved at call time because layout may have changed since
// the set was built. No-op on an empty set or when nothing is eligible.
func (f *FocusRegistry) Move(direction int) {
	if f.focusedIndex < 0 || len(f.set) == 0 {
		return
	}

	rects := make([]image.Rectangle, len(f.set))
	for i, node := range f.set {
		rects[i] = node.Bounds()
	}

	next := ResolveDirection(rects, f.focusedIndex, direction)
	if next != f.focusedIndex {
		f.SetFocus(next)
	}
}

// ActivateFocused triggers the focused target's activation action.
// No-op when nothing is focused.
func (f *FocusRegistry) ActivateFocused() {
	if node := f.Focused(); node != nil {
		node.Activate()
	}
}

// unmarkFocused clears the visual focus mark on the current target.
func (f *FocusRegistry) unmarkFocused() {
	if node := f.Focused(); node != nil {
		node.MarkFocused(false)
	}
}
