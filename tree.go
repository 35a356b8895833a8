package bigpicture

import (
	"image"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/types"
)

// WidgetNode adapts an ebitenui button into a types.FocusableNode.
// Bounds reads the widget rectangle at call time, so layout changes
// between navigations are always seen.
type WidgetNode struct {
	btn *widget.Button

	// scrollIntoView is invoked when the focus registry wants the button
	// visible; nil for buttons outside scroll containers.
	scrollIntoView func(*widget.Button)
}

// NewWidgetNode wraps a button. scrollIntoView may be nil.
func NewWidgetNode(btn *widget.Button, scrollIntoView func(*widget.Button)) *WidgetNode {
	return &WidgetNode{btn: btn, scrollIntoView: scrollIntoView}
}

// Button returns the underlying widget.
func (n *WidgetNode) Button() *widget.Button {
	return n.btn
}

// Bounds returns the widget's current on-screen rectangle.
func (n *WidgetNode) Bounds() image.Rectangle {
	return n.btn.GetWidget().Rect
}

// Activate clicks the button.
func (n *WidgetNode) Activate() {
	n.btn.Click()
}

// MarkFocused sets or clears the button's focused state.
func (n *WidgetNode) MarkFocused(focused bool) {
	n.btn.Focus(focused)
}

// ScrollIntoView requests the button be scrolled visible.
func (n *WidgetNode) ScrollIntoView() {
	if n.scrollIntoView != nil {
		n.scrollIntoView(n.btn)
	}
}

// WidgetTree is the registry the UI fills as it builds widgets and the
// focus registry queries on rebuilds. It implements types.UITree.
// Chrome nodes are always-visible elements (toolbar, section tabs);
// section nodes belong to one content section; keyboard nodes are the
// on-screen keyboard's keys.
type WidgetTree struct {
	chrome   []types.FocusableNode
	sections map[types.SectionID][]types.FocusableNode
	keyboard []types.FocusableNode
}

// NewWidgetTree creates an empty tree.
func NewWidgetTree() *WidgetTree {
	return &WidgetTree{
		sections: make(map[types.SectionID][]types.FocusableNode),
	}
}

// RegisterChrome appends an always-visible chrome element.
func (t *WidgetTree) RegisterChrome(node types.FocusableNode) {
	t.chrome = append(t.chrome, node)
}

// RegisterSection appends an element belonging to the given section.
func (t *WidgetTree) RegisterSection(section types.SectionID, node types.FocusableNode) {
	t.sections[section] = append(t.sections[section], node)
}

// RegisterKeyboardKey appends an on-screen keyboard key.
func (t *WidgetTree) RegisterKeyboardKey(node types.FocusableNode) {
	t.keyboard = append(t.keyboard, node)
}

// ClearKeyboard drops the keyboard's elements.
func (t *WidgetTree) ClearKeyboard() {
	t.keyboard = nil
}

// Clear drops everything.
func (t *WidgetTree) Clear() {
	t.chrome = nil
	t.sections = make(map[types.SectionID][]types.FocusableNode)
	t.keyboard = nil
}

// ChromeCount reports how many chrome elements head a ModeMain query.
func (t *WidgetTree) ChromeCount() int {
	return len(t.chrome)
}

// QueryFocusable returns a fresh ordered slice for the scope: only the
// keyboard's keys in ModeKeyboard, chrome followed by the active
// section's elements in ModeMain.
func (t *WidgetTree) QueryFocusable(mode types.Mode, section types.SectionID) []types.FocusableNode {
	if mode == types.ModeKeyboard {
		out := make([]types.FocusableNode, len(t.keyboard))
		copy(out, t.keyboard)
		return out
	}

	out := make([]types.FocusableNode, 0, len(t.chrome)+len(t.sections[section]))
	out = append(out, t.chrome...)
	out = append(out, t.sections[section]...)
	return out
}
