package bigpicture

import (
	"log"
	"strings"
	"sync"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/style"
)

// OSKMode identifies what the on-screen keyboard's buffer is being
// composed for. Each mode has its own submit handler.
type OSKMode int

const (
	// OSKModeSearch composes a URL or search query for navigation.
	OSKModeSearch OSKMode = iota
)

// String returns the string representation of the OSK mode
func (m OSKMode) String() string {
	switch m {
	case OSKModeSearch:
		return "Search"
	default:
		return "Unknown"
	}
}

// oskPage selects which character set the key grid shows.
type oskPage int

const (
	pageLower oskPage = iota
	pageUpper
	pageSymbols
)

// Character rows per page. The bottom action row (shift, space, paste,
// backspace, clear, done) is shared and built separately.
var (
	oskRowsLower = []string{
		"1234567890",
		"qwertyuiop",
		"asdfghjkl-",
		"zxcvbnm./_",
	}
	oskRowsUpper = []string{
		"1234567890",
		"QWERTYUIOP",
		"ASDFGHJKL-",
		"ZXCVBNM./_",
	}
	oskRowsSymbols = []string{
		"!@#$%^&*()",
		"~`=+[]{}\\|",
		";:'\"<>,?",
		"-_./",
	}
)

// OSK is the on-screen keyboard: a modal text composer driven entirely
// by the focus registry moving over its key grid. Exactly one instance
// exists; Open resets the buffer so stale text never leaks between
// compositions.
type OSK struct {
	visible bool
	mode    OSKMode
	buffer  string
	page    oskPage

	handlers map[OSKMode]func(text string)

	// onChanged is invoked after any visibility or page change so the
	// coordinator can rebuild the focus registry for the new key set.
	onChanged func(open bool)

	tree   *WidgetTree
	notify *Notification

	panel   *widget.Container
	display *widget.Text

	clipboardOnce sync.Once
	clipboardOK   bool
}

// NewOSK creates a hidden on-screen keyboard registering its keys into
// the given tree.
func NewOSK(tree *WidgetTree, notify *Notification) *OSK {
	return &OSK{
		handlers: make(map[OSKMode]func(string)),
		tree:     tree,
		notify:   notify,
	}
}

// RegisterHandler sets the submit handler for a mode. Submitting a mode
// with no handler still closes the keyboard; the text is dropped.
func (k *OSK) RegisterHandler(mode OSKMode, handler func(text string)) {
	k.handlers[mode] = handler
}

// SetChangedHandler sets the callback invoked after open, close, and
// page changes.
func (k *OSK) SetChangedHandler(fn func(open bool)) {
	k.onChanged = fn
}

// IsOpen reports whether the keyboard is visible and capturing input.
func (k *OSK) IsOpen() bool {
	return k.visible
}

// Mode returns the mode the keyboard was opened for.
func (k *OSK) Mode() OSKMode {
	return k.mode
}

// Buffer returns the current composed text.
func (k *OSK) Buffer() string {
	return k.buffer
}

// Open shows the keyboard for the given mode with an empty buffer on
// the lowercase page. Opening while already open restarts composition.
func (k *OSK) Open(mode OSKMode) {
	k.visible = true
	k.mode = mode
	k.buffer = ""
	k.page = pageLower
	k.rebuildPanel()
	if k.onChanged != nil {
		k.onChanged(true)
	}
}

// Close hides the keyboard without dispatching the buffer.
func (k *OSK) Close() {
	if !k.visible {
		return
	}
	k.visible = false
	k.tree.ClearKeyboard()
	if k.onChanged != nil {
		k.onChanged(false)
	}
}

// Submit dispatches the trimmed buffer to the mode's handler and closes.
// A buffer that trims to empty is a no-op: nothing is dispatched and the
// keyboard stays open.
func (k *OSK) Submit() {
	text := strings.TrimSpace(k.buffer)
	if text == "" {
		return
	}
	handler := k.handlers[k.mode]
	k.Close()
	if handler != nil {
		handler(text)
	} else {
		log.Printf("Warning: no submit handler for OSK mode %s", k.mode)
	}
}

// Append adds text to the buffer.
func (k *OSK) Append(text string) {
	if text == "" {
		return
	}
	k.buffer += text
	k.refreshDisplay()
	k.notify.PlayNavSound()
}

// Backspace removes the last character. Empty buffer is a silent no-op.
func (k *OSK) Backspace() {
	if k.buffer == "" {
		return
	}
	runes := []rune(k.buffer)
	k.buffer = string(runes[:len(runes)-1])
	k.refreshDisplay()
	k.notify.PlayNavSound()
}

// ClearBuffer empties the buffer in one step.
func (k *OSK) ClearBuffer() {
	k.buffer = ""
	k.refreshDisplay()
	k.notify.PlayNavSound()
}

// Paste appends the system clipboard's text to the buffer.
func (k *OSK) Paste() {
	k.clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			log.Printf("Warning: clipboard not available: %v", err)
			return
		}
		k.clipboardOK = true
	})
	if !k.clipboardOK {
		return
	}
	if text := clipboard.Read(clipboard.FmtText); len(text) > 0 {
		k.Append(string(text))
	}
}

// toggleShift flips between the lowercase and uppercase pages. From the
// symbol page it returns to lowercase.
func (k *OSK) toggleShift() {
	if k.page == pageLower {
		k.page = pageUpper
	} else {
		k.page = pageLower
	}
	k.rebuildPanel()
	if k.onChanged != nil {
		k.onChanged(true)
	}
}

// toggleSymbols flips between the symbol page and lowercase.
func (k *OSK) toggleSymbols() {
	if k.page == pageSymbols {
		k.page = pageLower
	} else {
		k.page = pageSymbols
	}
	k.rebuildPanel()
	if k.onChanged != nil {
		k.onChanged(true)
	}
}

// HandleKeyboard mirrors a physical keyboard into the buffer so desktop
// users are not forced through the key grid. Returns true while open so
// typed characters never leak into navigation.
func (k *OSK) HandleKeyboard() bool {
	if !k.visible {
		return false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		k.Submit()
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.Close()
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		k.Backspace()
		return true
	}

	chars := ebiten.AppendInputChars(nil)
	if len(chars) > 0 {
		k.Append(string(chars))
	}
	return true
}

// Panel returns the keyboard's root container for embedding in the UI,
// building it on first use.
func (k *OSK) Panel() *widget.Container {
	if k.panel == nil {
		k.rebuildPanel()
	}
	return k.panel
}

// rebuildPanel reconstructs the key grid for the current page, building
// a fresh container wholesale and re-registering every key with the
// tree's keyboard scope.
func (k *OSK) rebuildPanel() {
	k.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.OSKKeySpacing),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(style.OSKPanelPadding)),
		)),
	)
	k.tree.ClearKeyboard()

	k.display = widget.NewText(
		widget.TextOpts.Text(k.displayText(), style.FontFace(), style.Text),
	)
	k.panel.AddChild(k.display)

	var rows []string
	switch k.page {
	case pageUpper:
		rows = oskRowsUpper
	case pageSymbols:
		rows = oskRowsSymbols
	default:
		rows = oskRowsLower
	}

	for _, row := range rows {
		rowContainer := k.newKeyRow()
		for _, r := range row {
			ch := string(r)
			rowContainer.AddChild(k.newKey(ch, style.OSKKeyWidth, func() {
				k.Append(ch)
			}))
		}
		k.panel.AddChild(rowContainer)
	}

	actions := k.newKeyRow()
	actions.AddChild(k.newKey("Shift", style.OSKWideKeyWidth, k.toggleShift))
	actions.AddChild(k.newKey("#+=", style.OSKWideKeyWidth, k.toggleSymbols))
	actions.AddChild(k.newKey("Space", style.OSKWideKeyWidth, func() {
		k.Append(" ")
	}))
	actions.AddChild(k.newKey("Paste", style.OSKWideKeyWidth, k.Paste))
	actions.AddChild(k.newKey("Del", style.OSKWideKeyWidth, k.Backspace))
	actions.AddChild(k.newKey("Clear", style.OSKWideKeyWidth, k.ClearBuffer))
	actions.AddChild(k.newKey("Done", style.OSKWideKeyWidth, k.Submit))
	k.panel.AddChild(actions)
}

// newKeyRow creates a horizontal container for one row of keys.
func (k *OSK) newKeyRow() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Spacing(style.OSKKeySpacing),
		)),
	)
}

// newKey creates one key button and registers it as a focusable node.
func (k *OSK) newKey(label string, width int, press func()) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.Image(style.ButtonImage()),
		widget.ButtonOpts.Text(label, style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			press()
		}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, style.OSKKeyHeight),
		),
	)
	k.tree.RegisterKeyboardKey(NewWidgetNode(btn, nil))
	return btn
}

// displayText renders the buffer with a trailing cursor mark.
func (k *OSK) displayText() string {
	prefix := ""
	if k.mode == OSKModeSearch {
		prefix = "Search or URL: "
	}
	return prefix + k.buffer + "_"
}

// refreshDisplay updates the buffer text widget in place.
func (k *OSK) refreshDisplay() {
	if k.display != nil {
		k.display.Label = k.displayText()
	}
}
