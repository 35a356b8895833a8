package bigpicture

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/storage"
	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/style"
	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/types"
)

// sectionOrder is the left-to-right tab order for shoulder-button cycling.
var sectionOrder = []types.SectionID{
	types.SectionHome,
	types.SectionBrowse,
	types.SectionBookmarks,
	types.SectionHistory,
	types.SectionSettings,
}

// sectionTitle maps section IDs to their tab labels.
var sectionTitle = map[types.SectionID]string{
	types.SectionHome:      "Home",
	types.SectionBrowse:    "Browse",
	types.SectionBookmarks: "Bookmarks",
	types.SectionHistory:   "History",
	types.SectionSettings:  "Settings",
}

// App is the controller-first overlay coordinator. It owns the mode and
// section state, samples the controller once per frame, and routes the
// resulting events to exactly one consumer: the on-screen keyboard when
// open, otherwise the focus registry plus (in the browse section) the
// virtual pointer. It implements ebiten.Game.
type App struct {
	ui *ebitenui.UI

	config *storage.Config
	host   types.Host

	// surface is the embedded content view, owned by the host. May be
	// nil when the host runs without embedded content.
	surface types.ContentSurface

	tree    *WidgetTree
	focus   *FocusRegistry
	sampler *Sampler
	osk     *OSK
	cursor  *CursorEmulator
	notify  *Notification

	currentSection types.SectionID

	// backPolicy is tried in order; the first step that reports handled
	// consumes the back press.
	backPolicy []func() bool

	// Window tracking for responsive rebuilds
	windowWidth    int
	windowHeight   int
	lastBuildWidth int

	// Rebuild pending flag (set from callbacks, processed on main thread)
	rebuildPending bool

	// HiDPI: current device scale factor tracked across Layout calls
	currentDPIScale float64

	configLoadFailed bool // True if input.json failed to load (don't overwrite on exit)
}

// Run is the public entry point. It initializes storage, configures the
// window, creates the coordinator, and starts the Ebiten game loop. The
// host owns the content surface; pass nil to run chrome-only.
func Run(host types.Host, surface types.ContentSurface) error {
	storage.Init("nebula-browser")

	ebiten.SetWindowTitle("Nebula Browser")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(900, 650, -1, -1)

	app, err := NewApp(host, surface)
	if err != nil {
		return err
	}

	if err := ebiten.RunGame(app); err != nil {
		return err
	}

	app.SaveAndClose()
	return nil
}

// NewApp creates and initializes the coordinator.
func NewApp(host types.Host, surface types.ContentSurface) (*App, error) {
	if host == nil {
		return nil, fmt.Errorf("host is required")
	}

	a := &App{
		host:    host,
		surface: surface,
		tree:    NewWidgetTree(),
		notify:  NewNotification(),
	}

	config, err := storage.LoadConfig()
	if err != nil {
		log.Printf("Warning: failed to load config, using defaults: %v", err)
		config = storage.DefaultConfig()
		a.configLoadFailed = true
	}
	storage.ApplyMissingDefaults(config)
	if problems := storage.ValidateConfig(config, style.ThemeNames(), sectionIDs()); len(problems) > 0 {
		for _, p := range problems {
			log.Printf("Warning: config: %s", p)
		}
		storage.CorrectConfig(config, style.ThemeNames(), sectionIDs())
	}
	a.config = config

	style.ApplyThemeByName(config.Theme)
	style.ApplyFontSize(config.FontSize)

	a.notify.SoundEnabled = config.Sound.NavigationSounds
	a.currentSection = types.SectionID(config.HomeSection)

	a.focus = NewFocusRegistry(a.tree)

	gamepad := NewGamepadSource()
	gamepad.SetTriggerDeadzone(config.Input.TriggerDeadzone)
	a.sampler = NewSampler(gamepad)
	a.sampler.SetDeadzones(config.Input.StickDeadzone, config.Input.RightStickDeadzone)
	a.sampler.SetRepeat(
		storage.MillisOrDefault(config.Input.RepeatDelayMs, style.NavInitialDelay),
		storage.MillisOrDefault(config.Input.RepeatIntervalMs, style.NavStartInterval),
		style.NavMinInterval,
		style.NavAcceleration,
	)

	a.cursor = NewCursorEmulator(surface, a.notify)
	a.cursor.SetSpeeds(
		config.Cursor.SpeedSlow,
		config.Cursor.SpeedNormal,
		config.Cursor.SpeedFast,
		config.Cursor.Margin,
	)

	a.osk = NewOSK(a.tree, a.notify)
	a.osk.RegisterHandler(OSKModeSearch, a.Navigate)
	a.osk.SetChangedHandler(a.onOSKChanged)

	// Back steps in precedence order. Exactly one fires per press.
	a.backPolicy = []func() bool{
		a.backCloseKeyboard,
		a.backSurfaceHistory,
		a.backToHome,
	}

	a.buildUI()
	a.focus.Rebuild(types.ModeMain, a.currentSection)
	a.focus.FocusFirstInActiveSection()
	a.syncSurface()

	return a, nil
}

// sectionIDs returns the known section IDs as strings for config
// validation.
func sectionIDs() []string {
	out := make([]string, len(sectionOrder))
	for i, s := range sectionOrder {
		out[i] = string(s)
	}
	return out
}

// Section returns the active content section.
func (a *App) Section() types.SectionID {
	return a.currentSection
}

// Update implements ebiten.Game. It runs the per-frame pipeline: physical
// keyboard mirroring for the OSK, widget updates, then one controller
// sample dispatched to the active consumer.
func (a *App) Update() error {
	if a.rebuildPending {
		a.rebuildPending = false
		a.rebuild()
	}

	a.osk.HandleKeyboard()
	a.ui.Update()

	if a.windowWidth > 0 && a.windowWidth != a.lastBuildWidth {
		a.rebuild()
	}

	snap, events := a.sampler.Sample()
	a.dispatch(snap, events)
	return nil
}

// dispatch routes one tick's events. The keyboard, when open, captures
// everything except back; otherwise events drive focus navigation and,
// in the browse section, the virtual pointer.
func (a *App) dispatch(snap Snapshot, events Events) {
	if events.Press(EdgeB) {
		a.Back()
		return
	}
	if events.Press(EdgeStart) {
		a.Exit()
		return
	}

	if a.osk.IsOpen() {
		a.dispatchKeyboard(events)
		return
	}

	if events.Press(EdgeY) {
		a.osk.Open(OSKModeSearch)
		return
	}
	if events.Press(EdgeLB) {
		a.cycleSection(-1)
		return
	}
	if events.Press(EdgeRB) {
		a.cycleSection(1)
		return
	}

	if a.cursor.IsEnabled() {
		a.cursor.Move(snap.RightStickX, snap.RightStickY)
		if events.Press(EdgeRT) {
			a.cursor.Click(false)
		}
		if events.Press(EdgeLT) {
			a.cursor.Click(true)
		}
		if events.Press(EdgeRSClick) {
			a.cursor.CycleSpeed()
		}
		if events.Press(EdgeLSClick) {
			a.cursor.Scroll(scrollStep)
		}
	}

	if events.Direction != types.DirNone {
		a.moveFocus(events.Direction)
	}
	if events.Press(EdgeA) {
		a.focus.ActivateFocused()
	}
}

// scrollStep is the pixel distance of one scroll press in the surface.
const scrollStep = 120

// dispatchKeyboard routes events while the OSK is open.
func (a *App) dispatchKeyboard(events Events) {
	if events.Direction != types.DirNone {
		a.moveFocus(events.Direction)
	}
	if events.Press(EdgeA) {
		a.focus.ActivateFocused()
	}
	if events.Press(EdgeX) {
		a.osk.Backspace()
	}
	if events.Press(EdgeY) {
		a.osk.Submit()
	}
}

// moveFocus moves focus in a direction and plays the navigation blip
// when focus actually changed.
func (a *App) moveFocus(direction int) {
	before := a.focus.FocusedIndex()
	a.focus.Move(direction)
	if a.focus.FocusedIndex() != before {
		a.notify.PlayNavSound()
	}
}

// cycleSection switches to the previous or next section tab.
func (a *App) cycleSection(delta int) {
	for i, s := range sectionOrder {
		if s == a.currentSection {
			next := (i + delta + len(sectionOrder)) % len(sectionOrder)
			a.SwitchSection(sectionOrder[next])
			return
		}
	}
	a.SwitchSection(sectionOrder[0])
}

// Back applies the first applicable back step: close the keyboard, then
// surface history, then return to the home section.
func (a *App) Back() {
	for _, step := range a.backPolicy {
		if step() {
			return
		}
	}
}

func (a *App) backCloseKeyboard() bool {
	if !a.osk.IsOpen() {
		return false
	}
	a.osk.Close()
	return true
}

func (a *App) backSurfaceHistory() bool {
	if a.currentSection != types.SectionBrowse || a.surface == nil || !a.surface.CanGoBack() {
		return false
	}
	a.surface.GoBack()
	return true
}

func (a *App) backToHome() bool {
	home := types.SectionID(a.config.HomeSection)
	if a.currentSection == home {
		return false
	}
	// Returning home discards the surface and its history, even when the
	// surface was merely hidden behind another section.
	if a.surface != nil {
		a.surface.Hide()
		a.surface.Destroy()
	}
	a.SwitchSection(home)
	return true
}

// SwitchSection makes the given section active: surface visibility and
// pointer state follow the section, the UI is rebuilt, and focus lands
// on the section's first element.
func (a *App) SwitchSection(section types.SectionID) {
	if section == a.currentSection {
		return
	}
	a.currentSection = section
	a.syncSurface()
	a.rebuild()
	a.focus.FocusFirstInActiveSection()
}

// syncSurface shows the surface only in the browse section and enables
// the virtual pointer exactly when the surface is visible.
func (a *App) syncSurface() {
	if a.surface == nil {
		a.cursor.Disable()
		return
	}
	if a.currentSection == types.SectionBrowse {
		a.surface.Show()
		a.cursor.Enable()
	} else {
		if a.surface.IsShown() {
			a.surface.Hide()
		}
		a.cursor.Disable()
	}
}

// Navigate resolves the user's text to a destination and hands it to the
// host, then brings the browse section forward.
func (a *App) Navigate(input string) {
	target := ResolveNavigation(input, a.config.SearchURL)
	log.Printf("Navigate: %q -> %s", input, target)
	a.host.Navigate(target)
	if a.surface != nil {
		a.surface.Navigate(target)
	}
	a.SwitchSection(types.SectionBrowse)
}

// ResolveNavigation classifies text as a URL or a search query. URLs
// keep their scheme or get https; anything else is substituted into the
// search engine template.
func ResolveNavigation(input, searchURL string) string {
	input = strings.TrimSpace(input)
	if looksLikeURL(input) {
		if !strings.Contains(input, "://") {
			return "https://" + input
		}
		return input
	}
	return strings.Replace(searchURL, "%s", url.QueryEscape(input), 1)
}

// looksLikeURL reports whether text should be treated as a direct
// address rather than a search query.
func looksLikeURL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t") {
		return false
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return true
	}
	if strings.Contains(s, "://") {
		// Unknown scheme, let the surface reject it
		return true
	}
	host := s
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if h, _, ok := strings.Cut(host, ":"); ok {
		host = h
	}
	return host == "localhost" || strings.Contains(host, ".")
}

// Exit saves state and asks the host to quit.
func (a *App) Exit() {
	a.SaveAndClose()
	a.host.Exit()
}

// SaveAndClose persists config and releases audio resources.
func (a *App) SaveAndClose() {
	if !a.configLoadFailed {
		if err := storage.SaveConfig(a.config); err != nil {
			log.Printf("Warning: failed to save config: %v", err)
		}
	}
	a.notify.Close()
}

// onOSKChanged rebuilds focus when the keyboard opens, closes, or swaps
// pages. Closing restores main-mode focus to the active section's first
// element.
func (a *App) onOSKChanged(open bool) {
	a.rebuild()
	if open {
		a.focus.FocusFirst()
	} else {
		a.focus.FocusFirstInActiveSection()
	}
}

// rebuild reconstructs the widget tree for the current section and mode,
// preserving the focused index where the registry can.
func (a *App) rebuild() {
	a.buildUI()
	if a.osk.IsOpen() {
		a.focus.Rebuild(types.ModeKeyboard, a.currentSection)
	} else {
		a.focus.Rebuild(types.ModeMain, a.currentSection)
	}
	a.lastBuildWidth = a.windowWidth
}

// buildUI constructs the root container: a chrome tab bar, the active
// section's content, and the OSK panel when open.
func (a *App) buildUI() {
	a.tree.Clear()

	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(style.DefaultSpacing)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
	root.AddChild(content)

	content.AddChild(a.buildChromeBar())
	content.AddChild(a.buildSection())

	if a.osk.IsOpen() {
		dimColor := style.DimOverlay
		dimColor.A = 0xa0
		dim := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(dimColor)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					StretchHorizontal: true,
					StretchVertical:   true,
				}),
			),
		)
		root.AddChild(dim)

		a.osk.rebuildPanel()
		panel := a.osk.Panel()
		panel.GetWidget().LayoutData = widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		}
		root.AddChild(panel)
	}

	a.ui = &ebitenui.UI{Container: root}
}

// buildChromeBar builds the always-visible tab row plus the search
// button, registering each as a chrome node.
func (a *App) buildChromeBar() *widget.Container {
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(style.SmallSpacing)),
		)),
	)

	for _, section := range sectionOrder {
		section := section
		btn := style.TextButton(sectionTitle[section], style.ButtonPaddingSmall,
			func(args *widget.ButtonClickedEventArgs) {
				a.SwitchSection(section)
			})
		a.tree.RegisterChrome(NewWidgetNode(btn, nil))
		bar.AddChild(btn)
	}

	search := style.PrimaryTextButton("Search", style.ButtonPaddingSmall,
		func(args *widget.ButtonClickedEventArgs) {
			a.osk.Open(OSKModeSearch)
		})
	a.tree.RegisterChrome(NewWidgetNode(search, nil))
	bar.AddChild(search)

	return bar
}

// buildSection builds the active section's content.
func (a *App) buildSection() *widget.Container {
	switch a.currentSection {
	case types.SectionBrowse:
		return a.buildBrowseSection()
	case types.SectionSettings:
		return a.buildSettingsSection()
	case types.SectionHome:
		return a.buildHomeSection()
	default:
		return a.buildPlaceholderSection()
	}
}

// buildHomeSection builds the landing tiles.
func (a *App) buildHomeSection() *widget.Container {
	c := a.newSectionContainer()

	tiles := []struct {
		label string
		press func()
	}{
		{"Search the web", func() { a.osk.Open(OSKModeSearch) }},
		{"Continue browsing", func() { a.SwitchSection(types.SectionBrowse) }},
		{"Bookmarks", func() { a.SwitchSection(types.SectionBookmarks) }},
		{"History", func() { a.SwitchSection(types.SectionHistory) }},
		{"Settings", func() { a.SwitchSection(types.SectionSettings) }},
	}
	for _, tile := range tiles {
		press := tile.press
		btn := style.TextButton(tile.label, style.DefaultSpacing,
			func(args *widget.ButtonClickedEventArgs) { press() })
		a.tree.RegisterSection(types.SectionHome, NewWidgetNode(btn, nil))
		c.AddChild(btn)
	}
	return c
}

// buildBrowseSection builds the browse chrome. The surface itself is
// composited by the host underneath; this container only hosts the
// empty-state tile shown before any navigation.
func (a *App) buildBrowseSection() *widget.Container {
	c := a.newSectionContainer()

	if a.surface == nil || !a.surface.IsShown() {
		btn := style.PrimaryTextButton("Enter a URL or search", style.DefaultSpacing,
			func(args *widget.ButtonClickedEventArgs) {
				a.osk.Open(OSKModeSearch)
			})
		a.tree.RegisterSection(types.SectionBrowse, NewWidgetNode(btn, nil))
		c.AddChild(btn)
	}
	return c
}

// buildSettingsSection builds the settings toggles.
func (a *App) buildSettingsSection() *widget.Container {
	c := a.newSectionContainer()

	theme := style.TextButton("Theme: "+a.config.Theme, style.ButtonPaddingSmall,
		func(args *widget.ButtonClickedEventArgs) {
			a.cycleTheme()
		})
	a.tree.RegisterSection(types.SectionSettings, NewWidgetNode(theme, nil))
	c.AddChild(theme)

	sound := style.ToggleButton("Navigation sounds", a.config.Sound.NavigationSounds,
		func(args *widget.ButtonClickedEventArgs) {
			a.config.Sound.NavigationSounds = !a.config.Sound.NavigationSounds
			a.notify.SoundEnabled = a.config.Sound.NavigationSounds
			a.rebuildPending = true
		})
	a.tree.RegisterSection(types.SectionSettings, NewWidgetNode(sound, nil))
	c.AddChild(sound)

	return c
}

// buildPlaceholderSection covers sections whose data lives hostside.
func (a *App) buildPlaceholderSection() *widget.Container {
	c := a.newSectionContainer()
	c.AddChild(widget.NewText(
		widget.TextOpts.Text("Nothing here yet", style.FontFace(), style.TextSecondary),
	))
	return c
}

func (a *App) newSectionContainer() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(style.DefaultPadding)),
		)),
	)
}

// cycleTheme advances to the next theme and applies it.
func (a *App) cycleTheme() {
	names := style.ThemeNames()
	for i, name := range names {
		if name == a.config.Theme {
			a.config.Theme = names[(i+1)%len(names)]
			break
		}
	}
	style.ApplyThemeByName(a.config.Theme)
	a.rebuildPending = true
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.ui.Draw(screen)
	a.cursor.Draw(screen)
	a.notify.Draw(screen)
}

// Layout implements ebiten.Game, rendering at physical pixel resolution
// and tracking the device scale factor for HiDPI displays.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	if s != a.currentDPIScale {
		a.currentDPIScale = s
		style.SetDPIScale(s)
		a.rebuildPending = true
	}

	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	a.windowWidth = w
	a.windowHeight = h
	a.cursor.SetViewport(w, h)
	return w, h
}
