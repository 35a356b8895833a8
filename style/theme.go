package style

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme colors (package-level variables updated by ApplyTheme)
var (
	Background        = color.NRGBA{0x1a, 0x1a, 0x2e, 0xff} // Dark blue-gray
	Surface           = color.NRGBA{0x25, 0x25, 0x3a, 0xff} // Slightly lighter
	Primary           = color.NRGBA{0x4a, 0x4a, 0x8a, 0xff} // Muted purple
	PrimaryHover      = color.NRGBA{0x5a, 0x5a, 0x9a, 0xff}
	Text              = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	TextSecondary     = color.NRGBA{0xaa, 0xaa, 0xaa, 0xff}
	Accent            = color.NRGBA{0xff, 0xd7, 0x00, 0xff} // Gold focus ring
	Border            = color.NRGBA{0x3a, 0x3a, 0x5a, 0xff}
	DimOverlay        = color.NRGBA{0x00, 0x00, 0x00, 0xff} // Base color for screen-dimming overlays (alpha applied per use)
	OverlayBackground = color.NRGBA{0x1a, 0x1a, 0x2e, 0xff} // Base color for floating element backgrounds (alpha applied per use)
	CursorFill        = color.NRGBA{0xff, 0xff, 0xff, 0xe0} // Virtual pointer body
	CursorOutline     = color.NRGBA{0x00, 0x00, 0x00, 0xff} // Virtual pointer outline
)

// Theme holds all color values for a UI theme
type Theme struct {
	Name              string
	Background        color.NRGBA
	Surface           color.NRGBA
	Primary           color.NRGBA
	PrimaryHover      color.NRGBA
	Text              color.NRGBA
	TextSecondary     color.NRGBA
	Accent            color.NRGBA
	Border            color.NRGBA
	DimOverlay        color.NRGBA
	OverlayBackground color.NRGBA
}

// Predefined themes
var (
	ThemeDefault = Theme{
		Name:              "Default",
		Background:        color.NRGBA{0x1a, 0x1a, 0x2e, 0xff},
		Surface:           color.NRGBA{0x25, 0x25, 0x3a, 0xff},
		Primary:           color.NRGBA{0x4a, 0x4a, 0x8a, 0xff},
		PrimaryHover:      color.NRGBA{0x5a, 0x5a, 0x9a, 0xff},
		Text:              color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary:     color.NRGBA{0xaa, 0xaa, 0xaa, 0xff},
		Accent:            color.NRGBA{0xff, 0xd7, 0x00, 0xff},
		Border:            color.NRGBA{0x3a, 0x3a, 0x5a, 0xff},
		DimOverlay:        color.NRGBA{0x00, 0x00, 0x00, 0xff},
		OverlayBackground: color.NRGBA{0x1a, 0x1a, 0x2e, 0xff},
	}

	ThemeDark = Theme{
		Name:              "Dark",
		Background:        color.NRGBA{0x0a, 0x0a, 0x0a, 0xff},
		Surface:           color.NRGBA{0x1a, 0x1a, 0x1a, 0xff},
		Primary:           color.NRGBA{0x1e, 0x40, 0x7a, 0xff},
		PrimaryHover:      color.NRGBA{0x2a, 0x50, 0x8a, 0xff},
		Text:              color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary:     color.NRGBA{0x88, 0x88, 0x88, 0xff},
		Accent:            color.NRGBA{0x00, 0xc8, 0x53, 0xff},
		Border:            color.NRGBA{0x2a, 0x2a, 0x2a, 0xff},
		DimOverlay:        color.NRGBA{0x00, 0x00, 0x00, 0xff},
		OverlayBackground: color.NRGBA{0x0a, 0x0a, 0x0a, 0xff},
	}

	ThemeLight = Theme{
		Name:              "Light",
		Background:        color.NRGBA{0xe8, 0xe8, 0xe8, 0xff},
		Surface:           color.NRGBA{0xf5, 0xf5, 0xf5, 0xff},
		Primary:           color.NRGBA{0x1a, 0x56, 0xdb, 0xff},
		PrimaryHover:      color.NRGBA{0x2a, 0x66, 0xeb, 0xff},
		Text:              color.NRGBA{0x1a, 0x1a, 0x1a, 0xff},
		TextSecondary:     color.NRGBA{0x66, 0x66, 0x66, 0xff},
		Accent:            color.NRGBA{0xe6, 0x5c, 0x00, 0xff},
		Border:            color.NRGBA{0xcc, 0xcc, 0xcc, 0xff},
		DimOverlay:        color.NRGBA{0x00, 0x00, 0x00, 0xff},
		OverlayBackground: color.NRGBA{0xe8, 0xe8, 0xe8, 0xff},
	}
)

// CurrentThemeName is the name of the applied theme
var CurrentThemeName = ThemeDefault.Name

// allThemes in display order
var allThemes = []Theme{ThemeDefault, ThemeDark, ThemeLight}

// ThemeNames returns the names of all predefined themes
func ThemeNames() []string {
	names := make([]string, len(allThemes))
	for i, t := range allThemes {
		names[i] = t.Name
	}
	return names
}

// GetThemeByName returns the theme with the given name, falling back to Default
func GetThemeByName(name string) Theme {
	for _, t := range allThemes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// ApplyTheme updates package-level color variables from a theme
func ApplyTheme(theme Theme) {
	Background = theme.Background
	Surface = theme.Surface
	Primary = theme.Primary
	PrimaryHover = theme.PrimaryHover
	Text = theme.Text
	TextSecondary = theme.TextSecondary
	Accent = theme.Accent
	Border = theme.Border
	DimOverlay = theme.DimOverlay
	OverlayBackground = theme.OverlayBackground
	CurrentThemeName = theme.Name
}

// ApplyThemeByName applies theme by name with fallback to Default
func ApplyThemeByName(name string) {
	ApplyTheme(GetThemeByName(name))
}

// currentFontSize is the current font size in points (default 14)
var currentFontSize float64 = 14

// dpiScale is the device pixel ratio (1.0 on non-retina, 2.0 on retina)
var dpiScale float64 = 1.0

// DPIScale returns the current device scale factor.
func DPIScale() float64 {
	return dpiScale
}

// Px converts a logical pixel value to physical pixels using the current DPI scale.
func Px(logical int) int {
	return int(float64(logical) * dpiScale)
}

// SetDPIScale sets the DPI scale factor and recalculates all spatial vars.
func SetDPIScale(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	dpiScale = scale

	DefaultPadding = Px(baseDefaultPadding)
	DefaultSpacing = Px(baseDefaultSpacing)
	SmallSpacing = Px(baseSmallSpacing)
	ButtonPaddingSmall = Px(baseButtonPaddingSmall)
	OverlayPadding = Px(baseOverlayPadding)
	OverlayMargin = Px(baseOverlayMargin)
	OSKKeyWidth = Px(baseOSKKeyWidth)
	OSKKeyHeight = Px(baseOSKKeyHeight)
	OSKWideKeyWidth = Px(baseOSKWideKeyWidth)
	OSKKeySpacing = Px(baseOSKKeySpacing)
	OSKPanelPadding = Px(baseOSKPanelPadding)
	CursorSize = Px(baseCursorSize)
	CursorMargin = Px(baseCursorMargin)

	// Font faces incorporate DPI scale as well
	ApplyFontSize(int(currentFontSize))
}

// sharedFontSource is the cached TrueType font source shared by all font faces
var sharedFontSource *text.GoTextFaceSource

// fontFace is the cached font face
var fontFace text.Face

// loadFontSource loads the shared GoTextFaceSource from goregular.TTF (once)
func loadFontSource() *text.GoTextFaceSource {
	if sharedFontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Failed to load font source: %v", err)
			return nil
		}
		sharedFontSource = source
	}
	return sharedFontSource
}

// FontFace returns the font face to use for UI text
func FontFace() *text.Face {
	if fontFace == nil {
		source := loadFontSource()
		if source == nil {
			return &fontFace
		}
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   currentFontSize,
		}
	}
	return &fontFace
}

// ApplyFontSize sets the font size and rebuilds the cached face.
// The face is replaced in-place rather than nil-ed: existing widgets hold
// &fontFace, so nil-ing it would crash them before the next UI rebuild.
func ApplyFontSize(size int) {
	s := float64(size)
	currentFontSize = s

	source := loadFontSource()
	if source != nil {
		fontFace = &text.GoTextFace{
			Source: source,
			Size:   s * dpiScale,
		}
	}
}

// ButtonImage creates a standard button image set
func ButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Surface),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Primary),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// PrimaryButtonImage creates a prominent button image set
func PrimaryButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(Primary),
		Hover:    image.NewNineSliceColor(PrimaryHover),
		Pressed:  image.NewNineSliceColor(Surface),
		Disabled: image.NewNineSliceColor(Border),
	}
}

// ButtonTextColor returns the standard button text colors
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextSecondary,
	}
}
