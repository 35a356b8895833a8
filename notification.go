package bigpicture

import (
	"bytes"
	"image"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/The-Nebula-Project-ZMG/NebulaBrowser-sub001/style"
)

// Notification displays temporary messages on screen (cursor speed tier
// changes and similar transient notices), bottom-right.
type Notification struct {
	mu        sync.Mutex
	message   string
	startTime time.Time
	duration  time.Duration

	// Pre-allocated background image (avoid per-frame allocations)
	bg *ebiten.Image

	// Audio player for UI sounds (one-shot, replaced per play)
	soundPlayer *oto.Player

	// SoundEnabled gates navigation blips; set from config.
	SoundEnabled bool
}

// NewNotification creates a new notification system
func NewNotification() *Notification {
	return &Notification{SoundEnabled: true}
}

// PlaySound plays sound data through a one-shot oto player.
// Sound data should be 48kHz stereo S16LE format.
func (n *Notification) PlaySound(soundData []byte) {
	if len(soundData) == 0 || !n.SoundEnabled {
		return
	}

	ctx, err := ensureOtoContext()
	if err != nil {
		log.Printf("Warning: UI audio not available: %v", err)
		return
	}

	n.mu.Lock()
	if n.soundPlayer != nil {
		n.soundPlayer.Close()
	}
	n.soundPlayer = ctx.NewPlayer(bytes.NewReader(soundData))
	n.soundPlayer.Play()
	n.mu.Unlock()
}

// PlayNavSound plays the navigation blip.
func (n *Notification) PlayNavSound() {
	n.PlaySound(NavBlip())
}

// Close cleans up audio resources
func (n *Notification) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.soundPlayer != nil {
		n.soundPlayer.Close()
		n.soundPlayer = nil
	}
}

// Show displays a notification message
func (n *Notification) Show(message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays a notification with the default duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, style.NoticeDuration)
}

// IsVisible returns whether the notification is currently visible
func (n *Notification) IsVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.message == "" {
		return false
	}
	return time.Since(n.startTime) < n.duration
}

// Clear removes the current notification
func (n *Notification) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
}

// Draw renders the notification in the bottom-right corner
func (n *Notification) Draw(screen *ebiten.Image) {
	n.mu.Lock()
	if n.message == "" || time.Since(n.startTime) >= n.duration {
		n.mu.Unlock()
		return
	}
	message := n.message
	n.mu.Unlock()

	bounds := screen.Bounds()
	screenWidth := bounds.Dx()
	screenHeight := bounds.Dy()

	textWidth, textHeight := text.Measure(message, *style.FontFace(), 0)

	padding := style.OverlayPadding
	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2

	margin := style.OverlayMargin
	bgX := screenWidth - bgWidth - margin
	bgY := screenHeight - bgHeight - margin

	// Reuse or create background image
	if n.bg == nil || n.bg.Bounds().Dx() < bgWidth || n.bg.Bounds().Dy() < bgHeight {
		n.bg = ebiten.NewImage(bgWidth, bgHeight)
	}
	n.bg.Clear()
	overlayBg := style.OverlayBackground
	overlayBg.A = 153 // 60% opacity
	n.bg.Fill(overlayBg)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(n.bg.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, message, *style.FontFace(), textOpts)
}
