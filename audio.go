package bigpicture

import (
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const audioSampleRate = 48000

// oto context singleton shared by every UI sound
var (
	otoCtx      *oto.Context
	otoInitOnce sync.Once
	otoInitErr  error
)

// ensureOtoContext initializes the oto audio context on first use.
func ensureOtoContext() (*oto.Context, error) {
	otoInitOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   audioSampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		}
		var readyChan chan struct{}
		otoCtx, readyChan, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			return
		}
		<-readyChan
	})
	return otoCtx, otoInitErr
}

var (
	navBlipOnce sync.Once
	navBlipData []byte
)

// NavBlip returns a short synthesized click used for focus moves and OSK
// keys, as 48kHz stereo S16LE bytes. Generated once and cached.
func NavBlip() []byte {
	navBlipOnce.Do(func() {
		navBlipData = synthBlip(880, 35*time.Millisecond, 0.25)
	})
	return navBlipData
}

// synthBlip renders a sine burst with a linear decay envelope.
func synthBlip(freq float64, dur time.Duration, volume float64) []byte {
	samples := int(float64(audioSampleRate) * dur.Seconds())
	data := make([]byte, samples*4) // stereo, 2 bytes per channel

	for i := 0; i < samples; i++ {
		env := 1 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*freq*float64(i)/audioSampleRate) * env * volume
		s := int16(v * math.MaxInt16)

		data[i*4] = byte(s)
		data[i*4+1] = byte(s >> 8)
		data[i*4+2] = byte(s)
		data[i*4+3] = byte(s >> 8)
	}
	return data
}
