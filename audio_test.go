package bigpicture

import (
	"testing"
	"time"
)

func TestSynthBlipFormat(t *testing.T) {
	dur := 35 * time.Millisecond
	data := synthBlip(880, dur, 0.25)

	wantSamples := int(float64(audioSampleRate) * dur.Seconds())
	if len(data) != wantSamples*4 {
		t.Errorf("stereo S16LE buffer should be %d bytes, got %d", wantSamples*4, len(data))
	}

	// Both channels carry the same signal
	for i := 0; i < len(data); i += 4 {
		if data[i] != data[i+2] || data[i+1] != data[i+3] {
			t.Fatalf("channels diverge at frame %d", i/4)
		}
	}

	// Envelope decays: the last frame is near silence
	last := int16(data[len(data)-4]) | int16(data[len(data)-3])<<8
	if last > 200 || last < -200 {
		t.Errorf("final sample should be near zero, got %d", last)
	}
}

func TestNavBlipCached(t *testing.T) {
	a := NavBlip()
	b := NavBlip()

	if len(a) == 0 {
		t.Fatal("nav blip should not be empty")
	}
	if &a[0] != &b[0] {
		t.Error("nav blip should be generated once and cached")
	}
}
