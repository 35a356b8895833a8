package storage

// Config represents the input-layer configuration stored in input.json
type Config struct {
	Version     int          `json:"version"`
	Theme       string       `json:"theme"`       // Theme name: "Default", "Dark", "Light"
	FontSize    int          `json:"fontSize"`    // 10-32, default 14
	HomeSection string       `json:"homeSection"` // Section shown at startup and on back-to-home
	SearchURL   string       `json:"searchURL"`   // Search engine template containing %s
	Input       InputConfig  `json:"input"`
	Cursor      CursorConfig `json:"cursor"`
	Sound       SoundConfig  `json:"sound"`
}

// InputConfig contains deadzone and repeat tuning. Zero values mean
// "use the built-in default" so a hand-edited partial file stays valid.
type InputConfig struct {
	StickDeadzone      float64 `json:"stickDeadzone,omitempty"`      // left stick, default 0.3
	TriggerDeadzone    float64 `json:"triggerDeadzone,omitempty"`    // LT/RT, default 0.1
	RightStickDeadzone float64 `json:"rightStickDeadzone,omitempty"` // pointer stick, default 0.15
	RepeatDelayMs      int     `json:"repeatDelayMs,omitempty"`      // delay before held-direction repeat, default 400
	RepeatIntervalMs   int     `json:"repeatIntervalMs,omitempty"`   // initial repeat interval, default 200
}

// CursorConfig contains virtual pointer tuning
type CursorConfig struct {
	SpeedSlow   int `json:"speedSlow,omitempty"`   // px/tick, default 8
	SpeedNormal int `json:"speedNormal,omitempty"` // px/tick, default 15
	SpeedFast   int `json:"speedFast,omitempty"`   // px/tick, default 25
	Margin      int `json:"margin,omitempty"`      // clamp margin in px, default 4
}

// SoundConfig contains UI sound settings
type SoundConfig struct {
	NavigationSounds bool `json:"navigationSounds"` // play blips on focus moves and OSK keys
}
