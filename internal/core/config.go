package core

// HUDRows is the number of terminal rows reserved for the score line.
// They play the role of the status bar: the game viewport excludes them.
const HUDRows = 1

// RuntimeConfig contains host settings passed to a session at start.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Presentation refresh rate (frames per second)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// Viewport returns the game area: the screen minus the HUD rows.
func (c RuntimeConfig) Viewport() Viewport {
	return Viewport{W: c.ScreenW, H: max(0, c.ScreenH-HUDRows)}
}
