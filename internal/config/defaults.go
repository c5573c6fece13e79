package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the terminal profile, mirroring the embedded YAML.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Loop: LoopConfig{
			TickIntervalMS: 1,
			MaxElapsedMS:   250,
		},
		Player: PlayerConfig{
			Width:        5,
			Height:       2,
			Speed:        0.06,
			BottomMargin: 0,
		},
		Enemies: EnemyConfig{
			Width:      3,
			Height:     2,
			MaxVX:      0.012,
			MaxVY:      0.004,
			SpawnOneIn: 600,
		},
		Shots: ShotConfig{
			Width:      1,
			Height:     1,
			Speed:      0.03,
			CooldownMS: 400,
		},
		Rules: RulesConfig{
			WinScore:        50,
			StartCooldownMS: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnBoost:      0.5,
			},
		},
	}
}

// ReferenceInvadersConfig returns the touch-screen tuning in device pixels for
// a display about 1005 pixels wide. Difficulty progression is off so the
// spawn odds and enemy speeds stay at their reference values.
func ReferenceInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Loop: LoopConfig{
			TickIntervalMS: 1,
			MaxElapsedMS:   250,
		},
		Player: PlayerConfig{
			Width:        100,
			Height:       100,
			Speed:        0.7,
			BottomMargin: 10,
		},
		Enemies: EnemyConfig{
			Width:      75,
			Height:     75,
			MaxVX:      0.25,
			MaxVY:      0.5,
			SpawnOneIn: 600,
		},
		Shots: ShotConfig{
			Width:      10,
			Height:     40,
			Speed:      0.5,
			CooldownMS: 400,
		},
		Rules: RulesConfig{
			WinScore:        50,
			StartCooldownMS: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type: "none",
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
