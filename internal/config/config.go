// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders engine.
package config

import (
	"errors"
	"fmt"
	"time"
)

// InvadersConfig contains all tunables for a game.
// Distances are in viewport units, speeds in units per millisecond and
// durations in milliseconds.
type InvadersConfig struct {
	Loop       LoopConfig       `yaml:"loop"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Shots      ShotConfig       `yaml:"shots"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LoopConfig defines the tick cadence.
type LoopConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"` // Minimum spacing between ticks
	MaxElapsedMS   int `yaml:"max_elapsed_ms"`   // Clamp for a single tick's elapsed time
}

// PlayerConfig defines the player's ship.
type PlayerConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Horizontal speed while steering
	BottomMargin int     `yaml:"bottom_margin"` // Gap between ship and viewport bottom
}

// EnemyConfig defines enemy ships and how they appear.
type EnemyConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	MaxVX      float64 `yaml:"max_vx"`       // vx is drawn from [-max_vx, max_vx)
	MaxVY      float64 `yaml:"max_vy"`       // vy is drawn from [0, max_vy)
	SpawnOneIn int     `yaml:"spawn_one_in"` // Spawn chance per tick is 1/spawn_one_in
}

// ShotConfig defines projectiles fired by the player.
type ShotConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Speed      float64 `yaml:"speed"`       // Upward speed
	CooldownMS int     `yaml:"cooldown_ms"` // Minimum spacing between accepted shots
}

// RulesConfig defines win conditions and input debouncing.
type RulesConfig struct {
	WinScore        int `yaml:"win_score"`         // The game is won once kills exceed this
	StartCooldownMS int `yaml:"start_cooldown_ms"` // Debounce for start/restart touches
}

// TickInterval returns the loop spacing as a duration.
func (c InvadersConfig) TickInterval() time.Duration {
	return time.Duration(c.Loop.TickIntervalMS) * time.Millisecond
}

// MaxElapsed returns the per-tick elapsed clamp as a duration.
func (c InvadersConfig) MaxElapsed() time.Duration {
	return time.Duration(c.Loop.MaxElapsedMS) * time.Millisecond
}

// ShotCooldown returns the shot rate limit as a duration.
func (c InvadersConfig) ShotCooldown() time.Duration {
	return time.Duration(c.Shots.CooldownMS) * time.Millisecond
}

// StartCooldown returns the start/restart debounce as a duration.
func (c InvadersConfig) StartCooldown() time.Duration {
	return time.Duration(c.Rules.StartCooldownMS) * time.Millisecond
}

// Validate reports values the engine cannot run with.
func (c InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Loop.TickIntervalMS > 0, "loop.tick_interval_ms must be positive, got %d", c.Loop.TickIntervalMS)
	check(c.Loop.MaxElapsedMS >= 0, "loop.max_elapsed_ms must not be negative, got %d", c.Loop.MaxElapsedMS)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Enemies.Width > 0 && c.Enemies.Height > 0, "enemy size must be positive, got %dx%d", c.Enemies.Width, c.Enemies.Height)
	check(c.Shots.Width > 0 && c.Shots.Height > 0, "shot size must be positive, got %dx%d", c.Shots.Width, c.Shots.Height)
	check(c.Player.Speed >= 0, "player.speed must not be negative, got %v", c.Player.Speed)
	check(c.Player.BottomMargin >= 0, "player.bottom_margin must not be negative, got %d", c.Player.BottomMargin)
	check(c.Enemies.MaxVX >= 0, "enemies.max_vx must not be negative, got %v", c.Enemies.MaxVX)
	check(c.Enemies.MaxVY >= 0, "enemies.max_vy must not be negative, got %v", c.Enemies.MaxVY)
	check(c.Shots.Speed > 0, "shots.speed must be positive, got %v", c.Shots.Speed)
	check(c.Enemies.SpawnOneIn >= 1, "enemies.spawn_one_in must be at least 1, got %d", c.Enemies.SpawnOneIn)
	check(c.Rules.WinScore >= 0, "rules.win_score must not be negative, got %d", c.Rules.WinScore)
	check(c.Shots.CooldownMS >= 0, "shots.cooldown_ms must not be negative, got %d", c.Shots.CooldownMS)
	check(c.Rules.StartCooldownMS >= 0, "rules.start_cooldown_ms must not be negative, got %d", c.Rules.StartCooldownMS)

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	SpawnBoost      float64 `yaml:"spawn_boost"`      // Fraction the spawn odds shrink by at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
