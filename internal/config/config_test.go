package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Errorf("embedded YAML drifted from DefaultInvadersConfig():\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Errorf("DefaultInvadersConfig().Validate() = %v", err)
	}
	if err := ReferenceInvadersConfig().Validate(); err != nil {
		t.Errorf("ReferenceInvadersConfig().Validate() = %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("rules:\n  win_score: 10\nenemies:\n  spawn_one_in: 5\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Rules.WinScore != 10 {
		t.Errorf("WinScore = %d, expected 10", cfg.Rules.WinScore)
	}
	if cfg.Enemies.SpawnOneIn != 5 {
		t.Errorf("SpawnOneIn = %d, expected 5", cfg.Enemies.SpawnOneIn)
	}
	if cfg.Player.Width != DefaultInvadersConfig().Player.Width {
		t.Errorf("Player.Width = %d, expected default", cfg.Player.Width)
	}
	if cfg.Rules.StartCooldownMS != 1000 {
		t.Errorf("StartCooldownMS = %d, expected default 1000", cfg.Rules.StartCooldownMS)
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	if err := os.WriteFile(path, []byte("shots:\n  cooldown_ms: 123\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if cfg.Shots.CooldownMS != 123 {
		t.Errorf("CooldownMS = %d, expected 123", cfg.Shots.CooldownMS)
	}
	if cfg.ShotCooldown().Milliseconds() != 123 {
		t.Errorf("ShotCooldown() = %v, expected 123ms", cfg.ShotCooldown())
	}
}

func TestLoadInvadersErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("enemies:\n  spawn_one_in: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadInvaders(invalid)
	if err == nil || !strings.Contains(err.Error(), "spawn_one_in") {
		t.Errorf("invalid custom config error = %v, expected spawn_one_in complaint", err)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultInvadersConfig()
	cfg.Player.Width = 0
	cfg.Loop.TickIntervalMS = 0
	cfg.Rules.WinScore = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"player size", "tick_interval_ms", "win_score"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q missing %q", err, want)
		}
	}
}

func TestValidateRejectsBadSpeeds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
		want   string
	}{
		{"negative player speed", func(c *InvadersConfig) { c.Player.Speed = -0.1 }, "player.speed"},
		{"negative bottom margin", func(c *InvadersConfig) { c.Player.BottomMargin = -1 }, "player.bottom_margin"},
		{"negative max vx", func(c *InvadersConfig) { c.Enemies.MaxVX = -0.2 }, "enemies.max_vx"},
		{"negative max vy", func(c *InvadersConfig) { c.Enemies.MaxVY = -0.2 }, "enemies.max_vy"},
		{"downward shots", func(c *InvadersConfig) { c.Shots.Speed = -0.5 }, "shots.speed"},
		{"still shots", func(c *InvadersConfig) { c.Shots.Speed = 0 }, "shots.speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error %q missing %q", err, tt.want)
			}
		})
	}
}

func TestLoadInvadersRejectsDownwardShots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	if err := os.WriteFile(path, []byte("shots:\n  speed: -0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadInvaders(path); err == nil || !strings.Contains(err.Error(), "shots.speed") {
		t.Errorf("LoadInvaders() error = %v, expected shots.speed problem", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Encode(ReferenceInvadersConfig())
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, ReferenceInvadersConfig()) {
		t.Errorf("Encode/Parse lost data:\n%s", data)
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		level      float64
		winScore   int
		cooldownMS int
	}{
		{"", true, 0.0, 50, 400},
		{DifficultyEasy, true, 0.0, 30, 250},
		{DifficultyNormal, true, 0.3, 50, 400},
		{DifficultyHard, true, 0.7, 80, 550},
		{DifficultyFixed, false, 0.0, 50, 400},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			ApplyInvadersPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Rules.WinScore != tc.winScore {
				t.Errorf("WinScore = %d, expected %d", cfg.Rules.WinScore, tc.winScore)
			}
			if cfg.Shots.CooldownMS != tc.cooldownMS {
				t.Errorf("CooldownMS = %d, expected %d", cfg.Shots.CooldownMS, tc.cooldownMS)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) = %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}
