package config

import "testing"

func scoreDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled: true,
		Progression: ProgressionConfig{
			Type:  "score",
			MaxAt: 50,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier: 1.0,
			SpawnBoost:      0.5,
		},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty())

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{25, 0.5},
		{50, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	cfg := scoreDifficulty()
	cfg.InitialLevel = 0.5
	d = NewDifficultyManager(cfg)
	if got := d.Level(25, 0); got != 0.75 {
		t.Errorf("Level(25) from 0.5 = %v, expected 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := scoreDifficulty()
	cfg.InitialLevel = 0.3
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(40, 1000); got != 0.3 {
		t.Errorf("Level() = %v, expected initial level 0.3", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := scoreDifficulty()
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 1000}
	d := NewDifficultyManager(cfg)

	if got := d.Level(50, 250); got != 0.25 {
		t.Errorf("Level(ticks=250) = %v, expected 0.25", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty())

	if got := d.Speed(0.2, 0, 0); got != 0.2 {
		t.Errorf("Speed at level 0 = %v, expected 0.2", got)
	}
	if got := d.Speed(0.2, 50, 0); got != 0.4 {
		t.Errorf("Speed at level 1 = %v, expected 0.4", got)
	}
}

func TestDifficultySpawnOdds(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty())

	if got := d.SpawnOdds(600, 0, 0); got != 600 {
		t.Errorf("SpawnOdds at level 0 = %d, expected 600", got)
	}
	if got := d.SpawnOdds(600, 50, 0); got != 300 {
		t.Errorf("SpawnOdds at level 1 = %d, expected 300", got)
	}
	if got := d.SpawnOdds(1, 50, 0); got != 1 {
		t.Errorf("SpawnOdds never drops below 1, got %d", got)
	}
}
