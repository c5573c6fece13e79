package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/entity"
)

// SpawnPolicy decides when enemies appear and where.
type SpawnPolicy struct {
	rng        *rand.Rand
	cfg        *config.EnemyConfig
	difficulty *config.DifficultyManager
}

// NewSpawnPolicy creates a spawn policy drawing from rng.
func NewSpawnPolicy(rng *rand.Rand, cfg *config.EnemyConfig, diff *config.DifficultyManager) *SpawnPolicy {
	return &SpawnPolicy{rng: rng, cfg: cfg, difficulty: diff}
}

// Roll reports whether an enemy should spawn this tick: a one-in-N chance,
// where N shrinks with difficulty.
func (p *SpawnPolicy) Roll(score, ticks int) bool {
	odds := p.difficulty.SpawnOdds(p.cfg.SpawnOneIn, score, ticks)
	if odds <= 1 {
		return true
	}
	return p.rng.Intn(odds) == 0
}

// Enemy creates an enemy on the top edge at a random column with random
// velocity: vx in [-max_vx, max_vx), vy in [0, max_vy), both scaled by difficulty.
func (p *SpawnPolicy) Enemy(vp core.Viewport, score, ticks int) *entity.Entity {
	span := float64(max(0, vp.W-p.cfg.Width))
	x := p.rng.Float64() * span

	maxVX := p.difficulty.Speed(p.cfg.MaxVX, score, ticks)
	maxVY := p.difficulty.Speed(p.cfg.MaxVY, score, ticks)
	vx := (p.rng.Float64()*2 - 1) * maxVX
	vy := p.rng.Float64() * maxVY

	return entity.New(entity.KindEnemy, mgl64.Vec2{x, 0}, mgl64.Vec2{vx, vy}, p.cfg.Width, p.cfg.Height)
}

// newPlayer creates the ship centered on the bottom edge of vp.
func newPlayer(cfg *config.PlayerConfig, vp core.Viewport) *entity.Entity {
	x := float64(vp.W)/2 - float64(cfg.Width)/2
	return entity.New(entity.KindPlayer, mgl64.Vec2{x, playerY(cfg, vp)}, mgl64.Vec2{}, cfg.Width, cfg.Height)
}

func playerY(cfg *config.PlayerConfig, vp core.Viewport) float64 {
	return float64(vp.H - cfg.Height - cfg.BottomMargin)
}

// newShot creates a projectile whose bottom-center sits on the player's top-center.
func newShot(cfg *config.ShotConfig, player *entity.Entity) *entity.Entity {
	p := player.Pos()
	x := p.X() + float64(player.Width()-cfg.Width)/2
	y := p.Y() - float64(cfg.Height)
	return entity.New(entity.KindProjectile, mgl64.Vec2{x, y}, mgl64.Vec2{0, -cfg.Speed}, cfg.Width, cfg.Height)
}
