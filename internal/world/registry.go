// Package world owns the lifetime of every entity in a game.
//
// Entities are never removed while a tick iterates over them. Collision and
// bounds rules only clear liveness flags; Purge then drops dead entities in a
// separate pass once the tick's checks are complete.
package world

import (
	"github.com/vovakirdan/tui-invaders/internal/entity"
)

// Registry holds the single player plus the enemy and projectile collections.
// It is owned by the tick goroutine and is not safe for concurrent use.
type Registry struct {
	player      *entity.Entity
	enemies     []*entity.Entity
	projectiles []*entity.Entity
}

// NewRegistry creates a registry around the given player.
func NewRegistry(player *entity.Entity) *Registry {
	return &Registry{
		player:      player,
		enemies:     make([]*entity.Entity, 0, 16),
		projectiles: make([]*entity.Entity, 0, 16),
	}
}

// Player returns the player entity.
func (r *Registry) Player() *entity.Entity {
	return r.player
}

// Add stores an entity in the collection matching its kind.
// Adding a player replaces the current one.
func (r *Registry) Add(e *entity.Entity) {
	switch e.Kind() {
	case entity.KindPlayer:
		r.player = e
	case entity.KindEnemy:
		r.enemies = append(r.enemies, e)
	case entity.KindProjectile:
		r.projectiles = append(r.projectiles, e)
	}
}

// Enemies returns the enemy collection for iteration. Callers may clear
// liveness flags but must not append or remove; use Add and Purge.
func (r *Registry) Enemies() []*entity.Entity {
	return r.enemies
}

// Projectiles returns the projectile collection for iteration, with the same
// rules as Enemies.
func (r *Registry) Projectiles() []*entity.Entity {
	return r.projectiles
}

// Purge removes every dead enemy and projectile and returns how many were removed.
func (r *Registry) Purge() int {
	var removed, n int
	r.enemies, n = purge(r.enemies)
	removed += n
	r.projectiles, n = purge(r.projectiles)
	removed += n
	return removed
}

// purge filters in place and clears the tail so dropped entities can be collected.
func purge(list []*entity.Entity) ([]*entity.Entity, int) {
	live := list[:0]
	for _, e := range list {
		if e.Alive() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(list); i++ {
		list[i] = nil
	}
	return live, len(list) - len(live)
}

// EnemyCount returns the number of live enemies.
func (r *Registry) EnemyCount() int {
	return countLive(r.enemies)
}

// ProjectileCount returns the number of live projectiles.
func (r *Registry) ProjectileCount() int {
	return countLive(r.projectiles)
}

// Count returns the number of live entities, player included.
func (r *Registry) Count() int {
	n := r.EnemyCount() + r.ProjectileCount()
	if r.player != nil {
		n++
	}
	return n
}

func countLive(list []*entity.Entity) int {
	n := 0
	for _, e := range list {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Reset empties both collections and installs a fresh player.
func (r *Registry) Reset(player *entity.Entity) {
	clear(r.enemies)
	clear(r.projectiles)
	r.enemies = r.enemies[:0]
	r.projectiles = r.projectiles[:0]
	r.player = player
}
