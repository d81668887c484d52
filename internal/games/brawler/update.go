package brawler

import (
	"math"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// updatePlayer ticks counters, applies held movement keys and swings.
func (w *World) updatePlayer(p *Player, keys core.KeySet) {
	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	}
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
	if p.AttackFlash > 0 {
		p.AttackFlash--
	}

	aw, ah := w.cfg.Arena.Width, w.cfg.Arena.Height
	c := p.Controls
	if keys.Pressed(c.Up) && p.Y > 0 {
		p.Y -= p.Speed
	}
	if keys.Pressed(c.Down) && p.Y < ah-p.H {
		p.Y += p.Speed
	}
	if keys.Pressed(c.Left) && p.X > 0 {
		p.X -= p.Speed
		p.Facing = -1
	}
	if keys.Pressed(c.Right) && p.X < aw-p.W {
		p.X += p.Speed
		p.Facing = 1
	}

	if keys.Pressed(c.Attack) && p.AttackCooldown == 0 {
		w.MeleeAttack(p)
		p.AttackCooldown = w.cfg.Player.AttackCooldown
		p.AttackFlash = w.cfg.Player.AttackFlash
	}
}

// nearestPlayer returns the player whose top-left corner is closest to
// (x, y) and that distance. Seat 1 wins ties.
func (w *World) nearestPlayer(x, y float64) (*Player, float64) {
	best := w.players[0]
	bestDist := core.Distance(x, y, best.X, best.Y)
	if d := core.Distance(x, y, w.players[1].X, w.players[1].Y); d < bestDist {
		best, bestDist = w.players[1], d
	}
	return best, bestDist
}

// updateMonsters moves every monster toward its nearest player and lets it
// bite when in range.
func (w *World) updateMonsters() {
	mc := w.cfg.Monsters
	aw, ah := w.cfg.Arena.Width, w.cfg.Arena.Height
	for _, m := range w.monsters {
		if m.Cooldown > 0 {
			m.Cooldown--
		}

		target, _ := w.nearestPlayer(m.X, m.Y)
		ux, uy, dist := core.Direction(m.X, m.Y, target.X, target.Y)
		if dist > 0 {
			m.X += ux * m.Speed
			m.Y += uy * m.Speed
		}

		if dist < mc.MeleeRange && m.Cooldown == 0 {
			w.damagePlayerMelee(target, mc.MeleeDamage)
			m.Cooldown = mc.Cooldown
		}

		m.X = core.ClampF(m.X, 0, aw-m.Size)
		m.Y = core.ClampF(m.Y, 0, ah-m.Size)
	}
}

// updateBoss advances the boss attack timer, fires its pattern and moves
// its projectiles. A dead boss does nothing.
func (w *World) updateBoss() {
	b := w.boss
	if b == nil || b.Dead {
		return
	}

	b.AttackTimer++
	if b.stats.period > 0 && b.AttackTimer%b.stats.period == 0 {
		w.fire(b)
	}
	w.updateProjectiles(b)
}

// fire emits the boss's projectile pattern from its center.
func (w *World) fire(b *Boss) {
	cx, cy := b.Center()
	st := b.stats
	switch st.pattern {
	case config.PatternAimed:
		target, _ := w.nearestPlayer(b.X, b.Y)
		ux, uy, dist := core.Direction(b.X, b.Y, target.X, target.Y)
		if dist == 0 {
			return
		}
		b.Projectiles = append(b.Projectiles, Projectile{
			Kind: ProjectileSpit, X: cx, Y: cy,
			VX: ux * st.speed, VY: uy * st.speed, Damage: st.damage,
		})
	case config.PatternArc:
		for i := 0; i < 3; i++ {
			angle := -math.Pi/4 + float64(i)*math.Pi/8
			b.Projectiles = append(b.Projectiles, Projectile{
				Kind: ProjectileBomb, X: cx, Y: cy,
				VX: math.Cos(angle) * st.speed, VY: math.Sin(angle) * st.speed, Damage: st.damage,
			})
		}
	case config.PatternRadial:
		for i := 0; i < 8; i++ {
			angle := float64(i) * 2 * math.Pi / 8
			b.Projectiles = append(b.Projectiles, Projectile{
				Kind: ProjectileSword, X: cx, Y: cy,
				VX: math.Cos(angle) * st.speed, VY: math.Sin(angle) * st.speed, Damage: st.damage,
			})
		}
	}
}

// updateProjectiles integrates every shot, applies hits and drops consumed
// shots in a single filter pass after the scan.
func (w *World) updateProjectiles(b *Boss) {
	aw, ah := w.cfg.Arena.Width, w.cfg.Arena.Height
	radius := w.cfg.Player.HitRadius

	valid := b.Projectiles[:0]
	for _, pr := range b.Projectiles {
		pr.X += pr.VX
		pr.Y += pr.VY

		consumed := false
		for _, p := range w.players {
			px, py := p.Center()
			if core.Distance(pr.X, pr.Y, px, py) < radius {
				w.damagePlayerProjectile(p, pr.Damage)
				consumed = true
				break
			}
		}
		if !consumed && (pr.X < 0 || pr.X > aw || pr.Y < 0 || pr.Y > ah) {
			consumed = true
		}
		if !consumed {
			valid = append(valid, pr)
		}
	}
	b.Projectiles = valid
}

// damagePlayerMelee applies monster contact damage and records a downing.
func (w *World) damagePlayerMelee(p *Player, d int) {
	wasDown := p.Down()
	if p.TakeMeleeDamage(d) && !wasDown && p.Down() {
		w.emit(Event{Kind: EventPlayerDowned, Seat: p.Seat})
	}
}

// damagePlayerProjectile applies projectile damage and records a downing.
func (w *World) damagePlayerProjectile(p *Player, d int) {
	wasDown := p.Down()
	p.TakeProjectileDamage(d)
	if !wasDown && p.Down() {
		w.emit(Event{Kind: EventPlayerDowned, Seat: p.Seat})
	}
}
