package brawler

import "github.com/vovakirdan/tui-brawler/internal/core"

// MeleeAttack resolves one swing by p. Every live monster within attack
// range takes damage; monsters brought to zero or below are credited to p
// and removed once the scan is done. A live boss is hit when within range
// plus half its width.
func (w *World) MeleeAttack(p *Player) {
	pc := w.cfg.Player

	killed := false
	for _, m := range w.monsters {
		if core.Distance(p.X, p.Y, m.X, m.Y) >= pc.AttackRange {
			continue
		}
		m.TakeDamage(pc.AttackDamage)
		if m.Dead() {
			killed = true
			p.addScore(m.ScoreValue)
			w.kills++
			w.emit(Event{Kind: EventMonsterKilled, Seat: p.Seat, Name: m.Kind.String(), Points: m.ScoreValue})
		}
	}
	if killed {
		w.removeDeadMonsters()
	}

	b := w.boss
	if b == nil || b.Dead {
		return
	}
	if core.Distance(p.X, p.Y, b.X, b.Y) < pc.AttackRange+b.W/2 {
		if b.TakeDamage(pc.AttackDamage) {
			bonus := w.cfg.Bosses.DefeatBonus
			for _, pl := range w.players {
				pl.addScore(bonus)
			}
			w.emit(Event{Kind: EventBossDefeated, Seat: p.Seat, Name: b.Title, Points: bonus})
		}
	}
}

// removeDeadMonsters filters out every monster at zero health or below.
func (w *World) removeDeadMonsters() {
	valid := w.monsters[:0]
	for _, m := range w.monsters {
		if !m.Dead() {
			valid = append(valid, m)
		}
	}
	for i := len(valid); i < len(w.monsters); i++ {
		w.monsters[i] = nil
	}
	w.monsters = valid
}
