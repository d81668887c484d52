package brawler

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	DownedChar   = 'x'
	BladeChar    = '-'
	BossChar     = '█'
	BarFullChar  = '▬'
	BarEmptyChar = '·'
	SpitChar     = '*'
	BombChar     = 'o'
	SwordChar    = '+'
)

// Layout limits in cells.
const (
	minScreenW     = 60
	minScreenH     = 16
	arenaTopOffset = 2 // HUD row and message row
)

var monsterChars = [monsterKindCount]rune{'S', 'Z', 'b', 'v'}

var monsterColors = [monsterKindCount]core.Color{
	core.ColorBrightWhite,
	core.ColorGreen,
	core.ColorBrown,
	core.ColorGray,
}

var bossColors = [bossKindCount]core.Color{
	core.ColorPink,
	core.ColorSilver,
	core.ColorPurple,
}

// Color returns the palette color used to draw monsters of this kind.
func (k MonsterKind) Color() core.Color {
	if k < 0 || k >= monsterKindCount {
		return core.ColorDefault
	}
	return monsterColors[k]
}

// Color returns the palette color used to draw this boss.
func (k BossKind) Color() core.Color {
	if k < 0 || k >= bossKindCount {
		return core.ColorDefault
	}
	return bossColors[k]
}

// viewport maps arena pixels onto the cells inside the arena box.
type viewport struct {
	x0, y0 int
	w, h   int
	sx, sy float64
}

func newViewport(dst *core.Screen, arenaW, arenaH float64) viewport {
	v := viewport{
		x0: 1,
		y0: arenaTopOffset + 1,
		w:  dst.Width() - 2,
		h:  dst.Height() - arenaTopOffset - 2,
	}
	v.sx = float64(v.w) / arenaW
	v.sy = float64(v.h) / arenaH
	return v
}

// cell converts an arena point to a screen cell, clamped inside the box.
func (v viewport) cell(x, y float64) (int, int) {
	cx := core.Clamp(int(x*v.sx), 0, v.w-1)
	cy := core.Clamp(int(y*v.sy), 0, v.h-1)
	return v.x0 + cx, v.y0 + cy
}

// rect converts an arena box to at least one screen cell.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x1, y1 := v.cell(x, y)
	x2, y2 := v.cell(x+w, y+h)
	return core.NewRect(x1, y1, core.Max(x2-x1, 1), core.Max(y2-y1, 1))
}

// Render draws the world into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	w := g.world
	st := w.Status()
	g.renderHUD(dst, st)

	cfg := w.Config()
	v := newViewport(dst, cfg.Arena.Width, cfg.Arena.Height)
	dst.DrawBox(core.NewRect(0, arenaTopOffset, dst.Width(), dst.Height()-arenaTopOffset))

	if st.Phase == PhaseStart {
		g.renderTitle(dst)
		return
	}

	g.renderBoss(dst, v)
	g.renderMonsters(dst, v)
	for _, p := range w.Players() {
		g.renderPlayer(dst, v, p)
	}

	switch {
	case st.Overlay != "":
		drawCenteredMessage(dst, st.Overlay, "", core.ColorGold)
	case st.Phase == PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", finalScores(st)+"  |  R restart", core.ColorRed)
	case st.Phase == PhaseVictory:
		drawCenteredMessage(dst, "VICTORY!", finalScores(st)+"  |  R restart", core.ColorGold)
	case st.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorDefault)
	}
}

// renderHUD draws both players' health and score, the level and the
// announcement line.
func (g *Game) renderHUD(dst *core.Screen, st Status) {
	p1, p2 := st.Players[0], st.Players[1]
	left := fmt.Sprintf("P1 %3d ", p1.HP)
	dst.DrawTextColored(1, 0, left, core.ColorGreen)
	drawBar(dst, 1+len(left), 0, 10, p1.HPPercent/100)
	dst.DrawText(12+len(left), 0, fmt.Sprintf("%d", p1.Score))

	level := fmt.Sprintf("Level %d", st.Level)
	dst.DrawTextCentered(0, level)

	right := fmt.Sprintf("P2 %3d ", p2.HP)
	rx := dst.Width() - len(right) - 18
	dst.DrawTextColored(rx, 0, right, core.ColorRed)
	drawBar(dst, rx+len(right), 0, 10, p2.HPPercent/100)
	dst.DrawText(rx+len(right)+11, 0, fmt.Sprintf("%d", p2.Score))

	msgColor := core.ColorDefault
	if st.BossWarning {
		msgColor = core.ColorBrightRed
	}
	msg := st.Message
	if st.BossName != "" {
		msg = fmt.Sprintf("%s  %s %d/%d", msg, st.BossName, st.BossHP, st.BossMaxHP)
	}
	x := (dst.Width() - len([]rune(msg))) / 2
	dst.DrawTextColored(x, 1, msg, msgColor)
}

func (g *Game) renderTitle(dst *core.Screen) {
	lines := []string{
		"P1: W A S D move, Space attack",
		"P2: arrows move, Enter attack",
		"P pause, Q quit",
	}
	cy := dst.Height() / 2
	dst.DrawTextColored((dst.Width()-11)/2, cy-3, "PIXEL BRAWL", core.ColorGold)
	for i, l := range lines {
		dst.DrawTextCentered(cy-1+i, l)
	}
	dst.DrawTextCentered(cy+3, msgPress)
}

func (g *Game) renderPlayer(dst *core.Screen, v viewport, p *Player) {
	cx, cy := v.cell(p.Center())
	if p.Down() {
		dst.SetColored(cx, cy, DownedChar, core.ColorGray)
		return
	}
	// Blink while invulnerable
	if p.Invulnerable > 0 && (p.Invulnerable/5)%2 == 1 {
		return
	}
	dst.SetColored(cx, cy, PlayerChar, p.Color)
	if p.Attacking() {
		dst.SetColored(cx+p.Facing, cy, BladeChar, core.ColorSilver)
	}
}

func (g *Game) renderMonsters(dst *core.Screen, v viewport) {
	for _, m := range g.world.Monsters() {
		half := m.Size / 2
		cx, cy := v.cell(m.X+half, m.Y+half)
		dst.SetColored(cx, cy, monsterChars[m.Kind], m.Kind.Color())
		if m.Damaged() && cy-1 >= v.y0 {
			drawBar(dst, cx-1, cy-1, 3, float64(m.Health)/float64(m.MaxHealth))
		}
	}
}

func (g *Game) renderBoss(dst *core.Screen, v viewport) {
	b := g.world.Boss()
	if b == nil || b.Dead {
		return
	}
	r := v.rect(b.X, b.Y, b.W, b.H)
	dst.DrawRectColored(r, BossChar, b.Kind.Color())
	if r.Y-1 >= v.y0 {
		drawBar(dst, r.X, r.Y-1, r.W, float64(b.Health)/float64(b.MaxHealth))
	}

	for _, pr := range b.Projectiles {
		x, y := v.cell(pr.X, pr.Y)
		switch pr.Kind {
		case ProjectileSpit:
			dst.SetColored(x, y, SpitChar, core.ColorYellow)
		case ProjectileBomb:
			dst.SetColored(x, y, BombChar, core.ColorOrange)
		case ProjectileSword:
			dst.SetColored(x, y, SwordChar, core.ColorSilver)
		}
	}
}

// drawBar draws a health bar of the given width filled to frac.
func drawBar(dst *core.Screen, x, y, width int, frac float64) {
	frac = core.ClampF(frac, 0, 1)
	filled := int(frac*float64(width) + 0.5)
	if frac > 0 && filled == 0 {
		filled = 1
	}
	color := core.ColorGreen
	if frac < 0.3 {
		color = core.ColorRed
	}
	for i := 0; i < width; i++ {
		if i < filled {
			dst.SetColored(x+i, y, BarFullChar, color)
		} else {
			dst.SetColored(x+i, y, BarEmptyChar, core.ColorGray)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	if subtitle == "" {
		boxH = 3
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, color)

	if subtitle != "" {
		subtitleX := boxX + (boxW-len(subtitle))/2
		dst.DrawText(subtitleX, boxY+3, subtitle)
	}
}

func finalScores(st Status) string {
	parts := make([]string, 0, len(st.Players))
	for _, p := range st.Players {
		parts = append(parts, fmt.Sprintf("%s: %d", p.Name, p.Score))
	}
	return strings.Join(parts, ", ")
}
