// Package gui runs the brawler in a desktop window with Ebitengine.
// The arena is drawn 1:1 in pixels: players and monsters as colored boxes,
// bosses with a health bar, projectiles as small squares.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/platform"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

var (
	background = color.RGBA{R: 18, G: 18, B: 26, A: 255}
	shade      = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	barEmpty   = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       colornames.White,
	core.ColorRed:           colornames.Crimson,
	core.ColorGreen:         colornames.Limegreen,
	core.ColorYellow:        colornames.Yellow,
	core.ColorBlue:          colornames.Royalblue,
	core.ColorMagenta:       colornames.Magenta,
	core.ColorCyan:          colornames.Cyan,
	core.ColorWhite:         colornames.Lightgrey,
	core.ColorBrightRed:     colornames.Red,
	core.ColorBrightGreen:   colornames.Lime,
	core.ColorBrightYellow:  colornames.Lightyellow,
	core.ColorBrightBlue:    colornames.Dodgerblue,
	core.ColorBrightMagenta: colornames.Violet,
	core.ColorBrightCyan:    colornames.Lightcyan,
	core.ColorBrightWhite:   colornames.White,
	core.ColorOrange:        colornames.Orange,
	core.ColorGray:          colornames.Gray,
	core.ColorPink:          colornames.Hotpink,
	core.ColorPurple:        colornames.Mediumpurple,
	core.ColorBrown:         colornames.Saddlebrown,
	core.ColorGold:          colornames.Gold,
	core.ColorSilver:        colornames.Silver,
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return colornames.White
}

// keyBindings maps physical keys to the logical keys the world reads.
var keyBindings = []struct {
	physical ebiten.Key
	logical  core.Key
}{
	{ebiten.KeyW, core.KeyW},
	{ebiten.KeyA, core.KeyA},
	{ebiten.KeyS, core.KeyS},
	{ebiten.KeyD, core.KeyD},
	{ebiten.KeySpace, core.KeySpace},
	{ebiten.KeyArrowUp, core.KeyArrowUp},
	{ebiten.KeyArrowDown, core.KeyArrowDown},
	{ebiten.KeyArrowLeft, core.KeyArrowLeft},
	{ebiten.KeyArrowRight, core.KeyArrowRight},
	{ebiten.KeyEnter, core.KeyEnter},
}

// Options configures the desktop runner. Zero values are usable.
type Options struct {
	Store      *storage.Store
	Logger     *log.Logger
	Watcher    *config.Watcher
	ConfigPath string
}

// Game adapts a brawler game to ebiten.Game.
type Game struct {
	game  *brawler.Game
	hooks *platform.Hooks
}

// New wraps a game that has already been Reset.
func New(game *brawler.Game, opts Options) *Game {
	return &Game{
		game:  game,
		hooks: platform.NewHooks(game, opts.Store, opts.Logger, opts.Watcher, opts.ConfigPath),
	}
}

// Update reads the keyboard and advances the game one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	for _, b := range keyBindings {
		if ebiten.IsKeyPressed(b.physical) {
			in.Hold(b.logical)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}

	g.hooks.BeforeStep()
	res := g.game.Step(in)
	g.hooks.AfterStep(res.State)
	return nil
}

// Layout keeps the logical screen at the arena size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	a := g.game.World().Config().Arena
	return int(a.Width), int(a.Height)
}

// Draw renders the world.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	w := g.game.World()
	st := w.Status()
	sw, sh := g.Layout(0, 0)

	if st.Phase == brawler.PhaseStart {
		drawCentered(screen, sw, sh/2-3*glyphH, "PIXEL BRAWL")
		drawCentered(screen, sw, sh/2-glyphH, "P1: W A S D move, Space attack")
		drawCentered(screen, sw, sh/2, "P2: arrows move, Enter attack")
		drawCentered(screen, sw, sh/2+glyphH, "P pause, R restart, Q quit")
		drawCentered(screen, sw, sh/2+3*glyphH, "Press Enter or Space to start")
		return
	}

	if b := w.Boss(); b != nil && !b.Dead {
		drawBoss(screen, b)
	}
	for _, m := range w.Monsters() {
		drawMonster(screen, m)
	}
	reach := float32(w.Config().Player.AttackRange)
	for _, p := range w.Players() {
		drawPlayer(screen, p, reach)
	}

	drawHUD(screen, sw, st)

	switch {
	case st.Overlay != "":
		drawBanner(screen, sw, sh, st.Overlay, "")
	case st.Phase == brawler.PhaseGameOver:
		drawBanner(screen, sw, sh, "GAME OVER", st.Message+"  |  R restart")
	case st.Phase == brawler.PhaseVictory:
		drawBanner(screen, sw, sh, "VICTORY!", st.Message+"  |  R restart")
	case st.Paused:
		drawBanner(screen, sw, sh, "PAUSED", "Press P to resume")
	}
}

func drawPlayer(dst *ebiten.Image, p *brawler.Player, reach float32) {
	x, y := float32(p.X), float32(p.Y)
	w, h := float32(p.W), float32(p.H)
	if p.Down() {
		vector.DrawFilledRect(dst, x, y+h/2, w, h/2, colornames.Dimgray, false)
		return
	}
	// Blink while invulnerable
	if p.Invulnerable > 0 && (p.Invulnerable/5)%2 == 1 {
		vector.StrokeRect(dst, x, y, w, h, 1, rgba(p.Color), false)
	} else {
		vector.DrawFilledRect(dst, x, y, w, h, rgba(p.Color), false)
	}

	if p.Attacking() {
		cx, cy := p.Center()
		bx := float32(cx)
		if p.Facing < 0 {
			bx -= reach
		}
		vector.DrawFilledRect(dst, bx, float32(cy)-2, reach, 4, colornames.Silver, false)
	}
}

func drawMonster(dst *ebiten.Image, m *brawler.Monster) {
	x, y, s := float32(m.X), float32(m.Y), float32(m.Size)
	vector.DrawFilledRect(dst, x, y, s, s, rgba(m.Kind.Color()), false)
	if m.Damaged() {
		drawBar(dst, x, y-6, s, 3, float64(m.Health)/float64(m.MaxHealth))
	}
}

func drawBoss(dst *ebiten.Image, b *brawler.Boss) {
	x, y := float32(b.X), float32(b.Y)
	w, h := float32(b.W), float32(b.H)
	vector.DrawFilledRect(dst, x, y, w, h, rgba(b.Kind.Color()), false)
	vector.StrokeRect(dst, x, y, w, h, 2, colornames.White, false)
	drawBar(dst, x, y-10, w, 5, float64(b.Health)/float64(b.MaxHealth))

	for _, pr := range b.Projectiles {
		c := colornames.Yellow
		switch pr.Kind {
		case brawler.ProjectileBomb:
			c = colornames.Orange
		case brawler.ProjectileSword:
			c = colornames.Silver
		}
		vector.DrawFilledRect(dst, float32(pr.X)-4, float32(pr.Y)-4, 8, 8, c, false)
	}
}

// drawBar draws a health bar filled to frac.
func drawBar(dst *ebiten.Image, x, y, w, h float32, frac float64) {
	frac = core.ClampF(frac, 0, 1)
	fill := colornames.Limegreen
	if frac < 0.3 {
		fill = colornames.Crimson
	}
	vector.DrawFilledRect(dst, x, y, w, h, barEmpty, false)
	vector.DrawFilledRect(dst, x, y, w*float32(frac), h, fill, false)
}

func drawHUD(dst *ebiten.Image, sw int, st brawler.Status) {
	p1, p2 := st.Players[0], st.Players[1]
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("P1 HP %d/%d  Score %d", p1.HP, p1.MaxHP, p1.Score), 8, 4)
	drawBar(dst, 8, 22, 120, 6, p1.HPPercent/100)

	right := fmt.Sprintf("P2 HP %d/%d  Score %d", p2.HP, p2.MaxHP, p2.Score)
	rx := sw - 8 - len(right)*glyphW
	ebitenutil.DebugPrintAt(dst, right, rx, 4)
	drawBar(dst, float32(sw-128), 22, 120, 6, p2.HPPercent/100)

	drawCentered(dst, sw, 4, fmt.Sprintf("Level %d", st.Level))
	msg := st.Message
	if st.BossName != "" {
		msg = fmt.Sprintf("%s  %s %d/%d", msg, st.BossName, st.BossHP, st.BossMaxHP)
	}
	drawCentered(dst, sw, 4+glyphH, msg)
}

// drawBanner shades the arena and prints a centered title and subtitle.
func drawBanner(dst *ebiten.Image, sw, sh int, title, subtitle string) {
	vector.DrawFilledRect(dst, 0, float32(sh/2-2*glyphH), float32(sw), float32(4*glyphH), shade, false)
	drawCentered(dst, sw, sh/2-glyphH, title)
	if subtitle != "" {
		drawCentered(dst, sw, sh/2+glyphH/2, subtitle)
	}
}

func drawCentered(dst *ebiten.Image, sw, y int, text string) {
	ebitenutil.DebugPrintAt(dst, text, (sw-len(text)*glyphW)/2, y)
}

// Run opens a window sized to the arena and plays until it is closed or
// Q/Esc is pressed.
func Run(game *brawler.Game, runtime core.RuntimeConfig, opts Options) error {
	game.Reset(runtime)
	g := New(game, opts)

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
