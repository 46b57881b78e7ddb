package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/timing"
)

// Rules holds the tunable parameters of a game instance.
type Rules struct {
	Width   int           // Playfield width in cells
	Height  int           // Playfield height in cells
	Gravity time.Duration // Interval between forced downward moves
}

// DefaultRules returns the classic field and speed.
func DefaultRules() Rules {
	return Rules{
		Width:   11,
		Height:  20,
		Gravity: time.Second,
	}
}

// Each board cell is drawn two runes wide for a square aspect.
const cellW = 2

// Game implements the falling-block game loop: it owns the board and
// the current piece, applies input as speculative transforms, descends
// or locks the piece on gravity ticks, and clears filled rows on lock.
type Game struct {
	rules   Rules
	rng     *rand.Rand
	board   *Board
	spawner *Spawner
	piece   Piece

	gravity         timing.Trigger
	gravityOverride timing.Trigger

	tick      uint64
	lines     int
	highScore int
	gameOver  bool
	paused   bool
	tooSmall bool

	// Screen layout
	screenW   int
	screenH   int
	fieldX    int
	fieldY    int
	hudHeight int
	tickRate  int
}

// New creates a game with the given rules. Reset must be called before
// stepping.
func New(rules Rules) *Game {
	if rules.Width <= 0 || rules.Height <= 0 {
		rules = DefaultRules()
	}
	if rules.Gravity <= 0 {
		rules.Gravity = time.Second
	}
	return &Game{rules: rules}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// SetGravity overrides the gravity trigger. Tests inject a
// timing.TickCounter here for deterministic simulation; when unset,
// Reset installs a wall-clock trigger at the configured interval.
func (g *Game) SetGravity(t timing.Trigger) {
	g.gravityOverride = t
	g.gravity = t
}

// SetHighScore sets the best recorded score shown in the HUD.
// Survives Reset; the platform layer refreshes it from storage.
func (g *Game) SetHighScore(n int) {
	g.highScore = n
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.lines = 0
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	g.hudHeight = 2

	if g.gravityOverride != nil {
		g.gravity = g.gravityOverride
	} else {
		g.gravity = timing.NewWallClock(g.rules.Gravity)
	}

	g.board = NewBoard(g.rules.Width, g.rules.Height)
	g.spawner = NewSpawner(g.rng, g.rules.Width/2, 0)

	// Field plus border, cells drawn two runes wide.
	requiredW := (g.rules.Width + 2) * cellW
	requiredH := g.rules.Height + 2 + g.hudHeight
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.fieldX = (g.screenW - requiredW) / 2
	g.fieldY = g.hudHeight

	g.spawn()
}

// spawn produces the next piece; a spawn that does not fit ends the
// game. This is the sole game-over condition.
func (g *Game) spawn() {
	g.piece = g.spawner.Next()
	if !g.board.CanPlace(g.piece) {
		g.gameOver = true
	}
}

// try adopts the candidate piece if the board accepts it. Rejection is
// silent and leaves the current piece unchanged.
func (g *Game) try(candidate Piece) bool {
	if g.board.CanPlace(candidate) {
		g.piece = candidate
		return true
	}
	return false
}

// lock commits the current piece into the board, clears any filled
// rows and spawns the next piece.
func (g *Game) lock() {
	g.board.Put(g.piece)
	g.lines += g.board.ClearFilled()
	g.spawn()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Each transform is speculative: build the moved/rotated piece,
	// adopt it only if the board accepts it.
	if input.Has(core.ActionRotate) {
		g.try(g.piece.Rotated())
	}
	if input.Has(core.ActionLeft) {
		g.try(g.piece.Moved(-1, 0))
	}
	if input.Has(core.ActionRight) {
		g.try(g.piece.Moved(1, 0))
	}
	if input.Has(core.ActionSoftDrop) {
		g.try(g.piece.Moved(0, 1))
	}

	if g.gravity.Due() {
		if !g.try(g.piece.Moved(0, 1)) {
			g.lock()
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Lines returns the number of rows cleared so far.
func (g *Game) Lines() int {
	return g.lines
}

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderField(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Lines: %d, press R to restart", g.lines))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris | Lines: %d", g.lines)
	if g.highScore > 0 {
		hud += fmt.Sprintf(" | Best: %d", g.highScore)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderField draws the bordered playfield with the falling piece
// overlaid on a throwaway copy, so the live board stays unmodified
// while the piece is still in flight.
func (g *Game) renderField(dst *core.Screen) {
	composite := g.board.Clone()
	if !g.gameOver {
		composite.Put(g.piece)
	}

	w, h := composite.Width(), composite.Height()

	// Border: one extra cell on every edge.
	for y := -1; y <= h; y++ {
		g.drawCell(dst, -1, y, core.ColorGray)
		g.drawCell(dst, w, y, core.ColorGray)
	}
	for x := 0; x < w; x++ {
		g.drawCell(dst, x, -1, core.ColorGray)
		g.drawCell(dst, x, h, core.ColorGray)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := composite.At(x, y); c != core.ColorNone {
				g.drawCell(dst, x, y, c)
			}
		}
	}
}

// drawCell paints one board cell as a two-rune block. Coordinates are
// board cells; -1 and Width/Height address the border.
func (g *Game) drawCell(dst *core.Screen, x, y int, c core.Color) {
	sx := g.fieldX + (x+1)*cellW
	sy := g.fieldY + y + 1
	dst.SetCell(sx, sy, '█', c)
	dst.SetCell(sx+1, sy, '█', c)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
