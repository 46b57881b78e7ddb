package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Phase describes the externally visible state of the game loop.
type Phase string

const (
	PhaseFalling     Phase = "falling"
	PhaseGameOver    Phase = "game_over"
	PhasePaused      Phase = "paused"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Lines  int
	Piece  string // Shape name of the falling piece
	X, Y   int
	Rot    Rotation
	Phase  Phase
	Filled int // Number of non-empty board cells
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhaseFalling
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.gameOver:
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	filled := 0
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if g.board.At(x, y) != core.ColorNone {
				filled++
			}
		}
	}

	return Snapshot{
		Tick:   g.tick,
		Lines:  g.lines,
		Piece:  g.piece.Shape.Name,
		X:      g.piece.X,
		Y:      g.piece.Y,
		Rot:    g.piece.Rot,
		Phase:  phase,
		Filled: filled,
	}
}
