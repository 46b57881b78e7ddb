// Package ansi provides a raw-terminal runner that drives the game with
// plain ANSI escape sequences instead of the Bubble Tea event loop.
package ansi

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
	"github.com/vovakirdan/tui-tetris/internal/timing"
)

const (
	clearScreen = "\x1b[2J\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Run drives the game in a fixed-rate poll/step/render loop on the raw
// terminal. It blocks until the player quits.
func Run(game *tetris.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("ansi: cannot enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	fmt.Print(hideCursor)
	defer fmt.Print(showCursor + clearScreen)

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			game.SetHighScore(high)
		}
	}
	game.Reset(cfg)

	// Reader goroutine feeds single bytes; the loop drains at most one
	// key per frame so input stays aligned with the simulation rate.
	keys := make(chan byte, 16)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(keys)
				return
			}
			if n > 0 {
				keys <- buf[0]
			}
		}
	}()

	limiter := timing.NewLimiter(float64(cfg.TickRate))
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	frame := core.NewInputFrame()
	startedAt := time.Now()
	scoreSaved := false

	for {
		select {
		case b, ok := <-keys:
			if !ok {
				return nil
			}
			if quit := mapKey(b, &frame, game.State().GameOver); quit {
				return nil
			}
		default:
		}

		wasOver := game.State().GameOver
		result := game.Step(frame)
		frame.Clear()

		if wasOver && !result.State.GameOver {
			scoreSaved = false
			startedAt = time.Now()
		}
		if result.State.GameOver && !scoreSaved {
			if store != nil && result.State.Score > 0 {
				duration := int(time.Since(startedAt).Seconds())
				//nolint:errcheck // Best-effort save
				store.SaveScore(result.State.Score, duration)
			}
			scoreSaved = true
		}

		game.Render(screen)
		draw(screen)

		limiter.Wait()
	}
}

// mapKey translates a raw input byte into an action on the frame.
// Returns true on a quit request.
func mapKey(b byte, frame *core.InputFrame, gameOver bool) bool {
	switch b {
	case 'q', 3: // 3 is Ctrl-C
		return true
	case ' ':
		frame.Set(core.ActionRotate)
	case 'r':
		if gameOver {
			frame.Set(core.ActionRestart)
		} else {
			frame.Set(core.ActionRotate)
		}
	case 'h':
		frame.Set(core.ActionLeft)
	case 'l':
		frame.Set(core.ActionRight)
	case 'j':
		frame.Set(core.ActionSoftDrop)
	case 'p':
		frame.Set(core.ActionPause)
	}
	return false
}

// draw repaints the whole screen. Raw mode needs explicit carriage
// returns since "\n" alone only moves down a line.
func draw(screen *core.Screen) {
	var sb strings.Builder
	sb.WriteString(clearScreen)
	sb.WriteString(strings.ReplaceAll(tui.RenderScreen(screen), "\n", "\r\n"))
	fmt.Print(sb.String())
}
