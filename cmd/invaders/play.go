package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. The 640x480 arena is scaled onto the
terminal grid.

Controls:
  Left/A, Right/D  - Steer
  Space            - Fire
  R                - Respawn the formation
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Terminals report presses but not releases, so a key counts as held for
tui.hold_ticks ticks after its last press or auto-repeat. Two Space presses
closer together than that merge into one and fire a single laser; lower
tui.hold_ticks for faster fire, or use 'invaders window' for real key state.

Examples:
  invaders play
  invaders play --fps 30
  invaders play --log-level debug --log-file invaders.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// gameArg returns the requested game id, defaulting to invaders.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return invaders.GameID
}

// createGame looks up a registered game or exits with a hint.
func createGame(gameID string) registry.Game {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	return game
}

func runPlay(cmd *cobra.Command, args []string) {
	// The TUI owns the terminal; logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	game := createGame(gameArg(args))

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	opts := tui.Options{
		HoldTicks: appConfig.TUI.HoldTicks,
		Logger:    logger,
	}
	if err := tui.Run(game, cfg, opts); err != nil {
		logger.Error("terminal host failed", "err", err)
		closeLog()
		fail("running game: %v", err)
	}
}
