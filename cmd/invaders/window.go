package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/window"
)

var (
	flagScale       int
	flagSpriteSheet string
	flagNoVSync     bool
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window (640x480 by default) and draw the game from a
sprite sheet of 24x24 cells laid out player, bug, laser. Without a sheet
a placeholder is generated.

Controls:
  Left/A, Right/D  - Steer
  Space            - Fire
  R                - Respawn the formation
  F3               - Toggle the status line
  Esc/Q            - Quit

Examples:
  invaders window
  invaders window --scale 2
  invaders window --sprite-sheet assets/sprites.png`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale factor (0 = from config)")
	windowCmd.Flags().StringVar(&flagSpriteSheet, "sprite-sheet", "", "PNG sprite sheet (overrides config)")
	windowCmd.Flags().BoolVar(&flagNoVSync, "no-vsync", false, "Disable vsync")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	gameID := gameArg(args)
	game, ok := createGame(gameID).(window.Game)
	if !ok {
		closeLog()
		fail("game %q cannot be drawn in a window", gameID)
	}

	opts := window.Options{
		Title:       appConfig.Window.Title,
		Scale:       appConfig.Window.Scale,
		VSync:       appConfig.Window.VSync && !flagNoVSync,
		TickRate:    flagFPS,
		SpriteSheet: appConfig.Window.SpriteSheet,
		Logger:      logger,
	}
	if flagScale > 0 {
		opts.Scale = flagScale
	}
	if flagSpriteSheet != "" {
		opts.SpriteSheet = flagSpriteSheet
	}

	if err := window.Run(game, opts); err != nil {
		logger.Error("window host failed", "err", err)
		closeLog()
		fail("running game: %v", err)
	}
}
