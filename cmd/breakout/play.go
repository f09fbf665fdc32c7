package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Mouse          - Move the paddle
  Click/Space    - Start, and continue after losing a life
  Left/Right     - Move the paddle without a mouse
  R              - Restart (after the game ends)
  Q/Ctrl+C       - Quit

Examples:
  breakout play
  breakout play --fps 30
  breakout play --config ./my-breakout.yaml --log-file breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Fail on a bad config before the alt screen hides the message.
	if _, err := config.LoadBreakout(flagConfig); err != nil {
		return err
	}
	breakout.SetConfigPath(flagConfig)

	// Logs would corrupt the alt screen, so they are off unless sent to a file.
	logger, closeLog, err := newLogger("breakout", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create("breakout")
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	logger.Info("starting", "screen", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS, "config", flagConfig)

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
