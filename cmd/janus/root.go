package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Vedang-P/Janus-chess-engine/engine"
	"github.com/Vedang-P/Janus-chess-engine/internal/config"
)

// appContext carries flags and resources shared by every subcommand.
type appContext struct {
	logger    *zap.Logger
	fen       string
	configPath string
	cfg       config.Config
}

func newRootCommand(logger *zap.Logger) *cobra.Command {
	app := &appContext{logger: logger}

	root := &cobra.Command{
		Use:           "janus",
		Short:         "Janus is a bitboard chess analysis engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.configPath)
			if err != nil {
				return err
			}
			app.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&app.fen, "fen", engine.StartFEN, "position to operate on (FEN), or \"startpos\"")
	root.PersistentFlags().StringVar(&app.configPath, "config", "", "optional TOML config file")

	root.AddCommand(newPerftCommand(app))
	root.AddCommand(newSearchCommand(app))
	root.AddCommand(newEvalCommand(app))
	root.AddCommand(newPlayCommand(app))
	root.AddCommand(newServeCommand(app))
	return root
}

func (a *appContext) position() (*engine.Position, error) {
	fen := a.fen
	if fen == "startpos" || fen == "" {
		fen = engine.StartFEN
	}
	pos, err := engine.PositionFromFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parsing --fen: %w", err)
	}
	return pos, nil
}
