// Command janus is the command-line front end for the Janus chess
// engine: perft, static/searched evaluation, one-shot search and an
// interactive play loop, all against a user-supplied FEN.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCommand(logger).Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
