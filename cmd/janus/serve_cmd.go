package main

import (
	"github.com/spf13/cobra"

	"github.com/Vedang-P/Janus-chess-engine/internal/wsserver"
)

func newServeCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the streaming search API over WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := wsserver.New(app.logger, app.cfg)
			return server.ListenAndServe()
		},
	}
}
