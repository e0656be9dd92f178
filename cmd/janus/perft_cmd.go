package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vedang-P/Janus-chess-engine/perft"
)

func newPerftCommand(app *appContext) *cobra.Command {
	var divide bool

	cmd := &cobra.Command{
		Use:   "perft <depth>",
		Short: "count leaf nodes reachable to a fixed depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var depth int
			if _, err := fmt.Sscanf(args[0], "%d", &depth); err != nil || depth < 0 {
				return fmt.Errorf("invalid depth %q", args[0])
			}

			pos, err := app.position()
			if err != nil {
				return err
			}

			start := time.Now()
			if divide {
				total, entries := perft.Divide(pos, depth)
				fmt.Print(perft.FormatDivide(entries))
				fmt.Printf("\nnodes: %d  captures: %d  enpassant: %d  castles: %d  promotions: %d  elapsed: %s\n",
					total.Nodes, total.Captures, total.Enpassant, total.Castles, total.Promotions, time.Since(start))
				return nil
			}

			total := perft.Count(pos, depth)
			fmt.Printf("nodes: %d  captures: %d  enpassant: %d  castles: %d  promotions: %d  elapsed: %s\n",
				total.Nodes, total.Captures, total.Enpassant, total.Castles, total.Promotions, time.Since(start))
			return nil
		},
	}

	cmd.Flags().BoolVar(&divide, "divide", false, "report leaf counts per root move")
	return cmd
}
