package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vedang-P/Janus-chess-engine/engine"
)

func newSearchCommand(app *appContext) *cobra.Command {
	var depth int
	var timeMS int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "run the search engine and print the best move",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := app.position()
			if err != nil {
				return err
			}

			opts := searchOptions(app, depth, timeMS)
			result, err := engine.NewSearch(pos).Run(opts)
			if err != nil {
				return err
			}
			printSearchResult(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "max search depth (0 = use config default)")
	cmd.Flags().IntVar(&timeMS, "time", 0, "time limit in milliseconds (0 = use config default)")
	return cmd
}

func searchOptions(app *appContext, depth, timeMS int) engine.Options {
	maxDepth := app.cfg.MaxDepth
	if depth != 0 {
		maxDepth = depth
	}
	limit := app.cfg.TimeLimit()
	if timeMS > 0 {
		limit = time.Duration(timeMS) * time.Millisecond
	}
	return engine.Options{
		MaxDepth:         maxDepth,
		TimeLimit:        limit,
		SnapshotInterval: app.cfg.SnapshotInterval(),
	}
}

func printSearchResult(result engine.SearchResult) {
	fmt.Printf("depth %d  eval_cp %d  bestmove %s  nodes %d  nps %d\n",
		result.Depth, result.EvalCP, result.BestMove.UCI(), result.Nodes, result.NPS)
	if len(result.PV) > 0 {
		fmt.Print("pv:")
		for _, m := range result.PV {
			fmt.Print(" ", m.UCI())
		}
		fmt.Println()
	}
}
