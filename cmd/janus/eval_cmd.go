package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vedang-P/Janus-chess-engine/display"
	"github.com/Vedang-P/Janus-chess-engine/engine"
)

func newEvalCommand(app *appContext) *cobra.Command {
	var depth int
	var timeMS int
	var svgPath string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "print the static evaluation and a searched evaluation",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := app.position()
			if err != nil {
				return err
			}

			staticCP := pos.Evaluate()
			fmt.Printf("static_eval_cp %d\n", staticCP)

			opts := searchOptions(app, depth, timeMS)
			result, err := engine.NewSearch(pos).Run(opts)
			if err != nil {
				return err
			}
			fmt.Printf("search_eval_cp %d  depth %d  bestmove %s  nodes %d  nps %d\n",
				result.EvalCP, result.Depth, result.BestMove.UCI(), result.Nodes, result.NPS)
			if len(result.PV) > 0 {
				fmt.Print("pv:")
				for _, m := range result.PV {
					fmt.Print(" ", m.UCI())
				}
				fmt.Println()
			}

			if svgPath != "" {
				f, err := os.Create(svgPath)
				if err != nil {
					return fmt.Errorf("creating --svg output: %w", err)
				}
				defer f.Close()
				display.WriteSVG(f, pos)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "max search depth for the searched evaluation")
	cmd.Flags().IntVar(&timeMS, "time", 0, "time limit in milliseconds for the searched evaluation")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG board diagram to this path")
	return cmd
}
