package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vedang-P/Janus-chess-engine/display"
	"github.com/Vedang-P/Janus-chess-engine/engine"
)

func newPlayCommand(app *appContext) *cobra.Command {
	var side string
	var depth int
	var timeMS int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "play interactively against the engine from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := app.position()
			if err != nil {
				return err
			}
			human := engine.White
			if side == "black" {
				human = engine.Black
			}
			opts := searchOptions(app, depth, timeMS)
			if opts.MaxDepth < 1 {
				return fmt.Errorf("%w: got %d", engine.ErrInvalidMaxDepth, opts.MaxDepth)
			}
			return runPlayLoop(pos, human, opts)
		},
	}

	cmd.Flags().StringVar(&side, "side", "white", "human side: white or black")
	cmd.Flags().IntVar(&depth, "depth", 0, "engine search depth")
	cmd.Flags().IntVar(&timeMS, "time", 0, "engine time limit in milliseconds")
	return cmd
}

// runPlayLoop mirrors the reference play loop: print the board, end
// the game on checkmate/stalemate, accept a handful of inspection
// commands from the human side, and otherwise let the engine move.
// An illegal move is reported and the loop simply continues — it
// never aborts the game.
func runPlayLoop(pos *engine.Position, human engine.Color, opts engine.Options) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		legal := pos.GenerateLegalMoves()
		if len(legal) == 0 {
			if pos.InCheck(pos.SideToMove) {
				fmt.Printf("checkmate — %s wins\n", pos.SideToMove.Opposite())
			} else {
				fmt.Println("stalemate — draw")
			}
			return nil
		}

		fmt.Print(display.ASCII(pos))
		fmt.Println("fen:", pos.FEN())
		fmt.Println("side to move:", pos.SideToMove)

		if pos.SideToMove != human {
			result, err := engine.NewSearch(pos).Run(opts)
			if err != nil {
				return err
			}
			fmt.Println("engine plays:", result.BestMove.UCI())
			pos.DoMove(result.BestMove)
			continue
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		cmdText := strings.TrimSpace(scanner.Text())

		switch cmdText {
		case "quit", "exit":
			return nil
		case "fen":
			fmt.Println(pos.FEN())
			continue
		case "moves":
			for _, m := range legal {
				fmt.Print(m.UCI(), " ")
			}
			fmt.Println()
			continue
		case "eval":
			fmt.Printf("static_eval_cp %d\n", pos.Evaluate())
			result, err := engine.NewSearch(pos).Run(opts)
			if err != nil {
				return err
			}
			fmt.Printf("search_eval_cp %d  depth %d  bestmove %s  nodes %d  nps %d\n",
				result.EvalCP, result.Depth, result.BestMove.UCI(), result.Nodes, result.NPS)
			continue
		}

		move, ok := findLegalMove(legal, cmdText)
		if !ok {
			fmt.Println("illegal move:", cmdText)
			continue
		}
		pos.DoMove(move)
	}
}

func findLegalMove(legal []engine.Move, uci string) (engine.Move, bool) {
	for _, m := range legal {
		if m.UCI() == uci {
			return m, true
		}
	}
	return engine.Move{}, false
}
