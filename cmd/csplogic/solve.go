package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	csplog "github.com/gitrdm/csplogic/internal/log"
	"github.com/gitrdm/csplogic/internal/problems"
	"github.com/gitrdm/csplogic/pkg/csp"
)

// newSolveCmd groups the per-problem solve subcommands under
// `csplogic solve`, mirroring operator-cli's command-group-per-file
// convention (cmd/operator-cli/bundle).
func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a built-in problem instance and print the result",
	}
	cmd.AddCommand(newSolveSudokuCmd(), newSolveColorCmd(), newSolveQueensCmd())
	return cmd
}

func solverConfig(cmd *cobra.Command) csp.Config {
	cfg := csp.DefaultConfig()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logger = csplog.New(logrus.StandardLogger())
	}
	return cfg
}

func newSolveSudokuCmd() *cobra.Command {
	var puzzle string
	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve a Sudoku puzzle given as an 81-character string",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := problems.Sudoku(puzzle)
			if err != nil {
				return err
			}
			sol, stats, err := csp.Solve(c, solverConfig(cmd))
			if err != nil {
				return err
			}
			if stats.Status != csp.StatusSolved {
				return fmt.Errorf("csplogic: %s", stats.Status)
			}
			fmt.Println(problems.SolutionToGrid(sol))
			return nil
		},
	}
	cmd.Flags().StringVarP(&puzzle, "puzzle", "p", "", "81-character puzzle string, '0' or '.' for blanks")
	if err := cmd.MarkFlagRequired("puzzle"); err != nil {
		panic(err)
	}
	return cmd
}

func newSolveColorCmd() *cobra.Command {
	var n, k int
	var p float64
	var seed int64
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Solve a random graph-coloring instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := problems.RandomGraphColoring(n, p, k, seed)
			if err != nil {
				return err
			}
			_, stats, err := csp.Solve(c, solverConfig(cmd))
			if err != nil {
				return err
			}
			fmt.Printf("status=%s assignments=%d backtracks=%d\n", stats.Status, stats.Assignments(), stats.Backtracks())
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "vertices", 20, "vertex count")
	cmd.Flags().Float64Var(&p, "edge-prob", 0.3, "edge probability")
	cmd.Flags().IntVar(&k, "colors", 3, "color count")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random graph seed")
	return cmd
}

func newSolveQueensCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Solve n-queens with min-conflicts local search",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := problems.NQueens(n)
			if err != nil {
				return err
			}
			cfg := solverConfig(cmd)
			cfg.Inference = csp.InferenceMinConflicts
			sol, stats, err := csp.Solve(c, cfg)
			if err != nil {
				return err
			}
			if stats.Status != csp.StatusSolved {
				return fmt.Errorf("csplogic: %s", stats.Status)
			}
			for i := 0; i < n; i++ {
				fmt.Printf("col %d -> row %d\n", i, sol[csp.VarID(i)])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 8, "board size / queen count")
	return cmd
}
