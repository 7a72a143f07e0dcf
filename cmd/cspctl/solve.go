package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcweld/cspsolver/pkg/csp"
	"github.com/arcweld/cspsolver/pkg/problems"
	"github.com/arcweld/cspsolver/pkg/search"
)

var solveProblem string
var solveN int
var solveTimeoutMs int64
var solveFindAll bool
var solveMaxSolutions int

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a single curated problem instance",
	Long: `Solve builds one of the curated problem instances (n_queens,
map_coloring) and runs it through the backtracking solver, printing the
status, solution count, and search metrics.

Sudoku and cryptarithmetic instances are richer than a handful of flags
can express; use "cspctl bench" with a suite file for those.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveProblem, "problem", "n_queens", "problem to solve: n_queens or map_coloring")
	solveCmd.Flags().IntVar(&solveN, "n", 8, "board size for n_queens")
	solveCmd.Flags().Int64Var(&solveTimeoutMs, "timeout-ms", 60_000, "solve timeout in milliseconds")
	solveCmd.Flags().BoolVar(&solveFindAll, "all", false, "find every solution instead of stopping at the first")
	solveCmd.Flags().IntVar(&solveMaxSolutions, "max-solutions", 1, "cap on solutions collected when --all is set")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := search.NewDefaultConfig()
	cfg.TimeoutMs = solveTimeoutMs
	cfg.FindAllSolutions = solveFindAll
	cfg.MaxSolutions = solveMaxSolutions
	if pub := newEventPublisher(); pub != nil {
		cfg.EventPublisher = pub
	}

	switch solveProblem {
	case "n_queens":
		return solveNQueens(cmd.Context(), cfg)
	case "map_coloring":
		return solveMapColoring(cmd.Context(), cfg)
	default:
		return fmt.Errorf("unknown --problem %q", solveProblem)
	}
}

func solveNQueens(ctx context.Context, cfg search.Config) error {
	if problems.ShouldUseMinConflicts(solveN) {
		sol, ok := problems.SolveNQueensMinConflicts(solveN)
		if !ok {
			logger.Warn("min-conflicts exhausted its iteration budget without a solution", "n", solveN)
			fmt.Println("UNSATISFIABLE (min-conflicts budget exhausted)")
			return nil
		}
		fmt.Printf("SATISFIABLE (min-conflicts), %d queens placed\n", len(sol))
		return nil
	}

	p, err := problems.NQueens(solveN)
	if err != nil {
		return err
	}
	return solveAndReport(ctx, p, cfg)
}

func solveMapColoring(ctx context.Context, cfg search.Config) error {
	p, err := problems.MapColoring(problems.AustraliaMap, []string{"red", "green", "blue"})
	if err != nil {
		return err
	}
	return solveAndReport(ctx, p, cfg)
}

func solveAndReport[V comparable](ctx context.Context, p *csp.CSP[V], cfg search.Config) error {
	solver := search.NewBacktrackingSolver(p, cfg)
	res, err := solver.Solve(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s run=%s solutions=%d nodes=%d backtracks=%d elapsed_ms=%d\n",
		res.Status, res.RunID, len(res.Solutions), res.Metrics.NodesExplored, res.Metrics.Backtracks, res.Metrics.ElapsedMs)
	return nil
}
