package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcweld/cspsolver/pkg/bench"
)

var benchFile string

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a YAML-described suite of independent solves",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchFile, "file", "", "path to a suite YAML file (required)")
	benchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(benchFile)
	if err != nil {
		return fmt.Errorf("reading suite file: %w", err)
	}
	suite, err := bench.ParseSuite(data)
	if err != nil {
		return err
	}

	report, err := bench.RunSuite(cmd.Context(), suite)
	if err != nil {
		return err
	}

	fmt.Printf("suite %q: %d runs\n", report.SuiteName, len(report.Outcomes))
	for _, o := range report.Outcomes {
		if o.Err != nil {
			fmt.Printf("  %-20s %s: %v\n", o.Name, o.Status, o.Err)
			continue
		}
		fmt.Printf("  %-20s %s  nodes=%d backtracks=%d elapsed_ms=%d\n",
			o.Name, o.Status, o.Metrics.NodesExplored, o.Metrics.Backtracks, o.Metrics.ElapsedMs)
	}
	return nil
}
