package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coursestaff/assignment-solver/pkg/core/solver"
	"github.com/coursestaff/assignment-solver/pkg/snapshot"
)

const outputTable = "table"

// SolveFileCmd creates the solveFile command
func SolveFileCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solveFile <path>",
		Short: "Solve a YAML or JSON snapshot file without touching the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			strategyName, _ := cmd.Flags().GetString("strategy")
			output, _ := cmd.Flags().GetString("output")

			if strategyName == "" {
				strategyName = app.Cfg.DefaultStrategy
			}

			app.Logger.Debug("solveFile command",
				zap.String("path", path),
				zap.String("strategy", strategyName),
				zap.String("output", output))

			strategy, err := solver.LookupStrategy(strategyName, app.Cfg.SolverWeights())
			if err != nil {
				return err
			}

			data, err := snapshot.Load(path)
			if err != nil {
				return err
			}

			outcome, err := solver.Solve(data, strategy)
			if err != nil {
				return fmt.Errorf("cannot solve %s: %w", path, err)
			}

			app.Logger.Info("Solved snapshot file",
				zap.String("path", path),
				zap.String("strategy", outcome.Strategy),
				zap.Bool("success", outcome.Success))

			if output != outputTable {
				return snapshot.WriteAssignments(os.Stdout, outcome, output)
			}

			fmt.Printf("\nSnapshot: %s\n", path)
			fmt.Printf("Strategy: %s\n\n", outcome.Strategy)
			printCoverageTable(os.Stdout, outcome.Coverage, outcome.Assignments, nil, nil)
			printSummary(os.Stdout, outcome.Coverage, outcome.Success)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("strategy", "", "Strategy to use (defaults to defaultStrategy from config)")
	cmd.Flags().StringP("output", "o", outputTable, "Output format: table, json or yaml")

	return cmd
}
