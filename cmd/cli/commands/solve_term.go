package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coursestaff/assignment-solver/pkg/core/services"
)

// SolveTermCmd creates the solveTerm command
func SolveTermCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solveTerm <term_id>",
		Short: "Propose staff assignments for a term and save them as unlocked assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			termID := args[0]
			strategy, _ := cmd.Flags().GetString("strategy")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			app.Logger.Debug("solveTerm command",
				zap.String("term_id", termID),
				zap.String("strategy", strategy),
				zap.Bool("dry_run", dryRun))

			database, err := app.ConnectDatabase()
			if err != nil {
				return err
			}

			result, err := services.SolveTerm(app.Ctx, database, app.Cfg, app.Logger, termID, strategy, dryRun)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\nTerm:     %s (%s)\n", result.TermName, result.TermID)
			fmt.Printf("Strategy: %s\n\n", result.Strategy)

			printCoverageTable(os.Stdout, result.Coverage, result.Assignments, result.SectionLabels, result.StaffNames)
			printSummary(os.Stdout, result.Coverage, result.Success)

			if result.Saved {
				fmt.Printf("✓ Proposed assignments saved\n\n")
			} else {
				fmt.Printf("%sDry run: nothing was saved%s\n\n", colorDim, colorReset)
			}

			return nil
		},
	}

	cmd.Flags().String("strategy", "", "Strategy to use (defaults to defaultStrategy from config)")
	cmd.Flags().Bool("dry-run", false, "Compute the proposal without saving it")

	return cmd
}
