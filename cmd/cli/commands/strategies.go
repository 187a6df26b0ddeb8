package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursestaff/assignment-solver/pkg/core/solver"
)

// StrategiesCmd creates the strategies command
func StrategiesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available solver strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weights := app.Cfg.SolverWeights()

			fmt.Println("\nAvailable strategies:")
			for _, name := range solver.StrategyNames() {
				marker := "  "
				if name == app.Cfg.DefaultStrategy {
					marker = "* "
				}

				detail := "score 0 for every candidate"
				if name == solver.StrategyWeighted {
					detail = fmt.Sprintf("professor weight %d, staff weight %d", weights.Professor, weights.Staff)
				}
				fmt.Printf("  %s%-10s %s%s%s\n", marker, name, colorDim, detail, colorReset)
			}
			fmt.Println("\n  * default")

			return nil
		},
	}
}
