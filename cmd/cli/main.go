package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coursestaff/assignment-solver/cmd/cli/commands"
	"github.com/coursestaff/assignment-solver/internal/config"
	"github.com/coursestaff/assignment-solver/pkg/utils/logging"
)

var (
	env string
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "solver",
		Short: "Course staffing solver - propose help-staff assignments for course sections",
		Long: `A CLI for proposing teaching-assistant assignments for a term's course sections.
Locked assignments are always respected; proposals are saved as unlocked assignments
that coordinators can review, lock or replace.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (selects solver_config.<env>.yaml)")

	rootCmd.AddCommand(commands.SolveTermCmd(app))
	rootCmd.AddCommand(commands.SolveFileCmd(app))
	rootCmd.AddCommand(commands.StrategiesCmd(app))
	rootCmd.AddCommand(commands.MigrateCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		app.Close()
		os.Exit(1)
	}
}

// initApp sets up config and logger. The database connects lazily in the commands that need it.
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger, err = logging.InitLogger(env, app.Cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application",
		zap.String("environment", env),
		zap.String("default_strategy", app.Cfg.DefaultStrategy))

	return nil
}
