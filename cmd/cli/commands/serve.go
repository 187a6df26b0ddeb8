package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/coursestaff/assignment-solver/pkg/api"
	"github.com/coursestaff/assignment-solver/pkg/core/services"
)

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for triggering solves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = app.Cfg.Server.Address
			}

			database, err := app.ConnectDatabase()
			if err != nil {
				return err
			}

			solveTerm := func(ctx context.Context, termID, strategyName string, dryRun bool) (*services.SolveTermResult, error) {
				return services.SolveTerm(ctx, database, app.Cfg, app.Logger, termID, strategyName, dryRun)
			}

			gin.SetMode(gin.ReleaseMode)
			handler := api.NewHandler(solveTerm, app.Cfg.DefaultStrategy, app.Cfg.SolverWeights(), app.Logger)
			router := api.NewRouter(handler, app.Logger)

			ctx, stop := signal.NotifyContext(app.Ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return api.ListenAndServe(ctx, addr, router, app.Logger)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to server.address from config)")

	return cmd
}
