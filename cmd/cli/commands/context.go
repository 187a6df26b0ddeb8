package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/coursestaff/assignment-solver/internal/config"
	"github.com/coursestaff/assignment-solver/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database *postgres.DB
	Logger   *zap.Logger
	Ctx      context.Context
}

// ConnectDatabase opens the Postgres pool on first use. Commands that solve files offline never call it.
func (app *AppContext) ConnectDatabase() (*postgres.DB, error) {
	if app.Database != nil {
		return app.Database, nil
	}

	app.Logger.Info("Connecting to database")
	database, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Database = database
	app.Logger.Debug("Database connected successfully")

	return database, nil
}

// Close releases the database pool if one was opened
func (app *AppContext) Close() {
	if app.Database != nil {
		app.Database.Close()
		app.Database = nil
	}
}
