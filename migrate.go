package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isaacwassouf/cricket-betting-service/config"
	"github.com/isaacwassouf/cricket-betting-service/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the service tables and exit",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.DBDriver, cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}
	defer db.Close()

	return db.Migrate(context.Background())
}
