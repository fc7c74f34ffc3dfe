package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "taskmanager/internal/adapter/db"
	"taskmanager/internal/config"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables if they do not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			db, err := dbadapter.ConnectDB(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					zap.L().Warn("failed to close mysql connection", zap.Error(err))
				}
			}()

			return dbadapter.Migrate(cmd.Context(), db)
		},
	}
}
