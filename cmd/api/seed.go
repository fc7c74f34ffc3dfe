package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	authadapter "taskmanager/internal/adapter/auth"
	dbadapter "taskmanager/internal/adapter/db"
	appservice "taskmanager/internal/app/service"
	"taskmanager/internal/config"
)

func seedCmd() *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all users with the ones listed in the seed file",
		Long: `Replace all users with the ones listed in the seed file.

Passwords are never stored in the file; each user names the environment
variable holding its password:

  users:
    - name: Nemo
      role: Admin
      password_env: NEMO_PASSWORD`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if seedPath == "" {
				seedPath = cfg.SeedFile
			}

			users, err := config.LoadSeedUsers(seedPath, os.LookupEnv)
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

			if err := dbadapter.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			authService := appservice.NewAuthService(
				dbadapter.NewUserRepository(db),
				authadapter.NewBcryptHasher(cfg.BcryptCost),
				authadapter.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL),
			)
			if err := authService.Seed(cmd.Context(), users); err != nil {
				return err
			}

			zap.L().Info("users seeded", zap.Int("count", len(users)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&seedPath, "file", "f", "", "seed file (defaults to SEED_FILE)")
	return cmd
}
