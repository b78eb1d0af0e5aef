package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"roster/internal/platform/postgres"
)

func migrateCommand() *cobra.Command {
	var down int
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := commonRun()
			if err != nil {
				return err
			}
			if cfg.Database.URL == "" {
				return fmt.Errorf("DATABASE_URL is required to migrate")
			}
			db, err := postgres.Open(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if down > 0 {
				n, err := postgres.Rollback(db, down)
				if err != nil {
					return err
				}
				log.Info("reverted migrations", "count", n)
				return nil
			}
			n, err := postgres.Migrate(db)
			if err != nil {
				return err
			}
			log.Info("applied migrations", "count", n)
			return nil
		},
	}
	cmd.Flags().IntVar(&down, "down", 0, "revert this many migrations instead of applying")
	return cmd
}
