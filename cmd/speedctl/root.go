package main

import (
	"os"

	"github.com/spf13/cobra"

	"speed/internal/infra/db"
	"speed/internal/observability/logging"
	"speed/pkg/config"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{logger: logging.NewTextLogger()}

	rootCmd := &cobra.Command{
		Use:           "speedctl",
		Short:         "Administer the SPEED article database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	defaultDSN := os.Getenv("DATABASE_URL")
	if db.Driver() == db.DriverSQLite {
		defaultDSN = config.GetEnvString("DATABASE_URL", "speed.db")
	}
	rootCmd.PersistentFlags().StringVar(&ctx.driver, "driver", db.Driver(), "Database driver (postgres or sqlite)")
	rootCmd.PersistentFlags().StringVar(&ctx.dsn, "database", defaultDSN, "Postgres DSN or SQLite file path")
	rootCmd.PersistentFlags().BoolVar(&ctx.jsonOut, "json", false, "Print JSON instead of tables")

	rootCmd.AddCommand(newMigrateCommand(ctx))
	rootCmd.AddCommand(newQueueCommand(ctx))
	rootCmd.AddCommand(newArticlesCommand(ctx))
	rootCmd.AddCommand(newRejectedCommand(ctx))
	rootCmd.AddCommand(newImportCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))

	return rootCmd
}
