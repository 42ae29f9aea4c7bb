package main

import (
	"github.com/spf13/cobra"

	"speed/internal/infra/db"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create (or with --down, drop) the article tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(s *services) error {
				if down {
					if err := db.MigrateDown(s.conn); err != nil {
						return err
					}
					outf(cmd, "Dropped all tables")
					return nil
				}
				if err := db.MigrateUp(s.conn, ctx.driver); err != nil {
					return err
				}
				outf(cmd, "Schema is up to date (%s)", ctx.driver)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "Drop every table (deletes all data)")
	return cmd
}
