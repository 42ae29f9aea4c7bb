package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show queue and store sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(s *services) error {
				d, err := s.digest.Snapshot(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOut {
					return writeJSON(cmd, d)
				}
				rows := [][]string{
					{"Unmoderated", strconv.FormatInt(d.Unmoderated, 10)},
					{"Moderated", strconv.FormatInt(d.Moderated, 10)},
					{"Published", strconv.FormatInt(d.Articles, 10)},
					{"Rejected", strconv.FormatInt(d.Rejected, 10)},
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Store", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}
}
