package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"speed/internal/infra/importer"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Queue submissions from a JSON array file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			return ctx.withServices(func(s *services) error {
				im := &importer.Importer{Submitter: s.workflow, DryRun: dryRun}
				rep, err := im.Import(cmd.Context(), r)
				if ctx.jsonOut {
					if jerr := writeJSON(cmd, newImportSummary(rep)); jerr != nil {
						return jerr
					}
					return err
				}

				verb := "Queued"
				if dryRun {
					verb = "Valid"
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable(
					[]string{"Result", "Count"},
					[][]string{
						{verb, strconv.Itoa(rep.Queued)},
						{"Invalid", strconv.Itoa(rep.Invalid)},
						{"Failed", strconv.Itoa(rep.Failed)},
					},
					[]columnAlignment{alignLeft, alignRight},
				))
				for _, re := range rep.Errors {
					fmt.Fprintln(cmd.ErrOrStderr(), re.Error())
				}
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate records without queueing them")
	return cmd
}

type importSummary struct {
	Queued  int      `json:"queued"`
	Invalid int      `json:"invalid"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

func newImportSummary(rep importer.Report) importSummary {
	out := importSummary{Queued: rep.Queued, Invalid: rep.Invalid, Failed: rep.Failed, Errors: []string{}}
	for _, re := range rep.Errors {
		out.Errors = append(out.Errors, re.Error())
	}
	return out
}
