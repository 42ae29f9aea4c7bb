package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"speed/internal/infra/adapter/persistence"
	"speed/internal/infra/db"
	artUC "speed/internal/usecase/article"
	"speed/internal/usecase/digest"
	"speed/internal/usecase/workflow"
)

// commandContext carries the global flags and opens the database on demand.
type commandContext struct {
	driver  string
	dsn     string
	jsonOut bool
	logger  *slog.Logger
}

type services struct {
	conn     *sql.DB
	stores   persistence.Stores
	workflow *workflow.Service
	articles *artUC.Service
	digest   *digest.Service
}

// withServices opens the database, runs fn and closes the database.
func (c *commandContext) withServices(fn func(s *services) error) error {
	conn, err := db.Connect(c.driver, c.dsn)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			c.logger.Warn("failed to close database", slog.Any("error", cerr))
		}
	}()

	stores, err := persistence.NewStores(conn, c.driver)
	if err != nil {
		return err
	}
	return fn(&services{
		conn:   conn,
		stores: stores,
		workflow: &workflow.Service{
			Queue:    stores.Queue,
			Articles: stores.Articles,
			Rejected: stores.Rejected,
		},
		articles: &artUC.Service{Repo: stores.Articles},
		digest: &digest.Service{
			Queue:    stores.Queue,
			Articles: stores.Articles,
			Rejected: stores.Rejected,
		},
	})
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
