package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"speed/internal/domain/entity"
	"speed/internal/handler/http/article"
	artUC "speed/internal/usecase/article"
)

func newArticlesCommand(ctx *commandContext) *cobra.Command {
	articlesCmd := &cobra.Command{
		Use:   "articles",
		Short: "Browse published articles",
	}
	articlesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List published articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(s *services) error {
				list, err := s.articles.List(cmd.Context())
				if err != nil {
					return err
				}
				return printArticles(cmd, ctx, list)
			})
		},
	})
	articlesCmd.AddCommand(&cobra.Command{
		Use:   "search <keyword>[,<keyword>...]",
		Short: "List articles tagged with any of the keywords (case-sensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords := artUC.ParseKeywords(strings.Join(args, ","))
			if len(keywords) == 0 {
				return errors.New("at least one keyword is required")
			}
			return ctx.withServices(func(s *services) error {
				list, err := s.articles.FilterByKeywords(cmd.Context(), keywords)
				if err != nil {
					return err
				}
				return printArticles(cmd, ctx, list)
			})
		},
	})
	articlesCmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(s *services) error {
				a, err := s.articles.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOut {
					return writeJSON(cmd, article.NewArticleDTO(a))
				}
				fmt.Fprint(cmd.OutOrStdout(), renderMetadata(a.Metadata, [][]string{{"ID", a.ID}}))
				return nil
			})
		},
	})
	return articlesCmd
}

func printArticles(cmd *cobra.Command, ctx *commandContext, list []*entity.Article) error {
	if ctx.jsonOut {
		return writeJSON(cmd, article.NewArticleDTOs(list))
	}
	if len(list) == 0 {
		outf(cmd, "No articles found")
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{a.ID, a.Title, a.DOI, joinList(a.Keywords)})
	}
	fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"ID", "Title", "DOI", "Keywords"}, rows, nil))
	return nil
}

func newRejectedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rejected",
		Short: "List rejected submissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(s *services) error {
				list, err := s.workflow.ListRejected(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOut {
					return writeJSON(cmd, article.NewRejectedDTOs(list))
				}
				if len(list) == 0 {
					outf(cmd, "No rejected submissions")
					return nil
				}
				rows := make([][]string, 0, len(list))
				for _, e := range list {
					rows = append(rows, []string{e.DOI, e.Title, string(e.Stage), e.Reason})
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"DOI", "Title", "Stage", "Reason"}, rows, nil))
				return nil
			})
		},
	}
}
