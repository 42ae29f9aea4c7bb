package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"speed/internal/domain/entity"
	"speed/internal/handler/http/article"
)

func newQueueCommand(ctx *commandContext) *cobra.Command {
	queueCmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and act on the moderation queue",
	}
	queueCmd.AddCommand(newQueueListCommand(ctx))
	queueCmd.AddCommand(newQueueShowCommand(ctx))
	queueCmd.AddCommand(newQueueAcceptCommand(ctx))
	queueCmd.AddCommand(newQueuePromoteCommand(ctx))
	queueCmd.AddCommand(newQueueRejectCommand(ctx))
	return queueCmd
}

func newQueueListCommand(ctx *commandContext) *cobra.Command {
	var moderated bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List unmoderated submissions (or moderated ones with --moderated)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(s *services) error {
				list := s.workflow.ListUnmoderated
				if moderated {
					list = s.workflow.ListModerated
				}
				queued, err := list(cmd.Context())
				if err != nil {
					return err
				}
				if ctx.jsonOut {
					return writeJSON(cmd, article.NewQueuedArticleDTOs(queued))
				}
				if len(queued) == 0 {
					outf(cmd, "Queue is empty")
					return nil
				}
				rows := make([][]string, 0, len(queued))
				for _, q := range queued {
					rows = append(rows, []string{q.ID, q.Title, q.DOI, q.SubmittedAt.Format(time.DateTime)})
				}
				fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"ID", "Title", "DOI", "Submitted"}, rows, nil))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&moderated, "moderated", false, "List submissions waiting for an analyst")
	return cmd
}

func newQueueShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one queued submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(s *services) error {
				q, err := s.workflow.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOut {
					return writeJSON(cmd, article.NewQueuedArticleDTO(q))
				}
				fmt.Fprint(cmd.OutOrStdout(), renderMetadata(q.Metadata, [][]string{
					{"ID", q.ID},
					{"Moderated", fmt.Sprint(q.IsModerated)},
					{"Submitted", q.SubmittedAt.Format(time.DateTime)},
				}))
				return nil
			})
		},
	}
}

func newQueueAcceptCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <id>",
		Short: "Mark a submission as moderated and hand it to analysts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(s *services) error {
				q, err := s.workflow.MarkModerated(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOut {
					return writeJSON(cmd, article.NewQueuedArticleDTO(q))
				}
				outf(cmd, "Moderated %s (%s)", q.ID, q.Title)
				return nil
			})
		},
	}
}

func newQueuePromoteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "promote <id>",
		Short: "Publish a queued submission as an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(s *services) error {
				a, err := s.workflow.Promote(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOut {
					return writeJSON(cmd, article.NewArticleDTO(a))
				}
				outf(cmd, "Published %s as article %s", args[0], a.ID)
				return nil
			})
		},
	}
}

func newQueueRejectCommand(ctx *commandContext) *cobra.Command {
	var (
		reason string
		stage  string
	)
	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a queued submission and record its DOI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(s *services) error {
				e, err := s.workflow.Reject(cmd.Context(), args[0], reason, entity.RejectionStage(stage))
				if err != nil {
					return err
				}
				if ctx.jsonOut {
					return writeJSON(cmd, article.NewRejectedDTO(e))
				}
				outf(cmd, "Rejected %s (%s) at %s stage", args[0], e.DOI, e.Stage)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Reason recorded with the rejection")
	cmd.Flags().StringVar(&stage, "stage", string(entity.StageModerator), "Rejecting stage (moderator or analyst)")
	return cmd
}

func renderMetadata(m entity.Metadata, extra [][]string) string {
	rows := append(extra,
		[]string{"Title", m.Title},
		[]string{"Authors", joinList(m.Authors)},
		[]string{"Date", m.Date},
		[]string{"Journal", m.Journal},
		[]string{"Volume/Issue", fmt.Sprintf("%d(%d)", m.Volume, m.Issue)},
		[]string{"Pages", fmt.Sprintf("%d-%d", m.PageRange.Start(), m.PageRange.End())},
		[]string{"DOI", m.DOI},
		[]string{"Keywords", joinList(m.Keywords)},
	)
	return renderTable([]string{"Field", "Value"}, rows, nil)
}
