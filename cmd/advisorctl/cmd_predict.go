package main

import (
	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-advisor/internal/advisor"
	syncx "github.com/mind-engage/mindengage-advisor/internal/sync"
)

func newPredictCommand(g *globalFlags) *cobra.Command {
	var studentID, courseID string
	var record bool
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a student's grade and risk for a course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, store, err := g.open(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			var opts []advisor.Option
			if record {
				opts = append(opts, advisor.WithEvents(syncx.NewEventRepo(conn, "cli")))
			}
			p, err := advisor.New(store, opts...).PredictFor(cmd.Context(), studentID, courseID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().StringVar(&studentID, "student", "", "Student id")
	cmd.Flags().StringVar(&courseID, "course", "", "Course id")
	cmd.Flags().BoolVar(&record, "record", false, "Write the result to the event log")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("course")
	return cmd
}

func newRecommendCommand(g *globalFlags) *cobra.Command {
	var studentID string
	var limit int
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "List course recommendations for a student",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, store, err := g.open(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			out, err := advisor.New(store, advisor.WithTopN(limit)).RecommendFor(cmd.Context(), studentID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&studentID, "student", "", "Student id")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of courses")
	_ = cmd.MarkFlagRequired("student")
	return cmd
}
