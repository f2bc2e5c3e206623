package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourname/moodtracker/internal/service"
)

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day <date>",
		Short: "Show the happiness score and media consumed on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := service.Summarize(cmd.Context(), app.HappinessRepo(), app.MediaRepo(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderDaySummary(summary))
			return nil
		},
	}
}
