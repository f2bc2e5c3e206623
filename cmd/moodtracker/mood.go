package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourname/moodtracker/internal"
	"github.com/yourname/moodtracker/internal/service"
)

func newMoodCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Manage daily happiness entries",
	}
	cmd.AddCommand(newMoodAddCmd(app))
	cmd.AddCommand(newMoodListCmd(app))
	cmd.AddCommand(newMoodEditCmd(app))
	cmd.AddCommand(newMoodDeleteCmd(app))
	return cmd
}

func newMoodAddCmd(app *App) *cobra.Command {
	var (
		date  string
		score int
	)

	cmd := &cobra.Command{
		Use:   "add --date <date> --score <score>",
		Short: "Log the happiness score (-2..2) for a date, replacing any earlier one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := service.LogHappiness(cmd.Context(), app.HappinessRepo(), date, score)
			if err != nil {
				return err
			}
			app.Logger().Infof("logged happiness %d for %s", score, date)
			fmt.Fprintln(cmd.OutOrStdout(), renderHappinessTable(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&score, "score", 0, "happiness score from -2 to 2")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}

func newMoodListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List happiness entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := service.ListHappiness(cmd.Context(), app.HappinessRepo())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHappinessTable(entries))
			return nil
		},
	}
}

func newMoodEditCmd(app *App) *cobra.Command {
	var (
		date     string
		score    int
		newDate  string
		newScore int
	)

	cmd := &cobra.Command{
		Use:   "edit --date <date> --score <score> [--new-date <date>] [--new-score <score>]",
		Short: "Replace the entry identified by date and score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			old := internal.HappinessEntry{Date: date, Happiness: score}

			targetDate := old.Date
			if cmd.Flags().Changed("new-date") {
				targetDate = newDate
			}
			targetScore := old.Happiness
			if cmd.Flags().Changed("new-score") {
				targetScore = newScore
			}

			entries, err := service.ReviseHappiness(cmd.Context(), app.HappinessRepo(), old, targetDate, targetScore)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHappinessTable(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date of the entry to edit")
	cmd.Flags().IntVar(&score, "score", 0, "current score of the entry to edit")
	cmd.Flags().StringVar(&newDate, "new-date", "", "move the entry to this date")
	cmd.Flags().IntVar(&newScore, "new-score", 0, "change the score to this value")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}

func newMoodDeleteCmd(app *App) *cobra.Command {
	var (
		dates  []string
		scores []int
	)

	cmd := &cobra.Command{
		Use:   "delete --date <date> --score <score> [--date <date> --score <score>...]",
		Short: "Delete the entries identified by date and score pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(dates) != len(scores) {
				return fmt.Errorf("expected matching --date and --score pairs, got %d dates and %d scores", len(dates), len(scores))
			}

			victims := make([]internal.HappinessEntry, 0, len(dates))
			for i := range dates {
				victims = append(victims, internal.HappinessEntry{Date: dates[i], Happiness: scores[i]})
			}

			entries, err := service.RemoveHappiness(cmd.Context(), app.HappinessRepo(), victims)
			if err != nil {
				return err
			}
			app.Logger().Infof("deleted %d happiness entries", len(victims))
			fmt.Fprintln(cmd.OutOrStdout(), renderHappinessTable(entries))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&dates, "date", nil, "date of an entry to delete (repeatable)")
	cmd.Flags().IntSliceVar(&scores, "score", nil, "score of an entry to delete (repeatable)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}
