package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourname/moodtracker/internal/service"
)

func newMediaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage media consumption entries",
	}
	cmd.AddCommand(newMediaAddCmd(app))
	cmd.AddCommand(newMediaListCmd(app))
	cmd.AddCommand(newMediaEditCmd(app))
	cmd.AddCommand(newMediaDeleteCmd(app))
	return cmd
}

func newMediaAddCmd(app *App) *cobra.Command {
	var (
		date    string
		kind    string
		minutes int
		title   string
	)

	cmd := &cobra.Command{
		Use:   "add --date <date> --type <type> --minutes <minutes> [--title <title>]",
		Short: "Log a book, video, podcast or music session for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := []service.MediaRequest{{
				Date:     date,
				Type:     kind,
				Duration: minutes,
				Title:    title,
			}}
			entries, err := service.LogMedia(cmd.Context(), app.MediaRepo(), reqs)
			if err != nil {
				return err
			}
			app.Logger().Infof("logged %s entry for %s", kind, date)
			fmt.Fprintln(cmd.OutOrStdout(), renderMediaTable(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&kind, "type", "", "media type: book, video, podcast or music")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "duration in minutes")
	cmd.Flags().StringVar(&title, "title", "", "display title for the entry")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

func newMediaListCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List media entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := service.ListMedia(cmd.Context(), app.MediaRepo(), date)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMediaTable(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "only show entries for this date")
	return cmd
}

func newMediaEditCmd(app *App) *cobra.Command {
	var (
		date    string
		kind    string
		minutes int
		title   string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of the entry with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.MediaRequest{
				Date:     date,
				Type:     kind,
				Duration: minutes,
				Title:    title,
			}
			// An explicit empty --title clears the stored title instead of
			// keeping it.
			if cmd.Flags().Changed("title") && title == "" {
				req.ClearTitle = true
			}
			entries, err := service.ReviseMedia(cmd.Context(), app.MediaRepo(), args[0], req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMediaTable(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "move the entry to this date")
	cmd.Flags().StringVar(&kind, "type", "", "change the media type")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "change the duration")
	cmd.Flags().StringVar(&title, "title", "", "change the title; pass an empty value to clear it")
	return cmd
}

func newMediaDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete the entries with the given ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := service.RemoveMedia(cmd.Context(), app.MediaRepo(), args)
			if err != nil {
				return err
			}
			app.Logger().Infof("deleted %d media entries", len(args))
			fmt.Fprintln(cmd.OutOrStdout(), renderMediaTable(entries))
			return nil
		},
	}
}
