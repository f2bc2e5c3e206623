package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourname/moodtracker/internal/schema"
)

func newRootCmd() *cobra.Command {
	app := &App{}
	var dataDir string

	root := &cobra.Command{
		Use:           "moodtracker",
		Short:         "Track a daily happiness score and the media you consumed",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(dataDir)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close()
		},
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the store files (default \"data\")")

	root.AddCommand(newMoodCmd(app))
	root.AddCommand(newMediaCmd(app))
	root.AddCommand(newDayCmd(app))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// printError shows validation failures verbatim, one message per line.
// Everything else gets a single Error line.
func printError(err error) {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		for _, msg := range verr.Errors {
			fmt.Fprintln(os.Stderr, msg)
		}
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}
