package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/glaze/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run every task, then re-run a task whenever one of its inputs changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			delay, _ := cmd.Flags().GetDuration("delay")
			noInitial, _ := cmd.Flags().GetBool("no-initial")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Options:   c.opts,
				Delay:     delay,
				NoInitial: noInitial,
			})
		},
	}
	cmd.Flags().Duration("delay", 0, "Debounce window for file events (default: config value or 200ms)")
	cmd.Flags().Bool("no-initial", false, "Skip the startup run and only react to changes")
	return cmd
}
