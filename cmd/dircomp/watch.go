package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dircomp/internal/watch"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [directory...]",
		Short: "Report changes under comparison roots",
		Long: `Watch registers one or more comparison roots and prints a line for
every filesystem change beneath them until interrupted, signalling
when a flattened view has gone stale.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher, err := watch.New()
			if err != nil {
				return err
			}

			for _, root := range args {
				if err := watcher.Add(root); err != nil {
					fmt.Println(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
					return err
				}
			}

			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			fmt.Println(headerStyle.Render("Watching for changes, Ctrl+C to stop"))
			for {
				select {
				case change, ok := <-watcher.Changes():
					if !ok {
						return nil
					}
					fmt.Printf("%s %s %s\n",
						change.Timestamp.Format("15:04:05"),
						mimeStyle.Render(change.Op.String()),
						change.Path)
				case <-sigChan:
					fmt.Println("Stopping.")
					return nil
				}
			}
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(NewWatchCmd())
}
