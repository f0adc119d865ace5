package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dircomp/internal/classify"
	"dircomp/internal/tree"
)

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Flatten a directory tree into an ordered listing",
		Long: `Scan classifies every entry under a directory and prints the
flattened, depth-indented listing in the deterministic order used for
comparisons.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]

			walker, err := newWalker()
			if err != nil {
				return err
			}

			flat, err := walker.Flatten(root)
			if err != nil {
				fmt.Println(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
				return err
			}

			fmt.Println(headerStyle.Render(fmt.Sprintf("%s (%d entries)", flat.Root, flat.Len())))
			for _, item := range flat.Items {
				fmt.Printf("%s%s\n", strings.Repeat("  ", item.Depth), renderEntry(item.Entry))
			}
			return nil
		},
	}

	return cmd
}

// newWalker builds a tree walker from the loaded configuration.
func newWalker() (*tree.Walker, error) {
	engine := classify.NewWithConfig(cfg)
	ignores, err := cfg.CompiledIgnores()
	if err != nil {
		return nil, err
	}
	return tree.New(tree.WithEngine(engine), tree.WithIgnore(ignores...)), nil
}

func init() {
	rootCmd.AddCommand(NewScanCmd())
}
