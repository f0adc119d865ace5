package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dircomp/internal/classify"
	"dircomp/internal/session"
	"dircomp/pkg/types"
)

// NewCompareCmd creates the compare command
func NewCompareCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "compare [left] [right]",
		Short: "Pair two roots and print their flattened views",
		Long: `Compare classifies two root paths, verifies they are comparable
(same kind, same media type for files, symlinks resolved), and for
directory roots prints both flattened listings in pairing order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := classify.NewWithConfig(cfg)

			left := engine.Classify(args[0])
			right := engine.Classify(args[1])

			if name == "" {
				name = cfg.Session.Name
			}
			sess, err := session.New(name, left, right, engine)
			if err != nil {
				fmt.Println(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
				return err
			}

			fmt.Println(headerStyle.Render(fmt.Sprintf("session %q: %s", sess.Name, sess.Type())))

			if !left.IsDir() {
				// Two comparable non-directory roots: nothing to flatten.
				fmt.Printf("left:  %s\n", renderEntry(left))
				fmt.Printf("right: %s\n", renderEntry(right))
				return nil
			}

			flatLeft, flatRight, err := sess.Flatten()
			if err != nil {
				fmt.Println(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
				return err
			}

			printFlat("left", flatLeft)
			printFlat("right", flatRight)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "session name")

	return cmd
}

func printFlat(side string, flat *types.FlattenedTree) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s: %s (%d entries)", side, flat.Root, flat.Len())))
	for _, item := range flat.Items {
		fmt.Printf("%s%s\n", strings.Repeat("  ", item.Depth), renderEntry(item.Entry))
	}
}

func init() {
	rootCmd.AddCommand(NewCompareCmd())
}
