// ABOUTME: version subcommand
// ABOUTME: Prints the treelens version

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateek/treelens"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the treelens version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "treelens %s\n", treelens.Version)
			return nil
		},
	}
}
