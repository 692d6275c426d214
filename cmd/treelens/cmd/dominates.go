// ABOUTME: dominates subcommand checking label dominance per tree
// ABOUTME: Uses first occurrences by default and all pairs with --any

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateek/treelens/query"
)

func newDominatesCmd(a *app) *cobra.Command {
	var anyPair bool

	c := &cobra.Command{
		Use:   "dominates FILE A B",
		Short: "Check whether label A dominates label B in each tree",
		Long: `For each tree in FILE, report whether the first node labeled A
reaches the first node labeled B by following child edges.

With --any, report whether some node labeled A dominates some node
labeled B instead.

Examples:
  treelens dominates trees.txt VP NN
  treelens dominates --any trees.txt NP NN`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.readTrees(cmd, args[0])
			if err != nil {
				return err
			}

			check := query.Dominates
			if anyPair {
				check = query.DominatesAny
			}

			out := cmd.OutOrStdout()
			for _, res := range results {
				if res.Err != nil {
					fmt.Fprintf(out, "line %d: error: %v\n", res.Line, res.Err)
					continue
				}
				ok, err := check(res.Tree.Graph, res.Tree.Index, args[1], args[2])
				switch {
				case errors.Is(err, query.ErrLabelNotFound):
					fmt.Fprintf(out, "line %d: false (%v)\n", res.Line, err)
				case err != nil:
					return err
				default:
					fmt.Fprintf(out, "line %d: %t\n", res.Line, ok)
				}
			}
			return nil
		},
	}
	c.Flags().BoolVar(&anyPair, "any", false, "match any pair of occurrences instead of the first")
	return c
}
