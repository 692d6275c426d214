// ABOUTME: reach subcommand listing distances from a label
// ABOUTME: Prints the chain up to the root with --path

package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prateek/treelens/graph"
	"github.com/prateek/treelens/query"
	"github.com/prateek/treelens/treebank"
)

func newReachCmd(a *app) *cobra.Command {
	var showPath bool

	c := &cobra.Command{
		Use:   "reach FILE LABEL",
		Short: "List what the first node labeled LABEL reaches",
		Long: `For each tree in FILE, list every node reachable from the first node
labeled LABEL with its distance in edges.

With --path, print the chain from that node up to the root instead.

Examples:
  treelens reach trees.txt VP
  treelens reach --path trees.txt NN`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.readTrees(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range results {
				if res.Err != nil {
					fmt.Fprintf(out, "line %d: error: %v\n", res.Line, res.Err)
					continue
				}
				if showPath {
					err = writeAncestry(out, res, args[1])
				} else {
					err = writeDistances(out, res, args[1])
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().BoolVar(&showPath, "path", false, "print the path to the root")
	return c
}

func writeDistances(out io.Writer, res treebank.Result, label string) error {
	g := res.Tree.Graph
	dist, err := query.Distances(g, res.Tree.Index, label)
	if errors.Is(err, query.ErrLabelNotFound) {
		fmt.Fprintf(out, "line %d: %v\n", res.Line, err)
		return nil
	}
	if err != nil {
		return err
	}

	ids := make([]graph.NodeID, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if dist[ids[i]] != dist[ids[j]] {
			return dist[ids[i]] < dist[ids[j]]
		}
		return ids[i] < ids[j]
	})

	fmt.Fprintf(out, "line %d: %s reaches %d node(s)\n", res.Line, label, len(ids))
	for _, id := range ids {
		fmt.Fprintf(out, "  %d\t%s\t%d\n", id, g.GetNode(id).Label, dist[id])
	}
	return nil
}

func writeAncestry(out io.Writer, res treebank.Result, label string) error {
	g := res.Tree.Graph
	chain, err := query.Ancestry(g, res.Tree.Index, label)
	if errors.Is(err, query.ErrLabelNotFound) {
		fmt.Fprintf(out, "line %d: %v\n", res.Line, err)
		return nil
	}
	if err != nil {
		return err
	}

	steps := make([]string, len(chain))
	for i, id := range chain {
		steps[i] = fmt.Sprintf("%s#%d", g.GetNode(id).Label, id)
	}
	fmt.Fprintf(out, "line %d: %s\n", res.Line, strings.Join(steps, " < "))
	return nil
}
