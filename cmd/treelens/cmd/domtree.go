// ABOUTME: domtree subcommand printing dominator tree details
// ABOUTME: Shows immediate dominator, depth and subtree size per node

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prateek/treelens/graph"
	"github.com/prateek/treelens/query"
	"github.com/prateek/treelens/treebank"
)

func newDomtreeCmd(a *app) *cobra.Command {
	var label string

	c := &cobra.Command{
		Use:   "domtree FILE",
		Short: "Print the dominator tree of each tree",
		Long: `For each tree in FILE, print every node with its immediate dominator,
its depth in the dominator tree and the size of the subtree it dominates.

With --label, print only nodes carrying that label, each followed by its
dominator chain.

Examples:
  treelens domtree trees.txt
  treelens domtree --label NP trees.txt`,
		Args: cobra.ExactArgs(1),
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
				if label != "" {
					writeLabelDominators(out, res, label)
					continue
				}
				writeDomtree(out, res)
			}
			return nil
		},
	}
	c.Flags().StringVar(&label, "label", "", "only report nodes with this label")
	return c
}

func writeDomtree(out io.Writer, res treebank.Result) {
	g := res.Tree.Graph
	idom := graph.Dominators(g)
	depth := graph.DominatorDepth(graph.DominatorTree(idom))
	sizes := graph.SubtreeSize(g)

	fmt.Fprintf(out, "line %d:\n", res.Line)
	g.ForEachNode(func(n *graph.Node) {
		if _, ok := idom[n.ID]; !ok {
			return
		}
		fmt.Fprintf(out, "  %d\t%s\tidom=%d\tdepth=%d\tsize=%d\n",
			n.ID, n.Label, idom[n.ID], depth[n.ID], sizes[n.ID])
	})
}

func writeLabelDominators(out io.Writer, res treebank.Result, label string) {
	g := res.Tree.Graph
	ids := res.Tree.Index.Lookup(label)
	if len(ids) == 0 {
		fmt.Fprintf(out, "line %d: %v: %q\n", res.Line, query.ErrLabelNotFound, label)
		return
	}

	idom := graph.Dominators(g)
	sizes := graph.SubtreeSizeOf(g, ids)

	fmt.Fprintf(out, "line %d:\n", res.Line)
	for _, id := range ids {
		var chain []string
		for _, d := range graph.DominatorPath(idom, id) {
			if d == 0 {
				continue
			}
			chain = append(chain, fmt.Sprintf("%s#%d", g.GetNode(d).Label, d))
		}
		fmt.Fprintf(out, "  %d\t%s\tsize=%d\t%s\n", id, label, sizes[id], strings.Join(chain, " < "))
	}
}
