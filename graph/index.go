// ABOUTME: Label index mapping node labels to the nodes that carry them
// ABOUTME: Preserves creation order so the first entry is the first occurrence

package graph

import "sort"

// LabelIndex is a multi-valued map from label to node IDs.
// IDs for a label are kept in the order they were added.
type LabelIndex struct {
	ids map[string][]NodeID
}

// NewLabelIndex creates an empty label index
func NewLabelIndex() *LabelIndex {
	return &LabelIndex{ids: make(map[string][]NodeID)}
}

// Add appends id to the entries for label
func (x *LabelIndex) Add(label string, id NodeID) {
	x.ids[label] = append(x.ids[label], id)
}

// Lookup returns the node IDs carrying label, or nil if none do.
// The returned slice must not be modified.
func (x *LabelIndex) Lookup(label string) []NodeID {
	return x.ids[label]
}

// Has reports whether any node carries label
func (x *LabelIndex) Has(label string) bool {
	return len(x.ids[label]) > 0
}

// First returns the first-created node carrying label
func (x *LabelIndex) First(label string) (NodeID, bool) {
	ids := x.ids[label]
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// Labels returns all distinct labels, sorted
func (x *LabelIndex) Labels() []string {
	labels := make([]string, 0, len(x.ids))
	for l := range x.ids {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Len returns the number of distinct labels
func (x *LabelIndex) Len() int {
	return len(x.ids)
}

// BuildLabelIndex indexes every node of g in ID order
func BuildLabelIndex(g Graph) *LabelIndex {
	x := NewLabelIndex()
	g.ForEachNode(func(n *Node) {
		x.Add(n.Label, n.ID)
	})
	return x
}
