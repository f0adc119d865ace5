package types

// TreeItem pairs a classified entry with its depth below the traversal
// root. Direct children of the root have depth 0.
type TreeItem struct {
	Depth int
	Entry Entry
}

// FlattenedTree is a pre-order linearization of a directory subtree: every
// entry found under Root, in deterministic byte-sorted sibling order, with
// subdirectory contents interleaved immediately after their parent. The
// sequence owns its entries; nothing is shared with the live filesystem.
type FlattenedTree struct {
	Root  string
	Items []TreeItem
}

// Len returns the number of entries in the flattened sequence.
func (t *FlattenedTree) Len() int { return len(t.Items) }
