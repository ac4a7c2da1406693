package hunt

import "github.com/antflydb/tablehunt/block"

// spliceTable is the block-tree surgery step (component 4.8): it
// replaces region's children in the half-open range [firstIdx, lastIdx)
// of children with a single emitted table block, followed, in their
// original order, by any children of that range the table's content
// transplant did not take (those whose Parent is still region), and
// leaves every sibling outside that range in its original relative
// order. region's children
// are renumbered and its bounding box recomputed as part of
// ReplaceChildren.
//
// children must be the snapshot region.Children() produced before table
// was built, not a fresh one taken now: emitTable's content transplant
// reparents some of those same leaf blocks into the table (rewriting
// their own Next/Prev/Parent fields), so re-walking region's sibling
// chain afterward would silently stop wherever a reparented leaf used
// to sit. Slicing the original snapshot by index is unaffected by that,
// since the blocks' positions in the slice don't move even though their
// own links now point elsewhere.
func spliceTable(region *block.Block, children []*block.Block, firstIdx, lastIdx int, table *block.Block) {
	invariant(firstIdx >= 0 && lastIdx <= len(children) && firstIdx < lastIdx,
		"splice range [%d,%d) invalid for %d children", firstIdx, lastIdx, len(children))

	newChildren := make([]*block.Block, 0, len(children)-(lastIdx-firstIdx)+1)
	newChildren = append(newChildren, children[:firstIdx]...)
	newChildren = append(newChildren, table)
	for _, c := range children[firstIdx:lastIdx] {
		if c.Parent == region {
			newChildren = append(newChildren, c)
		}
	}
	newChildren = append(newChildren, children[lastIdx:]...)

	region.ReplaceChildren(newChildren)
}
