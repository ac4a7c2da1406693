package block

import (
	"fmt"

	"github.com/antflydb/tablehunt/geom"
)

// VerifyInvariants walks b's subtree and checks the structural properties
// the hunting engine is expected to preserve: sibling links are
// consistent in both directions, each level's Index values are strictly
// increasing from 0, and every container's Rect equals the union of its
// children's rects. It returns the first violation found, or nil.
func VerifyInvariants(b *Block) error {
	return verifyNode(b)
}

func verifyNode(b *Block) error {
	wantIndex := 0
	var prev *Block
	for c := b.FirstChild; c != nil; c = c.Next {
		if c.Parent != b {
			return fmt.Errorf("block at index %d: Parent does not point back to container", c.Index)
		}
		if c.Prev != prev {
			return fmt.Errorf("block at index %d: Prev link inconsistent with sibling order", c.Index)
		}
		if c.Index != wantIndex {
			return fmt.Errorf("block: Index %d out of sequence, want %d", c.Index, wantIndex)
		}
		wantIndex++
		prev = c
		if err := verifyNode(c); err != nil {
			return err
		}
	}
	if b.LastChild != prev {
		return fmt.Errorf("block: LastChild does not match final sibling")
	}
	if b.Kind != KindText && b.Kind != KindVector && b.FirstChild != nil {
		union := unionOfChildren(b)
		if b.Rect != union {
			return fmt.Errorf("block: Rect %+v does not equal union of children %+v", b.Rect, union)
		}
	}
	return nil
}

func unionOfChildren(b *Block) geom.Rect {
	acc := geom.EmptyRect
	for c := b.FirstChild; c != nil; c = c.Next {
		acc = acc.Union(c.Rect)
	}
	return acc
}
