package block

// AppendChild adds c as b's new last child and renumbers b's children's
// Index fields, then recomputes bounding boxes up through the ancestor
// chain.
func (b *Block) AppendChild(c *Block) {
	c.Parent = b
	c.Prev = b.LastChild
	c.Next = nil
	if b.LastChild != nil {
		b.LastChild.Next = c
	} else {
		b.FirstChild = c
	}
	b.LastChild = c
	b.RenumberChildren()
	b.RecalcBBox()
}

// InsertChildBefore inserts c immediately before mark among b's children.
// If mark is nil, c is appended at the end.
func (b *Block) InsertChildBefore(c, mark *Block) {
	if mark == nil {
		b.AppendChild(c)
		return
	}
	c.Parent = b
	c.Next = mark
	c.Prev = mark.Prev
	if mark.Prev != nil {
		mark.Prev.Next = c
	} else {
		b.FirstChild = c
	}
	mark.Prev = c
	b.RenumberChildren()
	b.RecalcBBox()
}

// UnlinkChild removes c from b's child list. It does not touch c.Parent,
// c.Next, or c.Prev itself so callers can still read where c used to sit
// (e.g. while reinserting it elsewhere); RenumberChildren and
// RecalcBBox run on b afterward.
func (b *Block) UnlinkChild(c *Block) {
	if c.Prev != nil {
		c.Prev.Next = c.Next
	} else {
		b.FirstChild = c.Next
	}
	if c.Next != nil {
		c.Next.Prev = c.Prev
	} else {
		b.LastChild = c.Prev
	}
	b.RenumberChildren()
	b.RecalcBBox()
}

// ReplaceChildren discards b's entire child list and installs newChildren
// in its place, in order, with parent pointers fixed up.
func (b *Block) ReplaceChildren(newChildren []*Block) {
	b.FirstChild = nil
	b.LastChild = nil
	for _, c := range newChildren {
		c.Parent = b
		c.Prev = b.LastChild
		c.Next = nil
		if b.LastChild != nil {
			b.LastChild.Next = c
		} else {
			b.FirstChild = c
		}
		b.LastChild = c
	}
	b.RenumberChildren()
	b.RecalcBBox()
}

// RenumberChildren assigns a strictly increasing Index to each of b's
// direct children in their current sibling order. It does not recurse:
// callers that restructure a whole subtree call it bottom-up, once per
// level touched.
func (b *Block) RenumberChildren() {
	i := 0
	for c := b.FirstChild; c != nil; c = c.Next {
		c.Index = i
		i++
	}
}
