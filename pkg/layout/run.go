package layout

// RunItem runs the full layout algorithm rooted at id: calc-size on
// dim0, arrange on dim0, calc-size on dim1, arrange on dim1, always in
// that order and never fused or run concurrently, since the wrapped
// strategies on dim1 depend on the line breaks dim0's arrange pass
// records, and a measured leaf's dim1 size depends on the width dim0's
// passes gave it. After the four passes it recomputes content size and
// scroll bookkeeping for id and every descendant.
func (c *Context) RunItem(id ID) {
	c.calcSize(id, Dim0)
	c.arrange(id, Dim0)
	c.calcSize(id, Dim1)
	c.arrange(id, Dim1)
	c.updateScrollMetrics(id)
}

// RunContext is RunItem applied to every top-level item that has no
// parent — items never inserted under another item are each treated as
// their own root. Most callers with a single root tree should prefer
// RunItem(root).
func (c *Context) RunContext() {
	for id := ID(0); int(id) < len(c.items); id++ {
		it := &c.items[id]
		if it.flags&flagInserted != 0 {
			continue // not a root; reached via its parent's subtree
		}
		if it.flags&flagFree != 0 {
			continue
		}
		c.RunItem(id)
	}
}
