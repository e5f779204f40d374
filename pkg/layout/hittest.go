package layout

// maxHitTestDepth bounds both ScreenRect's ancestor walk and HitTest's
// descent, matching the original C library's fixed-size ancestor stack;
// trees deeper than this are not supported by hit testing (though they
// lay out fine).
const maxHitTestDepth = 32

// PointTransform maps a point from an external coordinate system (for
// example window/device pixels) into the local coordinate system HitTest
// expects, which is the same space id's own Rect is expressed in.
type PointTransform func(x, y float32) (float32, float32)

// ScreenRect returns id's rect in root-relative, scroll-adjusted
// coordinates: id's rect is already absolute (every Rect is expressed
// relative to the tree root, not to its immediate parent), so this only
// needs to subtract the scroll offset of each scrollable ancestor —
// ancestor rects themselves must not be added in, or ancestor positions
// would be double-counted for chains deeper than one level. Ancestor
// chains deeper than maxHitTestDepth are not supported; ScreenRect
// returns the rect accumulated so far rather than panicking.
func (c *Context) ScreenRect(id ID) Rect {
	r := c.rects[id]
	x, y := r.X, r.Y
	n := 0
	for cur := c.get(id).parent; cur != Invalid && n < maxHitTestDepth; cur = c.get(cur).parent {
		it := c.get(cur)
		x -= it.scrollOffset[0]
		y -= it.scrollOffset[1]
		n++
	}
	return Rect{X: x, Y: y, Width: r.Width, Height: r.Height}
}

// pointInRect is a half-open test: x is in [r.X, r.X+r.Width) and y is
// in [r.Y, r.Y+r.Height).
func pointInRect(x, y float32, r Rect) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// HitTest returns the innermost descendant of root (or root itself)
// whose rect contains (x, y). If a screen-to-local transform is
// registered via SetScreenToLocal, it is applied to (x, y) first;
// otherwise the point is taken to already be in root's own coordinate
// space. Children are tested in reverse insertion order so that, absent
// any z-order model, later siblings are treated as drawn on top of
// earlier ones. It returns Invalid if the point falls outside root
// entirely.
func (c *Context) HitTest(root ID, x, y float32) ID {
	if c.screenToLocal != nil {
		x, y = c.screenToLocal(x, y)
	}
	return c.hitTest(root, x, y, 0)
}

// FindScrollParent returns the nearest ancestor of id (not including id
// itself) whose overflow is not visible on either axis, or Invalid if
// there is none.
func (c *Context) FindScrollParent(id ID) ID {
	for cur := c.get(id).parent; cur != Invalid; cur = c.get(cur).parent {
		it := c.get(cur)
		if it.overflowX != OverflowVisible || it.overflowY != OverflowVisible {
			return cur
		}
	}
	return Invalid
}

func (c *Context) hitTest(id ID, x, y float32, depth int) ID {
	r := c.rects[id]
	if !pointInRect(x, y, r) {
		return Invalid
	}
	if depth >= maxHitTestDepth {
		return id
	}
	it := c.get(id)
	// r is already an absolute rect, so descending must not re-subtract
	// it; only this item's own scroll offset shifts the probe point into
	// its children's unscrolled coordinate frame.
	localX := x + it.scrollOffset[0]
	localY := y + it.scrollOffset[1]

	children := c.Children(id)
	for i := len(children) - 1; i >= 0; i-- {
		if found := c.hitTest(children[i], localX, localY, depth+1); found != Invalid {
			return found
		}
	}
	return id
}
