package layout

// updateScrollMetrics recomputes content size, scroll-range clamping,
// and scrollbar-presence bits for id and every descendant, after both
// axes have been arranged. It must run after arrange, not interleaved
// with it, because content size is the bounding box of already-placed
// children in parent-local coordinates.
func (c *Context) updateScrollMetrics(id ID) {
	it := c.get(id)
	for child := it.firstChild; child != Invalid; child = c.get(child).nextSibling {
		c.updateScrollMetrics(child)
	}

	clientW, clientH := c.clientSize(id)
	contentOriginX, _ := c.contentBox(id, Dim0)
	contentOriginY, _ := c.contentBox(id, Dim1)
	contentW, contentH := clientW, clientH
	for child := it.firstChild; child != Invalid; child = c.get(child).nextSibling {
		r := c.rects[child]
		cit := c.get(child)
		right := (r.X - contentOriginX) + r.Width + axisEnd(cit.margin, Dim0)
		bottom := (r.Y - contentOriginY) + r.Height + axisEnd(cit.margin, Dim1)
		if right > contentW {
			contentW = right
		}
		if bottom > contentH {
			contentH = bottom
		}
	}
	it.contentSize = Vec2{contentW, contentH}
	it.scrollMax = Vec2{
		maxf(0, contentW-clientW),
		maxf(0, contentH-clientH),
	}
	it.scrollOffset[0] = clampf(it.scrollOffset[0], 0, it.scrollMax[0])
	it.scrollOffset[1] = clampf(it.scrollOffset[1], 0, it.scrollMax[1])

	it.flags &^= flagHasHScrollbar | flagHasVScrollbar
	if hasScrollbar(it.overflowX, contentW, clientW) {
		it.flags |= flagHasHScrollbar
	}
	if hasScrollbar(it.overflowY, contentH, clientH) {
		it.flags |= flagHasVScrollbar
	}
}

// clientSize returns id's content-box size on both axes: its rect minus
// padding and border, but — unlike the CSS box model — never minus
// scrollbar thickness, matching this engine's choice to treat scrollbars
// as an overlay rather than a layout-affecting box-model component.
func (c *Context) clientSize(id ID) (w, h float32) {
	_, w = c.contentBox(id, Dim0)
	_, h = c.contentBox(id, Dim1)
	return
}

func hasScrollbar(o Overflow, content, client float32) bool {
	switch o {
	case OverflowScroll:
		return true
	case OverflowAuto:
		return content > client
	default: // visible, hidden: never report a scrollbar
		return false
	}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InnerRect returns id's content box: its rect with padding and border
// subtracted on both axes.
func (c *Context) InnerRect(id ID) Rect {
	x, w := c.contentBox(id, Dim0)
	y, h := c.contentBox(id, Dim1)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// VisibleContentRect returns the region of id's content that is
// currently visible given its scroll offset: the client box, shifted by
// the scroll offset. It is expressed relative to id's content-box
// origin, not root-relative like Rect.
func (c *Context) VisibleContentRect(id ID) Rect {
	it := c.get(id)
	w, h := c.clientSize(id)
	return Rect{X: it.scrollOffset[0], Y: it.scrollOffset[1], Width: w, Height: h}
}

// ScrollTo sets id's scroll offset, clamped to [0, ScrollMax]. It has no
// effect on layout; call it after RunContext/RunItem.
func (c *Context) ScrollTo(id ID, x, y float32) {
	it := c.get(id)
	it.scrollOffset[0] = clampf(x, 0, it.scrollMax[0])
	it.scrollOffset[1] = clampf(y, 0, it.scrollMax[1])
}

// ScrollBy adjusts id's scroll offset by (dx, dy), clamped to
// [0, ScrollMax].
func (c *Context) ScrollBy(id ID, dx, dy float32) {
	it := c.get(id)
	c.ScrollTo(id, it.scrollOffset[0]+dx, it.scrollOffset[1]+dy)
}

// ScrollOffset returns id's current scroll offset.
func (c *Context) ScrollOffset(id ID) Vec2 { return c.get(id).scrollOffset }

// ScrollMax returns id's maximum scroll offset on each axis:
// max(0, content size - client size).
func (c *Context) ScrollMax(id ID) Vec2 { return c.get(id).scrollMax }

// ContentSize returns id's content size: the bounding box of its
// children's margin boxes, or its own client size if that is larger
// (an item can never have negative scroll range).
func (c *Context) ContentSize(id ID) Vec2 { return c.get(id).contentSize }

// HasHorizontalScrollbar and HasVerticalScrollbar report whether id
// would show a scrollbar on that axis, per its Overflow setting:
// visible and hidden never report one, scroll always does, auto does
// exactly when content size exceeds client size.
func (c *Context) HasHorizontalScrollbar(id ID) bool {
	return c.get(id).flags&flagHasHScrollbar != 0
}

func (c *Context) HasVerticalScrollbar(id ID) bool {
	return c.get(id).flags&flagHasVScrollbar != 0
}

// OffsetWidth, OffsetHeight mirror the DOM's offsetWidth/offsetHeight:
// the border-box size, ignoring scroll.
func (c *Context) OffsetWidth(id ID) float32  { return c.rects[id].Width }
func (c *Context) OffsetHeight(id ID) float32 { return c.rects[id].Height }

// ClientWidth, ClientHeight mirror clientWidth/clientHeight: the
// content-box size (border and padding excluded, scrollbar thickness
// never subtracted).
func (c *Context) ClientWidth(id ID) float32 {
	_, w := c.contentBox(id, Dim0)
	return w
}

func (c *Context) ClientHeight(id ID) float32 {
	_, h := c.contentBox(id, Dim1)
	return h
}

// ScrollWidth, ScrollHeight mirror scrollWidth/scrollHeight: the full
// content size regardless of the client viewport.
func (c *Context) ScrollWidth(id ID) float32  { return c.get(id).contentSize[0] }
func (c *Context) ScrollHeight(id ID) float32 { return c.get(id).contentSize[1] }
