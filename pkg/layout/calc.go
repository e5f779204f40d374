package layout

// calc-size is the first of the two passes RunItem performs on each
// axis. It runs post-order (children before parents) because a
// container's size along an axis is, except when fixed, a summary of its
// children's sizes on that axis: stacked-axis sizes sum (plus gaps and,
// for block/inline-block, collapsed margins), cross-axis sizes take the
// largest child. Display dispatches to one of four strategies, mirroring
// the four lay_calc_*_size helpers of the C original this package is a
// port of. Wrapping changes only the cross-axis reduction (the largest
// child of each line, summed over lines); a wrapping item's main-axis
// size is the same unwrapped sum a non-wrapping item reports.
func (c *Context) calcSize(id ID, dim Axis) {
	it := c.get(id)
	for child := it.firstChild; child != Invalid; child = c.get(child).nextSibling {
		c.calcSize(child, dim)
	}

	fixedFlag := flagFixedW
	if dim == Dim1 {
		fixedFlag = flagFixedH
	}
	var content float32
	if it.flags&fixedFlag != 0 {
		// A fixed size is the item's outer size: padding and border are
		// already inside it.
		c.rects[id].set(dim, 0, it.size[dim])
		return
	} else {
		content = c.summarize(id, dim)
		if content == 0 && it.firstChild == Invalid && it.measure != nil {
			// The wrap/available width passed to a text-measurement
			// callback is the rect's current width: during calc-size(dim1)
			// that is the width the dim0 passes produced for this run;
			// during calc-size(dim0) it is still the previous run's width
			// (0 on the first run).
			avail := c.rects[id].Width
			w, h := it.measure(avail)
			if dim == Dim0 {
				content = w
			} else {
				content = h
			}
		}
		if max := it.maxSize[dim]; max > 0 && content > max {
			content = max
		}
		if min := it.minSize[dim]; min > 0 && content < min {
			content = min
		}
	}

	padBorder := axisStart(it.padding, dim) + axisEnd(it.padding, dim) +
		axisStart(it.border, dim) + axisEnd(it.border, dim)
	c.rects[id].set(dim, 0, content+padBorder)
}

// summarize dispatches to the calc-size strategy appropriate for id's
// display and whether dim is id's stacking (main) axis or its cross
// axis, and whether the item wraps.
func (c *Context) summarize(id ID, dim Axis) float32 {
	it := c.get(id)
	wraps := it.wrap == WrapOn || it.display.forceWrap()
	onMain := dim == it.display.mainAxis()

	switch {
	case onMain && !wraps:
		return c.calcStackedSize(id, dim)
	case onMain && wraps:
		return c.calcWrappedStackedSize(id, dim)
	case !onMain && !wraps:
		return c.calcOverlayedSize(id, dim)
	default:
		return c.calcWrappedOverlayedSize(id, dim)
	}
}

func axisStart(v Vec4, dim Axis) float32 {
	if dim == Dim0 {
		return v[edgeLeft]
	}
	return v[edgeTop]
}

func axisEnd(v Vec4, dim Axis) float32 {
	if dim == Dim0 {
		return v[edgeRight]
	}
	return v[edgeBottom]
}

func (c *Context) marginBoxSize(child ID, dim Axis) float32 {
	it := c.get(child)
	_, size := c.rects[child].get(dim)
	return size + axisStart(it.margin, dim) + axisEnd(it.margin, dim)
}

func (c *Context) gapFor(it *item, dim Axis) float32 {
	if dim == Dim0 {
		return it.colGap
	}
	return it.rowGap
}

// calcStackedSize sums the children's outer (margin-box) sizes along
// dim, plus gaps between them. Block and inline-block displays collapse
// adjoining margins between siblings instead of summing both.
func (c *Context) calcStackedSize(id ID, dim Axis) float32 {
	it := c.get(id)
	if it.display.isBlockLike() {
		return c.calcBlockStackedSize(id, dim)
	}
	var total float32
	gap := c.gapFor(it, dim)
	first := true
	for child := it.firstChild; child != Invalid; child = c.get(child).nextSibling {
		if !first {
			total += gap
		}
		total += c.marginBoxSize(child, dim)
		first = false
	}
	return total
}

// calcBlockStackedSize sums border-box sizes along dim, collapsing each
// pair of adjoining margins to max(prev trailing, next leading) rather
// than adding both, per this engine's margin-collapsing rule.
func (c *Context) calcBlockStackedSize(id ID, dim Axis) float32 {
	it := c.get(id)
	var total float32
	var prevTrailing float32
	first := true
	for child := it.firstChild; child != Invalid; child = c.get(child).nextSibling {
		cit := c.get(child)
		leading := axisStart(cit.margin, dim)
		trailing := axisEnd(cit.margin, dim)
		if first {
			total += leading
		} else {
			total += maxf(prevTrailing, leading)
		}
		_, size := c.rects[child].get(dim)
		total += size
		prevTrailing = trailing
		first = false
	}
	if !first {
		total += prevTrailing
	}
	return total
}

// calcOverlayedSize returns the largest child margin-box size along dim;
// used for a stacked item's cross axis.
func (c *Context) calcOverlayedSize(id ID, dim Axis) float32 {
	it := c.get(id)
	var max float32
	for child := it.firstChild; child != Invalid; child = c.get(child).nextSibling {
		if s := c.marginBoxSize(child, dim); s > max {
			max = s
		}
	}
	return max
}

// calcWrappedStackedSize returns the same stacked size calcStackedSize
// does: the sum of all children as a single line. It does not split
// children into lines or take the longest line; actual line breaks are
// computed and recorded (via the BREAK flag) only during arrange, and
// the cross-axis size is derived from those lines.
func (c *Context) calcWrappedStackedSize(id ID, dim Axis) float32 {
	return c.calcStackedSize(id, dim)
}

// calcWrappedOverlayedSize sums each line's cross-axis extent (the
// largest child in that line). Line boundaries are read from the BREAK
// flag. For a wrapping row, arrange's main-axis (dim0) pass on this same
// item has already set the flags for the current run, since RunItem
// arranges dim0 before calculating dim1. For a wrapping column the cross
// axis is dim0, which is calculated before the dim1 arrange pass, so the
// flags read here are those left by the previous run (none on the first).
func (c *Context) calcWrappedOverlayedSize(id ID, dim Axis) float32 {
	it := c.get(id)
	var total, lineMax float32
	any := false
	for child := it.firstChild; child != Invalid; child = c.get(child).nextSibling {
		if c.get(child).flags&flagBreak != 0 {
			total += lineMax
			lineMax = 0
		}
		if s := c.marginBoxSize(child, dim); s > lineMax {
			lineMax = s
		}
		any = true
	}
	if any {
		total += lineMax
	}
	return total
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
