package layout

// arrange is the second of the two passes RunItem performs per axis. It
// runs pre-order (parents before children) because a child's position,
// and sometimes its size (fill/stretch/shrink), depends on its parent's
// already-known rect. Like calc-size, it dispatches on whether dim is
// id's main or cross axis and whether it wraps.
func (c *Context) arrange(id ID, dim Axis) {
	it := c.get(id)
	wraps := it.wrap == WrapOn || it.display.forceWrap()
	onMain := dim == it.display.mainAxis()

	switch {
	case onMain && !wraps:
		c.arrangeStacked(id, dim)
	case onMain && wraps:
		c.arrangeWrappedStacked(id, dim)
	case !onMain && !wraps:
		c.arrangeOverlay(id, dim, allChildren(c, id))
	default:
		c.arrangeWrappedOverlay(id, dim)
	}

	for child := it.firstChild; child != Invalid; child = c.get(child).nextSibling {
		c.arrange(child, dim)
	}
}

func allChildren(c *Context, id ID) []ID { return c.Children(id) }

// contentBox returns id's content-box origin and size along dim: its
// rect position/size minus border and padding.
func (c *Context) contentBox(id ID, dim Axis) (pos, size float32) {
	it := c.get(id)
	rpos, rsize := c.rects[id].get(dim)
	start := axisStart(it.padding, dim) + axisStart(it.border, dim)
	end := axisEnd(it.padding, dim) + axisEnd(it.border, dim)
	return rpos + start, rsize - start - end
}

// arrangeStacked positions and sizes id's children along dim, id's main
// axis, in a single line: fixed-size/non-growing children keep their
// calc-size result, leftover positive space is split evenly across
// every flex-grow>0 child, leftover negative space is split evenly
// across every flex-shrink>0 child (clamped at zero), and if nothing
// grows or shrinks, justify-content distributes the leftover as
// spacing. Block/inline-block containers skip flex distribution
// entirely and instead collapse adjoining sibling margins, matching
// normal block flow.
func (c *Context) arrangeStacked(id ID, dim Axis) {
	it := c.get(id)
	if it.display.isBlockLike() {
		c.arrangeBlockStacked(id, dim)
		return
	}
	start, space := c.contentBox(id, dim)
	children := allChildren(c, id)
	c.arrangeLine(children, dim, start, space, c.gapFor(it, dim), it.justify)
}

func (c *Context) arrangeBlockStacked(id ID, dim Axis) {
	start, _ := c.contentBox(id, dim)
	pos := start
	var prevTrailing float32
	first := true
	for child := c.get(id).firstChild; child != Invalid; child = c.get(child).nextSibling {
		cit := c.get(child)
		leading := axisStart(cit.margin, dim)
		if first {
			pos += leading
		} else {
			pos += maxf(prevTrailing, leading)
		}
		_, size := c.rects[child].get(dim)
		c.rects[child].set(dim, pos, size)
		pos += size
		prevTrailing = axisEnd(cit.margin, dim)
		first = false
	}
}

// arrangeLine lays out items within a single line of length space
// starting at start, applying flex-grow/flex-shrink distribution and,
// failing that, justify-content spacing.
func (c *Context) arrangeLine(children []ID, dim Axis, start, space, gap float32, justify Justify) {
	if len(children) == 0 {
		return
	}
	fixedFlag := flagFixedW
	if dim == Dim1 {
		fixedFlag = flagFixedH
	}

	// Flex basis is the hypothetical main size before grow/shrink
	// distribution: it overrides the calc-size content size for an
	// auto-sized item (no fixed size set) when the item declares one
	// (basis >= 0; negative means "auto", i.e. defer to content size).
	sizes := make([]float32, len(children))
	for i, ch := range children {
		cit := c.get(ch)
		_, size := c.rects[ch].get(dim)
		if cit.flags&fixedFlag == 0 && cit.flexBasis >= 0 {
			size = cit.flexBasis
		}
		sizes[i] = size
	}

	used := gap * float32(len(children)-1)
	var growSum, shrinkSum int
	for i, ch := range children {
		cit := c.get(ch)
		used += sizes[i] + axisStart(cit.margin, dim) + axisEnd(cit.margin, dim)
		if cit.flexGrow > 0 {
			growSum++
		}
		if cit.flexShrink > 0 {
			shrinkSum++
		}
	}
	extra := space - used

	switch {
	case extra > 0 && growSum > 0:
		filler := extra / float32(growSum)
		for i, ch := range children {
			if c.get(ch).flexGrow > 0 {
				sizes[i] += filler
			}
		}
		extra = 0
	case extra < 0 && shrinkSum > 0:
		eater := extra / float32(shrinkSum)
		for i, ch := range children {
			if c.get(ch).flexShrink > 0 {
				sizes[i] = maxf(0, sizes[i]+eater)
			}
		}
		extra = 0
	}

	leadOffset, between := distributeJustify(justify, extra, len(children))

	pos := start + leadOffset
	for i, ch := range children {
		it := c.get(ch)
		pos += axisStart(it.margin, dim)
		c.rects[ch].set(dim, pos, sizes[i])
		pos += sizes[i] + axisEnd(it.margin, dim)
		if i < len(children)-1 {
			pos += gap + between
		}
	}
}

// distributeJustify returns the offset to apply before the first child
// and the extra spacing to insert between each pair of children, for
// the given leftover space and child count.
func distributeJustify(j Justify, extra float32, n int) (lead, between float32) {
	if extra <= 0 || n == 0 {
		switch j {
		case JustifyEnd:
			return extra, 0
		case JustifyCenter:
			return extra / 2, 0
		default:
			return 0, 0
		}
	}
	switch j {
	case JustifyEnd:
		return extra, 0
	case JustifyCenter:
		return extra / 2, 0
	case JustifySpaceBetween:
		if n == 1 {
			return 0, 0
		}
		return 0, extra / float32(n-1)
	case JustifySpaceAround:
		each := extra / float32(n)
		return each / 2, each
	case JustifySpaceEvenly:
		each := extra / float32(n+1)
		return each, each
	default: // JustifyStart
		return 0, 0
	}
}

// arrangeOverlay positions and sizes items on id's cross axis: each
// item defaults to its own calc-size result positioned at the content
// box start (AlignStart), unless AlignItems/AlignSelf says otherwise.
// Children of a block/inline-block container always stretch to fill
// the cross axis, whatever AlignItems/AlignSelf say, matching normal
// block flow's auto-width behavior, unless the child has an explicit
// fixed size on that axis.
func (c *Context) arrangeOverlay(id ID, dim Axis, children []ID) {
	parent := c.get(id)
	start, space := c.contentBox(id, dim)
	for _, ch := range children {
		cit := c.get(ch)
		align := resolveAlign(parent, cit)
		fixedFlag := flagFixedW
		if dim == Dim1 {
			fixedFlag = flagFixedH
		}
		_, size := c.rects[ch].get(dim)
		if parent.display.isBlockLike() && cit.flags&fixedFlag == 0 {
			align = AlignStretch
		}
		leading := axisStart(cit.margin, dim)
		trailing := axisEnd(cit.margin, dim)
		pos, size := crossAxisPosition(align, start, space, size, leading, trailing)
		c.rects[ch].set(dim, pos, size)
	}
}

// crossAxisPosition implements the cross-axis alignment table verbatim:
// flex-start and baseline ignore the child's own margin (the content
// offset is the position outright), center subtracts the trailing
// margin, flex-end subtracts both the leading and the trailing margin,
// and stretch resizes the child
// to the available space net of both margins before placing it at the
// content offset.
func crossAxisPosition(align Align, start, space, size, leading, trailing float32) (pos, outSize float32) {
	switch align {
	case AlignStretch:
		return start, maxf(0, space-leading-trailing)
	case AlignEnd:
		return start + space - size - leading - trailing, size
	case AlignCenter:
		return start + (space-size)/2 - trailing, size
	default: // AlignStart, AlignAuto, baseline-as-flex-start
		return start, size
	}
}

func resolveAlign(parent, child *item) Align {
	if child.alignSelf != AlignAuto && child.alignSelf != 0 {
		return child.alignSelf
	}
	return parent.alignItems
}

// arrangeWrappedStacked groups id's children into lines that fit within
// id's content-box size on dim, marking the first child of every line
// after the first with the BREAK flag, then arranges each line with
// arrangeLine exactly as the non-wrapping case does.
func (c *Context) arrangeWrappedStacked(id ID, dim Axis) {
	it := c.get(id)
	start, space := c.contentBox(id, dim)
	gap := c.gapFor(it, dim)

	lines := c.collectLines(id, dim, space, gap)
	for _, line := range lines {
		lineSize := lineExtent(c, line, dim, gap)
		c.arrangeLine(line, dim, start, maxf(lineSize, space-0), gap, it.justify)
	}
}

// collectLines walks id's children in order and splits them into lines,
// each as long as possible without exceeding space; a line always
// contains at least one child even if that child alone overflows.
// Every child after the first in a line after the first is marked with
// the BREAK flag cleared, and the first child of each line past the
// first line is marked with the BREAK flag, so a caller inspecting the
// tree after arrange can recover line boundaries via clearItemBreak's
// counterpart, HasBreak.
func (c *Context) collectLines(id ID, dim Axis, space, gap float32) [][]ID {
	var lines [][]ID
	var current []ID
	var used float32
	first := true
	for child := c.get(id).firstChild; child != Invalid; child = c.get(child).nextSibling {
		c.get(child).flags &^= flagBreak
		size := c.marginBoxSize(child, dim)
		extend := used
		if len(current) > 0 {
			extend += gap
		}
		extend += size
		if len(current) > 0 && extend > space {
			lines = append(lines, current)
			current = []ID{child}
			used = size
			c.get(child).flags |= flagBreak
		} else {
			current = append(current, child)
			used = extend
		}
		first = false
	}
	_ = first
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

func lineExtent(c *Context, line []ID, dim Axis, gap float32) float32 {
	var total float32
	for i, ch := range line {
		if i > 0 {
			total += gap
		}
		total += c.marginBoxSize(ch, dim)
	}
	return total
}

// HasBreak reports whether id starts a new line within its parent's
// wrapped stacked layout. It is only meaningful after RunContext/RunItem has
// completed the main-axis arrange pass.
func (c *Context) HasBreak(id ID) bool {
	return c.get(id).flags&flagBreak != 0
}

// ClearItemBreak clears the wrap-boundary marker on id, as if it had not
// been the start of a line. It has no effect until the next arrange
// pass recomputes line breaks.
func (c *Context) ClearItemBreak(id ID) {
	c.get(id).flags &^= flagBreak
}

// arrangeWrappedOverlay positions each line's items on the cross axis
// using arrangeOverlay, after distributing leftover cross-axis space
// across the lines per AlignContent. With a single line (or no leftover
// space) only AlignEnd and AlignCenter move the lines.
func (c *Context) arrangeWrappedOverlay(id ID, dim Axis) {
	it := c.get(id)
	mainDim := it.display.mainAxis()
	mainGap := c.gapFor(it, mainDim)
	_, mainSpace := c.contentBox(id, mainDim)
	lines := c.collectLines(id, mainDim, mainSpace, mainGap)

	start, space := c.contentBox(id, dim)
	var lineSizes []float32
	var total float32
	for _, line := range lines {
		ls := lineCrossExtent(c, line, dim)
		lineSizes = append(lineSizes, ls)
		total += ls
	}
	extra := space - total
	lead, between := distributeAlignContent(it.alignContent, extra, len(lines))

	pos := start + lead
	for i, line := range lines {
		lineSpace := lineSizes[i]
		c.arrangeOverlayWithin(id, dim, line, pos, lineSpace)
		pos += lineSpace + between
	}
}

func lineCrossExtent(c *Context, line []ID, dim Axis) float32 {
	var max float32
	for _, ch := range line {
		if s := c.marginBoxSize(ch, dim); s > max {
			max = s
		}
	}
	return max
}

// arrangeOverlayWithin is arrangeOverlay restricted to a sub-range
// (start,space) of the cross axis, used to position one wrapped line.
func (c *Context) arrangeOverlayWithin(id ID, dim Axis, children []ID, start, space float32) {
	parent := c.get(id)
	for _, ch := range children {
		cit := c.get(ch)
		align := resolveAlign(parent, cit)
		fixedFlag := flagFixedW
		if dim == Dim1 {
			fixedFlag = flagFixedH
		}
		_, size := c.rects[ch].get(dim)
		if parent.display.isBlockLike() && cit.flags&fixedFlag == 0 {
			align = AlignStretch
		}
		leading := axisStart(cit.margin, dim)
		trailing := axisEnd(cit.margin, dim)
		pos, outSize := crossAxisPosition(align, start, space, size, leading, trailing)
		c.rects[ch].set(dim, pos, outSize)
	}
}

func distributeAlignContent(a Align, extra float32, n int) (lead, between float32) {
	if n <= 1 || extra <= 0 {
		switch a {
		case AlignEnd:
			return extra, 0
		case AlignCenter:
			return extra / 2, 0
		default:
			return 0, 0
		}
	}
	switch a {
	case AlignEnd:
		return extra, 0
	case AlignCenter:
		return extra / 2, 0
	case AlignSpaceBetween:
		return 0, extra / float32(n-1)
	case AlignSpaceAround:
		each := extra / float32(n)
		return each / 2, each
	case AlignSpaceEvenly:
		each := extra / float32(n+1)
		return each, each
	default:
		return 0, 0
	}
}
