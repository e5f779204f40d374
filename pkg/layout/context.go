package layout

import "fmt"

const initialCapacity = 32

// Context owns the arena of items and their parallel computed rects. All
// ids are only meaningful relative to the Context that produced them;
// using an id from one Context against another is a programming error.
type Context struct {
	items []item
	rects []Rect

	count    int   // number of live (inserted-or-allocated) slots, excluding the free list
	freeHead ID    // head of the free list, threaded through item.nextSibling; Invalid if empty

	screenToLocal PointTransform // optional, applied by HitTest before walking the tree
}

// SetScreenToLocal registers a coordinate transform that HitTest applies
// to its input point before testing it against the tree, for callers
// whose probe point arrives in window or device coordinates rather than
// the root item's own coordinate space. Pass nil to clear it.
func (c *Context) SetScreenToLocal(f PointTransform) { c.screenToLocal = f }

// NewContext creates an empty Context with no items.
func NewContext() *Context {
	return &Context{freeHead: Invalid}
}

// Reset discards all items, returning the Context to its just-constructed
// state while keeping the underlying storage allocated for reuse.
func (c *Context) Reset() {
	c.items = c.items[:0]
	c.rects = c.rects[:0]
	c.count = 0
	c.freeHead = Invalid
}

// Count returns the number of live items in the Context.
func (c *Context) Count() int { return c.count }

func (c *Context) grow() {
	newCap := initialCapacity
	if cap(c.items) > 0 {
		newCap = cap(c.items) * 4
	}
	grown := make([]item, len(c.items), newCap)
	copy(grown, c.items)
	c.items = grown
	growRects := make([]Rect, len(c.rects), newCap)
	copy(growRects, c.rects)
	c.rects = growRects
}

// Item allocates a new, unparented item and returns its id. The item
// starts out not inserted into any tree; it must be made a child via
// Insert/Append/Prepend/InsertAfter before layout considers it.
func (c *Context) Item() ID {
	if c.freeHead != Invalid {
		id := c.freeHead
		it := &c.items[id]
		c.freeHead = it.nextSibling
		*it = newItem() // flagFree cleared
		c.rects[id] = Rect{}
		c.count++
		return id
	}
	if len(c.items) == cap(c.items) {
		c.grow()
	}
	c.items = append(c.items, newItem())
	c.rects = append(c.rects, Rect{})
	id := ID(len(c.items) - 1)
	c.count++
	return id
}

// newItem returns a zero item with its tree links set to Invalid and
// flexBasis defaulted to auto (<0); every other field's zero value
// already means what spec.md's "0 means auto/none" convention requires,
// but flex-basis uses negative as its auto marker so that an explicit
// basis of 0 is distinguishable from "unset".
func newItem() item {
	return item{firstChild: Invalid, nextSibling: Invalid, parent: Invalid, flexBasis: -1}
}

func (c *Context) get(id ID) *item {
	if id == Invalid || int(id) >= len(c.items) {
		panic(fmt.Sprintf("layout: invalid item id %d", id))
	}
	return &c.items[id]
}

// Rect returns the most recently computed rect for id. Before the first
// RunContext/RunItem call this is the zero Rect.
func (c *Context) Rect(id ID) Rect {
	c.get(id) // validates id
	return c.rects[id]
}

// SetSize fixes item's requested size on the given axis; a value of 0
// means "auto" (computed from children or a measure func). Setting a
// fixed size suppresses calc-size's strategy dispatch on that axis.
func (c *Context) SetSize(id ID, dim Axis, value float32) {
	it := c.get(id)
	it.size[dim] = value
	if value > 0 {
		if dim == Dim0 {
			it.flags |= flagFixedW
		} else {
			it.flags |= flagFixedH
		}
	} else {
		if dim == Dim0 {
			it.flags &^= flagFixedW
		} else {
			it.flags &^= flagFixedH
		}
	}
}

// SetMinSize and SetMaxSize set optional bounds on an item's computed
// content size for the given axis; 0 means no bound. Callers are
// responsible for keeping max ≥ min when both are set.
func (c *Context) SetMinSize(id ID, dim Axis, value float32) { c.get(id).minSize[dim] = value }
func (c *Context) SetMaxSize(id ID, dim Axis, value float32) { c.get(id).maxSize[dim] = value }
func (c *Context) MinSize(id ID, dim Axis) float32           { return c.get(id).minSize[dim] }
func (c *Context) MaxSize(id ID, dim Axis) float32           { return c.get(id).maxSize[dim] }

// Capacity returns the number of item slots currently allocated,
// including both live items and the free list.
func (c *Context) Capacity() int { return cap(c.items) }

// Reserve grows the Context's backing storage so that it can hold at
// least n items without a further reallocation, without invalidating
// any existing id.
func (c *Context) Reserve(n int) {
	for cap(c.items) < n {
		c.grow()
	}
}

// SetMargin, SetPadding, SetBorder set box-model insets in left, top,
// right, bottom order.
func (c *Context) SetMargin(id ID, m Vec4)  { c.get(id).margin = m }
func (c *Context) SetPadding(id ID, p Vec4) { c.get(id).padding = p }
func (c *Context) SetBorder(id ID, b Vec4)  { c.get(id).border = b }

// SetMarginLeft, SetMarginTop, SetMarginRight, SetMarginBottom set a
// single side of an item's margin, leaving the others unchanged.
func (c *Context) SetMarginLeft(id ID, v float32)   { c.get(id).margin[edgeLeft] = v }
func (c *Context) SetMarginTop(id ID, v float32)    { c.get(id).margin[edgeTop] = v }
func (c *Context) SetMarginRight(id ID, v float32)  { c.get(id).margin[edgeRight] = v }
func (c *Context) SetMarginBottom(id ID, v float32) { c.get(id).margin[edgeBottom] = v }

func (c *Context) SetPaddingLeft(id ID, v float32)   { c.get(id).padding[edgeLeft] = v }
func (c *Context) SetPaddingTop(id ID, v float32)    { c.get(id).padding[edgeTop] = v }
func (c *Context) SetPaddingRight(id ID, v float32)  { c.get(id).padding[edgeRight] = v }
func (c *Context) SetPaddingBottom(id ID, v float32) { c.get(id).padding[edgeBottom] = v }

func (c *Context) SetBorderLeft(id ID, v float32)   { c.get(id).border[edgeLeft] = v }
func (c *Context) SetBorderTop(id ID, v float32)    { c.get(id).border[edgeTop] = v }
func (c *Context) SetBorderRight(id ID, v float32)  { c.get(id).border[edgeRight] = v }
func (c *Context) SetBorderBottom(id ID, v float32) { c.get(id).border[edgeBottom] = v }

func (c *Context) Margin(id ID) Vec4  { return c.get(id).margin }
func (c *Context) Padding(id ID) Vec4 { return c.get(id).padding }
func (c *Context) Border(id ID) Vec4  { return c.get(id).border }

// SetDisplay sets how id summarizes and positions its children.
func (c *Context) SetDisplay(id ID, d Display) { c.get(id).display = d }
func (c *Context) Display(id ID) Display        { return c.get(id).display }

// SetWrap enables or disables line wrapping for a row/column/inline item.
func (c *Context) SetWrap(id ID, w Wrap) { c.get(id).wrap = w }
func (c *Context) Wrap(id ID) Wrap       { return c.get(id).wrap }

func (c *Context) SetJustify(id ID, j Justify) { c.get(id).justify = j }
func (c *Context) Justify(id ID) Justify       { return c.get(id).justify }

func (c *Context) SetAlignItems(id ID, a Align) { c.get(id).alignItems = a }
func (c *Context) AlignItems(id ID) Align       { return c.get(id).alignItems }

func (c *Context) SetAlignSelf(id ID, a Align) { c.get(id).alignSelf = a }
func (c *Context) AlignSelf(id ID) Align       { return c.get(id).alignSelf }

func (c *Context) SetAlignContent(id ID, a Align) { c.get(id).alignContent = a }
func (c *Context) AlignContent(id ID) Align       { return c.get(id).alignContent }

// SetFlex sets the flex-grow, flex-shrink and flex-basis of id within a
// row/column parent. basis < 0 means auto (use the item's own
// calc-size result as its hypothetical main size).
func (c *Context) SetFlex(id ID, grow, shrink, basis float32) {
	it := c.get(id)
	it.flexGrow, it.flexShrink, it.flexBasis = grow, shrink, basis
}

func (c *Context) FlexGrow(id ID) float32   { return c.get(id).flexGrow }
func (c *Context) FlexShrink(id ID) float32 { return c.get(id).flexShrink }
func (c *Context) FlexBasis(id ID) float32  { return c.get(id).flexBasis }

// SetGap sets the row-gap and column-gap inserted between children of a
// row/column/inline item.
func (c *Context) SetGap(id ID, row, col float32) {
	it := c.get(id)
	it.rowGap, it.colGap = row, col
}

// SetMeasureFunc installs the intrinsic-content-size callback used for
// leaf items (text runs, images, and other replaced content) whose size
// is not fixed and has no children to summarize.
func (c *Context) SetMeasureFunc(id ID, f MeasureFunc) { c.get(id).measure = f }

// SetOverflow sets the overflow behavior for id on both axes.
func (c *Context) SetOverflow(id ID, o Overflow) {
	it := c.get(id)
	it.overflowX, it.overflowY = o, o
}

func (c *Context) SetOverflowX(id ID, o Overflow) { c.get(id).overflowX = o }
func (c *Context) SetOverflowY(id ID, o Overflow) { c.get(id).overflowY = o }
func (c *Context) OverflowX(id ID) Overflow       { return c.get(id).overflowX }
func (c *Context) OverflowY(id ID) Overflow       { return c.get(id).overflowY }

// Style bundles the settable properties of an item for one-shot
// construction via CreateItemWithStyle.
type Style struct {
	Display                          Display
	Wrap                             Wrap
	Justify                          Justify
	AlignItems, AlignSelf, AlignContent Align
	Width, Height                   float32
	Margin, Padding, Border          Vec4
	FlexGrow, FlexShrink, FlexBasis  float32
	RowGap, ColGap                   float32
	OverflowX, OverflowY             Overflow
	Measure                          MeasureFunc
}

// ApplyStyle overwrites id's properties with every non-zero field of s.
// Fields left at their zero value are left untouched, matching the
// original library's apply-only-set-fields semantics; to explicitly
// reset a field to zero use the corresponding Set* method.
func (c *Context) ApplyStyle(id ID, s Style) {
	if s.Display != 0 {
		c.SetDisplay(id, s.Display)
	}
	if s.Wrap != 0 {
		c.SetWrap(id, s.Wrap)
	}
	if s.Justify != 0 {
		c.SetJustify(id, s.Justify)
	}
	if s.AlignItems != 0 {
		c.SetAlignItems(id, s.AlignItems)
	}
	if s.AlignSelf != 0 {
		c.SetAlignSelf(id, s.AlignSelf)
	}
	if s.AlignContent != 0 {
		c.SetAlignContent(id, s.AlignContent)
	}
	if s.Width > 0 {
		c.SetSize(id, Dim0, s.Width)
	}
	if s.Height > 0 {
		c.SetSize(id, Dim1, s.Height)
	}
	if s.Margin != (Vec4{}) {
		c.SetMargin(id, s.Margin)
	}
	if s.Padding != (Vec4{}) {
		c.SetPadding(id, s.Padding)
	}
	if s.Border != (Vec4{}) {
		c.SetBorder(id, s.Border)
	}
	if s.FlexGrow != 0 {
		c.get(id).flexGrow = s.FlexGrow
	}
	if s.FlexShrink != 0 {
		c.get(id).flexShrink = s.FlexShrink
	}
	if s.FlexBasis != 0 {
		c.get(id).flexBasis = s.FlexBasis
	}
	if s.RowGap != 0 {
		c.get(id).rowGap = s.RowGap
	}
	if s.ColGap != 0 {
		c.get(id).colGap = s.ColGap
	}
	if s.OverflowX != 0 {
		c.SetOverflowX(id, s.OverflowX)
	}
	if s.OverflowY != 0 {
		c.SetOverflowY(id, s.OverflowY)
	}
	if s.Measure != nil {
		c.SetMeasureFunc(id, s.Measure)
	}
}

// CreateItemWithStyle allocates a new item and applies s to it in one
// step.
func (c *Context) CreateItemWithStyle(s Style) ID {
	id := c.Item()
	c.ApplyStyle(id, s)
	return id
}
