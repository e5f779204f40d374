// Package layout is a retained-mode, two-pass layout engine for trees of
// rectangular items. It is an arena-backed, id-indexed port of the layx
// layout library: items live in a single growable slice owned by a
// Context, referenced by stable 32-bit ids rather than pointers, and a
// computed Rect array runs parallel to the item array.
//
// The engine is synchronous and single-threaded: RunContext/RunItem performs
// exactly two passes per axis (a post-order size-calculation pass followed
// by a pre-order arrangement pass) and never backtracks across passes.
package layout

// ID identifies an item within a Context. The zero value is a valid id
// (the first item allocated); the absence of an item is Invalid.
type ID uint32

// Invalid is the id of no item; it is never returned by Item and never
// accepted by any operation except as an absent-parent/absent-sibling
// marker.
const Invalid ID = 0xffffffff

// Vec2 is a two-component vector, indexed by Axis.
type Vec2 [2]float32

// Vec4 is a box-model inset, in left, top, right, bottom order.
type Vec4 [4]float32

const (
	edgeLeft = iota
	edgeTop
	edgeRight
	edgeBottom
)

// Axis selects a layout dimension. Dim0 is the horizontal axis, Dim1 the
// vertical axis; every two-pass operation runs once per axis, dim0 before
// dim1, because cross-axis wrapping and block-height summarization depend
// on the horizontal pass having already produced sizes.
type Axis int

const (
	Dim0 Axis = 0
	Dim1 Axis = 1
)

func (a Axis) other() Axis { return 1 - a }

// Display selects how an item's children are summarized during calc-size
// and positioned during arrange.
type Display uint32

const (
	// DisplayRow and DisplayColumn lay children out along one axis,
	// flexbox-style: growing/shrinking children share leftover or
	// negative space, and justify-content governs distribution.
	DisplayRow Display = iota
	DisplayColumn
	// DisplayBlock stacks children down the vertical axis, full width,
	// collapsing adjoining margins between siblings.
	DisplayBlock
	// DisplayInline packs children left-to-right, wrapping to a new line
	// when they overflow the available width. DisplayInlineBlock lays out
	// its own children the way DisplayBlock does; inside an inline parent
	// it is packed like any other child.
	DisplayInline
	DisplayInlineBlock
)

// mainAxis returns the axis along which Display distributes children:
// row/inline pack horizontally, column/block/inline-block stack
// vertically (inline-block's own children stack the way a block's do;
// it is only its *parent's* wrapping that treats it as an inline unit).
func (d Display) mainAxis() Axis {
	switch d {
	case DisplayColumn, DisplayBlock, DisplayInlineBlock:
		return Dim1
	default:
		return Dim0
	}
}

func (d Display) isFlex() bool {
	return d == DisplayRow || d == DisplayColumn
}

func (d Display) isBlockLike() bool {
	return d == DisplayBlock || d == DisplayInlineBlock
}

// forceWrap reports whether Display always wraps its children onto
// multiple lines regardless of the item's own Wrap setting. Inline
// content packs left to right and wraps by definition; there is no
// "inline, no-wrap" mode in this model.
func (d Display) forceWrap() bool {
	return d == DisplayInline
}

// Wrap controls whether a row/column or inline item wraps overflowing
// children onto additional lines.
type Wrap uint32

const (
	NoWrap Wrap = iota
	WrapOn
)

// Justify controls distribution of leftover main-axis space among a
// stacked item's children, after growing/shrinking children have already
// absorbed or given up space.
type Justify uint32

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align controls cross-axis positioning: AlignItems is the item-level
// default, AlignSelf overrides it per child, AlignContent distributes
// leftover cross-axis space across wrapped lines. An AlignSelf of
// AlignStart (its zero value) is treated like AlignAuto: it defers to
// the parent's AlignItems, so AlignSelf cannot force AlignStart under a
// parent whose AlignItems is something else.
type Align uint32

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignStretch
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
	// AlignAuto (self only) defers to the parent's AlignItems.
	AlignAuto
)

// Overflow controls scrollbar bookkeeping (whether a scrollbar is
// reported). Hit testing does not consult it: a point outside an item's
// rect never reaches that item's children, whatever its Overflow.
type Overflow uint32

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

// itemFlags is a bit-packed set of per-item state. The bit layout itself
// is not part of the contract: callers only observe independently
// settable, disjoint properties through the typed getters/setters below.
type itemFlags uint32

const (
	flagInserted itemFlags = 1 << iota
	flagBreak              // wrap boundary marker, set during arrange, consumed by calc-size
	flagFixedW
	flagFixedH
	flagHasHScrollbar
	flagHasVScrollbar
	flagFree // slot is on the free list, not a live item
)

// Rect is an item's computed box in root-relative coordinates: X/Y is
// the top-left corner of the border box relative to the tree root's
// origin, not to the item's immediate parent, Width/Height its outer
// size.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

func (r Rect) vec() Vec2      { return Vec2{r.X, r.Y} }
func (r Rect) size() Vec2     { return Vec2{r.Width, r.Height} }
func (r Rect) get(a Axis) (pos, size float32) {
	if a == Dim0 {
		return r.X, r.Width
	}
	return r.Y, r.Height
}
func (r *Rect) set(a Axis, pos, size float32) {
	if a == Dim0 {
		r.X, r.Width = pos, size
	} else {
		r.Y, r.Height = pos, size
	}
}

// item is the internal, arena-resident representation of a tree node.
// It is never exposed by pointer; all external access goes through ID.
type item struct {
	firstChild ID
	nextSibling ID
	parent ID

	flags itemFlags

	display  Display
	wrap     Wrap
	justify  Justify
	alignItems Align
	alignSelf  Align
	alignContent Align
	overflowX, overflowY Overflow

	size      Vec2 // requested fixed size per axis; 0 means auto
	minSize, maxSize Vec2 // optional bounds; 0 means no bound
	margin    Vec4
	padding   Vec4
	border    Vec4
	flexGrow, flexShrink float32
	flexBasis            float32 // <0 means auto

	contentSize Vec2
	scrollOffset Vec2
	scrollMax    Vec2
	rowGap, colGap float32

	measure MeasureFunc
}

// MeasureFunc computes the intrinsic content size of a leaf item (for
// example text or an image) given the available main-axis size, in the
// same way a browser's replaced-element or text-measurement callback
// would. It has no side effects and must be safe to call repeatedly.
type MeasureFunc func(availableWidth float32) (width, height float32)
