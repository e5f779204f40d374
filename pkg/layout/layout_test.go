package layout

import "testing"

// TestBlockStackMarginCollapse mirrors scenario 1: a block container with
// top padding 10, three children of height 50 stacked vertically, whose
// adjoining margins collapse to their max rather than summing.
func TestBlockStackMarginCollapse(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayBlock)
	ctx.SetSize(root, Dim0, 400)
	ctx.SetPadding(root, Vec4{0, 10, 0, 0})

	child1 := ctx.Item()
	ctx.SetSize(child1, Dim1, 50)
	ctx.SetMargin(child1, Vec4{0, 0, 0, 20})
	ctx.Append(root, child1)

	child2 := ctx.Item()
	ctx.SetSize(child2, Dim1, 50)
	ctx.SetMargin(child2, Vec4{0, 15, 0, 10})
	ctx.Append(root, child2)

	child3 := ctx.Item()
	ctx.SetSize(child3, Dim1, 50)
	ctx.SetMargin(child3, Vec4{0, 5, 0, 0})
	ctx.Append(root, child3)

	ctx.RunItem(root)

	if y := ctx.Rect(child1).Y; y != 10 {
		t.Errorf("child1.Y = %v, want 10", y)
	}
	if y := ctx.Rect(child2).Y; y != 80 {
		t.Errorf("child2.Y = %v, want 80", y)
	}
	if y := ctx.Rect(child3).Y; y != 140 {
		t.Errorf("child3.Y = %v, want 140", y)
	}
	if h := ctx.Rect(root).Height; h != 190 {
		t.Errorf("root.Height = %v, want 190", h)
	}
}

// TestFlexRowSpaceBetween mirrors scenario 2: a 400-wide flex row with
// justify-content: space-between and two 50-wide children places the
// first at the start and the second flush with the end.
func TestFlexRowSpaceBetween(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayRow)
	ctx.SetJustify(root, JustifySpaceBetween)
	ctx.SetSize(root, Dim0, 400)
	ctx.SetSize(root, Dim1, 50)

	child1 := ctx.Item()
	ctx.SetSize(child1, Dim0, 50)
	ctx.Append(root, child1)

	child2 := ctx.Item()
	ctx.SetSize(child2, Dim0, 50)
	ctx.Append(root, child2)

	ctx.RunItem(root)

	if x := ctx.Rect(child1).X; x != 0 {
		t.Errorf("child1.X = %v, want 0", x)
	}
	if x := ctx.Rect(child2).X; x != 350 {
		t.Errorf("child2.X = %v, want 350", x)
	}
}

// TestFlexColumnAutoScroll mirrors scenario 3: a 200x150 column with
// 10px padding on every side, overflow auto, and four 100x50 children
// stacked vertically produces a vertical scrollbar with scroll_max.y=70.
func TestFlexColumnAutoScroll(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayColumn)
	ctx.SetSize(root, Dim0, 200)
	ctx.SetSize(root, Dim1, 150)
	ctx.SetPadding(root, Vec4{10, 10, 10, 10})
	ctx.SetOverflow(root, OverflowAuto)

	for i := 0; i < 4; i++ {
		child := ctx.Item()
		ctx.SetSize(child, Dim0, 100)
		ctx.SetSize(child, Dim1, 50)
		ctx.Append(root, child)
	}

	ctx.RunItem(root)

	if h := ctx.ScrollHeight(root); h != 200 {
		t.Errorf("ScrollHeight = %v, want 200", h)
	}
	if h := ctx.ClientHeight(root); h != 130 {
		t.Errorf("ClientHeight = %v, want 130", h)
	}
	max := ctx.ScrollMax(root)
	if max[1] != 70 {
		t.Errorf("ScrollMax.y = %v, want 70", max[1])
	}
	if !ctx.HasVerticalScrollbar(root) {
		t.Error("expected vertical scrollbar")
	}
}

// TestScrollToClamps mirrors scenario 4: scrolling past the maximum
// clamps to scroll_max.
func TestScrollToClamps(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetSize(root, Dim0, 200)
	ctx.SetSize(root, Dim1, 150)
	ctx.SetOverflow(root, OverflowAuto)

	child := ctx.Item()
	ctx.SetSize(child, Dim0, 300)
	ctx.SetSize(child, Dim1, 300)
	ctx.Append(root, child)

	ctx.RunItem(root)
	ctx.ScrollTo(root, 9999, 9999)

	off := ctx.ScrollOffset(root)
	max := ctx.ScrollMax(root)
	if off[0] != max[0] || off[1] != max[1] {
		t.Errorf("ScrollOffset = %v, want clamped to ScrollMax %v", off, max)
	}
}

// TestHitTestWithHorizontalScroll mirrors scenario 5: a horizontally
// scrolled container hit-tests against the scrolled child.
func TestHitTestWithHorizontalScroll(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayRow)
	ctx.SetSize(root, Dim0, 200)
	ctx.SetSize(root, Dim1, 150)
	ctx.SetOverflow(root, OverflowAuto)

	child := ctx.Item()
	ctx.SetSize(child, Dim0, 400)
	ctx.SetSize(child, Dim1, 150)
	ctx.Append(root, child)

	ctx.RunItem(root)
	ctx.ScrollTo(root, 100, 0)

	hit := ctx.HitTest(root, 150, 75)
	if hit != child {
		t.Errorf("HitTest(150,75) = %v, want child %v", hit, child)
	}
}

// TestNestedScrollHitTest mirrors scenario 6: hit testing through two
// nested scroll containers subtracts both offsets.
func TestNestedScrollHitTest(t *testing.T) {
	ctx := NewContext()
	outer := ctx.Item()
	ctx.SetSize(outer, Dim0, 300)
	ctx.SetSize(outer, Dim1, 200)
	ctx.SetOverflow(outer, OverflowAuto)

	inner := ctx.Item()
	ctx.SetSize(inner, Dim0, 250)
	ctx.SetSize(inner, Dim1, 300)
	ctx.SetOverflow(inner, OverflowAuto)
	ctx.Append(outer, inner)

	content := ctx.Item()
	ctx.SetSize(content, Dim0, 200)
	ctx.SetSize(content, Dim1, 400)
	ctx.Append(inner, content)

	ctx.RunItem(outer)
	ctx.ScrollBy(outer, 0, 50)
	ctx.ScrollBy(inner, 0, 100)

	// inner sits at (0,0) within outer's content box; content sits at
	// (0,0) within inner. Probing at outer's origin, after both
	// scrolls, must still land on content.
	hit := ctx.HitTest(outer, 10, 10)
	if hit != content {
		t.Errorf("HitTest after nested scroll = %v, want content %v", hit, content)
	}
}

// TestHitTestThroughNestedOffsetAncestor checks hit testing at depth ≥2
// under an ancestor that itself sits at a nonzero position: rects are
// root-relative, so descent must not re-subtract an already-absolute
// child rect's own position, only accumulate scroll offsets.
func TestHitTestThroughNestedOffsetAncestor(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayRow)
	ctx.SetSize(root, Dim0, 200)
	ctx.SetSize(root, Dim1, 200)

	mid := ctx.Item()
	ctx.SetDisplay(mid, DisplayRow)
	ctx.SetSize(mid, Dim0, 100)
	ctx.SetSize(mid, Dim1, 100)
	ctx.SetMarginLeft(mid, 50)
	ctx.Append(root, mid)

	leaf := ctx.Item()
	ctx.SetSize(leaf, Dim0, 40)
	ctx.SetSize(leaf, Dim1, 40)
	ctx.SetMarginLeft(leaf, 20)
	ctx.Append(mid, leaf)

	ctx.RunItem(root)
	// mid.X = 50, leaf.X = 50 + 20 = 70; a probe inside leaf's visual
	// rect (70..110, 0..40) must resolve to leaf, not mid.
	if hit := ctx.HitTest(root, 80, 20); hit != leaf {
		t.Errorf("HitTest(80,20) = %v, want leaf %v (mid=%v)", hit, leaf, mid)
	}
}

// TestScreenRectSubtractsOnlyAncestorScroll checks that ScreenRect does
// not re-add ancestor rect positions (which are already absolute) and
// only subtracts each scrollable ancestor's own scroll offset.
func TestScreenRectSubtractsOnlyAncestorScroll(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayRow)
	ctx.SetSize(root, Dim0, 200)
	ctx.SetSize(root, Dim1, 200)

	mid := ctx.Item()
	ctx.SetDisplay(mid, DisplayRow)
	ctx.SetSize(mid, Dim0, 100)
	ctx.SetSize(mid, Dim1, 100)
	ctx.SetMarginLeft(mid, 50)
	ctx.SetOverflow(mid, OverflowScroll)
	ctx.Append(root, mid)

	leaf := ctx.Item()
	ctx.SetSize(leaf, Dim0, 40)
	ctx.SetSize(leaf, Dim1, 40)
	// A large leading margin pushes leaf past mid's content width (100),
	// giving mid a nonzero scroll_max to actually scroll against.
	ctx.SetMarginLeft(leaf, 80)
	ctx.Append(mid, leaf)

	ctx.RunItem(root)
	ctx.ScrollBy(mid, 5, 0)

	// leaf.X = mid.X(50) + leading(80) = 130; scrolling mid by 5 must
	// shift leaf's screen position by exactly that, not also re-add
	// mid's own absolute position.
	got := ctx.ScreenRect(leaf)
	if got.X != 125 || got.Y != 0 {
		t.Errorf("ScreenRect(leaf) = (%v,%v), want (125,0)", got.X, got.Y)
	}
}

// TestRunIsIdempotent checks the fixed-point property: running layout
// twice without mutating inputs produces identical rects.
func TestRunIsIdempotent(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayRow)
	ctx.SetSize(root, Dim0, 300)
	ctx.SetJustify(root, JustifyCenter)
	child := ctx.Item()
	ctx.SetSize(child, Dim0, 50)
	ctx.SetSize(child, Dim1, 50)
	ctx.Append(root, child)

	ctx.RunItem(root)
	first := ctx.Rect(child)
	ctx.RunItem(root)
	second := ctx.Rect(child)
	if first != second {
		t.Errorf("expected idempotent rects, got %v then %v", first, second)
	}
}

// TestFixedSizeWins checks that a fixed size is never overridden absent
// flex-grow or stretch.
func TestFixedSizeWins(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayRow)
	ctx.SetSize(root, Dim0, 500)
	ctx.SetSize(root, Dim1, 100)

	child := ctx.Item()
	ctx.SetSize(child, Dim0, 75)
	ctx.Append(root, child)

	ctx.RunItem(root)
	if w := ctx.Rect(child).Width; w != 75 {
		t.Errorf("fixed width overridden: got %v, want 75", w)
	}
}

// TestFlexGrowDistributesEvenly checks the uniform-filler rule: leftover
// space is split evenly across every flex-grow item regardless of its
// own basis, not weighted by a grow factor.
func TestFlexGrowDistributesEvenly(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayRow)
	ctx.SetSize(root, Dim0, 300)
	ctx.SetSize(root, Dim1, 50)

	a := ctx.Item()
	ctx.SetSize(a, Dim0, 50)
	ctx.SetFlex(a, 1, 0, -1)
	ctx.Append(root, a)

	b := ctx.Item()
	ctx.SetSize(b, Dim0, 50)
	ctx.SetFlex(b, 1, 0, -1)
	ctx.Append(root, b)

	ctx.RunItem(root)
	// used = 100, extra = 200, split evenly = 100 each -> 150 each
	if w := ctx.Rect(a).Width; w != 150 {
		t.Errorf("a.Width = %v, want 150", w)
	}
	if w := ctx.Rect(b).Width; w != 150 {
		t.Errorf("b.Width = %v, want 150", w)
	}
}

// TestFlexBasisOverridesContentSize checks that an auto-sized flex
// item's hypothetical main size comes from flex-basis, not its
// (zero, childless) content size, when a non-auto basis is set.
func TestFlexBasisOverridesContentSize(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayRow)
	ctx.SetSize(root, Dim0, 300)
	ctx.SetSize(root, Dim1, 50)

	a := ctx.Item()
	ctx.SetFlex(a, 0, 0, 80)
	ctx.Append(root, a)

	b := ctx.Item()
	ctx.SetFlex(b, 0, 0, 120)
	ctx.Append(root, b)

	ctx.RunItem(root)
	if w := ctx.Rect(a).Width; w != 80 {
		t.Errorf("a.Width = %v, want 80 (from flex-basis)", w)
	}
	if x := ctx.Rect(b).X; x != 80 {
		t.Errorf("b.X = %v, want 80", x)
	}
	if w := ctx.Rect(b).Width; w != 120 {
		t.Errorf("b.Width = %v, want 120 (from flex-basis)", w)
	}
}

// TestWrapBreaksLine checks that a row with wrap enabled starts a new
// line once a child would overflow, and that the container's
// cross-axis size sums the two lines.
func TestWrapBreaksLine(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayRow)
	ctx.SetWrap(root, WrapOn)
	ctx.SetSize(root, Dim0, 150)

	var children []ID
	for i := 0; i < 3; i++ {
		child := ctx.Item()
		ctx.SetSize(child, Dim0, 100)
		ctx.SetSize(child, Dim1, 20)
		ctx.Append(root, child)
		children = append(children, child)
	}

	ctx.RunItem(root)

	if ctx.HasBreak(children[0]) {
		t.Error("first child should not be marked as a break")
	}
	if !ctx.HasBreak(children[1]) {
		t.Error("second child should start a new line (100+100 > 150)")
	}
	if !ctx.HasBreak(children[2]) {
		t.Error("third child should also start a new line")
	}
	if h := ctx.Rect(root).Height; h != 60 {
		t.Errorf("root.Height = %v, want 60 (three lines of 20)", h)
	}
}

// TestStretchFillsCrossAxis checks AlignStretch resizes a child to the
// container's available cross-axis space net of its own margins.
func TestStretchFillsCrossAxis(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayRow)
	ctx.SetAlignItems(root, AlignStretch)
	ctx.SetSize(root, Dim0, 200)
	ctx.SetSize(root, Dim1, 100)

	child := ctx.Item()
	ctx.SetSize(child, Dim0, 50)
	ctx.Append(root, child)

	ctx.RunItem(root)
	if h := ctx.Rect(child).Height; h != 100 {
		t.Errorf("child.Height = %v, want 100 (stretched)", h)
	}
}

// TestZeroSizedContainerCollapsesStretchToZero covers the boundary case:
// a zero-sized container with a stretch child collapses that child to
// zero rather than failing.
func TestZeroSizedContainerCollapsesStretchToZero(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayRow)
	ctx.SetAlignItems(root, AlignStretch)
	ctx.SetSize(root, Dim0, 0)
	ctx.SetSize(root, Dim1, 0)

	child := ctx.Item()
	ctx.Append(root, child)

	ctx.RunItem(root)
	if h := ctx.Rect(child).Height; h != 0 {
		t.Errorf("child.Height = %v, want 0", h)
	}
}

func TestMeasureFuncUsedForLeafAutoSize(t *testing.T) {
	ctx := NewContext()
	root := ctx.Item()
	ctx.SetDisplay(root, DisplayBlock)
	ctx.SetSize(root, Dim0, 200)

	leaf := ctx.Item()
	ctx.SetMeasureFunc(leaf, func(avail float32) (float32, float32) {
		return 120, 30
	})
	ctx.Append(root, leaf)

	ctx.RunItem(root)
	r := ctx.Rect(leaf)
	if r.Height != 30 {
		t.Errorf("leaf.Height = %v, want 30 from measure func", r.Height)
	}
}
