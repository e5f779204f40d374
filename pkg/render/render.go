// Package render paints a layout.Context's computed rects onto a gg
// canvas. It knows nothing about the tree's semantics beyond what
// layout.Context exposes: rect, margin/padding/border, and scroll
// offset. It exists to make an engine's output visible for debugging
// and demos, not as a general-purpose UI toolkit.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"layx/pkg/layout"
)

// Renderer draws a layout.Context's tree onto a gg.Context.
type Renderer struct {
	gg *gg.Context
}

// NewRenderer creates a renderer targeting a fresh width x height canvas.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{gg: gg.NewContext(width, height)}
}

// NewRendererForImage creates a renderer that draws onto an existing
// RGBA image in place.
func NewRendererForImage(target *image.RGBA) *Renderer {
	return &Renderer{gg: gg.NewContextForRGBA(target)}
}

// Image returns the canvas drawn so far.
func (r *Renderer) Image() image.Image {
	return r.gg.Image()
}

// SavePNG writes the canvas to path.
func (r *Renderer) SavePNG(path string) error {
	return r.gg.SavePNG(path)
}

// paletteDepth colors successive nesting levels so overlapping boxes
// stay visually distinguishable without per-item styling input.
var paletteDepth = []color.RGBA{
	{230, 230, 230, 255},
	{190, 215, 235, 255},
	{200, 230, 200, 255},
	{240, 220, 180, 255},
	{230, 195, 220, 255},
}

// Render paints root and its whole subtree: each item's border box is
// filled with a depth-keyed color and outlined, content visible beyond
// a scrolling ancestor's client box is clipped to it. Coordinates are
// root-relative, matching layout.Context.Rect's own coordinate space.
func (r *Renderer) Render(ctx *layout.Context, root layout.ID) {
	r.gg.SetRGB(1, 1, 1)
	r.gg.Clear()
	r.paint(ctx, root, 0, 0, 0)
}

// scrollX/scrollY are the accumulated scroll offset of every scrolling
// ancestor seen so far, not an accumulated position: each item's own
// rect is already root-relative, so painting only needs to subtract
// that accumulated scroll, never re-add an ancestor's position.
func (r *Renderer) paint(ctx *layout.Context, id layout.ID, scrollX, scrollY float32, depth int) {
	rect := ctx.Rect(id)
	x, y := rect.X-scrollX, rect.Y-scrollY

	c := paletteDepth[depth%len(paletteDepth)]
	r.gg.SetColor(c)
	r.gg.DrawRectangle(float64(x), float64(y), float64(rect.Width), float64(rect.Height))
	r.gg.Fill()

	r.gg.SetRGB(0.3, 0.3, 0.3)
	r.gg.DrawRectangle(float64(x), float64(y), float64(rect.Width), float64(rect.Height))
	r.gg.Stroke()

	clipped := ctx.HasHorizontalScrollbar(id) || ctx.HasVerticalScrollbar(id)
	inner := ctx.InnerRect(id)
	if clipped {
		r.gg.Push()
		r.gg.DrawRectangle(float64(x+inner.X-rect.X), float64(y+inner.Y-rect.Y), float64(inner.Width), float64(inner.Height))
		r.gg.Clip()
	}

	scroll := ctx.ScrollOffset(id)
	childScrollX := scrollX + scroll[0]
	childScrollY := scrollY + scroll[1]
	for _, child := range ctx.Children(id) {
		r.paint(ctx, child, childScrollX, childScrollY, depth+1)
	}

	if clipped {
		r.gg.ResetClip()
		r.gg.Pop()
	}
}
