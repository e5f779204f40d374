// Command layoutdemo shows the layout engine running live: it builds a
// small item tree, lays it out at a fixed size, and paints the result
// with pkg/render onto a window.
package main

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"layx/pkg/layout"
	"layx/pkg/render"
)

// buildSample constructs three wrapping rows of cards inside a scrolling
// column, exercising flex-wrap, gaps, and overflow in one small tree.
func buildSample(ctx *layout.Context, width, height float32) layout.ID {
	root := ctx.Item()
	ctx.SetSize(root, layout.Dim0, width)
	ctx.SetSize(root, layout.Dim1, height)
	ctx.SetDisplay(root, layout.DisplayColumn)
	ctx.SetPadding(root, layout.Vec4{12, 12, 12, 12})
	ctx.SetOverflowY(root, layout.OverflowAuto)
	ctx.SetGap(root, 12, 0)

	for row := 0; row < 3; row++ {
		line := ctx.Item()
		ctx.SetDisplay(line, layout.DisplayRow)
		ctx.SetWrap(line, layout.WrapOn)
		ctx.SetGap(line, 8, 8)
		ctx.Append(root, line)

		for card := 0; card < 5; card++ {
			item := ctx.Item()
			ctx.SetSize(item, layout.Dim0, 90)
			ctx.SetSize(item, layout.Dim1, 60)
			ctx.Append(line, item)
		}
	}
	return root
}

func renderSample(w, h int) (*image.RGBA, int) {
	ctx := layout.NewContext()
	root := buildSample(ctx, float32(w), float32(h))
	ctx.RunItem(root)

	target := image.NewRGBA(image.Rect(0, 0, w, h))
	renderer := render.NewRendererForImage(target)
	renderer.Render(ctx, root)
	return target, ctx.Count()
}

func main() {
	a := app.New()
	w := a.NewWindow("layout engine demo")
	w.Resize(fyne.NewSize(640, 480))

	width, height := 640, 440
	target, count := renderSample(width, height)
	canvasImg := canvas.NewImageFromImage(target)
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel(fmt.Sprintf("%d items laid out at %dx%d", count, width, height))

	content := container.NewBorder(nil, status, nil, nil, canvasImg)
	w.SetContent(content)
	w.ShowAndRun()
}
