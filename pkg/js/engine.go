// Package js lets scripts drive a layout.Context: it is a thin goja
// binding, not a browser or DOM implementation. A script creates items,
// sets their style, runs layout, and reads back rects — the same
// sequence a Go caller would perform directly, just from JS.
package js

import (
	"fmt"

	"github.com/dop251/goja"

	"layx/pkg/layout"
)

// Engine executes JavaScript against a layout.Context.
type Engine struct {
	vm  *goja.Runtime
	ctx *layout.Context
}

// New creates a JS engine bound to ctx. Scripts run against ctx operate
// on the same items a Go caller sees through ctx directly.
func New(ctx *layout.Context) *Engine {
	vm := goja.New()
	e := &Engine{vm: vm, ctx: ctx}

	c := &consoleAPI{}
	c.register(vm)
	e.registerLayout()

	return e
}

// Run executes script against the bound context and returns the
// script's completion value, if any.
func (e *Engine) Run(script string) (goja.Value, error) {
	v, err := e.vm.RunString(script)
	if err != nil {
		return nil, fmt.Errorf("layoutscript: %w", err)
	}
	return v, nil
}

// registerLayout exposes ctx's tree and style mutators as a "layout"
// global object. Each method mirrors a Context method one-to-one;
// argument and return shapes are plain numbers/strings/objects so the
// binding needs no custom goja type.
func (e *Engine) registerLayout() {
	obj := e.vm.NewObject()

	obj.Set("createItem", func() uint32 {
		return uint32(e.ctx.Item())
	})
	obj.Set("destroyItem", func(id uint32) {
		e.ctx.DestroyItem(layout.ID(id))
	})
	obj.Set("append", func(parent, child uint32) {
		e.ctx.Append(layout.ID(parent), layout.ID(child))
	})
	obj.Set("insertAfter", func(after, item uint32) {
		e.ctx.InsertAfter(layout.ID(after), layout.ID(item))
	})
	obj.Set("remove", func(id uint32) {
		e.ctx.Remove(layout.ID(id))
	})

	obj.Set("setSize", func(id uint32, w, h float64) {
		e.ctx.SetSize(layout.ID(id), layout.Dim0, float32(w))
		e.ctx.SetSize(layout.ID(id), layout.Dim1, float32(h))
	})
	obj.Set("setDisplay", func(id uint32, display string) {
		e.ctx.SetDisplay(layout.ID(id), parseDisplay(display))
	})
	obj.Set("setWrap", func(id uint32, wrap bool) {
		w := layout.NoWrap
		if wrap {
			w = layout.WrapOn
		}
		e.ctx.SetWrap(layout.ID(id), w)
	})
	obj.Set("setMargin", func(id uint32, l, t, r, b float64) {
		e.ctx.SetMargin(layout.ID(id), layout.Vec4{float32(l), float32(t), float32(r), float32(b)})
	})
	obj.Set("setPadding", func(id uint32, l, t, r, b float64) {
		e.ctx.SetPadding(layout.ID(id), layout.Vec4{float32(l), float32(t), float32(r), float32(b)})
	})
	obj.Set("setJustify", func(id uint32, justify string) {
		e.ctx.SetJustify(layout.ID(id), parseJustify(justify))
	})
	obj.Set("setAlignItems", func(id uint32, align string) {
		e.ctx.SetAlignItems(layout.ID(id), parseAlign(align))
	})
	obj.Set("setFlex", func(id uint32, grow, shrink, basis float64) {
		e.ctx.SetFlex(layout.ID(id), float32(grow), float32(shrink), float32(basis))
	})
	obj.Set("setGap", func(id uint32, row, col float64) {
		e.ctx.SetGap(layout.ID(id), float32(row), float32(col))
	})

	obj.Set("run", func(id uint32) {
		e.ctx.RunItem(layout.ID(id))
	})
	obj.Set("rect", func(id uint32) map[string]float64 {
		r := e.ctx.Rect(layout.ID(id))
		return map[string]float64{
			"x": float64(r.X), "y": float64(r.Y),
			"width": float64(r.Width), "height": float64(r.Height),
		}
	})
	obj.Set("hitTest", func(root uint32, x, y float64) uint32 {
		return uint32(e.ctx.HitTest(layout.ID(root), float32(x), float32(y)))
	})

	e.vm.Set("layout", obj)
}

func parseDisplay(s string) layout.Display {
	switch s {
	case "row":
		return layout.DisplayRow
	case "column":
		return layout.DisplayColumn
	case "block":
		return layout.DisplayBlock
	case "inline":
		return layout.DisplayInline
	case "inline-block":
		return layout.DisplayInlineBlock
	default:
		return layout.DisplayRow
	}
}

func parseJustify(s string) layout.Justify {
	switch s {
	case "start":
		return layout.JustifyStart
	case "end":
		return layout.JustifyEnd
	case "center":
		return layout.JustifyCenter
	case "space-between":
		return layout.JustifySpaceBetween
	case "space-around":
		return layout.JustifySpaceAround
	case "space-evenly":
		return layout.JustifySpaceEvenly
	default:
		return layout.JustifyStart
	}
}

func parseAlign(s string) layout.Align {
	switch s {
	case "start":
		return layout.AlignStart
	case "end":
		return layout.AlignEnd
	case "center":
		return layout.AlignCenter
	case "stretch":
		return layout.AlignStretch
	default:
		return layout.AlignStart
	}
}
