package widgets

import (
	"github.com/odvcencio/furry-graph/backend"
	"github.com/odvcencio/furry-graph/runtime"
)

// Panel draws a border with an optional title around a single child.
type Panel struct {
	Base
	child runtime.Widget
	title string
	style backend.Style
}

// NewPanel wraps child in a bordered panel.
func NewPanel(title string, child runtime.Widget) *Panel {
	return &Panel{child: child, title: title, style: backend.DefaultStyle()}
}

// Title returns the panel title.
func (p *Panel) Title() string {
	return p.title
}

// SetTitle changes the panel title.
func (p *Panel) SetTitle(title string) {
	if p.title != title {
		p.title = title
		p.Invalidate()
	}
}

// SetStyle sets the border and title style.
func (p *Panel) SetStyle(style backend.Style) {
	p.style = style
}

// Measure returns the child's size plus the border.
func (p *Panel) Measure(constraints runtime.Constraints) runtime.Size {
	if p.child == nil {
		return constraints.Constrain(runtime.Size{Width: 2, Height: 2})
	}
	inner := runtime.Constraints{
		MinWidth:  max(0, constraints.MinWidth-2),
		MaxWidth:  max(0, constraints.MaxWidth-2),
		MinHeight: max(0, constraints.MinHeight-2),
		MaxHeight: max(0, constraints.MaxHeight-2),
	}
	size := p.child.Measure(inner)
	return constraints.Constrain(runtime.Size{Width: size.Width + 2, Height: size.Height + 2})
}

// Flex forwards the child's flex factors.
func (p *Panel) Flex() runtime.Flex {
	return runtime.FlexOf(p.child)
}

// Layout positions the child inside the border.
func (p *Panel) Layout(bounds runtime.Rect) {
	p.Base.Layout(bounds)
	if p.child != nil {
		p.child.Layout(bounds.Inset(1))
	}
}

// Render draws the border, the title, and the child.
func (p *Panel) Render(ctx runtime.RenderContext) {
	if ctx.Buffer == nil || p.bounds.Empty() {
		return
	}
	bounds := p.bounds
	start, end := bounds.X+2, bounds.X+2
	if title := truncateString(p.title, bounds.Width-4); title != "" {
		end += ctx.Buffer.SetString(start, bounds.Y, title, p.style)
	}
	ctx.Buffer.DrawBoxGap(bounds, start, end, p.style)
	if p.child != nil {
		p.child.Render(ctx.Sub(bounds.Inset(1)))
	}
	p.ClearInvalidation()
}

// HandleMessage forwards to the child.
func (p *Panel) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if p.child == nil {
		return runtime.Unhandled()
	}
	return p.child.HandleMessage(msg)
}

// ChildWidgets returns the wrapped child.
func (p *Panel) ChildWidgets() []runtime.Widget {
	if p == nil || p.child == nil {
		return nil
	}
	return []runtime.Widget{p.child}
}
