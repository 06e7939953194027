package widgets

import (
	"github.com/odvcencio/furry-graph/backend"
	"github.com/odvcencio/furry-graph/graph"
	"github.com/odvcencio/furry-graph/runtime"
	"github.com/odvcencio/furry-graph/state"
)

// Graph hosts a graph.Renderer in the widget tree.
//
// The renderer's size request drives Measure and Flex. Each Render paints
// the whole assigned rectangle; when the renderer rejects its samples the
// rectangle is left blank and the error is kept for Err.
type Graph struct {
	Component
	renderer graph.Renderer
	source   state.Subscribable
	style    backend.Style
	err      error
}

// GraphOption configures a Graph.
type GraphOption func(*Graph)

// WithSource repaints the graph whenever source changes.
func WithSource(source state.Subscribable) GraphOption {
	return func(g *Graph) {
		g.source = source
	}
}

// WithGraphStyle sets the style applied to every painted cell.
func WithGraphStyle(style backend.Style) GraphOption {
	return func(g *Graph) {
		g.style = style
	}
}

// NewGraph wraps renderer.
func NewGraph(renderer graph.Renderer, opts ...GraphOption) *Graph {
	g := &Graph{renderer: renderer, style: backend.DefaultStyle()}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Renderer returns the wrapped renderer.
func (g *Graph) Renderer() graph.Renderer {
	return g.renderer
}

// Err returns the error from the most recent Render, if any.
func (g *Graph) Err() error {
	if g == nil {
		return nil
	}
	return g.err
}

// Measure reports the renderer's minimum size.
func (g *Graph) Measure(constraints runtime.Constraints) runtime.Size {
	if g.renderer == nil {
		return constraints.MinSize()
	}
	req := g.renderer.SizeRequest()
	return constraints.Constrain(runtime.Size{Width: req.MinWidth, Height: req.MinHeight})
}

// Flex reports the renderer's willingness to grow and shrink.
func (g *Graph) Flex() runtime.Flex {
	if g.renderer == nil {
		return runtime.Flex{}
	}
	req := g.renderer.SizeRequest()
	return runtime.Flex{
		GrowX:   flexFactor(req.GrowX),
		GrowY:   flexFactor(req.GrowY),
		ShrinkX: flexFactor(req.ShrinkX),
		ShrinkY: flexFactor(req.ShrinkY),
	}
}

func flexFactor(ok bool) int {
	if ok {
		return 1
	}
	return 0
}

// Render paints the renderer into the widget bounds.
func (g *Graph) Render(ctx runtime.RenderContext) {
	if ctx.Buffer == nil || g.renderer == nil {
		return
	}
	bounds := g.bounds.Intersection(ctx.Buffer.Bounds())
	region := graph.RegionOf(bounds.X, bounds.Y, bounds.Width, bounds.Height)
	dst := graph.CellWriterFunc(func(col, row int, glyph rune) {
		ctx.Buffer.Set(col, row, glyph, g.style)
	})
	err := g.renderer.Paint(region, dst)
	if err != nil {
		ctx.Buffer.Fill(bounds, graph.EmptyGlyph, g.style)
		if g.err == nil || g.err.Error() != err.Error() {
			graph.Logger().Error("graph paint failed",
				"widget", g.ID().String(),
				"region", region,
				"err", err)
		}
	}
	g.err = err
	g.ClearInvalidation()
}

// Mount starts observing the source.
func (g *Graph) Mount() {
	g.Watch(g.source)
}

// Unmount stops observing the source.
func (g *Graph) Unmount() {
	g.Subs.Clear()
}

var (
	_ runtime.Widget    = (*Graph)(nil)
	_ runtime.Flexible  = (*Graph)(nil)
	_ runtime.Lifecycle = (*Graph)(nil)
	_ runtime.Bindable  = (*Graph)(nil)
)
