package widgets

import (
	"github.com/odvcencio/furry-graph/backend"
	"github.com/odvcencio/furry-graph/runtime"
)

// Direction is the main axis of a Stack.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// Stack lays children out in a row or column.
//
// Each child starts at its measured size along the main axis. Spare space
// goes to children in proportion to their grow factors; a shortfall is
// taken from children in proportion to their shrink factors. Children
// always span the full cross axis.
type Stack struct {
	Base
	Direction Direction
	Gap       int
	Children  []runtime.Widget

	rects []runtime.Rect
}

// NewVStack stacks children top to bottom.
func NewVStack(children ...runtime.Widget) *Stack {
	return &Stack{Direction: Vertical, Children: children}
}

// NewHStack stacks children left to right.
func NewHStack(children ...runtime.Widget) *Stack {
	return &Stack{Direction: Horizontal, Children: children}
}

// Add appends a child.
func (s *Stack) Add(child runtime.Widget) {
	if s == nil || child == nil {
		return
	}
	s.Children = append(s.Children, child)
}

func (s *Stack) main(size runtime.Size) int {
	if s.Direction == Horizontal {
		return size.Width
	}
	return size.Height
}

func (s *Stack) cross(size runtime.Size) int {
	if s.Direction == Horizontal {
		return size.Height
	}
	return size.Width
}

func (s *Stack) gaps() int {
	return s.Gap * max(0, len(s.Children)-1)
}

// Measure sums the children along the main axis and takes the widest
// child across it.
func (s *Stack) Measure(constraints runtime.Constraints) runtime.Size {
	mainTotal, crossMax := s.gaps(), 0
	for _, child := range s.Children {
		size := child.Measure(runtime.Loose(constraints.MaxSize()))
		mainTotal += s.main(size)
		crossMax = max(crossMax, s.cross(size))
	}
	if s.Direction == Horizontal {
		return constraints.Constrain(runtime.Size{Width: mainTotal, Height: crossMax})
	}
	return constraints.Constrain(runtime.Size{Width: crossMax, Height: mainTotal})
}

// Flex combines the children: the stack grows on an axis when any child
// does.
func (s *Stack) Flex() runtime.Flex {
	var out runtime.Flex
	for _, child := range s.Children {
		f := runtime.FlexOf(child)
		out.GrowX = max(out.GrowX, f.GrowX)
		out.GrowY = max(out.GrowY, f.GrowY)
		out.ShrinkX = max(out.ShrinkX, f.ShrinkX)
		out.ShrinkY = max(out.ShrinkY, f.ShrinkY)
	}
	return out
}

// Layout distributes bounds among the children.
func (s *Stack) Layout(bounds runtime.Rect) {
	s.Base.Layout(bounds)
	n := len(s.Children)
	s.rects = s.rects[:0]
	if n == 0 {
		return
	}
	avail := runtime.Size{Width: bounds.Width, Height: bounds.Height}
	space := max(0, s.main(avail)-s.gaps())

	sizes := make([]int, n)
	grows := make([]int, n)
	shrinks := make([]int, n)
	total := 0
	for i, child := range s.Children {
		sizes[i] = s.main(child.Measure(runtime.Loose(avail)))
		total += sizes[i]
		f := runtime.FlexOf(child)
		if s.Direction == Horizontal {
			grows[i], shrinks[i] = f.GrowX, f.ShrinkX
		} else {
			grows[i], shrinks[i] = f.GrowY, f.ShrinkY
		}
	}
	switch {
	case total < space:
		grow(sizes, grows, space-total)
	case total > space:
		shrink(sizes, shrinks, total-space)
	}

	pos := 0
	for i, child := range s.Children {
		var r runtime.Rect
		if s.Direction == Horizontal {
			r = runtime.Rect{X: bounds.X + pos, Y: bounds.Y, Width: sizes[i], Height: bounds.Height}
		} else {
			r = runtime.Rect{X: bounds.X, Y: bounds.Y + pos, Width: bounds.Width, Height: sizes[i]}
		}
		r = r.Intersection(bounds)
		child.Layout(r)
		s.rects = append(s.rects, r)
		pos += sizes[i] + s.Gap
	}
}

// grow hands extra cells out by weight; the remainder goes one cell at a
// time to weighted children in order.
func grow(sizes, weights []int, extra int) {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return
	}
	given := 0
	for i, w := range weights {
		add := extra * w / total
		sizes[i] += add
		given += add
	}
	for i := 0; given < extra; i = (i + 1) % len(sizes) {
		if weights[i] > 0 {
			sizes[i]++
			given++
		}
	}
}

// shrink takes need cells away by weight without driving a size below zero.
func shrink(sizes, weights []int, need int) {
	for need > 0 {
		total := 0
		for i, w := range weights {
			if sizes[i] > 0 {
				total += w
			}
		}
		if total == 0 {
			return
		}
		for i, w := range weights {
			if need == 0 {
				break
			}
			if w == 0 || sizes[i] == 0 {
				continue
			}
			cut := min(max(need*w/total, 1), sizes[i], need)
			sizes[i] -= cut
			need -= cut
		}
	}
}

// Render draws the children and blanks the cells none of them cover.
func (s *Stack) Render(ctx runtime.RenderContext) {
	if ctx.Buffer == nil {
		return
	}
	bounds := s.bounds
	pos := s.mainStart(bounds)
	for i, child := range s.Children {
		if i < len(s.rects) && !s.rects[i].Empty() {
			r := s.rects[i]
			s.blank(ctx.Buffer, bounds, pos, s.mainStart(r))
			pos = s.mainEnd(r)
			child.Render(ctx.Sub(r))
		}
	}
	s.blank(ctx.Buffer, bounds, pos, s.mainEnd(bounds))
	s.ClearInvalidation()
}

func (s *Stack) mainStart(r runtime.Rect) int {
	if s.Direction == Horizontal {
		return r.X
	}
	return r.Y
}

func (s *Stack) mainEnd(r runtime.Rect) int {
	if s.Direction == Horizontal {
		return r.X + r.Width
	}
	return r.Y + r.Height
}

// blank clears the slice of bounds between from and to on the main axis.
func (s *Stack) blank(buf *runtime.Buffer, bounds runtime.Rect, from, to int) {
	if to <= from {
		return
	}
	r := runtime.Rect{X: bounds.X, Y: from, Width: bounds.Width, Height: to - from}
	if s.Direction == Horizontal {
		r = runtime.Rect{X: from, Y: bounds.Y, Width: to - from, Height: bounds.Height}
	}
	buf.Fill(r.Intersection(bounds), ' ', backend.DefaultStyle())
}

// HandleMessage offers msg to each child in order.
func (s *Stack) HandleMessage(msg runtime.Message) runtime.HandleResult {
	for _, child := range s.Children {
		if result := child.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return runtime.Unhandled()
}

// ChildWidgets returns the children.
func (s *Stack) ChildWidgets() []runtime.Widget {
	if s == nil {
		return nil
	}
	return s.Children
}
