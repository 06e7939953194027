package runtime

import "testing"

func TestRect_Intersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 5, Height: 5}
	b := Rect{X: 3, Y: 2, Width: 5, Height: 5}
	if got, want := a.Intersection(b), (Rect{X: 3, Y: 2, Width: 2, Height: 3}); got != want {
		t.Fatalf("intersection = %+v, want %+v", got, want)
	}
	if got := a.Intersection(Rect{X: 9, Y: 9, Width: 1, Height: 1}); !got.Empty() {
		t.Fatalf("disjoint intersection = %+v, want empty", got)
	}
}

func TestRect_Inset(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 6, Height: 3}
	if got, want := r.Inset(1), (Rect{X: 3, Y: 2, Width: 4, Height: 1}); got != want {
		t.Fatalf("inset = %+v, want %+v", got, want)
	}
	if got := r.Inset(2); got.Height != 0 || !got.Empty() {
		t.Fatalf("over-inset = %+v, want empty", got)
	}
}

func TestConstraints_Constrain(t *testing.T) {
	c := Constraints{MinWidth: 3, MaxWidth: 10, MinHeight: 3, MaxHeight: 4}
	if got := c.Constrain(Size{Width: 1, Height: 9}); got != (Size{Width: 3, Height: 4}) {
		t.Fatalf("constrain = %+v", got)
	}
	if got := Loose(Size{Width: 8, Height: 2}).Constrain(Size{Width: 3, Height: 3}); got != (Size{Width: 3, Height: 2}) {
		t.Fatalf("loose constrain = %+v", got)
	}
	if got := Tight(Size{Width: 2, Height: 2}).Constrain(Size{Width: 3, Height: 1}); got != (Size{Width: 2, Height: 2}) {
		t.Fatalf("tight constrain = %+v", got)
	}
}

func TestFlexOf(t *testing.T) {
	if got := FlexOf(&treeWidget{}); got != (Flex{}) {
		t.Fatalf("flex of plain widget = %+v, want zero", got)
	}
}
