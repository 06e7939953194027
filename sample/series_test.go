package sample

import (
	"testing"

	"github.com/odvcencio/furry-graph/state"
)

func TestSeriesPushCapacity(t *testing.T) {
	s := NewSeries(3)
	s.Push(1, 2)
	s.Push(3, 4)
	got := s.Values()
	if len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Fatalf("values = %v, want [2 3 4]", got)
	}
	s.Push()
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
}

func TestSeriesNotifiesThroughScheduler(t *testing.T) {
	s := NewSeries(0)
	queue := state.NewQueue()
	subs := state.NewSubscriptions(queue)
	calls := 0
	subs.Observe(s, func() { calls++ })

	s.Push(1)
	if calls != 0 {
		t.Fatalf("calls before flush = %d, want 0", calls)
	}
	if n := queue.Flush(); n != 1 {
		t.Fatalf("flushed = %d, want 1", n)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestSeriesFuncRightAligned(t *testing.T) {
	s := NewSeries(10)
	s.Push(0, 5, 10)

	got := s.Func(0, 10)(5, 4)
	want := []int{0, 0, 0, 2, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("samples = %v, want %v", got, want)
		}
	}

	got = s.Func(0, 10)(2, 4)
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("truncated samples = %v, want [2 4]", got)
	}
}

func TestSeriesAutoFunc(t *testing.T) {
	s := NewSeries(10)
	if got := s.AutoFunc()(3, 4); len(got) != 3 || got[0] != 0 || got[2] != 0 {
		t.Fatalf("empty series samples = %v", got)
	}
	s.Push(100, 150, 200)
	got := s.AutoFunc()(3, 4)
	if got[0] != 0 || got[1] != 2 || got[2] != 4 {
		t.Fatalf("auto samples = %v, want [0 2 4]", got)
	}

	flat := NewSeries(4)
	flat.Push(7, 7)
	if got := flat.AutoFunc()(2, 6); got[0] != 6 || got[1] != 6 {
		t.Fatalf("flat samples = %v, want [6 6]", got)
	}
}
