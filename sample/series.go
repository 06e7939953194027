package sample

import (
	"math"

	"github.com/odvcencio/furry-graph/graph"
	"github.com/odvcencio/furry-graph/state"
)

// Series is a bounded history of measurements. Observers are notified
// on every Push, so a graph widget can repaint when new data arrives.
type Series struct {
	capacity int
	values   *state.Signal[[]float64]
}

// NewSeries creates a series keeping at most capacity points.
// A non-positive capacity keeps 256.
func NewSeries(capacity int) *Series {
	if capacity <= 0 {
		capacity = 256
	}
	return &Series{capacity: capacity, values: state.NewSignal[[]float64](nil)}
}

// Push appends points, dropping the oldest beyond capacity.
func (s *Series) Push(points ...float64) {
	if len(points) == 0 {
		return
	}
	s.values.Update(func(cur []float64) []float64 {
		next := make([]float64, 0, len(cur)+len(points))
		next = append(append(next, cur...), points...)
		if len(next) > s.capacity {
			next = next[len(next)-s.capacity:]
		}
		return next
	})
}

// Values returns the stored points, oldest first. The slice must not be
// modified.
func (s *Series) Values() []float64 {
	return s.values.Get()
}

// Len returns the number of stored points.
func (s *Series) Len() int {
	return len(s.values.Get())
}

// Subscribe registers fn for change notifications.
func (s *Series) Subscribe(fn func()) func() {
	return s.values.Subscribe(fn)
}

// SubscribeWithScheduler registers fn through scheduler.
func (s *Series) SubscribeWithScheduler(scheduler state.Scheduler, fn func()) func() {
	return s.values.SubscribeWithScheduler(scheduler, fn)
}

// Func returns a sampling function showing the newest points, one per
// sample, right-aligned, scaled from [lo, hi]. Missing history reads as 0.
func (s *Series) Func(lo, hi float64) graph.SampleFunc {
	return func(width, height int) []int {
		return s.sample(width, height, lo, hi)
	}
}

// AutoFunc is like Func but scales to the range of the visible points.
func (s *Series) AutoFunc() graph.SampleFunc {
	return func(width, height int) []int {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range visible(s.Values(), width) {
			lo, hi = min(lo, v), max(hi, v)
		}
		if hi == lo {
			lo--
		}
		return s.sample(width, height, lo, hi)
	}
}

func (s *Series) sample(width, height int, lo, hi float64) []int {
	out := make([]int, max(width, 0))
	points := visible(s.Values(), width)
	start := len(out) - len(points)
	for i, v := range points {
		out[start+i] = Scale(v, lo, hi, height)
	}
	return out
}

func visible(points []float64, width int) []float64 {
	if width <= 0 {
		return nil
	}
	if len(points) > width {
		return points[len(points)-width:]
	}
	return points
}

var _ state.ScheduledSubscribable = (*Series)(nil)
