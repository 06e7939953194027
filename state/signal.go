// Package state provides small reactive values for driving widgets.
package state

import "sync"

// EqualFunc reports whether two values are the same for change detection.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// Subscribable emits change notifications.
type Subscribable interface {
	Subscribe(fn func()) func()
}

// ScheduledSubscribable can deliver notifications through a Scheduler.
type ScheduledSubscribable interface {
	Subscribable
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Readable is a value that can be read and observed.
type Readable[T any] interface {
	ScheduledSubscribable
	Get() T
}

type listener struct {
	id        uint64
	fn        func()
	scheduler Scheduler
}

// Signal holds a value and notifies listeners, in subscription order,
// each time it changes.
type Signal[T any] struct {
	mu        sync.Mutex
	value     T
	equal     EqualFunc[T]
	listeners []listener
	nextID    uint64
}

// NewSignal creates a signal holding initial.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// SetEqualFunc installs the check used to suppress no-op updates.
// Without one every Set notifies.
func (s *Signal[T]) SetEqualFunc(fn EqualFunc[T]) {
	s.mu.Lock()
	s.equal = fn
	s.mu.Unlock()
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	if s == nil {
		var zero T
		return zero
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores value and reports whether listeners were notified.
func (s *Signal[T]) Set(value T) bool {
	if s == nil {
		return false
	}
	return s.Update(func(T) T { return value })
}

// Update replaces the value with fn(current) atomically with respect to
// other writers. fn runs under the signal lock and must not call back
// into the signal.
func (s *Signal[T]) Update(fn func(T) T) bool {
	if s == nil || fn == nil {
		return false
	}
	s.mu.Lock()
	next := fn(s.value)
	if s.equal != nil && s.equal(s.value, next) {
		s.mu.Unlock()
		return false
	}
	s.value = next
	listeners := append([]listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		if l.scheduler != nil {
			l.scheduler.Schedule(l.fn)
		} else {
			l.fn()
		}
	}
	return true
}

// Subscribe calls fn synchronously after each change.
// The returned function unsubscribes; calling it again is harmless.
func (s *Signal[T]) Subscribe(fn func()) func() {
	return s.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler delivers change notifications through scheduler.
// A nil scheduler delivers synchronously.
func (s *Signal[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn, scheduler: scheduler})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
