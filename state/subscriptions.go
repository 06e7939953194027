package state

import "sync"

// Subscriptions collects unsubscribe functions so a widget can drop all
// of them at once, typically on Unmount.
type Subscriptions struct {
	mu     sync.Mutex
	unsubs []func()
	sched  Scheduler
}

// NewSubscriptions creates a set that observes through scheduler.
func NewSubscriptions(scheduler Scheduler) *Subscriptions {
	return &Subscriptions{sched: scheduler}
}

// SetScheduler changes the scheduler used by Observe.
func (s *Subscriptions) SetScheduler(scheduler Scheduler) {
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
}

// Add tracks an unsubscribe function.
func (s *Subscriptions) Add(unsub func()) {
	if unsub == nil {
		return
	}
	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()
}

// Observe subscribes fn to sub using the set's scheduler when sub
// supports one, and tracks the subscription.
func (s *Subscriptions) Observe(sub Subscribable, fn func()) {
	if sub == nil || fn == nil {
		return
	}
	s.mu.Lock()
	scheduler := s.sched
	s.mu.Unlock()
	if scheduled, ok := sub.(ScheduledSubscribable); ok && scheduler != nil {
		s.Add(scheduled.SubscribeWithScheduler(scheduler, fn))
		return
	}
	s.Add(sub.Subscribe(fn))
}

// Clear unsubscribes everything tracked so far.
func (s *Subscriptions) Clear() {
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for _, unsub := range unsubs {
		unsub()
	}
}
