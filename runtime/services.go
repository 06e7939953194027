package runtime

import (
	"time"

	"github.com/odvcencio/furry-graph/state"
)

// Services is the handle widgets use to reach the app.
// The zero value is inert.
type Services struct {
	app *App
}

// Services returns a handle for the app.
func (a *App) Services() Services {
	return Services{app: a}
}

func (s Services) isZero() bool {
	return s.app == nil
}

// Scheduler returns the scheduler that defers callbacks to the app's
// state queue.
func (s Services) Scheduler() state.Scheduler {
	if s.app == nil {
		return nil
	}
	return s.app.StateScheduler()
}

// Invalidate requests a render pass.
func (s Services) Invalidate() {
	if s.app != nil {
		s.app.Invalidate()
	}
}

// Post sends msg into the app loop.
func (s Services) Post(msg Message) bool {
	if s.app == nil {
		return false
	}
	return s.app.TryPost(msg)
}

// Spawn starts effect with the app task context.
func (s Services) Spawn(effect Effect) {
	if s.app != nil {
		s.app.Spawn(effect)
	}
}

// Every posts the result of fn on each interval.
func (s Services) Every(interval time.Duration, fn func(time.Time) Message) {
	if s.app != nil {
		s.app.Every(interval, fn)
	}
}
