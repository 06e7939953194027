package widgets

import (
	"github.com/odvcencio/furry-graph/runtime"
	"github.com/odvcencio/furry-graph/state"
)

// Component is embedded by widgets whose content comes from signals, such
// as a graph sampling a live series or a status line. Bind hands it the
// app's services; a change on a watched signal marks the widget dirty and
// asks the app for a frame.
type Component struct {
	Base
	Services runtime.Services
	Subs     state.Subscriptions
}

// Bind attaches app services. Notifications are delivered through the
// app's scheduler so they run on the render goroutine.
func (c *Component) Bind(services runtime.Services) {
	c.Services = services
	c.Subs.SetScheduler(services.Scheduler())
}

// Unbind drops subscriptions and services.
func (c *Component) Unbind() {
	c.Subs.Clear()
	c.Services = runtime.Services{}
}

// Invalidate marks the widget for repaint and requests a frame.
func (c *Component) Invalidate() {
	c.Base.Invalidate()
	c.Services.Invalidate()
}

// Observe calls fn whenever sub changes.
func (c *Component) Observe(sub state.Subscribable, fn func()) {
	c.Subs.Observe(sub, fn)
}

// Watch replaces all subscriptions with ones that invalidate the widget
// when any of sources changes. Nil sources are skipped.
func (c *Component) Watch(sources ...state.Subscribable) {
	c.Subs.Clear()
	for _, src := range sources {
		if src != nil {
			c.Subs.Observe(src, c.Invalidate)
		}
	}
}
