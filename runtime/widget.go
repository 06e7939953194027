package runtime

// Widget is a node in the retained widget tree.
//
// The screen drives every widget through two phases: Measure and Layout
// assign a rectangle, then Render paints into it. Widgets must not write
// outside the bounds they were given in Layout.
type Widget interface {
	Measure(constraints Constraints) Size
	Layout(bounds Rect)
	Render(ctx RenderContext)
	HandleMessage(msg Message) HandleResult
}

// ChildProvider is implemented by containers.
type ChildProvider interface {
	ChildWidgets() []Widget
}

// BoundsProvider exposes the rectangle assigned during Layout.
type BoundsProvider interface {
	Bounds() Rect
}

// HandleResult reports whether a message was consumed and any commands
// the widget wants the app to run.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled reports a consumed message.
func Handled() HandleResult {
	return HandleResult{Handled: true}
}

// Unhandled lets the message continue to other widgets.
func Unhandled() HandleResult {
	return HandleResult{}
}

// WithCommand consumes the message and emits cmds.
func WithCommand(cmds ...Command) HandleResult {
	return HandleResult{Handled: true, Commands: cmds}
}
