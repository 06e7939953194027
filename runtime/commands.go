package runtime

import "context"

// Command is an intent emitted by a widget for the app to carry out.
type Command interface {
	Command()
}

// PostFunc sends a message into the app. It returns false when the
// message queue is full.
type PostFunc func(Message) bool

// Quit stops the app loop.
type Quit struct{}

func (Quit) Command() {}

// Refresh forces a full repaint.
type Refresh struct{}

func (Refresh) Command() {}

// SendMsg posts Message back into the loop.
type SendMsg struct {
	Message Message
}

func (SendMsg) Command() {}

// Send wraps msg in a SendMsg command.
func Send(msg Message) Command {
	return SendMsg{Message: msg}
}

// Effect runs in its own goroutine with the app task context.
type Effect struct {
	Run func(ctx context.Context, post PostFunc)
}

func (Effect) Command() {}
