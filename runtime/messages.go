package runtime

import (
	"time"

	"github.com/odvcencio/furry-graph/terminal"
)

// Message is an event delivered to the app loop.
type Message interface {
	isMessage()
}

// KeyMsg is keyboard input.
type KeyMsg struct {
	Key   terminal.Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyMsg) isMessage() {}

// ResizeMsg reports a new terminal size.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// TickMsg is posted at the app tick rate.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// QueueFlushMsg asks the loop to flush the state queue.
type QueueFlushMsg struct{}

func (QueueFlushMsg) isMessage() {}

// InvalidateMsg asks for a render pass.
type InvalidateMsg struct{}

func (InvalidateMsg) isMessage() {}

// CustomMsg carries an application-defined value into the loop, for
// handling in an UpdateFunc.
type CustomMsg struct {
	Value any
}

func (CustomMsg) isMessage() {}
