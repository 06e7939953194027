package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/odvcencio/furry-graph/backend"
	"github.com/odvcencio/furry-graph/state"
	"github.com/odvcencio/furry-graph/terminal"
)

// ErrNoBackend is returned by Run when the app has no backend.
var ErrNoBackend = errors.New("backend is required")

// UpdateFunc handles a message and reports whether a render is needed.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler handles commands the app does not know.
// It reports whether a render is needed.
type CommandHandler func(cmd Command) bool

// AppConfig configures an App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	Update         UpdateFunc
	CommandHandler CommandHandler
	MessageBuffer  int
	TickRate       time.Duration
	StateQueue     *state.Queue
	FlushPolicy    QueueFlushPolicy
}

// App runs a widget tree against a backend.
type App struct {
	backend        backend.Backend
	screen         *Screen
	root           Widget
	update         UpdateFunc
	commandHandler CommandHandler
	messages       chan Message
	tickRate       time.Duration
	stateQueue     *state.Queue
	queueScheduler *QueueScheduler
	flushPolicy    QueueFlushPolicy
	invalidator    *Invalidator

	taskMu         sync.Mutex
	taskCtx        context.Context
	taskCancel     context.CancelFunc
	pendingEffects []Effect

	running atomic.Bool
	dirty   bool
}

// NewApp creates an app from cfg.
func NewApp(cfg AppConfig) *App {
	size := cfg.MessageBuffer
	if size <= 0 {
		size = 128
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	app := &App{
		backend:        cfg.Backend,
		root:           cfg.Root,
		update:         cfg.Update,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, size),
		tickRate:       cfg.TickRate,
		stateQueue:     queue,
		flushPolicy:    cfg.FlushPolicy,
	}
	app.queueScheduler = NewQueueScheduler(queue, app.TryPost)
	app.invalidator = NewInvalidator(app.TryPost)
	return app
}

// Screen returns the active screen, or nil before Run.
func (a *App) Screen() *Screen {
	return a.screen
}

// StateQueue returns the queue flushed by the loop.
func (a *App) StateQueue() *state.Queue {
	return a.stateQueue
}

// StateScheduler returns a scheduler that defers callbacks to the loop.
func (a *App) StateScheduler() state.Scheduler {
	if a == nil || a.queueScheduler == nil {
		return nil
	}
	return a.queueScheduler
}

// Invalidate requests a render pass.
func (a *App) Invalidate() {
	if a != nil {
		a.invalidator.Invalidate()
	}
}

// SetRoot swaps the root widget.
func (a *App) SetRoot(root Widget) {
	a.root = root
	if a.screen != nil {
		a.screen.SetRoot(root)
		a.dirty = true
	}
}

// Post sends msg to the loop, dropping it if the queue is full.
func (a *App) Post(msg Message) {
	_ = a.TryPost(msg)
}

// TryPost sends msg to the loop without blocking.
func (a *App) TryPost(msg Message) bool {
	if a == nil || a.messages == nil || msg == nil {
		return false
	}
	select {
	case a.messages <- msg:
		return true
	default:
		return false
	}
}

// Spawn runs effect with the task context. Effects spawned before Run
// start when the loop starts.
func (a *App) Spawn(effect Effect) {
	if a == nil || effect.Run == nil {
		return
	}
	a.taskMu.Lock()
	ctx := a.taskCtx
	if ctx == nil {
		a.pendingEffects = append(a.pendingEffects, effect)
	}
	a.taskMu.Unlock()
	if ctx != nil {
		go effect.Run(ctx, a.TryPost)
	}
}

// Every schedules a recurring message.
func (a *App) Every(interval time.Duration, fn func(time.Time) Message) {
	a.Spawn(Every(interval, fn))
}

// Run drives the loop until Quit or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return ErrNoBackend
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	a.screen = NewScreen(w, h)
	a.screen.SetServices(a.Services())
	a.screen.SetRoot(a.root)
	a.screen.Buffer().MarkAllDirty()
	if a.update == nil {
		a.update = DefaultUpdate
	}

	a.startTasks(ctx)
	defer a.stopTasks()

	a.running.Store(true)
	a.dirty = true
	go a.pollEvents()

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for a.running.Load() {
		var msg Message
		select {
		case <-ctx.Done():
			a.running.Store(false)
			continue
		case msg = <-a.messages:
		case now := <-ticks:
			msg = TickMsg{Time: now}
		}
		if a.update(a, msg) {
			a.dirty = true
		}
		if !a.running.Load() {
			break
		}
		if a.flushPolicy.flushes(msg) {
			a.queueScheduler.resetPending()
			if a.stateQueue.Flush() > 0 {
				a.dirty = true
			}
		}
		if _, ok := msg.(InvalidateMsg); ok {
			a.invalidator.resetPending()
		}
		if a.dirty {
			a.render()
			a.dirty = false
		}
	}
	return ctx.Err()
}

// DefaultUpdate resizes the screen, dispatches input to the tree, and
// runs the commands widgets return.
func DefaultUpdate(app *App, msg Message) bool {
	if app == nil || app.screen == nil {
		return false
	}
	switch m := msg.(type) {
	case ResizeMsg:
		app.screen.Resize(m.Width, m.Height)
		return true
	case QueueFlushMsg:
		return false
	case InvalidateMsg:
		return true
	default:
		return app.dispatch(msg)
	}
}

func (a *App) dispatch(msg Message) bool {
	result := a.screen.HandleMessage(msg)
	dirty := result.Handled
	for _, cmd := range result.Commands {
		if a.handleCommand(cmd) {
			dirty = true
		}
	}
	return dirty
}

// ExecuteCommand runs cmd as if a widget had returned it.
func (a *App) ExecuteCommand(cmd Command) bool {
	if a == nil {
		return false
	}
	return a.handleCommand(cmd)
}

func (a *App) handleCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case Quit:
		a.running.Store(false)
		return false
	case Refresh:
		if a.screen != nil {
			a.screen.Buffer().MarkAllDirty()
		}
		return true
	case SendMsg:
		a.Post(c.Message)
		return false
	case Effect:
		a.Spawn(c)
		return false
	default:
		if a.commandHandler != nil {
			return a.commandHandler(cmd)
		}
		return false
	}
}

func (a *App) pollEvents() {
	for a.running.Load() {
		switch e := a.backend.PollEvent().(type) {
		case nil:
			return
		case terminal.KeyEvent:
			a.Post(KeyMsg{Key: e.Key, Rune: e.Rune, Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift})
		case terminal.ResizeEvent:
			a.Post(ResizeMsg{Width: e.Width, Height: e.Height})
		}
	}
}

func (a *App) render() {
	a.screen.Render()
	Flush(a.backend, a.screen.Buffer())
	a.backend.Show()
}

func (a *App) startTasks(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	a.taskMu.Lock()
	a.taskCtx, a.taskCancel = ctx, cancel
	pending := a.pendingEffects
	a.pendingEffects = nil
	a.taskMu.Unlock()
	for _, effect := range pending {
		go effect.Run(ctx, a.TryPost)
	}
}

func (a *App) stopTasks() {
	a.taskMu.Lock()
	cancel := a.taskCancel
	a.taskCtx, a.taskCancel = nil, nil
	a.taskMu.Unlock()
	if cancel != nil {
		cancel()
	}
}
