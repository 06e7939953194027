package widgets

import (
	"testing"

	"github.com/odvcencio/furry-graph/runtime"
	"github.com/odvcencio/furry-graph/state"
)

func TestSignalLabel_LifecycleQueue(t *testing.T) {
	sig := state.NewSignal("start")
	queue := state.NewQueue()
	label := NewSignalLabel(sig)
	label.Subs.SetScheduler(queue)

	label.Mount()
	if label.Text() != "start" {
		t.Fatalf("expected initial text start, got %q", label.Text())
	}

	sig.Set("next")
	if label.Text() != "start" {
		t.Fatalf("expected text to update after flush, got %q", label.Text())
	}
	if flushed := queue.Flush(); flushed != 1 {
		t.Fatalf("expected 1 queued callback, got %d", flushed)
	}
	if label.Text() != "next" {
		t.Fatalf("expected updated text next, got %q", label.Text())
	}
	if !label.NeedsRender() {
		t.Fatal("expected label to need a render after update")
	}

	label.Unmount()
	sig.Set("final")
	if flushed := queue.Flush(); flushed != 0 {
		t.Fatalf("expected no queued callbacks after unmount, got %d", flushed)
	}
	if label.Text() != "next" {
		t.Fatalf("expected text to remain next after unmount, got %q", label.Text())
	}
}

func TestSignalLabel_RenderAlignment(t *testing.T) {
	label := NewSignalLabel(state.NewSignal("hi"))
	label.SetAlignment(AlignRight)
	if got := renderString(label, 5, 1); got != "   hi\n" {
		t.Fatalf("render = %q", got)
	}

	label = NewSignalLabel(state.NewSignal("signals"))
	if got := renderString(label, 4, 1); got != "sig…\n" {
		t.Fatalf("truncated render = %q", got)
	}

	if got := label.Measure(runtime.Unbounded()); got != (runtime.Size{Width: 7, Height: 1}) {
		t.Fatalf("measure = %+v", got)
	}
}

func TestSignalLabel_RefreshReadsSourceImmediately(t *testing.T) {
	sig := state.NewSignal("old")
	label := NewSignalLabel(sig)
	label.Subs.SetScheduler(state.NewQueue())
	label.Mount()

	sig.Set("new")
	if !label.Refresh() || label.Text() != "new" {
		t.Fatalf("text after refresh = %q, want new", label.Text())
	}
	if label.Refresh() {
		t.Fatal("second refresh reported a change")
	}
	if got := renderString(label, 4, 1); got != "new \n" {
		t.Fatalf("render = %q", got)
	}
}
