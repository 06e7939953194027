package runtime

import "testing"

type treeWidget struct {
	name     string
	children []Widget
	log      *[]string
	bounds   Rect
}

func (w *treeWidget) Measure(c Constraints) Size { return c.MaxSize() }
func (w *treeWidget) Layout(bounds Rect)         { w.bounds = bounds }
func (w *treeWidget) Render(ctx RenderContext)   {}
func (w *treeWidget) HandleMessage(msg Message) HandleResult {
	return Unhandled()
}
func (w *treeWidget) ChildWidgets() []Widget { return w.children }
func (w *treeWidget) Bind(services Services) { *w.log = append(*w.log, "bind "+w.name) }
func (w *treeWidget) Unbind()                { *w.log = append(*w.log, "unbind "+w.name) }
func (w *treeWidget) Mount()                 { *w.log = append(*w.log, "mount "+w.name) }
func (w *treeWidget) Unmount()               { *w.log = append(*w.log, "unmount "+w.name) }

func equalLog(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestScreen_SetRootLifecycleOrder(t *testing.T) {
	var log []string
	child := &treeWidget{name: "child", log: &log}
	root := &treeWidget{name: "root", log: &log, children: []Widget{child}}
	screen := NewScreen(10, 5)
	screen.SetServices(NewApp(AppConfig{}).Services())

	screen.SetRoot(root)
	want := []string{"bind root", "bind child", "mount root", "mount child"}
	if !equalLog(log, want) {
		t.Fatalf("attach order = %v, want %v", log, want)
	}
	if root.bounds != (Rect{Width: 10, Height: 5}) {
		t.Fatalf("root bounds = %+v, want full screen", root.bounds)
	}

	log = log[:0]
	screen.SetRoot(nil)
	want = []string{"unmount child", "unmount root", "unbind child", "unbind root"}
	if !equalLog(log, want) {
		t.Fatalf("detach order = %v, want %v", log, want)
	}
}

func TestScreen_SetRootWithoutServicesSkipsBind(t *testing.T) {
	var log []string
	root := &treeWidget{name: "root", log: &log}
	screen := NewScreen(4, 4)

	screen.SetRoot(root)
	if !equalLog(log, []string{"mount root"}) {
		t.Fatalf("log = %v, want only mount", log)
	}
}

func TestScreen_ResizeRelayouts(t *testing.T) {
	var log []string
	root := &treeWidget{name: "root", log: &log}
	screen := NewScreen(4, 4)
	screen.SetRoot(root)

	screen.Resize(12, 3)
	if root.bounds != (Rect{Width: 12, Height: 3}) {
		t.Fatalf("bounds after resize = %+v", root.bounds)
	}
	if w, h := screen.Buffer().Size(); w != 12 || h != 3 {
		t.Fatalf("buffer size = %dx%d, want 12x3", w, h)
	}
}
