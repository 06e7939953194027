package agent

import (
	"time"

	"github.com/odvcencio/furry-graph/runtime"
)

// Snapshot captures the screen text and widget tree after a frame.
type Snapshot struct {
	Timestamp time.Time    `json:"timestamp"`
	Frame     int          `json:"frame"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Text      string       `json:"text,omitempty"`
	Widgets   []WidgetInfo `json:"widgets,omitempty"`
}

// WidgetInfo describes a widget in the tree.
type WidgetInfo struct {
	ID       string       `json:"id,omitempty"`
	Kind     string       `json:"kind"`
	Title    string       `json:"title,omitempty"`
	Bounds   runtime.Rect `json:"bounds"`
	Error    string       `json:"error,omitempty"`
	Children []WidgetInfo `json:"children,omitempty"`
}

// Errors returns every widget in the snapshot that reported an error.
func (s Snapshot) Errors() []WidgetInfo {
	var out []WidgetInfo
	var visit func([]WidgetInfo)
	visit = func(ws []WidgetInfo) {
		for _, w := range ws {
			if w.Error != "" {
				out = append(out, w)
			}
			visit(w.Children)
		}
	}
	visit(s.Widgets)
	return out
}
