package runtime

// Bindable widgets receive app services when attached to a screen.
type Bindable interface {
	Bind(services Services)
}

// Unbindable widgets release app services when detached.
type Unbindable interface {
	Unbind()
}

// Lifecycle widgets are notified when they enter and leave the tree.
type Lifecycle interface {
	Mount()
	Unmount()
}

// walk visits w and its descendants, parents first unless postOrder.
func walk(w Widget, postOrder bool, visit func(Widget)) {
	if w == nil {
		return
	}
	if !postOrder {
		visit(w)
	}
	if parent, ok := w.(ChildProvider); ok {
		for _, child := range parent.ChildWidgets() {
			walk(child, postOrder, visit)
		}
	}
	if postOrder {
		visit(w)
	}
}

// BindTree binds every Bindable widget under root.
// Zero services are ignored.
func BindTree(root Widget, services Services) {
	if services.isZero() {
		return
	}
	walk(root, false, func(w Widget) {
		if b, ok := w.(Bindable); ok {
			b.Bind(services)
		}
	})
}

// UnbindTree unbinds every Unbindable widget under root, children first.
func UnbindTree(root Widget) {
	walk(root, true, func(w Widget) {
		if u, ok := w.(Unbindable); ok {
			u.Unbind()
		}
	})
}

// MountTree mounts every Lifecycle widget under root, parents first.
func MountTree(root Widget) {
	walk(root, false, func(w Widget) {
		if l, ok := w.(Lifecycle); ok {
			l.Mount()
		}
	})
}

// UnmountTree unmounts every Lifecycle widget under root, children first.
func UnmountTree(root Widget) {
	walk(root, true, func(w Widget) {
		if l, ok := w.(Lifecycle); ok {
			l.Unmount()
		}
	})
}
