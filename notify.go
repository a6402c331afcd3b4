package wplot

// notifier is a list of change callbacks with coalescing. Connect returns a
// handler id for later removal. While frozen, Notify marks the notifier
// pending and the outermost Thaw emits once.
type notifier struct {
	handlers []handler
	nextID   int
	frozen   int
	pending  bool
}

type handler struct {
	id int
	fn func()
}

func (n *notifier) Connect(fn func()) int {
	n.nextID++
	n.handlers = append(n.handlers, handler{n.nextID, fn})
	return n.nextID
}

func (n *notifier) Disconnect(id int) {
	for i, h := range n.handlers {
		if h.id == id {
			n.handlers = append(n.handlers[:i], n.handlers[i+1:]...)
			return
		}
	}
}

func (n *notifier) Freeze() {
	n.frozen++
}

func (n *notifier) Thaw() {
	if n.frozen == 0 {
		return
	}
	n.frozen--
	if n.frozen == 0 && n.pending {
		n.pending = false
		n.emit()
	}
}

func (n *notifier) Notify() {
	if 0 < n.frozen {
		n.pending = true
		return
	}
	n.emit()
}

func (n *notifier) emit() {
	// handlers may disconnect themselves during emission
	hs := make([]handler, len(n.handlers))
	copy(hs, n.handlers)
	for _, h := range hs {
		h.fn()
	}
}
