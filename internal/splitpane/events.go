package splitpane

// EventKind identifies what changed.
type EventKind uint8

const (
	EventLayout    EventKind = iota // Sizes recomputed (resize, attach, detach, restore)
	EventDragStart                  // Divider grabbed
	EventMove                       // Drag step accepted
	EventRejected                   // Drag step rejected, layout unchanged
	EventDragEnd                    // Divider released
)

func (k EventKind) String() string {
	switch k {
	case EventLayout:
		return "layout"
	case EventDragStart:
		return "drag-start"
	case EventMove:
		return "move"
	case EventRejected:
		return "rejected"
	case EventDragEnd:
		return "drag-end"
	}
	return "unknown"
}

// Event is delivered to subscribers after the layout has settled.
type Event struct {
	Kind    EventKind
	Divider int // -1 for layout events
	Delta   int
	Err     error // set for EventRejected
}

// Subscribe registers fn for this split pane's events and returns a func
// that removes it. Listeners live no longer than the split pane.
func (sp *SplitPane) Subscribe(fn func(Event)) (unsubscribe func()) {
	if sp.closed {
		return func() {}
	}
	id := sp.nextSub
	sp.nextSub++
	sp.subs[id] = fn
	return func() { delete(sp.subs, id) }
}

// Close ends any drag and drops every subscriber. Later mutating calls
// return ErrClosed.
func (sp *SplitPane) Close() {
	if sp.closed {
		return
	}
	sp.EndDrag()
	sp.closed = true
	clear(sp.subs)
}

func (sp *SplitPane) emit(ev Event) {
	for _, fn := range sp.subs {
		fn(ev)
	}
}
