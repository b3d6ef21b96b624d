// internal/event/event.go
package event

// EventType names a kind of event.
type EventType string

// Event is one notification with its payload.
type Event struct {
	Type EventType
	Data any // payload, see types.go
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order.
// Listeners subscribed to every type receive events after the typed listeners.
type Dispatcher struct {
	listeners map[EventType][]Listener
	any       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers a listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.any = append(d.any, listener)
}

// Unsubscribe removes a listener registered with Subscribe.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = remove(d.listeners[eventType], listener)
}

// UnsubscribeAll removes a listener registered with SubscribeAll.
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	d.any = remove(d.any, listener)
}

func remove(ls []Listener, listener Listener) []Listener {
	for i, l := range ls {
		if l == listener {
			return append(ls[:i], ls[i+1:]...)
		}
	}
	return ls
}

// Dispatch delivers e to its typed listeners, then to catch-all listeners.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
	for _, l := range d.any {
		l.OnEvent(e)
	}
}

// Recorder is a listener that keeps every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns how many events of type t were recorded.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// OfType returns recorded events of type t in order.
func (r *Recorder) OfType(t EventType) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
