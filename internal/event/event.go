// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

type subscription struct {
	id       int
	listener Listener
}

// Dispatcher delivers events synchronously, in subscription order.
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    int
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe registers listener for eventType and returns a func that removes
// exactly this subscription. Cancelling twice is a no-op.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) (cancel func()) {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return func() { d.remove(eventType, id) }
}

func (d *Dispatcher) remove(eventType EventType, id int) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			// New slice so a Dispatch in progress keeps iterating its own copy.
			kept := make([]subscription, 0, len(subs)-1)
			kept = append(kept, subs[:i]...)
			d.listeners[eventType] = append(kept, subs[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам. Listeners added or removed
// during a dispatch take effect from the next one.
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}
