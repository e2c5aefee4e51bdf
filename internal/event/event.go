// internal/event/event.go
package event

import (
	"reflect"
	"slices"
)

// EventType: тип события
type EventType string

// Event: структура события
type Event struct {
	Type EventType
	Data any // одна из структур из types.go
}

// Listener: интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Subscription identifies one Subscribe call; pass it to Cancel.
type Subscription uint64

type subscriber struct {
	id       Subscription
	listener Listener
}

// Dispatcher: диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]subscriber
	all       []subscriber
	nextID    Subscription
}

// NewDispatcher: создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
	}
}

// Subscribe: подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: d.nextID, listener: listener})
	return d.nextID
}

// SubscribeAll: подписка на все события
func (d *Dispatcher) SubscribeAll(listener Listener) Subscription {
	d.nextID++
	d.all = append(d.all, subscriber{id: d.nextID, listener: listener})
	return d.nextID
}

// Cancel removes the subscription. Unknown ids are ignored. Slices are copied,
// so cancelling from inside a listener does not disturb the running Dispatch.
func (d *Dispatcher) Cancel(sub Subscription) {
	match := func(s subscriber) bool { return s.id == sub }
	for t, subs := range d.listeners {
		d.listeners[t] = slices.DeleteFunc(slices.Clone(subs), match)
	}
	d.all = slices.DeleteFunc(slices.Clone(d.all), match)
}

// Unsubscribe: отписка от события по самому слушателю. Функции сравнить
// нельзя, их снимают только через Cancel.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listener == nil || !reflect.TypeOf(listener).Comparable() {
		return
	}
	subs := d.listeners[eventType]
	for i, s := range subs {
		if reflect.TypeOf(s.listener).Comparable() && s.listener == listener {
			d.listeners[eventType] = slices.Delete(slices.Clone(subs), i, i+1)
			return
		}
	}
}

// Dispatch: отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
	for _, s := range d.all {
		s.listener.OnEvent(event)
	}
}

// DispatchAll отправляет события в порядке их появления.
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, e := range events {
		d.Dispatch(e)
	}
}
