package labelkit

import "slices"

type observer[T any] struct {
	id uint64
	fn func(T)
}

// observers is an ordered callback list. Callbacks run in registration order
// on the goroutine that calls notify.
type observers[T any] struct {
	entries []observer[T]
	nextID  uint64
}

func (o *observers[T]) add(fn func(T)) (remove func()) {
	o.nextID++
	id := o.nextID
	o.entries = append(o.entries, observer[T]{id: id, fn: fn})

	return func() {
		o.entries = slices.DeleteFunc(o.entries, func(e observer[T]) bool {
			return e.id == id
		})
	}
}

func (o *observers[T]) notify(v T) {
	// Callbacks may unsubscribe while we iterate.
	for _, e := range slices.Clone(o.entries) {
		e.fn(v)
	}
}

func (o *observers[T]) len() int {
	return len(o.entries)
}

// SelectionListener receives all three selection notifications.
type SelectionListener interface {
	ColorChanged(c Color)
	ColorNameChanged(name string)
	IndexChanged(index int)
}

// selectionNotifier fans a selection change out as color, then name, then
// index. Subscribers that rely on the color and name arriving before the
// index depend on that order.
type selectionNotifier struct {
	colors  observers[Color]
	names   observers[string]
	indices observers[int]
}

func (n *selectionNotifier) emit(c Color, name string, index int) {
	n.colors.notify(c)
	n.names.notify(name)
	n.indices.notify(index)
}

func (n *selectionNotifier) addListener(l SelectionListener) (remove func()) {
	removeColor := n.colors.add(l.ColorChanged)
	removeName := n.names.add(l.ColorNameChanged)
	removeIndex := n.indices.add(l.IndexChanged)

	return func() {
		removeColor()
		removeName()
		removeIndex()
	}
}
