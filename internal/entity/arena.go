// internal/entity/arena.go
package entity

import "battle-of-bastions/internal/types"

// Identified is anything stored in an Arena.
type Identified interface {
	EntityID() types.EntityID
}

// Arena: плотный массив сущностей одного вида плюс индекс id → позиция.
// Порядок элементов сохраняется при удалении: системы сканируют в порядке добавления.
type Arena[T Identified] struct {
	items []T
	index map[types.EntityID]int
}

func NewArena[T Identified]() Arena[T] {
	return Arena[T]{index: make(map[types.EntityID]int)}
}

func (a *Arena[T]) Len() int { return len(a.items) }

// Items returns the backing slice. Valid until the next Add or Remove.
func (a *Arena[T]) Items() []T { return a.items }

// At returns a pointer to the i-th element.
func (a *Arena[T]) At(i int) *T { return &a.items[i] }

func (a *Arena[T]) Add(item T) {
	if a.index == nil {
		a.index = make(map[types.EntityID]int)
	}
	a.index[item.EntityID()] = len(a.items)
	a.items = append(a.items, item)
}

// Get returns a pointer to the element with the given id, or nil.
func (a *Arena[T]) Get(id types.EntityID) *T {
	i, ok := a.index[id]
	if !ok {
		return nil
	}
	return &a.items[i]
}

func (a *Arena[T]) Has(id types.EntityID) bool {
	_, ok := a.index[id]
	return ok
}

// Remove deletes the element with the given id. Missing ids are ignored.
func (a *Arena[T]) Remove(id types.EntityID) bool {
	i, ok := a.index[id]
	if !ok {
		return false
	}
	copy(a.items[i:], a.items[i+1:])
	var zero T
	a.items[len(a.items)-1] = zero
	a.items = a.items[:len(a.items)-1]
	delete(a.index, id)
	for j := i; j < len(a.items); j++ {
		a.index[a.items[j].EntityID()] = j
	}
	return true
}

// Retain keeps the elements for which keep returns true, in order.
// keep may modify the element it is given.
func (a *Arena[T]) Retain(keep func(*T) bool) {
	n := 0
	for i := range a.items {
		if keep(&a.items[i]) {
			a.items[n] = a.items[i]
			n++
		}
	}
	var zero T
	for i := n; i < len(a.items); i++ {
		a.items[i] = zero
	}
	a.items = a.items[:n]
	a.reindex()
}

func (a *Arena[T]) Clear() {
	a.items = a.items[:0]
	clear(a.index)
}

// Clone returns a shallow copy of every element; clone fixes up pointer fields.
func (a *Arena[T]) Clone(clone func(T) T) Arena[T] {
	out := Arena[T]{
		items: make([]T, len(a.items)),
		index: make(map[types.EntityID]int, len(a.items)),
	}
	for i, item := range a.items {
		if clone != nil {
			item = clone(item)
		}
		out.items[i] = item
		out.index[item.EntityID()] = i
	}
	return out
}

func (a *Arena[T]) reindex() {
	if a.index == nil {
		a.index = make(map[types.EntityID]int, len(a.items))
	}
	clear(a.index)
	for i, item := range a.items {
		a.index[item.EntityID()] = i
	}
}
