package memory

import "slices"

// collection is a keyed set that remembers insertion order for stable listing.
type collection[T any] struct {
	items map[string]T
	order []string
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: map[string]T{}}
}

func (c collection[T]) clone(cp func(T) T) collection[T] {
	out := collection[T]{items: make(map[string]T, len(c.items)), order: slices.Clone(c.order)}
	for k, v := range c.items {
		out.items[k] = cp(v)
	}
	return out
}

func (c collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) put(id string, v T) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(k string) bool { return k == id })
	return true
}

func (c collection[T]) list(cp func(T) T) []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, cp(c.items[id]))
	}
	return out
}

func same[T any](v T) T { return v }
