package game

// Collection is a growable ordered sequence of entities. Removal compacts
// in place so the backing array is reused across ticks.
type Collection[T any] struct {
	items []T
}

// NewCollection creates an empty collection with room for capacity items.
func NewCollection[T any](capacity int) Collection[T] {
	return Collection[T]{items: make([]T, 0, capacity)}
}

// Add appends an entity.
func (c *Collection[T]) Add(item T) {
	c.items = append(c.items, item)
}

// Len returns the number of live entities.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns a pointer to the i-th entity for in-place mutation.
func (c *Collection[T]) At(i int) *T {
	return &c.items[i]
}

// Items returns the live entities. The slice aliases internal storage and
// is only valid until the next mutation.
func (c *Collection[T]) Items() []T {
	return c.items
}

// Each calls fn for every entity in order.
func (c *Collection[T]) Each(fn func(*T)) {
	for i := range c.items {
		fn(&c.items[i])
	}
}

// Retain keeps the entities for which keep returns true, preserving order.
// It returns the number of entities removed.
func (c *Collection[T]) Retain(keep func(*T) bool) int {
	kept := c.items[:0]
	for i := range c.items {
		if keep(&c.items[i]) {
			kept = append(kept, c.items[i])
		}
	}
	removed := len(c.items) - len(kept)

	// Zero the tail so dropped entities do not linger in the backing array
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	return removed
}

// Clone returns an independent copy of the entities.
func (c *Collection[T]) Clone() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Reset removes all entities, keeping capacity.
func (c *Collection[T]) Reset() {
	c.Retain(func(*T) bool { return false })
}
