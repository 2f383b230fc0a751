package marketclient

// SyncState tells whether a cached entity matches the server.
type SyncState int

const (
	Synced SyncState = iota
	// Dirty entities carry a local change the server has not confirmed yet.
	Dirty
)

func (s SyncState) String() string {
	if s == Dirty {
		return "dirty"
	}
	return "synced"
}

type entry[T any] struct {
	value  T
	synced T
	state  SyncState
}

// collection keeps entities in server order, addressable by id.
type collection[T any] struct {
	idOf  func(T) string
	order []string
	items map[string]*entry[T]
}

func newCollection[T any](idOf func(T) string) *collection[T] {
	return &collection[T]{
		idOf:  idOf,
		items: map[string]*entry[T]{},
	}
}

func (c *collection[T]) replaceAll(values []T) {
	c.order = make([]string, 0, len(values))
	c.items = make(map[string]*entry[T], len(values))
	for _, v := range values {
		id := c.idOf(v)
		c.order = append(c.order, id)
		c.items[id] = &entry[T]{value: v, synced: v, state: Synced}
	}
}

// upsert stores a server copy, appending it when it is new.
func (c *collection[T]) upsert(v T) {
	id := c.idOf(v)
	if e, ok := c.items[id]; ok {
		e.value, e.synced, e.state = v, v, Synced
		return
	}
	c.order = append(c.order, id)
	c.items[id] = &entry[T]{value: v, synced: v, state: Synced}
}

func (c *collection[T]) prependDirty(v T) {
	id := c.idOf(v)
	c.order = append([]string{id}, c.order...)
	c.items[id] = &entry[T]{value: v, state: Dirty}
}

// replace swaps the entry stored under oldID for a synced server copy,
// keeping its position. When oldID is gone, v is upserted instead.
func (c *collection[T]) replace(oldID string, v T) {
	id := c.idOf(v)
	for i, o := range c.order {
		if o == oldID {
			delete(c.items, oldID)
			if _, dup := c.items[id]; dup {
				c.order = append(c.order[:i], c.order[i+1:]...)
			} else {
				c.order[i] = id
			}
			c.items[id] = &entry[T]{value: v, synced: v, state: Synced}
			return
		}
	}
	c.upsert(v)
}

func (c *collection[T]) remove(id string) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection[T]) get(id string) (*entry[T], bool) {
	e, ok := c.items[id]
	return e, ok
}

func (c *collection[T]) snapshot() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id].value)
	}
	return out
}

func (c *collection[T]) dirty() []string {
	var ids []string
	for _, id := range c.order {
		if c.items[id].state == Dirty {
			ids = append(ids, id)
		}
	}
	return ids
}
