package table

import "container/list"

// Set is a single set of an associative Index Table: up to Ways
// Entries, ordered by recency. The front of the list is the least
// recently used entry, the back is the most recently used.
type Set struct {
	ways  int
	order *list.List // list.Element.Value is *Entry
	byTag map[uint64]*list.Element
}

// NewSet creates a Set with the given associativity.
func NewSet(ways int) *Set {
	return &Set{
		ways:  ways,
		order: list.New(),
		byTag: make(map[uint64]*list.Element, ways),
	}
}

// Find returns the entry tagged tag, or nil if the set has no such
// entry.
func (s *Set) Find(tag uint64) *Entry {
	elem, ok := s.byTag[tag]
	if !ok {
		return nil
	}

	return elem.Value.(*Entry)
}

// Access moves e to the most-recently-used position. e must be an
// entry currently held by s (i.e. previously returned by Find or
// Insert).
func (s *Set) Access(e *Entry) {
	elem, ok := s.byTag[e.Tag]
	if !ok {
		return
	}

	s.order.MoveToBack(elem)
}

// Insert adds a freshly constructed entry to the set at the
// most-recently-used position, evicting the least-recently-used
// entry in place (reusing its node's storage) if the set is full.
// Callers must have already confirmed, via Find, that no entry with
// entry.Tag exists in the set.
func (s *Set) Insert(entry *Entry) {
	if s.order.Len() < s.ways {
		elem := s.order.PushBack(entry)
		s.byTag[entry.Tag] = elem

		return
	}

	front := s.order.Front()
	evicted := front.Value.(*Entry)
	delete(s.byTag, evicted.Tag)

	front.Value = entry
	s.order.MoveToBack(front)
	s.byTag[entry.Tag] = front
}

// Len reports the number of entries currently held by the set.
func (s *Set) Len() int {
	return s.order.Len()
}

// Tags returns the tags held by the set, ordered from least to most
// recently used. Intended for tests.
func (s *Set) Tags() []uint64 {
	tags := make([]uint64, 0, s.order.Len())
	for elem := s.order.Front(); elem != nil; elem = elem.Next() {
		tags = append(tags, elem.Value.(*Entry).Tag)
	}

	return tags
}
