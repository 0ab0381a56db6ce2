package densemap

import (
	"github.com/bits-and-blooms/bitset"
)

// Map stores one value per key over the integer range [lo, hi). It is a
// slow, obviously-correct model of a piecewise-constant function, used to
// check compressed representations.
type Map[V comparable] struct {
	lo, hi int
	base   V
	values []V

	assigned bitset.BitSet
}

func New[V comparable](lo, hi int, base V) *Map[V] {
	if hi < lo {
		hi = lo
	}
	m := &Map[V]{
		lo:     lo,
		hi:     hi,
		base:   base,
		values: make([]V, hi-lo),
	}
	for i := range m.values {
		m.values[i] = base
	}
	return m
}

func (m *Map[V]) Lo() int {
	return m.lo
}

func (m *Map[V]) Hi() int {
	return m.hi
}

func (m *Map[V]) Base() V {
	return m.base
}

func (m *Map[V]) clamp(key int) int {
	if key < m.lo {
		return m.lo
	} else if key > m.hi {
		return m.hi
	}
	return key
}

// Assign sets every key in [begin, end) to |value|. Keys outside [lo, hi)
// are ignored.
func (m *Map[V]) Assign(begin, end int, value V) {
	begin = m.clamp(begin)
	end = m.clamp(end)
	for k := begin; k < end; k++ {
		m.values[k-m.lo] = value
		m.assigned.Set(uint(k - m.lo))
	}
}

func (m *Map[V]) Get(key int) V {
	if key < m.lo || key >= m.hi {
		return m.base
	}
	return m.values[key-m.lo]
}

// Assigned returns whether |key| has ever been covered by Assign.
func (m *Map[V]) Assigned(key int) bool {
	if key < m.lo || key >= m.hi {
		return false
	}
	return m.assigned.Test(uint(key - m.lo))
}

func (m *Map[V]) AssignedCount() int {
	return int(m.assigned.Count())
}

// Boundaries yields the minimal set of (key, value) change points of the
// function, in ascending key order. A key where the value returns to the
// base at |hi| is included, since every key at or past |hi| maps to base.
func (m *Map[V]) Boundaries(yield func(key int, value V) bool) {
	prev := m.base
	for k := m.lo; k <= m.hi; k++ {
		v := m.Get(k)
		if v == prev {
			continue
		}
		if !yield(k, v) {
			return
		}
		prev = v
	}
}
