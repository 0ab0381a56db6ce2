package intervalmap

import (
	"cmp"
	"fmt"
	"iter"
	"log"
	"strings"

	"github.com/google/btree"
)

const btreeDegree = 16

type boundary[K any, V comparable] struct {
	key   K
	value V
}

// Map is a piecewise-constant function from K to V. Only the keys at which
// the value changes are stored. Every key before the first boundary maps to
// the base value.
//
// The boundary set is always minimal: no boundary carries the same value as
// the boundary (or base value) immediately before it.
//
// Map is not safe for concurrent use.
type Map[K any, V comparable] struct {
	base V
	less func(a, b K) bool
	tree *btree.BTreeG[boundary[K, V]]
}

// New returns a Map where every key maps to |base|. Keys are ordered solely
// by |less|, which must be a strict weak ordering. Two keys are considered
// equal if neither is less than the other.
func New[K any, V comparable](base V, less func(a, b K) bool) *Map[K, V] {
	m := &Map[K, V]{
		base: base,
		less: less,
	}
	m.tree = btree.NewG(btreeDegree, func(a, b boundary[K, V]) bool {
		return less(a.key, b.key)
	})
	return m
}

// NewOrdered is New for key types with a built-in < operator.
func NewOrdered[K cmp.Ordered, V comparable](base V) *Map[K, V] {
	return New[K, V](base, func(a, b K) bool { return a < b })
}

func (m *Map[K, V]) pivot(key K) boundary[K, V] {
	return boundary[K, V]{key: key}
}

// Base returns the value of every key before the first boundary.
func (m *Map[K, V]) Base() V {
	return m.base
}

// Len returns the number of stored boundaries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get returns the value in effect at |key|.
func (m *Map[K, V]) Get(key K) V {
	value := m.base
	m.tree.DescendLessOrEqual(m.pivot(key), func(b boundary[K, V]) bool {
		value = b.value
		return false
	})
	return value
}

// valueBefore returns the value in effect immediately before |key|, which is
// the value of the greatest boundary strictly less than |key|, or the base
// value if there is none.
func (m *Map[K, V]) valueBefore(key K) (value V, hasPrev bool) {
	m.tree.DescendLessOrEqual(m.pivot(key), func(b boundary[K, V]) bool {
		if !m.less(b.key, key) {
			// Boundary at |key| itself.
			return true
		}
		value = b.value
		hasPrev = true
		return false
	})
	return
}

// Assign sets the value of every key in [begin, end) to |value|. Keys
// outside that range are unaffected. If !(begin < end), Assign does nothing.
func (m *Map[K, V]) Assign(begin, end K, value V) {
	if !m.less(begin, end) {
		return
	}

	// Boundaries in [begin, end) are superseded by the new range.
	var erase []K
	m.tree.AscendRange(m.pivot(begin), m.pivot(end), func(b boundary[K, V]) bool {
		erase = append(erase, b.key)
		return true
	})

	// Right seam. The value previously in effect at |end| must still be in
	// effect there afterwards. A boundary exactly at |end| restating |value|
	// would be redundant, so it is absorbed.
	endValue := m.Get(end)
	endBoundary, hasEndBoundary := m.tree.Get(m.pivot(end))
	restoreEnd := false
	if hasEndBoundary {
		if endBoundary.value == value {
			erase = append(erase, endBoundary.key)
		}
	} else if endValue != value {
		restoreEnd = true
	}

	// Left seam. Skip the insert at |begin| if the preceding value (previous
	// boundary, or the base value when there is none) is already |value|.
	prevValue, hasPrev := m.valueBefore(begin)
	insert := true
	if (hasPrev && prevValue == value) || (!hasPrev && m.base == value) {
		insert = false
	}

	for _, k := range erase {
		if _, ok := m.tree.Delete(m.pivot(k)); !ok {
			log.Panicf("boundary %v not deleted", k)
		}
	}
	if restoreEnd {
		m.insert(end, endValue)
	}
	if insert {
		m.insert(begin, value)
	}
}

func (m *Map[K, V]) insert(key K, value V) {
	old, replaced := m.tree.ReplaceOrInsert(boundary[K, V]{key: key, value: value})
	if replaced {
		log.Panicf("unexpected old boundary %v -> %v, inserting %v -> %v",
			old.key, old.value, key, value)
	}
}

// All yields the stored boundaries in ascending key order. Each pair means
// "from this key onwards, until the next boundary, the value is this". The
// sequence may be iterated any number of times, but the Map must not be
// modified during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Ascend(func(b boundary[K, V]) bool {
			return yield(b.key, b.value)
		})
	}
}

// String returns one "key value" line per boundary.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	for k, v := range m.All() {
		fmt.Fprintf(&sb, "%v %v\n", k, v)
	}
	return sb.String()
}
