package intervalmap

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/akmistry/intervalmap/internal/densemap"
	"github.com/akmistry/intervalmap/internal/intervalmap"
)

var ErrMismatch = errors.New("interval map does not match reference")

// DemoAssignments is the fixed sequence run when no assignments are given.
var DemoAssignments = []Assignment{
	{0, 1, "D"},
	{1, 2, "B"},
	{2, 3, "D"},
	{1, 2, "A"},
}

// RandomAssignments returns |n| assignments with keys in [lo, hi] and values
// drawn from |values|. Empty and inverted ranges are generated too.
func RandomAssignments(rng *rand.Rand, n, lo, hi int, values []string) []Assignment {
	if hi < lo || len(values) == 0 {
		return nil
	}
	span := hi - lo + 1
	out := make([]Assignment, n)
	for i := range out {
		out[i] = Assignment{
			Begin: lo + rng.Intn(span),
			End:   lo + rng.Intn(span),
			Value: values[rng.Intn(len(values))],
		}
	}
	return out
}

// Apply runs every assignment against both maps. If |d| is non-nil, the maps
// are compared after each assignment and the first difference is returned.
func Apply(m *intervalmap.Map[int, string], d *densemap.Map[string], as []Assignment) error {
	for i, a := range as {
		m.Assign(a.Begin, a.End, a.Value)
		slog.Debug("assign", "n", i, "range", a, "boundaries", m.Len())
		if d == nil {
			continue
		}
		d.Assign(a.Begin, a.End, a.Value)
		if err := CrossCheck(m, d); err != nil {
			return fmt.Errorf("after %v (#%d): %w", a, i, err)
		}
	}
	return nil
}

// CrossCheck compares |m| with the reference |d| at every key in d's range
// (plus one key either side), and compares the boundary lists.
func CrossCheck(m *intervalmap.Map[int, string], d *densemap.Map[string]) error {
	for k := d.Lo() - 1; k <= d.Hi(); k++ {
		if mv, dv := m.Get(k), d.Get(k); mv != dv {
			return fmt.Errorf("%w: Get(%d) %q != %q", ErrMismatch, k, mv, dv)
		}
	}

	type boundary struct {
		k int
		v string
	}
	var exp []boundary
	for k, v := range d.Boundaries {
		exp = append(exp, boundary{k, v})
	}
	i := 0
	for k, v := range m.All() {
		if i >= len(exp) {
			return fmt.Errorf("%w: extra boundary %d -> %q", ErrMismatch, k, v)
		}
		if (boundary{k, v}) != exp[i] {
			return fmt.Errorf("%w: boundary %d -> %q != %d -> %q",
				ErrMismatch, k, v, exp[i].k, exp[i].v)
		}
		i++
	}
	if i < len(exp) {
		return fmt.Errorf("%w: missing boundary %d -> %q", ErrMismatch, exp[i].k, exp[i].v)
	}
	return nil
}
