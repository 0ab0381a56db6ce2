package intervalmap

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/akmistry/intervalmap/internal/densemap"
	"github.com/akmistry/intervalmap/internal/intervalmap"
)

func TestApply_Demo(t *testing.T) {
	m := intervalmap.NewOrdered[int]("B")
	d := densemap.New(-10, 10, "B")
	if err := Apply(m, d, DemoAssignments); err != nil {
		t.Fatalf("Apply() unexpected error %v", err)
	}
	if s := m.String(); s != "0 D\n1 A\n2 D\n3 B\n" {
		t.Errorf("String() %q", s)
	}
}

func TestApply_Random(t *testing.T) {
	const Lo = -50
	const Hi = 50
	rng := rand.New(rand.NewSource(7))
	values := []string{"A", "B", "C"}
	for i := 0; i < 100; i++ {
		m := intervalmap.NewOrdered[int]("A")
		d := densemap.New(Lo, Hi+1, "A")
		as := RandomAssignments(rng, 50, Lo, Hi+1, values)
		if len(as) != 50 {
			t.Fatalf("RandomAssignments() len %d != 50", len(as))
		}
		if err := Apply(m, d, as); err != nil {
			t.Fatalf("Apply() unexpected error %v", err)
		}
	}
}

func TestRandomAssignments_Invalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if as := RandomAssignments(rng, 10, 5, 4, []string{"A"}); as != nil {
		t.Errorf("RandomAssignments() %v != nil", as)
	}
	if as := RandomAssignments(rng, 10, 0, 4, nil); as != nil {
		t.Errorf("RandomAssignments() %v != nil", as)
	}
}

func TestCrossCheck_Mismatch(t *testing.T) {
	m := intervalmap.NewOrdered[int]("A")
	d := densemap.New(0, 10, "A")
	m.Assign(2, 4, "B")
	d.Assign(2, 5, "B")
	if err := CrossCheck(m, d); !errors.Is(err, ErrMismatch) {
		t.Errorf("CrossCheck() error %v != ErrMismatch", err)
	}

	// Outside the reference range the value differs, but no key checked
	// by CrossCheck sees it. The extra boundaries do.
	m = intervalmap.NewOrdered[int]("A")
	d = densemap.New(0, 10, "A")
	m.Assign(20, 30, "B")
	if err := CrossCheck(m, d); !errors.Is(err, ErrMismatch) {
		t.Errorf("CrossCheck() error %v != ErrMismatch", err)
	}

	m.Assign(20, 30, "A")
	if err := CrossCheck(m, d); err != nil {
		t.Errorf("CrossCheck() unexpected error %v", err)
	}
}
