package partgen

import (
	"math"
	"math/rand"
	"testing"
)

func TestSphereSample_ElectrodeTipScenario(t *testing.T) {
	// The canonical discharge-seed case: 1000 unit-weight particles inside a
	// 200um sphere at the electrode tip.
	s, err := NewSphere(Point3{X: 0.0175, Y: 0.01, Z: 0.0}, 200e-6)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Sample(rand.New(rand.NewSource(0)), 1000, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 1000 || b.Cols() != 4 {
		t.Fatalf("want 1000x4, got %dx%d", b.Len(), b.Cols())
	}
	r2 := s.R * s.R
	for i := 0; i < b.Len(); i++ {
		row := b.Row(i)
		if (Point3{X: row[0], Y: row[1], Z: row[2]}).Dist2(s.Center) >= r2 {
			t.Fatalf("row %d outside sphere: %v", i, row)
		}
		if row[3] != 1.0 {
			t.Fatalf("row %d weight: got %v, want 1.0", i, row[3])
		}
	}
}

func TestSphereSample_ZeroCountDrawsNothing(t *testing.T) {
	s, err := NewSphere(Point3{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	src := &countingSource{src: rand.NewSource(11)}
	b, err := s.Sample(rand.New(src), 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 0 {
		t.Fatalf("want empty batch, got %d rows", b.Len())
	}
	if src.calls != 0 {
		t.Fatalf("n=0 must not touch the generator, got %d draws", src.calls)
	}
}

func TestSphereSample_Deterministic(t *testing.T) {
	s, err := NewSphere(Point3{X: -1, Y: 2, Z: 3}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	b1, err := s.Sample(rand.New(rand.NewSource(9)), 150, 2)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := s.Sample(rand.New(rand.NewSource(9)), 150, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < b1.Len(); i++ {
		r1, r2 := b1.Row(i), b2.Row(i)
		for j := range r1 {
			if r1[j] != r2[j] {
				t.Fatalf("row %d col %d differs: %v vs %v", i, j, r1[j], r2[j])
			}
		}
	}
}

func TestNewSphere_RejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name   string
		center Point3
		r      Real
	}{
		{"zero radius", Point3{}, 0},
		{"negative radius", Point3{}, -200e-6},
		{"nan radius", Point3{}, math.NaN()},
		{"inf center", Point3{Z: math.Inf(-1)}, 1},
	}
	for _, c := range cases {
		if _, err := NewSphere(c.center, c.r); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestSphereSample_RejectsBadArgs(t *testing.T) {
	s, err := NewSphere(Point3{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	if _, err := s.Sample(rng, -5, 1); err == nil {
		t.Error("negative count: expected error")
	}
	if _, err := s.Sample(rng, 1, math.Inf(1)); err == nil {
		t.Error("inf weight: expected error")
	}
}
