package partgen

import (
	"fmt"
	"math/rand"
)

var sphereCols = []string{"x", "y", "z", "w"}

// Sphere is a 3D sampling region: the open ball of radius R centered at Center.
type Sphere struct {
	Center Point3
	R      Real
}

// NewSphere validates the region geometry, see NewDisk.
func NewSphere(center Point3, r Real) (*Sphere, error) {
	if !center.finite() {
		return nil, fmt.Errorf("sphere center must be finite, got %+v", center)
	}
	if !isFinite(r) || r <= 0 {
		return nil, fmt.Errorf("sphere radius must be >0, got %.6g", r)
	}
	return &Sphere{Center: center, R: r}, nil
}

// Sample draws n particles uniformly from the ball by rejection from the
// bounding cube. Expected acceptance rate is pi/6. Each row is (x, y, z, w);
// n = 0 returns an empty batch without touching rng.
func (s *Sphere) Sample(rng *rand.Rand, n int, w Real) (*Batch, error) {
	if n < 0 {
		return nil, fmt.Errorf("particle count must be >=0, got %d", n)
	}
	if !isFinite(w) {
		return nil, fmt.Errorf("particle weight must be finite, got %.6g", w)
	}
	b := newBatch(n, sphereCols)
	r2 := s.R * s.R
	for i := 0; i < n; {
		x := s.Center.X + (2*rng.Float64()-1)*s.R
		y := s.Center.Y + (2*rng.Float64()-1)*s.R
		z := s.Center.Z + (2*rng.Float64()-1)*s.R
		if (Point3{X: x, Y: y, Z: z}).Dist2(s.Center) < r2 {
			b.setRow(i, []Real{x, y, z, w})
			i++
		}
	}
	return b, nil
}
