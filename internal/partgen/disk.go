package partgen

import (
	"fmt"
	"math/rand"
)

var diskCols = []string{"x", "y", "w"}

// Disk is a 2D sampling region: the open disk of radius R centered at Center.
type Disk struct {
	Center Point2
	R      Real
}

// NewDisk validates the region geometry. Sample's rejection loop terminates
// only for R > 0, so a non-positive or non-finite radius is rejected here.
func NewDisk(center Point2, r Real) (*Disk, error) {
	if !center.finite() {
		return nil, fmt.Errorf("disk center must be finite, got %+v", center)
	}
	if !isFinite(r) || r <= 0 {
		return nil, fmt.Errorf("disk radius must be >0, got %.6g", r)
	}
	return &Disk{Center: center, R: r}, nil
}

// Sample draws n particles uniformly from the disk by rejection: candidates
// come from the bounding square [X-R,X+R] x [Y-R,Y+R] and are accepted when
// their squared distance to the center is strictly below R^2. Expected
// acceptance rate is pi/4. Each row is (x, y, w); n = 0 returns an empty
// batch without touching rng.
func (d *Disk) Sample(rng *rand.Rand, n int, w Real) (*Batch, error) {
	if n < 0 {
		return nil, fmt.Errorf("particle count must be >=0, got %d", n)
	}
	if !isFinite(w) {
		return nil, fmt.Errorf("particle weight must be finite, got %.6g", w)
	}
	b := newBatch(n, diskCols)
	r2 := d.R * d.R
	for i := 0; i < n; {
		x := d.Center.X + (2*rng.Float64()-1)*d.R
		y := d.Center.Y + (2*rng.Float64()-1)*d.R
		if (Point2{X: x, Y: y}).Dist2(d.Center) < r2 {
			b.setRow(i, []Real{x, y, w})
			i++
		}
	}
	return b, nil
}
