package partgen

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Batch is a dense table of sampled particles, one row per particle.
// Disk batches carry columns (x, y, w); sphere batches carry (x, y, z, w).
// A batch is filled once by a sampler and never mutated afterwards.
type Batch struct {
	cols []string
	data *mat.Dense // nil when the batch is empty (gonum forbids 0-row matrices)
}

func newBatch(n int, cols []string) *Batch {
	b := &Batch{cols: cols}
	if n > 0 {
		b.data = mat.NewDense(n, len(cols), nil)
	}
	return b
}

// Len returns the number of particles in the batch.
func (b *Batch) Len() int {
	if b.data == nil {
		return 0
	}
	r, _ := b.data.Dims()
	return r
}

// Cols returns the number of values per particle row.
func (b *Batch) Cols() int { return len(b.cols) }

// Columns returns the column names in storage order.
func (b *Batch) Columns() []string { return b.cols }

// Row returns row i as a view backed by the table; callers must not modify it.
func (b *Batch) Row(i int) []Real { return b.data.RawRowView(i) }

// At returns the value at row i, column j.
func (b *Batch) At(i, j int) Real { return b.data.At(i, j) }

// Col returns a copy of column j.
func (b *Batch) Col(j int) []Real {
	out := make([]Real, b.Len())
	if b.data != nil {
		mat.Col(out, j, b.data)
	}
	return out
}

func (b *Batch) setRow(i int, vals []Real) { b.data.SetRow(i, vals) }

// Summary holds per-column empirical moments of a batch.
type Summary struct {
	Names  []string
	Mean   []Real
	StdDev []Real
}

// Summarize computes the per-column mean and standard deviation of a batch.
func Summarize(b *Batch) Summary {
	s := Summary{
		Names:  b.Columns(),
		Mean:   make([]Real, b.Cols()),
		StdDev: make([]Real, b.Cols()),
	}
	if b.Len() == 0 {
		return s
	}
	for j := 0; j < b.Cols(); j++ {
		col := b.Col(j)
		s.Mean[j] = stat.Mean(col, nil)
		s.StdDev[j] = stat.StdDev(col, nil)
	}
	return s
}

func (s Summary) String() string {
	var sb strings.Builder
	for j, name := range s.Names {
		if j > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%s: mean=%.6g stddev=%.6g", name, s.Mean[j], s.StdDev[j])
	}
	return sb.String()
}
