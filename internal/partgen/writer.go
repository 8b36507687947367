package partgen

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// WriteBatch writes the batch as plain text: one header comment naming the
// column order, then one particle per line with every field rendered as
// %18.11E separated by single spaces. This is the format the downstream
// discharge solver ingests.
func WriteBatch(path string, b *Batch) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Particles are stored as %s\n", strings.Join(b.Columns(), ","))
	for i := 0; i < b.Len(); i++ {
		row := b.Row(i)
		for j, v := range row {
			if j > 0 {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "%18.11E", v)
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

type diskRecord struct {
	X Real `csv:"x"`
	Y Real `csv:"y"`
	W Real `csv:"w"`
}

type sphereRecord struct {
	X Real `csv:"x"`
	Y Real `csv:"y"`
	Z Real `csv:"z"`
	W Real `csv:"w"`
}

// WriteBatchCSV writes the batch as CSV with a header row, for tooling that
// prefers CSV over the solver's fixed-width text format.
func WriteBatchCSV(path string, b *Batch) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch b.Cols() {
	case 3:
		recs := make([]diskRecord, b.Len())
		for i := range recs {
			row := b.Row(i)
			recs[i] = diskRecord{X: row[0], Y: row[1], W: row[2]}
		}
		if err := gocsv.Marshal(&recs, f); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	case 4:
		recs := make([]sphereRecord, b.Len())
		for i := range recs {
			row := b.Row(i)
			recs[i] = sphereRecord{X: row[0], Y: row[1], Z: row[2], W: row[3]}
		}
		if err := gocsv.Marshal(&recs, f); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported batch width %d", b.Cols())
	}
	return nil
}
