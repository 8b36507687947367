package partgen

import (
	"fmt"
	"math/rand"
	"time"
)

// Run loads the config at cfgPath (or the embedded default when empty),
// samples every configured region with a single seeded generator, and writes
// each batch to its output file. Regions are sampled in config order with
// sequential draws from the one generator, so a fixed seed and config always
// produce identical files.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	man := &Manifest{Seed: cfg.Seed, Format: cfg.Format}

	start := time.Now()
	for i := range cfg.Disks {
		dc := &cfg.Disks[i]
		d, err := dc.Build()
		if err != nil {
			return fmt.Errorf("disk #%d: %w", i, err)
		}
		b, err := d.Sample(rng, dc.N, dc.W)
		if err != nil {
			return fmt.Errorf("disk #%d: %w", i, err)
		}
		if err := writeOut(cfg.Format, dc.Out, b); err != nil {
			return err
		}
		DebugLog("disk #%d: %d particles -> %s", i, b.Len(), dc.Out)
		DebugLog("disk #%d: %s", i, Summarize(b))
		man.Outputs = append(man.Outputs, ManifestEntry{
			File: dc.Out, Region: "disk", Particles: b.Len(), Weight: dc.W,
		})
	}
	for i := range cfg.Spheres {
		sc := &cfg.Spheres[i]
		s, err := sc.Build()
		if err != nil {
			return fmt.Errorf("sphere #%d: %w", i, err)
		}
		b, err := s.Sample(rng, sc.N, sc.W)
		if err != nil {
			return fmt.Errorf("sphere #%d: %w", i, err)
		}
		if err := writeOut(cfg.Format, sc.Out, b); err != nil {
			return err
		}
		DebugLog("sphere #%d: %d particles -> %s", i, b.Len(), sc.Out)
		DebugLog("sphere #%d: %s", i, Summarize(b))
		man.Outputs = append(man.Outputs, ManifestEntry{
			File: sc.Out, Region: "sphere", Particles: b.Len(), Weight: sc.W,
		})
	}
	DebugLog("sampled %d regions in %s", len(cfg.Disks)+len(cfg.Spheres), time.Since(start))

	if cfg.Manifest {
		mp := man.path()
		if err := man.write(mp); err != nil {
			return err
		}
		DebugLog("wrote manifest: %s", mp)
	}
	return nil
}

func writeOut(format, path string, b *Batch) error {
	if format == "csv" {
		return WriteBatchCSV(path, b)
	}
	return WriteBatch(path, b)
}
