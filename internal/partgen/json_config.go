package partgen

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

// Default output path, matching what the discharge solver looks for.
const DefaultOut = "initial_particles.txt"

// The embedded default reproduces the canonical example: 1000 unit-weight
// particles in a 200um sphere at the electrode tip.
//
//go:embed default_config.json
var defaultConfigJSON []byte

type DiskCfg struct {
	Center Point2 `json:"center"`
	R      Real   `json:"r"`
	N      int    `json:"n"`
	W      Real   `json:"w"`
	Out    string `json:"out,omitempty"`
}

// Build validates the region geometry and returns the sampler.
func (c *DiskCfg) Build() (*Disk, error) {
	return NewDisk(c.Center, c.R)
}

type SphereCfg struct {
	Center Point3 `json:"center"`
	R      Real   `json:"r"`
	N      int    `json:"n"`
	W      Real   `json:"w"`
	Out    string `json:"out,omitempty"`
}

// Build validates the region geometry and returns the sampler.
func (c *SphereCfg) Build() (*Sphere, error) {
	return NewSphere(c.Center, c.R)
}

type Config struct {
	Seed     int64       `json:"seed"`
	Format   string      `json:"format,omitempty"` // "txt" (default) or "csv"
	Manifest bool        `json:"manifest,omitempty"`
	Disks    []DiskCfg   `json:"disks,omitempty"`
	Spheres  []SphereCfg `json:"spheres,omitempty"`
}

// loadConfig reads the JSON config at path, or the embedded default config
// when path is empty. Empty per-region output paths default to DefaultOut.
func loadConfig(path string) (*Config, error) {
	data := defaultConfigJSON
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	switch cfg.Format {
	case "":
		cfg.Format = "txt"
	case "txt", "csv":
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
	for i := range cfg.Disks {
		if cfg.Disks[i].Out == "" {
			cfg.Disks[i].Out = DefaultOut
		}
	}
	for i := range cfg.Spheres {
		if cfg.Spheres[i].Out == "" {
			cfg.Spheres[i].Out = DefaultOut
		}
	}
	return &cfg, nil
}
