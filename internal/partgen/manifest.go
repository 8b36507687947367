package partgen

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file name of the run manifest, written next to the
// first output file.
const ManifestName = "partgen_manifest.yaml"

// Manifest records what a run produced, for downstream bookkeeping.
type Manifest struct {
	Seed    int64           `yaml:"seed"`
	Format  string          `yaml:"format"`
	Outputs []ManifestEntry `yaml:"outputs"`
}

type ManifestEntry struct {
	File      string `yaml:"file"`
	Region    string `yaml:"region"` // "disk" or "sphere"
	Particles int    `yaml:"particles"`
	Weight    Real   `yaml:"weight"`
}

// path returns the manifest location: ManifestName in the directory of the
// first output file, or the working directory when the run produced nothing.
func (m *Manifest) path() string {
	if len(m.Outputs) == 0 {
		return ManifestName
	}
	return filepath.Join(filepath.Dir(m.Outputs[0].File), ManifestName)
}

func (m *Manifest) write(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
