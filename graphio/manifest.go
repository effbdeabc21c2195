package graphio

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paretosp/xerrors"
)

// RunManifest is the optional file-based counterpart to the CLI's
// -l/-c flags: a run label and iteration count, plus the graph/problem
// paths a batch of timing runs should use.
type RunManifest struct {
	Label        string `yaml:"label"`
	Iterations   int    `yaml:"iterations"`
	GraphPath    string `yaml:"graph_path"`
	ProblemsPath string `yaml:"problems_path"`
	Verbose      bool   `yaml:"verbose"`
}

// LoadRunManifest parses a YAML run manifest.
func LoadRunManifest(r io.Reader) (*RunManifest, error) {
	var m RunManifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, xerrors.Wrap(xerrors.Precondition, err, "graphio: parsing run manifest")
	}
	if m.Iterations <= 0 {
		m.Iterations = 1
	}

	return &m, nil
}
