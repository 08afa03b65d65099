package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mihkeluutar/simplex-practical-experiments/simplex"
)

// Run captures one solve inside an experiment.
type Run struct {
	Seed   int64          `json:"seed"`
	Pivots int            `json:"pivots"`
	Value  float64        `json:"value"`
	Counts simplex.Counts `json:"counts"`
}

// Summary describes an experiment: the generation parameters shared by
// all runs plus one Run entry per solve.
type Summary struct {
	Distribution  string `json:"distribution"`
	Strategy      string `json:"strategy"`
	Constraints   int    `json:"constraints"`
	Variables     int    `json:"variables"`
	MinValue      int    `json:"min_value"`
	MaxValue      int    `json:"max_value"`
	MaxIterations int    `json:"max_iterations"`
	Runs          []Run  `json:"runs"`
}

// Filename derives a sortable result filename from the experiment
// parameters, e.g. "random_dense_c10_v5_i0_r20_min1_max100.json".
func Filename(s Summary) string {
	return fmt.Sprintf("%s_%s_c%d_v%d_i%d_r%d_min%d_max%d.json",
		s.Distribution, s.Strategy,
		s.Constraints, s.Variables, s.MaxIterations, len(s.Runs),
		s.MinValue, s.MaxValue)
}

// SaveResults writes the summary as indented JSON under dir, creating
// the directory when needed, and returns the full path written.
func SaveResults(dir string, s Summary) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "report: creating results directory")
	}

	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return "", errors.Wrap(err, "report: encoding summary")
	}

	path := filepath.Join(dir, Filename(s))
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "report: writing summary")
	}
	return path, nil
}
