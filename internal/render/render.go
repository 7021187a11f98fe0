package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/san-kum/quantstat/internal/experiment"
)

const (
	FermiFile = "fermi_dos"
	PairFile  = "two_particle"
)

// Write renders every result present in r into dir and returns the paths
// written.
func Write(dir, format string, r *experiment.Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var paths []string
	if r.Fermi != nil {
		path := filepath.Join(dir, FermiFile+"."+format)
		if err := SaveDensityOfStates(r.Fermi.State, path); err != nil {
			return paths, fmt.Errorf("render %s: %w", FermiFile, err)
		}
		paths = append(paths, path)
	}
	if r.Pair != nil {
		path := filepath.Join(dir, PairFile+"."+format)
		if err := SaveFields(r.Pair.Fields, path, format); err != nil {
			return paths, fmt.Errorf("render %s: %w", PairFile, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
