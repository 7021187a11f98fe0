package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/quantstat/internal/experiment"
	"github.com/san-kum/quantstat/internal/fermi"
)

// shades runs from empty to full density.
const shades = " .:-=+*#%@"

// Report renders the summary of every study present in r.
func Report(r *experiment.Report, s Styles) string {
	var blocks []string
	if r.Fermi != nil {
		blocks = append(blocks, fermiBlock(r.Fermi, s))
	}
	if r.Pair != nil {
		blocks = append(blocks, pairBlock(r.Pair, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func row(s Styles, label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.Label.Render(label), s.Value.Render(value))
}

func fermiBlock(r *experiment.FermiResult, s Styles) string {
	st := r.State
	lines := []string{
		s.Header.Render("Gás de Fermi 3D"),
		row(s, "volume", fmt.Sprintf("%.2e m³", st.Params.Volume)),
		row(s, "densidade", fmt.Sprintf("%.2e m⁻³", st.Params.Density)),
		row(s, "energia de Fermi", fmt.Sprintf("%.2e J", st.FermiEnergy)),
		row(s, "energia total", fmt.Sprintf("%.2e J", st.TotalEnergy)),
		row(s, "estados ocupados", fmt.Sprintf("%.2e", r.OccupiedStates)),
		row(s, "amostras", fmt.Sprintf("%d", len(st.Samples))),
	}
	return s.Panel.Render(strings.Join(lines, "\n"))
}

func pairBlock(r *experiment.PairResult, s Styles) string {
	w := r.Fields.Well
	lines := []string{
		s.Header.Render("Duas partículas no poço infinito"),
		row(s, "comprimento", fmt.Sprintf("%g", w.Length)),
		row(s, "grade", fmt.Sprintf("%d×%d", w.Resolution, w.Resolution)),
		row(s, "níveis", fmt.Sprintf("n=%d, k=%d", w.Levels.N, w.Levels.K)),
		s.Muted.Render(fmt.Sprintf("%-22s%12s%12s%12s", "", "máximo", "integral", "diagonal")),
	}
	stats := []struct {
		name string
		max  float64
		intg float64
		diag float64
	}{
		{"clássico", r.Classical.Max, r.Classical.Integral, r.Classical.Diagonal},
		{"bósons", r.Bosons.Max, r.Bosons.Integral, r.Bosons.Diagonal},
		{"férmions", r.Fermions.Max, r.Fermions.Integral, r.Fermions.Diagonal},
	}
	for _, st := range stats {
		lines = append(lines, row(s, st.name, fmt.Sprintf("%12.4f%12.4f%12.4f", st.max, st.intg, st.diag)))
	}
	return s.Panel.Render(strings.Join(lines, "\n"))
}

// DensityGraph plots g(E)/g(E_F) over the sampled energies.
func DensityGraph(st *fermi.State, width, height int) string {
	if len(st.Samples) == 0 {
		return ""
	}
	var ref float64
	for _, smp := range st.Samples {
		if smp.E <= st.FermiEnergy {
			ref = smp.G
		}
	}
	if ref == 0 {
		ref = fermi.Densities(st.Samples).Max()
	}
	data := fermi.Densities(st.Samples)
	for i := range data {
		if ref > 0 {
			data[i] /= ref
		}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("g(E)/g(E_F), E em [0, %.2e J]", 2*st.FermiEnergy)),
	)
}

// ShadeMap draws f as a width×height block of characters with x2 increasing
// upwards. Intensity is relative to the field's maximum.
func ShadeMap(f mat.Matrix, width, height int) string {
	rows, cols := f.Dims()
	if rows == 0 || cols == 0 || width < 1 || height < 1 {
		return ""
	}
	top := mat.Max(f)
	last := len(shades) - 1

	var sb strings.Builder
	for y := height - 1; y >= 0; y-- {
		i := sampleIndex(y, height, rows)
		for x := 0; x < width; x++ {
			j := sampleIndex(x, width, cols)
			level := 0
			if top > 0 {
				level = int(f.At(i, j) / top * float64(last))
			}
			level = max(0, min(level, last))
			sb.WriteByte(shades[level])
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// sampleIndex maps position p of n output cells onto m input samples.
func sampleIndex(p, n, m int) int {
	if n == 1 {
		return 0
	}
	return p * (m - 1) / (n - 1)
}
