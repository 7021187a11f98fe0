package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/quantstat/internal/fermi"
)

const (
	TitleDOS    = "Densidade de Estados para um Gás de Fermi 3D"
	LabelEnergy = "Energia (J)"
	LabelDOS    = "Densidade de Estados"
	LabelFermi  = "Energia de Fermi"
)

var (
	curveColor = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	fillColor  = color.NRGBA{R: 31, G: 119, B: 180, A: 77}
	fermiColor = color.NRGBA{R: 214, G: 39, B: 40, A: 255}
)

// DensityOfStatesPlot builds the g(E) figure for st.
func DensityOfStatesPlot(st *fermi.State) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = TitleDOS
	p.X.Label.Text = LabelEnergy
	p.Y.Label.Text = LabelDOS
	p.Add(plotter.NewGrid())

	fill, err := occupiedFill(st)
	if err != nil {
		return nil, err
	}
	if fill != nil {
		p.Add(fill)
	}

	all := make(plotter.XYs, len(st.Samples))
	for i, s := range st.Samples {
		all[i] = plotter.XY{X: s.E, Y: s.G}
	}
	curve, err := plotter.NewLine(all)
	if err != nil {
		return nil, err
	}
	curve.LineStyle.Width = vg.Points(1.5)
	curve.LineStyle.Color = curveColor
	p.Add(curve)

	ref, err := fermiLine(st)
	if err != nil {
		return nil, err
	}
	p.Add(ref)

	p.Legend.Add(LabelFermi, ref)
	p.Legend.Top = true
	return p, nil
}

// occupiedFill shades the area under g(E) for E ≤ E_F. It returns nil when
// fewer than two samples are occupied.
func occupiedFill(st *fermi.State) (*plotter.Line, error) {
	var occupied plotter.XYs
	for _, s := range st.Samples {
		if s.E <= st.FermiEnergy {
			occupied = append(occupied, plotter.XY{X: s.E, Y: s.G})
		}
	}
	if len(occupied) < 2 {
		return nil, nil
	}
	fill, err := plotter.NewLine(occupied)
	if err != nil {
		return nil, err
	}
	fill.LineStyle.Width = 0
	fill.FillColor = fillColor
	return fill, nil
}

// fermiLine is the dashed vertical reference at E_F spanning the curve.
func fermiLine(st *fermi.State) (*plotter.Line, error) {
	top := fermi.Densities(st.Samples).Max()
	ref, err := plotter.NewLine(plotter.XYs{{X: st.FermiEnergy, Y: 0}, {X: st.FermiEnergy, Y: top}})
	if err != nil {
		return nil, err
	}
	ref.LineStyle.Width = vg.Points(1.5)
	ref.LineStyle.Color = fermiColor
	ref.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	return ref, nil
}

// SaveDensityOfStates writes the g(E) figure to path; the extension selects
// the format.
func SaveDensityOfStates(st *fermi.State, path string) error {
	p, err := DensityOfStatesPlot(st)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
